// Package config loads service configuration from environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ultradian/alexa-genome-match/internal/service/report"
)

// Config aggregates all service settings.
type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Genome GenomeConfig
	Debug  bool
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

// RedisConfig describes the durable store connection. An empty Addr
// means no redis is available and the service falls back to an
// in-memory store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a redis address was configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// GenomeConfig describes the report provider.
type GenomeConfig struct {
	BaseURL      string
	FetchTimeout time.Duration
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	redisCfg, err := loadRedisConfig()
	if err != nil {
		return nil, err
	}

	genome, err := loadGenomeConfig()
	if err != nil {
		return nil, err
	}

	debug, err := parseBoolEnv("DEBUG", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		Redis:  redisCfg,
		Genome: genome,
		Debug:  debug,
	}, nil
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func loadRedisConfig() (RedisConfig, error) {
	db := 0
	if override, err := parseOptionalIntEnv("REDIS_DB"); err != nil {
		return RedisConfig{}, err
	} else if override != nil {
		db = *override
	}

	return RedisConfig{
		Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}, nil
}

func loadGenomeConfig() (GenomeConfig, error) {
	timeout := report.DefaultFetchTimeout
	if override, err := parseOptionalIntEnv("GENOME_FETCH_TIMEOUT"); err != nil {
		return GenomeConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return GenomeConfig{}, fmt.Errorf("GENOME_FETCH_TIMEOUT must be at least 1 second, got %d", *override)
		}
		timeout = time.Duration(*override) * time.Second
	}

	return GenomeConfig{
		BaseURL:      getEnvOrDefault("GENOME_API_BASE_URL", report.DefaultBaseURL),
		FetchTimeout: timeout,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
