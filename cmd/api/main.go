package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ultradian/alexa-genome-match/internal/config"
	"github.com/ultradian/alexa-genome-match/internal/handler"
	"github.com/ultradian/alexa-genome-match/internal/service/report"
	"github.com/ultradian/alexa-genome-match/internal/service/session"
	"github.com/ultradian/alexa-genome-match/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	st := newStore(ctx, cfg.Redis, logger)

	provider := report.NewHTTPProvider(cfg.Genome.BaseURL, logger)
	fetcher := report.NewFetcher(provider, cfg.Genome.FetchTimeout, logger)
	dispatcher := session.NewDispatcher(st, fetcher, logger)

	router := handler.NewRouter(dispatcher, logger)
	startServer(ctx, cfg.Server, router, logger)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newStore connects to redis when configured, otherwise falls back to
// the in-memory store so the skill stays usable without persistence.
func newStore(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) store.Store {
	if !cfg.Enabled() {
		logger.Warn("REDIS_ADDR not set, data sets will not survive restarts")
		return store.NewMemory()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Error("redis unreachable, falling back to in-memory store",
			zap.String("addr", cfg.Addr), zap.Error(err))
		return store.NewMemory()
	}

	logger.Info("connected to redis store", zap.String("addr", cfg.Addr))
	return store.NewRedis(client)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("genome match backend listening", zap.String("addr", serverCfg.Addr))
	if err := runServer(ctx, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
