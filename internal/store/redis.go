package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ultradian/alexa-genome-match/internal/model/genome"
)

// keyPrefix namespaces user records as "genome:user:{userId}".
const keyPrefix = "genome:user:"

// Redis implements Store on a redis instance, holding each user's data
// sets as one JSON value. Records do not expire; the skill owns their
// lifecycle.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an already-configured client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func userKey(userID string) string {
	return keyPrefix + userID
}

// Get loads the user's data sets; a missing key reads as empty.
func (r *Redis) Get(ctx context.Context, userID string) (*genome.DataSets, error) {
	raw, err := r.client.Get(ctx, userKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return genome.NewDataSets(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", userID, err)
	}

	data := genome.NewDataSets()
	if err := json.Unmarshal([]byte(raw), data); err != nil {
		return nil, fmt.Errorf("decode stored data for %s: %w", userID, err)
	}
	return data, nil
}

// Put writes the user's data sets.
func (r *Redis) Put(ctx context.Context, userID string, data *genome.DataSets) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode data for %s: %w", userID, err)
	}
	if err := r.client.Set(ctx, userKey(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis put %s: %w", userID, err)
	}
	return nil
}
