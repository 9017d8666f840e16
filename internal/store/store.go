// Package store persists each user's named genome data sets.
package store

import (
	"context"

	"github.com/ultradian/alexa-genome-match/internal/model/genome"
)

// Store is the durable mapping from user identifier to data sets.
// Get returns an empty collection, not an error, for unknown users.
type Store interface {
	Get(ctx context.Context, userID string) (*genome.DataSets, error)
	Put(ctx context.Context, userID string, data *genome.DataSets) error
}
