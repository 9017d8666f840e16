package store_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultradian/alexa-genome-match/internal/model/genome"
	"github.com/ultradian/alexa-genome-match/internal/store"
)

func newRedisStore(t *testing.T) *store.Redis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return store.NewRedis(client)
}

func TestRedisGetUnknownUserIsEmpty(t *testing.T) {
	s := newRedisStore(t)
	data, err := s.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, data.Len())
}

func TestRedisRoundTripPreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := newRedisStore(t)

	data := genome.NewDataSets()
	data.Put("zed", genome.TraitRecord{"anger": {Score: 1, Phrase: "They have low anger"}})
	data.Put("amy", genome.TraitRecord{"anger": {Score: 4, Phrase: "They have high anger"}})
	require.NoError(t, s.Put(ctx, "user-1", data))

	loaded, err := s.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"zed", "amy"}, loaded.Names())

	record, ok := loaded.Get("amy")
	require.True(t, ok)
	assert.Equal(t, genome.TraitValue{Score: 4, Phrase: "They have high anger"}, record["anger"])
}

func TestRedisOverwriteLastWins(t *testing.T) {
	ctx := context.Background()
	s := newRedisStore(t)

	first := genome.NewDataSets()
	first.Put("Bob", genome.TraitRecord{})
	require.NoError(t, s.Put(ctx, "user-1", first))

	second := genome.NewDataSets()
	second.Put("Sue", genome.TraitRecord{})
	require.NoError(t, s.Put(ctx, "user-1", second))

	loaded, err := s.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sue"}, loaded.Names())
}
