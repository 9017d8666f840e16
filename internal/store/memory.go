package store

import (
	"context"
	"sync"

	"github.com/ultradian/alexa-genome-match/internal/model/genome"
)

// Memory implements Store with an in-process map. It backs tests, the
// tester tool, and the fallback path when redis is unavailable. Values
// are deep-copied on both sides so callers never share state with the
// store.
type Memory struct {
	mu    sync.RWMutex
	users map[string]*genome.DataSets
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{users: make(map[string]*genome.DataSets)}
}

// Get returns a copy of the user's data sets, empty when absent.
func (m *Memory) Get(_ context.Context, userID string) (*genome.DataSets, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.users[userID]; ok {
		return data.Clone(), nil
	}
	return genome.NewDataSets(), nil
}

// Put stores a copy of the user's data sets.
func (m *Memory) Put(_ context.Context, userID string, data *genome.DataSets) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[userID] = data.Clone()
	return nil
}
