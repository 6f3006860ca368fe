package store

import (
	"context"
	"sync"

	"fastlp/internal/chainhub"
	"fastlp/pkg/platform/sentinel"
)

// InMemoryStore holds prefix registrations in process memory.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]chainhub.Entry
}

func NewMemory() *InMemoryStore {
	return &InMemoryStore{entries: make(map[string]chainhub.Entry)}
}

func (s *InMemoryStore) Put(_ context.Context, entry chainhub.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Prefix] = entry
	return nil
}

func (s *InMemoryStore) GetByPrefix(_ context.Context, prefix string) (chainhub.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[prefix]
	if !ok {
		return chainhub.Entry{}, sentinel.ErrNotFound
	}
	return entry, nil
}
