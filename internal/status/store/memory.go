package store

import (
	"context"
	"sync"

	"fastlp/internal/advancer/models"
	"fastlp/internal/status"
	"fastlp/pkg/platform/sentinel"
)

// InMemoryStore keeps status history in process memory. Used in tests and
// when no Postgres URL is configured.
type InMemoryStore struct {
	mu      sync.RWMutex
	history map[models.TxID][]status.Record
}

func NewMemory() *InMemoryStore {
	return &InMemoryStore{history: make(map[models.TxID][]status.Record)}
}

func (s *InMemoryStore) Append(_ context.Context, rec status.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[rec.TxID] = append(s.history[rec.TxID], rec)
	return nil
}

func (s *InMemoryStore) Latest(_ context.Context, tx models.TxID) (status.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.history[tx]
	if len(records) == 0 {
		return status.Record{}, sentinel.ErrNotFound
	}
	return records[len(records)-1], nil
}

func (s *InMemoryStore) List(_ context.Context, tx models.TxID) ([]status.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.history[tx]
	out := make([]status.Record, len(records))
	copy(out, records)
	return out, nil
}
