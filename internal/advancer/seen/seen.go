// Package seen provides the process-lifetime admission set for saga dispatch.
// Membership is not durable; the status store's persisted history is the
// source of truth for whether a real advance happened. This set only guards
// against duplicate dispatch within one process.
package seen

import (
	"sync"

	"fastlp/internal/advancer/models"
)

// Set is an in-memory test-and-insert set keyed by transaction id.
type Set struct {
	mu   sync.Mutex
	seen map[models.TxID]struct{}
}

func NewSet() *Set {
	return &Set{seen: make(map[models.TxID]struct{})}
}

// Admit atomically tests and inserts tx. It returns true on first admission
// and false if the id was already present; the insert never happens twice.
func (s *Set) Admit(tx models.TxID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[tx]; ok {
		return false
	}
	s.seen[tx] = struct{}{}
	return true
}

// Len reports how many ids have been admitted, for metrics and tests.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}
