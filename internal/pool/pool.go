// Package pool implements the shared liquidity reserve's borrow/repay ledger.
// The ledger serializes its own balance updates; callers only see whether a
// borrow cleared.
package pool

import (
	"context"
	"fmt"
	"sync"

	"fastlp/internal/advancer/models"
	"fastlp/pkg/platform/sentinel"
)

// MemoryLedger is a single-denomination in-process ledger, used in tests and
// when no Postgres URL is configured.
type MemoryLedger struct {
	mu      sync.Mutex
	denom   string
	balance uint64
}

func NewMemoryLedger(denom string, balance uint64) *MemoryLedger {
	return &MemoryLedger{denom: denom, balance: balance}
}

func (l *MemoryLedger) Borrow(_ context.Context, amount models.AdvanceAmount) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount.Denom != l.denom {
		return fmt.Errorf("pool holds %s, not %s", l.denom, amount.Denom)
	}
	if amount.Value > l.balance {
		return fmt.Errorf("borrow %s exceeds pool balance %d: %w", amount, l.balance, sentinel.ErrInsufficientFunds)
	}
	l.balance -= amount.Value
	return nil
}

func (l *MemoryLedger) ReturnToPool(_ context.Context, amount models.AdvanceAmount) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount.Denom != l.denom {
		return fmt.Errorf("pool holds %s, not %s", l.denom, amount.Denom)
	}
	l.balance += amount.Value
	return nil
}

// Balance reports the current reserve, for metrics and tests.
func (l *MemoryLedger) Balance() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}
