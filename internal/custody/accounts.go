// Package custody tracks value as it moves between the pool's local custody,
// the forwarding-facing account, and the temporary return holding. It backs
// the asset-movement and forwarding capabilities with an in-process ledger;
// deployments with a real orchestration endpoint swap in their own adapter
// behind the same ports.
package custody

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"fastlp/internal/advancer/models"
)

// Account names mirror the operator-facing log vocabulary.
const (
	AccountLocal      = "localOrchAccount"
	AccountForwarding = "poolAccount"
	AccountTmpReturn  = "tmpReturnHolding"
)

// Accounts is a thread-safe multi-account balance book.
type Accounts struct {
	mu       sync.Mutex
	balances map[string]uint64
	// tmpClaims records amounts withdrawn into the tmp return holding whose
	// pool return has not happened yet. Returns without a claim draw from
	// local custody, so one saga's return can never drain another's holding.
	tmpClaims []uint64
	logger    *slog.Logger
}

type Option func(*Accounts)

func WithLogger(logger *slog.Logger) Option {
	return func(a *Accounts) { a.logger = logger }
}

func NewAccounts(opts ...Option) *Accounts {
	a := &Accounts{
		balances: make(map[string]uint64),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Credit adds funds to an account, modelling an inbound borrow leg.
func (a *Accounts) Credit(account string, value uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balances[account] += value
}

// Balance reports an account's current holdings.
func (a *Accounts) Balance(account string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balances[account]
}

func (a *Accounts) move(from, to string, value uint64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.moveLocked(from, to, value)
}

func (a *Accounts) moveLocked(from, to string, value uint64) error {
	if a.balances[from] < value {
		return fmt.Errorf("account %s holds %d, cannot move %d", from, a.balances[from], value)
	}
	a.balances[from] -= value
	a.balances[to] += value
	return nil
}

// claimTmpReturn consumes a pending tmp-holding claim for value. It reports
// whether a return of this amount should draw from the tmp holding; without
// a matching claim the funds never reached it.
func (a *Accounts) claimTmpReturn(value uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, claim := range a.tmpClaims {
		if claim == value {
			a.tmpClaims = append(a.tmpClaims[:i], a.tmpClaims[i+1:]...)
			return true
		}
	}
	return false
}

// DepositLocal moves a borrowed amount from local custody into the
// forwarding-facing account.
func (a *Accounts) DepositLocal(_ context.Context, amount models.AdvanceAmount) error {
	return a.move(AccountLocal, AccountForwarding, amount.Value)
}

// WithdrawToLocal claws an amount back from the forwarding-facing account
// into the temporary return holding and records a claim on it, so the
// matching pool return draws from the holding that received these funds.
func (a *Accounts) WithdrawToLocal(_ context.Context, amount models.AdvanceAmount) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.moveLocked(AccountForwarding, AccountTmpReturn, amount.Value); err != nil {
		return err
	}
	a.tmpClaims = append(a.tmpClaims, amount.Value)
	return nil
}

// Send delivers an advance to a same-chain destination.
func (a *Accounts) Send(_ context.Context, dest models.ResolvedDestination, amount models.AdvanceAmount) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balances[AccountForwarding] < amount.Value {
		return fmt.Errorf("forwarding account holds %d, cannot send %d", a.balances[AccountForwarding], amount.Value)
	}
	a.balances[AccountForwarding] -= amount.Value
	a.logger.Debug("same-chain send", "destination", dest.Value, "amount", amount.String())
	return nil
}

// Transfer delivers an advance to a remote chain destination.
func (a *Accounts) Transfer(_ context.Context, dest models.ResolvedDestination, amount models.AdvanceAmount) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balances[AccountForwarding] < amount.Value {
		return fmt.Errorf("forwarding account holds %d, cannot transfer %d", a.balances[AccountForwarding], amount.Value)
	}
	a.balances[AccountForwarding] -= amount.Value
	a.logger.Debug("cross-chain transfer", "chain_id", dest.ChainID, "destination", dest.Value, "amount", amount.String())
	return nil
}
