package custody

import (
	"context"

	"fastlp/internal/advancer/models"
	"fastlp/internal/advancer/ports"
)

// BorrowerBridge couples the pool ledger with the account book so borrowed
// value shows up in local custody and returned value actually leaves it.
type BorrowerBridge struct {
	ledger   ports.Borrower
	accounts *Accounts
}

func NewBorrowerBridge(ledger ports.Borrower, accounts *Accounts) *BorrowerBridge {
	return &BorrowerBridge{ledger: ledger, accounts: accounts}
}

func (b *BorrowerBridge) Borrow(ctx context.Context, amount models.AdvanceAmount) error {
	if err := b.ledger.Borrow(ctx, amount); err != nil {
		return err
	}
	b.accounts.Credit(AccountLocal, amount.Value)
	return nil
}

// ReturnToPool drains the compensation holding. A withdraw leaves a claim on
// the temporary return holding; a return with a matching claim draws from
// there, and one without (deposit failure) draws from local custody. Balances
// alone cannot decide this: concurrent compensations would drain each
// other's holdings.
func (b *BorrowerBridge) ReturnToPool(ctx context.Context, amount models.AdvanceAmount) error {
	from := AccountLocal
	if b.accounts.claimTmpReturn(amount.Value) {
		from = AccountTmpReturn
	}
	if err := b.accounts.move(from, accountPoolReserve, amount.Value); err != nil {
		return err
	}
	return b.ledger.ReturnToPool(ctx, amount)
}

// accountPoolReserve is where returned value parks before the ledger credit.
const accountPoolReserve = "poolReserve"
