package pool

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fastlp/internal/advancer/models"
	"fastlp/pkg/platform/sentinel"
)

// PostgresLedger keeps pool balances in Postgres so several advancer
// instances can share one reserve. The balance guard lives in the UPDATE
// predicate, so concurrent borrows never oversubscribe the pool.
type PostgresLedger struct {
	pool *pgxpool.Pool
}

func NewPostgresLedger(pool *pgxpool.Pool) *PostgresLedger {
	return &PostgresLedger{pool: pool}
}

const ledgerSchema = `
CREATE TABLE IF NOT EXISTS pool_ledger (
    denom   TEXT   PRIMARY KEY,
    balance BIGINT NOT NULL CHECK (balance >= 0)
);
`

// EnsureSchema creates the ledger table when it does not exist yet.
func (l *PostgresLedger) EnsureSchema(ctx context.Context) error {
	if _, err := l.pool.Exec(ctx, ledgerSchema); err != nil {
		return fmt.Errorf("ensure ledger schema: %w", err)
	}
	return nil
}

// Fund adds liquidity for a denomination, creating the row on first use.
func (l *PostgresLedger) Fund(ctx context.Context, amount models.AdvanceAmount) error {
	_, err := l.pool.Exec(ctx,
		`INSERT INTO pool_ledger (denom, balance) VALUES ($1, $2)
		 ON CONFLICT (denom) DO UPDATE SET balance = pool_ledger.balance + EXCLUDED.balance`,
		amount.Denom, int64(amount.Value),
	)
	if err != nil {
		return fmt.Errorf("fund pool: %w", err)
	}
	return nil
}

func (l *PostgresLedger) Borrow(ctx context.Context, amount models.AdvanceAmount) error {
	tag, err := l.pool.Exec(ctx,
		`UPDATE pool_ledger SET balance = balance - $1 WHERE denom = $2 AND balance >= $1`,
		int64(amount.Value), amount.Denom,
	)
	if err != nil {
		return fmt.Errorf("borrow from pool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("borrow %s rejected: %w", amount, sentinel.ErrInsufficientFunds)
	}
	return nil
}

func (l *PostgresLedger) ReturnToPool(ctx context.Context, amount models.AdvanceAmount) error {
	tag, err := l.pool.Exec(ctx,
		`UPDATE pool_ledger SET balance = balance + $1 WHERE denom = $2`,
		int64(amount.Value), amount.Denom,
	)
	if err != nil {
		return fmt.Errorf("return to pool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("return %s to unknown denom: %w", amount, sentinel.ErrNotFound)
	}
	return nil
}
