package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"fastlp/internal/advancer/models"
	"fastlp/internal/status"
	"fastlp/pkg/platform/sentinel"
)

// PostgresStore persists status history in an append-only table. Rows are
// never updated or deleted.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const statusSchema = `
CREATE TABLE IF NOT EXISTS tx_status (
    id          BIGSERIAL PRIMARY KEY,
    tx_id       TEXT        NOT NULL,
    status      TEXT        NOT NULL,
    risks       TEXT[]      NOT NULL DEFAULT '{}',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS tx_status_tx_id_idx ON tx_status (tx_id, id);
`

// EnsureSchema creates the status table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, statusSchema); err != nil {
		return fmt.Errorf("ensure status schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, rec status.Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tx_status (tx_id, status, risks, created_at) VALUES ($1, $2, $3, $4)`,
		rec.TxID.String(), string(rec.Status), pq.Array(rec.Risks), rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append status: %w", err)
	}
	return nil
}

func (s *PostgresStore) Latest(ctx context.Context, tx models.TxID) (status.Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT status, risks, created_at FROM tx_status WHERE tx_id = $1 ORDER BY id DESC LIMIT 1`,
		tx.String(),
	)

	rec := status.Record{TxID: tx}
	var st string
	if err := row.Scan(&st, pq.Array(&rec.Risks), &rec.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return status.Record{}, sentinel.ErrNotFound
		}
		return status.Record{}, fmt.Errorf("load latest status: %w", err)
	}
	rec.Status = status.TxStatus(st)
	return rec, nil
}

func (s *PostgresStore) List(ctx context.Context, tx models.TxID) ([]status.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT status, risks, created_at FROM tx_status WHERE tx_id = $1 ORDER BY id ASC`,
		tx.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}
	defer rows.Close()

	var records []status.Record
	for rows.Next() {
		rec := status.Record{TxID: tx}
		var st string
		if err := rows.Scan(&st, pq.Array(&rec.Risks), &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan status row: %w", err)
		}
		rec.Status = status.TxStatus(st)
		records = append(records, rec)
	}
	return records, rows.Err()
}
