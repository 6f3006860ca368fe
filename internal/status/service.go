package status

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fastlp/internal/advancer/models"
	dErrors "fastlp/pkg/domain-errors"
	"fastlp/pkg/platform/sentinel"
)

// Store persists status records. Implementations must keep per-tx history in
// append order.
type Store interface {
	Append(ctx context.Context, rec Record) error

	// Latest returns the newest record for tx, or sentinel.ErrNotFound.
	Latest(ctx context.Context, tx models.TxID) (Record, error)

	List(ctx context.Context, tx models.TxID) ([]Record, error)
}

// Service enforces the status lifecycle on top of a store. Transitions are
// append-only and guarded: recording Advancing for a transaction that is past
// Observed fails, which is how duplicate advances surface.
type Service struct {
	mu     sync.Mutex
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "status store is required")
	}
	svc := &Service{store: store, logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// RecordObserved opens a transaction's history. A second observation for the
// same id conflicts.
func (s *Service) RecordObserved(ctx context.Context, tx models.TxID, _ models.Evidence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.store.Latest(ctx, tx)
	switch {
	case err == nil:
		return dErrors.Wrap(sentinel.ErrConflict, dErrors.CodeConflict,
			"transaction already observed")
	case !errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeInternal, "loading status history")
	}

	return s.append(ctx, Record{TxID: tx, Status: StatusObserved})
}

// RecordAdvancing marks the advance as in flight. Errors unless the latest
// status is Observed.
func (s *Service) RecordAdvancing(ctx context.Context, tx models.TxID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireObserved(ctx, tx); err != nil {
		return err
	}
	return s.append(ctx, Record{TxID: tx, Status: StatusAdvancing})
}

// RecordAdvanceSkipped terminally marks a transaction that never received an
// advance, with the risk or error reasons that stopped it.
func (s *Service) RecordAdvanceSkipped(ctx context.Context, tx models.TxID, risks []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireObserved(ctx, tx); err != nil {
		return err
	}
	return s.append(ctx, Record{TxID: tx, Status: StatusAdvanceSkipped, Risks: risks})
}

// RecordSettled is written by the settlement side once the underlying
// transfer finishes through the normal path.
func (s *Service) RecordSettled(ctx context.Context, tx models.TxID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.append(ctx, Record{TxID: tx, Status: StatusSettled})
}

// History returns the full append-only history for a transaction.
func (s *Service) History(ctx context.Context, tx models.TxID) ([]Record, error) {
	records, err := s.store.List(ctx, tx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "listing status history")
	}
	if len(records) == 0 {
		return nil, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "no history for transaction")
	}
	return records, nil
}

func (s *Service) requireObserved(ctx context.Context, tx models.TxID) error {
	latest, err := s.store.Latest(ctx, tx)
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(sentinel.ErrInvalidState, dErrors.CodeInvariantViolation,
			"transaction was never observed")
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "loading status history")
	}
	if latest.Status != StatusObserved {
		return dErrors.Wrap(sentinel.ErrInvalidState, dErrors.CodeInvariantViolation,
			"latest status is "+string(latest.Status)+", expected "+string(StatusObserved))
	}
	return nil
}

func (s *Service) append(ctx context.Context, rec Record) error {
	rec.CreatedAt = s.now()
	if err := s.store.Append(ctx, rec); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "appending status record")
	}
	s.logger.Debug("status recorded", "tx_id", rec.TxID, "status", rec.Status)
	return nil
}
