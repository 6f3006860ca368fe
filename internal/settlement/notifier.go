package settlement

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fastlp/internal/advancer/models"
	"fastlp/internal/advancer/ports"
	"fastlp/internal/status"
	dErrors "fastlp/pkg/domain-errors"
	"fastlp/pkg/platform/sentinel"
)

// StatusSource is the read path the early-settlement check needs.
// status.Store satisfies it.
type StatusSource interface {
	Latest(ctx context.Context, tx models.TxID) (status.Record, error)
}

// Publisher fans an outcome event out to the settlement consumer.
type Publisher interface {
	Publish(ctx context.Context, event OutcomeEvent) error
}

// Notifier implements ports.SettlementNotifier. Without a publisher it runs
// in log-only mode, which keeps the engine functional when no broker is
// configured.
type Notifier struct {
	statuses  StatusSource
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

type Option func(*Notifier)

func WithLogger(logger *slog.Logger) Option {
	return func(n *Notifier) { n.logger = logger }
}

func WithPublisher(publisher Publisher) Option {
	return func(n *Notifier) { n.publisher = publisher }
}

func New(statuses StatusSource, opts ...Option) (*Notifier, error) {
	if statuses == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "status source is required")
	}
	n := &Notifier{statuses: statuses, logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// CheckMintedEarly reports whether the deposit already settled through the
// normal path. A transaction whose latest status is Settled needs no advance.
func (n *Notifier) CheckMintedEarly(ctx context.Context, evidence models.Evidence, _ models.ResolvedDestination) (bool, error) {
	latest, err := n.statuses.Latest(ctx, evidence.TxID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "loading settlement status")
	}
	return latest.Status == status.StatusSettled, nil
}

// NotifyAdvanceOutcome publishes the final advance outcome. The settlement
// consumer owns recording Advanced/Settled from here; this side never writes
// those statuses itself.
func (n *Notifier) NotifyAdvanceOutcome(ctx context.Context, details ports.OutcomeDetails, success bool) error {
	event := OutcomeEvent{
		TxID:              details.TxID,
		ForwardingAddress: details.ForwardingAddress,
		FullAmount:        details.FullAmount,
		DestinationChain:  details.Destination.ChainID,
		DestinationValue:  details.Destination.Value,
		Success:           success,
		OccurredAt:        n.now(),
	}

	n.logger.Info("advance outcome",
		"tx_id", event.TxID, "success", success, "destination_chain", event.DestinationChain)

	if n.publisher == nil {
		return nil
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "publishing advance outcome")
	}
	return nil
}
