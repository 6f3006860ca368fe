// Package advancer implements the advance saga: borrow from the shared pool,
// forward funds to the resolved destination, and unwind the borrow on any
// failure. Each saga runs at most once per source transaction and reports
// every terminal advance outcome exactly once to the settlement side.
package advancer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"fastlp/internal/advancer/fees"
	"fastlp/internal/advancer/metrics"
	"fastlp/internal/advancer/models"
	"fastlp/internal/advancer/ports"
	"fastlp/internal/advancer/resolver"
	"fastlp/internal/advancer/seen"
	dErrors "fastlp/pkg/domain-errors"
)

// Account names used in operator-facing logs. When compensation fails these
// are the places funds sit waiting for manual recovery.
const (
	forwardingAccountName = "poolAccount"
	tmpReturnHoldingName  = "tmpReturnHolding"
)

// Deps are the capability objects the engine orchestrates. All of them are
// required.
type Deps struct {
	Borrower ports.Borrower
	Mover    ports.AssetMover
	Forward  ports.Forwarder
	Notifier ports.SettlementNotifier
	Status   ports.StatusManager
	Resolver *resolver.Resolver
}

// Engine runs one compensating-transaction saga per observed deposit.
type Engine struct {
	deps         Deps
	feeSchedule  fees.Schedule
	localChainID string

	seen    *seen.Set
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) { e.tracer = tracer }
}

// New constructs the saga engine. localChainID decides whether a resolved
// destination is served by a same-chain send or a cross-chain transfer.
func New(deps Deps, feeSchedule fees.Schedule, localChainID string, opts ...Option) (*Engine, error) {
	switch {
	case deps.Borrower == nil:
		return nil, dErrors.New(dErrors.CodeInternal, "borrower is required")
	case deps.Mover == nil:
		return nil, dErrors.New(dErrors.CodeInternal, "asset mover is required")
	case deps.Forward == nil:
		return nil, dErrors.New(dErrors.CodeInternal, "forwarder is required")
	case deps.Notifier == nil:
		return nil, dErrors.New(dErrors.CodeInternal, "settlement notifier is required")
	case deps.Status == nil:
		return nil, dErrors.New(dErrors.CodeInternal, "status manager is required")
	case deps.Resolver == nil:
		return nil, dErrors.New(dErrors.CodeInternal, "destination resolver is required")
	case localChainID == "":
		return nil, dErrors.New(dErrors.CodeInternal, "local chain id is required")
	}

	e := &Engine{
		deps:         deps,
		feeSchedule:  feeSchedule,
		localChainID: localChainID,
		seen:         seen.NewSet(),
		logger:       slog.Default(),
		tracer:       otel.Tracer("fastlp/advancer"),
	}
	for _, opt := range opts {
		opt(e)
	}
	// Registering on the default registry happens only when no metrics were
	// injected; a second default-registry engine in one process would panic
	// on duplicate registration.
	if e.metrics == nil {
		e.metrics = metrics.New()
	}
	return e, nil
}

// SubmitEvidence admits evidence into the saga and launches its run. The
// admission check-and-insert happens synchronously, before any I/O, so a
// duplicate submission can never start a second run even under concurrent
// arrivals. The returned channel closes when the run reaches a terminal
// phase; it carries no result.
func (e *Engine) SubmitEvidence(ctx context.Context, evidence models.Evidence, risk models.RiskAssessment) <-chan struct{} {
	done := make(chan struct{})

	if !e.seen.Admit(evidence.TxID) {
		e.logger.Info("already seen, ignoring evidence", "tx_id", evidence.TxID)
		e.metrics.DuplicatesIgnored.Inc()
		close(done)
		return done
	}

	e.metrics.AdvancesStarted.Inc()

	// The run outlives the submitting request; a cancelled observer call must
	// not abort a saga that may already have borrowed funds.
	runCtx := context.WithoutCancel(ctx)
	go func() {
		defer close(done)
		e.run(runCtx, evidence, risk)
	}()
	return done
}

// run drives one saga from admission to a terminal phase. Errors never escape:
// every failure is either recorded as a skip, compensated, or logged for
// operator recovery.
func (e *Engine) run(ctx context.Context, evidence models.Evidence, risk models.RiskAssessment) models.Phase {
	start := time.Now()
	defer func() {
		e.metrics.AdvanceDuration.Observe(time.Since(start).Seconds())
	}()

	log := e.logger.With(
		"tx_id", evidence.TxID,
		"run_id", uuid.NewString(),
		"evidence", evidence.Fingerprint(),
	)

	ctx, span := e.tracer.Start(ctx, "advancer.run", trace.WithAttributes(
		attribute.String("tx_id", evidence.TxID.String()),
		attribute.Int64("gross_amount", int64(evidence.SourceTransfer.Amount)),
	))
	defer span.End()

	phase := e.execute(ctx, log, evidence, risk)
	span.SetAttributes(attribute.String("terminal_phase", string(phase)))
	return phase
}

// markPhase records a lifecycle transition on the run's span and debug log.
// Terminal phases are recorded by run as the span's terminal_phase attribute.
func (e *Engine) markPhase(ctx context.Context, log *slog.Logger, phase models.Phase) {
	trace.SpanFromContext(ctx).AddEvent(string(phase))
	log.Debug("phase", "phase", string(phase), "terminal", phase.Terminal())
}

func (e *Engine) execute(ctx context.Context, log *slog.Logger, evidence models.Evidence, risk models.RiskAssessment) models.Phase {
	e.markPhase(ctx, log, models.PhaseAdmitted)

	// Precondition: the destination must resolve before anything moves.
	dest, err := e.deps.Resolver.Resolve(ctx, evidence)
	if err != nil {
		log.Error("destination resolution failed", "error", err)
		e.recordSkipped(ctx, log, evidence.TxID, []string{err.Error()})
		e.metrics.AdvancesSkipped.WithLabelValues("precondition").Inc()
		return models.PhasePreconditionFailed
	}
	log = log.With("chain_id", dest.ChainID, "destination", dest.Value)

	// If the deposit already settled through the normal path there is nothing
	// to front; the settlement side owns reporting from here.
	minted, err := e.deps.Notifier.CheckMintedEarly(ctx, evidence, dest)
	if err != nil {
		log.Warn("early settlement check failed, proceeding with advance", "error", err)
	}
	if minted {
		log.Info("deposit already settled, skipping advance")
		e.metrics.AdvancesSkipped.WithLabelValues("early_settlement").Inc()
		return models.PhaseEarlySettled
	}

	if len(risk.RisksIdentified) > 0 {
		log.Info("risks identified, skipping advance", "risks", risk.RisksIdentified)
		e.recordSkipped(ctx, log, evidence.TxID, risk.RisksIdentified)
		e.metrics.AdvancesSkipped.WithLabelValues("risk").Inc()
		return models.PhaseSkipped
	}

	amount, err := fees.ComputeAdvanceAmount(evidence.SourceTransfer.Amount, e.feeSchedule)
	if err != nil {
		log.Error("advancer error", "error", err)
		e.recordSkipped(ctx, log, evidence.TxID, []string{err.Error()})
		e.metrics.AdvancesSkipped.WithLabelValues("fee").Inc()
		return models.PhaseSkipped
	}
	log = log.With("advance_amount", amount.String())

	// Borrow failure is a pre-funding rejection: no funds left the pool, so
	// there is nothing to compensate.
	if err := e.deps.Borrower.Borrow(ctx, amount); err != nil {
		log.Error("advancer error", "error", err)
		e.recordSkipped(ctx, log, evidence.TxID, []string{err.Error()})
		e.metrics.AdvancesSkipped.WithLabelValues("pool").Inc()
		return models.PhaseSkipped
	}
	e.markPhase(ctx, log, models.PhaseBorrowed)

	details := ports.OutcomeDetails{
		TxID:              evidence.TxID,
		ForwardingAddress: evidence.SourceTransfer.ForwardingAddress,
		FullAmount:        evidence.SourceTransfer.Amount,
		Destination:       dest,
	}

	// Move the borrowed amount into the forwarding-facing account. If this
	// fails the funds never left the pool's local custody, so compensation is
	// a plain return with no withdraw leg.
	if err := e.deps.Mover.DepositLocal(ctx, amount); err != nil {
		log.Error("deposit to localOrchAccount failed, attempting to return payment to LP", "error", err)
		e.notifyOutcome(ctx, log, details, false)
		e.metrics.AdvancesFailed.Inc()
		return e.compensate(ctx, log, amount, false)
	}

	// Duplicate-advance guard: the status store rejects a second Advancing
	// write for the same id. A rejection here means another writer advanced
	// this transaction, so claw the funds back instead of forwarding twice.
	if err := e.deps.Status.RecordAdvancing(ctx, evidence.TxID); err != nil {
		log.Error("recording advancing status failed", "error", err)
		e.notifyOutcome(ctx, log, details, false)
		e.metrics.AdvancesFailed.Inc()
		return e.compensate(ctx, log, amount, true)
	}

	e.markPhase(ctx, log, models.PhaseForwarding)
	if err := e.forward(ctx, dest, amount); err != nil {
		log.Error("advance failed", "error", err)
		e.notifyOutcome(ctx, log, details, false)
		e.metrics.AdvancesFailed.Inc()
		return e.compensate(ctx, log, amount, true)
	}

	log.Info("advance succeeded", "amount", amount.String(), "destination", dest.String())
	e.notifyOutcome(ctx, log, details, true)
	e.metrics.AdvancesSucceeded.Inc()
	return models.PhaseSucceeded
}

// forward picks the transport for the resolved destination: a same-chain
// balance send for the local chain, a cross-chain transfer otherwise.
func (e *Engine) forward(ctx context.Context, dest models.ResolvedDestination, amount models.AdvanceAmount) error {
	if dest.ChainID == e.localChainID {
		return e.deps.Forward.Send(ctx, dest, amount)
	}
	return e.deps.Forward.Transfer(ctx, dest, amount)
}

// compensate unwinds a borrow after a post-funding failure. withdrawFirst is
// set when funds reached the forwarding-facing account and must be pulled
// back before they can be returned. Compensation is attempted once: a failed
// leg leaves funds in a named account for operator recovery and is never
// retried.
func (e *Engine) compensate(ctx context.Context, log *slog.Logger, amount models.AdvanceAmount, withdrawFirst bool) models.Phase {
	if withdrawFirst {
		if err := e.deps.Mover.WithdrawToLocal(ctx, amount); err != nil {
			log.Error("withdraw to return to pool failed, funds remain on \""+forwardingAccountName+"\"",
				"severity", "critical", "amount", amount.String(), "error", err)
			e.metrics.CompensationFailures.Inc()
			return models.PhaseCompensationFailed
		}
	}

	if err := e.deps.Borrower.ReturnToPool(ctx, amount); err != nil {
		log.Error("return to pool failed, funds remain on \""+tmpReturnHoldingName+"\"",
			"severity", "critical", "amount", amount.String(), "error", err)
		e.metrics.CompensationFailures.Inc()
		return models.PhaseCompensationFailed
	}

	return models.PhaseFailed
}

// recordSkipped writes the terminal AdvanceSkipped status. The write is a
// side effect of an already-decided outcome, so its own failure is only
// logged.
func (e *Engine) recordSkipped(ctx context.Context, log *slog.Logger, tx models.TxID, risks []string) {
	if err := e.deps.Status.RecordAdvanceSkipped(ctx, tx, risks); err != nil {
		log.Error("recording skipped status failed", "error", err)
	}
}

// notifyOutcome reports the final advance outcome to the settlement side.
// Called exactly once per run that attempted an advance.
func (e *Engine) notifyOutcome(ctx context.Context, log *slog.Logger, details ports.OutcomeDetails, success bool) {
	if err := e.deps.Notifier.NotifyAdvanceOutcome(ctx, details, success); err != nil {
		log.Error("notifying settlement of advance outcome failed", "success", success, "error", err)
	}
}
