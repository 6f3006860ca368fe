// Package ports defines the capability interfaces the advance saga engine is
// constructed over. The engine never depends on concrete adapters, so tests
// substitute mocks and main wires real ledgers, stores, and brokers.
package ports

import (
	"context"

	"fastlp/internal/advancer/models"
)

// Borrower exposes the shared liquidity pool's ledger operations.
// The ledger provides its own serialization; the engine issues each call at
// most once per saga run.
type Borrower interface {
	// Borrow moves amount from the pool into local custody. Errors on
	// insufficient pool funds.
	Borrow(ctx context.Context, amount models.AdvanceAmount) error

	// ReturnToPool repays a previously borrowed amount.
	ReturnToPool(ctx context.Context, amount models.AdvanceAmount) error
}

// AssetMover moves value between the pool's local custody and the
// forwarding-facing account. Both operations are asynchronous and
// independently fallible.
type AssetMover interface {
	// DepositLocal moves a borrowed amount into the local intermediate holding.
	DepositLocal(ctx context.Context, amount models.AdvanceAmount) error

	// WithdrawToLocal claws an amount out of the forwarding-facing account
	// back into a temporary local holding.
	WithdrawToLocal(ctx context.Context, amount models.AdvanceAmount) error
}

// Forwarder delivers an advance to its resolved destination.
type Forwarder interface {
	// Send performs a same-chain balance transfer.
	Send(ctx context.Context, dest models.ResolvedDestination, amount models.AdvanceAmount) error

	// Transfer performs a cross-chain transfer to a remote destination.
	Transfer(ctx context.Context, dest models.ResolvedDestination, amount models.AdvanceAmount) error
}

// OutcomeDetails identifies the advance a settlement notification refers to.
type OutcomeDetails struct {
	TxID              models.TxID
	ForwardingAddress string
	FullAmount        uint64
	Destination       models.ResolvedDestination
}

// SettlementNotifier receives final advance outcomes and answers the
// early-settlement check performed before any funds move.
type SettlementNotifier interface {
	// CheckMintedEarly reports whether the underlying deposit already settled
	// through the normal path for this evidence/destination pair.
	CheckMintedEarly(ctx context.Context, evidence models.Evidence, dest models.ResolvedDestination) (bool, error)

	// NotifyAdvanceOutcome reports the final advance outcome exactly once per
	// saga run that attempted an advance.
	NotifyAdvanceOutcome(ctx context.Context, details OutcomeDetails, success bool) error
}

// StatusManager records the append-only status history per transaction.
// The engine only writes; it never reads state back.
type StatusManager interface {
	RecordObserved(ctx context.Context, tx models.TxID, evidence models.Evidence) error

	// RecordAdvancing errors unless the latest status for tx is Observed.
	// That failure surfaces duplicate-advance bugs loudly.
	RecordAdvancing(ctx context.Context, tx models.TxID) error

	RecordAdvanceSkipped(ctx context.Context, tx models.TxID, risks []string) error
}

// ChainInfo is the routing metadata resolved for an address prefix.
type ChainInfo struct {
	ChainID  string
	Encoding models.AddressEncoding
}

// ChainHub maps a bech32 prefix to chain routing metadata.
type ChainHub interface {
	// LookupChainByPrefix returns sentinel.ErrNotFound (wrapped or not) when
	// no chain is registered for the prefix.
	LookupChainByPrefix(ctx context.Context, prefix string) (ChainInfo, error)
}
