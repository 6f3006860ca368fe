package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and ledger adapters return
// these (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in store (e.g. no chain for a prefix)
// - ErrConflict: a record for the key already exists
// - ErrInvalidState: entity in wrong state for requested operation
//   (e.g. recording Advancing when the latest status is past Observed)
// - ErrInsufficientFunds: pool balance cannot cover a borrow
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidState      = errors.New("invalid state")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
