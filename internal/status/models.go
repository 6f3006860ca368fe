// Package status records the append-only status history per transaction.
// It is the durable source of truth for whether an advance happened; the
// engine only writes to it and never reads state back.
package status

import (
	"time"

	"fastlp/internal/advancer/models"
)

// TxStatus is one step in a transaction's lifecycle.
type TxStatus string

const (
	StatusObserved       TxStatus = "Observed"
	StatusAdvancing      TxStatus = "Advancing"
	StatusAdvanceSkipped TxStatus = "AdvanceSkipped"
	StatusAdvanced       TxStatus = "Advanced"
	StatusSettled        TxStatus = "Settled"
)

// Record is a single append-only history entry.
type Record struct {
	TxID      models.TxID
	Status    TxStatus
	Risks     []string
	CreatedAt time.Time
}
