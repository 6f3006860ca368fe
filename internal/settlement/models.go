// Package settlement is the advance engine's window into the settlement
// side: it answers the early-settlement check and fans advance outcomes out
// to the component that decides final on-chain status.
package settlement

import (
	"time"

	"fastlp/internal/advancer/models"
)

// OutcomeEvent is the record published for every advance that was attempted.
type OutcomeEvent struct {
	TxID              models.TxID `json:"tx_id"`
	ForwardingAddress string      `json:"forwarding_address"`
	FullAmount        uint64      `json:"full_amount"`
	DestinationChain  string      `json:"destination_chain"`
	DestinationValue  string      `json:"destination_value"`
	Success           bool        `json:"success"`
	OccurredAt        time.Time   `json:"occurred_at"`
}
