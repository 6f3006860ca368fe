// Package models holds the immutable value types the advance saga operates on.
// Values are constructed once from observer input and never mutated.
package models

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// TxID is the opaque identity of an observed source-chain deposit. It is the
// exactly-once key for the whole saga.
type TxID string

func (t TxID) String() string { return string(t) }

// SourceTransfer describes the deposit leg of the evidence.
type SourceTransfer struct {
	Amount            uint64 `json:"amount"`
	ForwardingAddress string `json:"forwarding_address"`
}

// Auxiliary carries opaque observer-supplied data riding along with the
// transfer, most importantly the encoded recipient address hook.
type Auxiliary struct {
	RecipientAddressHook string `json:"recipient_address_hook"`
}

// Evidence is the attested record of an observed source-chain deposit.
// Consumed exactly once per TxID.
type Evidence struct {
	TxID           TxID           `json:"tx_id"`
	SourceTransfer SourceTransfer `json:"source_transfer"`
	Aux            Auxiliary      `json:"aux"`
}

// Fingerprint returns a short stable digest of the evidence payload, used as
// a log correlation key when the tx hash alone is not enough to tell two
// observer submissions apart.
func (e Evidence) Fingerprint() string {
	sum := blake2b.Sum256(fmt.Appendf(nil, "%s|%d|%s|%s",
		e.TxID, e.SourceTransfer.Amount, e.SourceTransfer.ForwardingAddress, e.Aux.RecipientAddressHook))
	return hex.EncodeToString(sum[:8])
}

// RiskAssessment accompanies evidence; a non-empty list gates the advance off.
type RiskAssessment struct {
	RisksIdentified []string `json:"risks_identified"`
}

// AddressEncoding names the wire encoding of a destination address.
type AddressEncoding string

const EncodingBech32 AddressEncoding = "bech32"

// ResolvedDestination is the routing target derived from evidence. Immutable
// once computed.
type ResolvedDestination struct {
	ChainID  string
	Encoding AddressEncoding
	Value    string
}

func (d ResolvedDestination) String() string {
	return fmt.Sprintf("%s:%s", d.ChainID, d.Value)
}

// AdvanceAmount is the fee-adjusted amount actually borrowed and forwarded.
type AdvanceAmount struct {
	Denom string
	Value uint64
}

func (a AdvanceAmount) String() string {
	return fmt.Sprintf("%d%s", a.Value, a.Denom)
}

// Phase tracks a saga run through its strictly forward lifecycle.
type Phase string

const (
	PhaseAdmitted           Phase = "Admitted"
	PhasePreconditionFailed Phase = "PreconditionFailed"
	PhaseEarlySettled       Phase = "EarlySettled"
	PhaseSkipped            Phase = "Skipped"
	PhaseBorrowed           Phase = "Borrowed"
	PhaseForwarding         Phase = "Forwarding"
	PhaseSucceeded          Phase = "Succeeded"
	PhaseFailed             Phase = "Failed"
	PhaseCompensationFailed Phase = "CompensationFailed"
)

// Terminal reports whether a saga run stops at this phase.
func (p Phase) Terminal() bool {
	switch p {
	case PhasePreconditionFailed, PhaseEarlySettled, PhaseSkipped,
		PhaseSucceeded, PhaseFailed, PhaseCompensationFailed:
		return true
	}
	return false
}
