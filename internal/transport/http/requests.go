package httptransport

import (
	"strings"

	"fastlp/internal/advancer/models"
	dErrors "fastlp/pkg/domain-errors"
)

// SubmitEvidenceRequest is the HTTP request body for POST /v1/evidence.
type SubmitEvidenceRequest struct {
	TxID                 string   `json:"tx_id"`
	Amount               uint64   `json:"amount"`
	ForwardingAddress    string   `json:"forwarding_address"`
	RecipientAddressHook string   `json:"recipient_address_hook"`
	RisksIdentified      []string `json:"risks_identified"`
}

// Validate validates and normalizes the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SubmitEvidenceRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.TxID = strings.TrimSpace(r.TxID)
	if r.TxID == "" {
		return dErrors.New(dErrors.CodeValidation, "tx_id is required")
	}
	if len(r.TxID) > 128 {
		return dErrors.New(dErrors.CodeValidation, "tx_id must be at most 128 characters")
	}
	if r.Amount == 0 {
		return dErrors.New(dErrors.CodeValidation, "amount must be positive")
	}

	r.ForwardingAddress = strings.TrimSpace(r.ForwardingAddress)
	if r.ForwardingAddress == "" {
		return dErrors.New(dErrors.CodeValidation, "forwarding_address is required")
	}

	r.RecipientAddressHook = strings.TrimSpace(r.RecipientAddressHook)
	if r.RecipientAddressHook == "" {
		return dErrors.New(dErrors.CodeValidation, "recipient_address_hook is required")
	}

	for _, risk := range r.RisksIdentified {
		if strings.TrimSpace(risk) == "" {
			return dErrors.New(dErrors.CodeValidation, "risks_identified entries must be non-empty")
		}
	}

	return nil
}

// Evidence converts the request to its domain form.
func (r *SubmitEvidenceRequest) Evidence() models.Evidence {
	return models.Evidence{
		TxID: models.TxID(r.TxID),
		SourceTransfer: models.SourceTransfer{
			Amount:            r.Amount,
			ForwardingAddress: r.ForwardingAddress,
		},
		Aux: models.Auxiliary{
			RecipientAddressHook: r.RecipientAddressHook,
		},
	}
}

// Risk converts the accompanying risk assessment to its domain form.
func (r *SubmitEvidenceRequest) Risk() models.RiskAssessment {
	return models.RiskAssessment{RisksIdentified: r.RisksIdentified}
}
