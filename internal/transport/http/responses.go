package httptransport

import (
	"time"

	"fastlp/internal/status"
)

// SubmitEvidenceResponse is the HTTP response for POST /v1/evidence.
type SubmitEvidenceResponse struct {
	TxID     string `json:"tx_id"`
	Accepted bool   `json:"accepted"`
}

// StatusEntry is one row of a transaction's status history.
type StatusEntry struct {
	Status     string    `json:"status"`
	Risks      []string  `json:"risks,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// StatusHistoryResponse is the HTTP response for GET /v1/transactions/{txID}/status.
type StatusHistoryResponse struct {
	TxID    string        `json:"tx_id"`
	Current string        `json:"current"`
	History []StatusEntry `json:"history"`
}

// FromHistory converts a transaction's status records to an HTTP response.
// Records are ordered oldest first; the last one is the current status.
func FromHistory(txID string, records []status.Record) *StatusHistoryResponse {
	resp := &StatusHistoryResponse{
		TxID:    txID,
		History: make([]StatusEntry, 0, len(records)),
	}
	for _, rec := range records {
		resp.History = append(resp.History, StatusEntry{
			Status:     string(rec.Status),
			Risks:      rec.Risks,
			RecordedAt: rec.CreatedAt,
		})
	}
	if len(records) > 0 {
		resp.Current = string(records[len(records)-1].Status)
	}
	return resp
}
