// Package httptransport exposes the advance saga over HTTP: evidence ingest
// for observers and status history for operators.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"fastlp/internal/advancer/models"
	"fastlp/internal/platform/middleware"
	"fastlp/internal/status"
	dErrors "fastlp/pkg/domain-errors"
	"fastlp/pkg/platform/httputil"
)

// Saga accepts attested evidence for asynchronous processing. The returned
// channel closes when the run reaches a terminal phase; the transport layer
// never waits on it.
type Saga interface {
	SubmitEvidence(ctx context.Context, evidence models.Evidence, risk models.RiskAssessment) <-chan struct{}
}

// StatusService is the slice of the status manager the transport needs.
type StatusService interface {
	RecordObserved(ctx context.Context, tx models.TxID, evidence models.Evidence) error
	History(ctx context.Context, tx models.TxID) ([]status.Record, error)
}

// Handler wires advance endpoints to the saga engine and status manager.
type Handler struct {
	saga     Saga
	statuses StatusService
	logger   *slog.Logger
}

// New constructs the transport handler with its dependencies.
func New(saga Saga, statuses StatusService, logger *slog.Logger) *Handler {
	return &Handler{
		saga:     saga,
		statuses: statuses,
		logger:   logger,
	}
}

// Register mounts advance endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/evidence", h.HandleSubmitEvidence)
	r.Get("/v1/transactions/{txID}/status", h.HandleStatusHistory)
}

// HandleSubmitEvidence handles POST /v1/evidence requests. The advance runs
// asynchronously; a 202 only acknowledges admission.
func (h *Handler) HandleSubmitEvidence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SubmitEvidenceRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	evidence := req.Evidence()
	if err := h.statuses.RecordObserved(ctx, evidence.TxID, evidence); err != nil {
		if dErrors.HasCode(err, dErrors.CodeConflict) {
			h.logger.InfoContext(ctx, "duplicate evidence ignored",
				"request_id", requestID,
				"tx_id", evidence.TxID,
			)
			httputil.WriteJSON(w, http.StatusAccepted, &SubmitEvidenceResponse{
				TxID:     req.TxID,
				Accepted: false,
			})
			return
		}
		h.logger.ErrorContext(ctx, "recording observed evidence failed",
			"request_id", requestID,
			"tx_id", evidence.TxID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.saga.SubmitEvidence(ctx, evidence, req.Risk())

	h.logger.InfoContext(ctx, "evidence accepted",
		"request_id", requestID,
		"tx_id", evidence.TxID,
		"amount", evidence.SourceTransfer.Amount,
		"client_id", middleware.GetClientID(ctx),
	)
	httputil.WriteJSON(w, http.StatusAccepted, &SubmitEvidenceResponse{
		TxID:     req.TxID,
		Accepted: true,
	})
}

// HandleStatusHistory handles GET /v1/transactions/{txID}/status requests.
func (h *Handler) HandleStatusHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	txID := strings.TrimSpace(chi.URLParam(r, "txID"))
	if txID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "transaction id is required"))
		return
	}

	records, err := h.statuses.History(ctx, models.TxID(txID))
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "loading status history failed",
				"request_id", requestID,
				"tx_id", txID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	h.logger.DebugContext(ctx, "status history served",
		"request_id", requestID,
		"tx_id", txID,
		"user_id", middleware.GetUserID(ctx),
		"records", len(records),
	)
	httputil.WriteJSON(w, http.StatusOK, FromHistory(txID, records))
}
