package httptransport

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"fastlp/internal/advancer/models"
	jwttoken "fastlp/internal/jwt_token"
	"fastlp/internal/status"
	"fastlp/internal/status/store"
	"fastlp/pkg/testutil"
)

// fakeSaga records submissions and completes immediately.
type fakeSaga struct {
	mu          sync.Mutex
	submissions []models.Evidence
	risks       []models.RiskAssessment
}

func (f *fakeSaga) SubmitEvidence(_ context.Context, evidence models.Evidence, risk models.RiskAssessment) <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submissions = append(f.submissions, evidence)
	f.risks = append(f.risks, risk)
	done := make(chan struct{})
	close(done)
	return done
}

func (f *fakeSaga) submitted() []models.Evidence {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Evidence(nil), f.submissions...)
}

type HandlerSuite struct {
	suite.Suite

	saga     *fakeSaga
	statuses *status.Service
	router   chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	statuses, err := status.New(store.NewMemory())
	s.Require().NoError(err)

	s.saga = &fakeSaga{}
	s.statuses = statuses
	s.router = chi.NewRouter()
	New(s.saga, statuses, logger).Register(s.router)
}

func validBody() map[string]any {
	return map[string]any{
		"tx_id":                  "0xdeadbeef",
		"amount":                 uint64(150_000_000),
		"forwarding_address":     "noble1forwarding",
		"recipient_address_hook": "agoric1hookvalue",
	}
}

func (s *HandlerSuite) TestSubmitEvidenceAccepted() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/evidence", validBody())
	rr := testutil.DoRequest(s.router, req)

	s.Equal(http.StatusAccepted, rr.Code)

	resp := testutil.UnmarshalResponse[SubmitEvidenceResponse](s.T(), rr)
	s.Equal("0xdeadbeef", resp.TxID)
	s.True(resp.Accepted)

	submitted := s.saga.submitted()
	s.Require().Len(submitted, 1)
	s.Equal(models.TxID("0xdeadbeef"), submitted[0].TxID)
	s.Equal(uint64(150_000_000), submitted[0].SourceTransfer.Amount)
	s.Equal("noble1forwarding", submitted[0].SourceTransfer.ForwardingAddress)
	s.Equal("agoric1hookvalue", submitted[0].Aux.RecipientAddressHook)

	history, err := s.statuses.History(context.Background(), "0xdeadbeef")
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(status.StatusObserved, history[0].Status)
}

func (s *HandlerSuite) TestSubmitEvidenceCarriesRisks() {
	body := validBody()
	body["risks_identified"] = []string{"SANCTIONED_ADDRESS"}

	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/evidence", body))

	s.Equal(http.StatusAccepted, rr.Code)
	s.Require().Len(s.saga.risks, 1)
	s.Equal([]string{"SANCTIONED_ADDRESS"}, s.saga.risks[0].RisksIdentified)
}

func (s *HandlerSuite) TestDuplicateSubmissionNotResubmitted() {
	first := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/evidence", validBody()))
	s.Equal(http.StatusAccepted, first.Code)

	second := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/evidence", validBody()))
	s.Equal(http.StatusAccepted, second.Code)

	resp := testutil.UnmarshalResponse[SubmitEvidenceResponse](s.T(), second)
	s.False(resp.Accepted)

	s.Len(s.saga.submitted(), 1)
}

func (s *HandlerSuite) TestSubmitEvidenceValidation() {
	cases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing tx_id", func(b map[string]any) { delete(b, "tx_id") }},
		{"zero amount", func(b map[string]any) { b["amount"] = 0 }},
		{"missing forwarding address", func(b map[string]any) { b["forwarding_address"] = " " }},
		{"missing recipient hook", func(b map[string]any) { delete(b, "recipient_address_hook") }},
		{"blank risk entry", func(b map[string]any) { b["risks_identified"] = []string{""} }},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			body := validBody()
			tc.mutate(body)

			rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/evidence", body))

			s.Equal(http.StatusBadRequest, rr.Code)
			s.Empty(s.saga.submitted())
		})
	}
}

func (s *HandlerSuite) TestSubmitEvidenceMalformedBody() {
	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/v1/evidence", "{not json")
	rr := testutil.DoRequest(s.router, req)

	s.Equal(http.StatusBadRequest, rr.Code)
	assert.Contains(s.T(), rr.Body.String(), "invalid request body")
}

func (s *HandlerSuite) TestStatusHistory() {
	ctx := context.Background()
	tx := models.TxID("0xabc")
	s.Require().NoError(s.statuses.RecordObserved(ctx, tx, models.Evidence{TxID: tx}))
	s.Require().NoError(s.statuses.RecordAdvanceSkipped(ctx, tx, []string{"RISK_FLAG"}))

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/v1/transactions/0xabc/status"))

	s.Equal(http.StatusOK, rr.Code)

	resp := testutil.UnmarshalResponse[StatusHistoryResponse](s.T(), rr)
	s.Equal("0xabc", resp.TxID)
	s.Equal(string(status.StatusAdvanceSkipped), resp.Current)
	s.Require().Len(resp.History, 2)
	s.Equal(string(status.StatusObserved), resp.History[0].Status)
	s.Equal([]string{"RISK_FLAG"}, resp.History[1].Risks)
}

func (s *HandlerSuite) TestStatusHistoryUnknownTransaction() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/v1/transactions/0xmissing/status"))

	s.Equal(http.StatusNotFound, rr.Code)
	testutil.AssertErrorCode(s.T(), rr, "not_found")
}

func TestRouterAuth(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	statuses, err := status.New(store.NewMemory())
	require.NoError(t, err)

	jwtService := jwttoken.NewJWTService("router-test-key", "fastlp", "fastlp-api")
	handler := New(&fakeSaga{}, statuses, logger)
	router := NewRouter(handler, jwttoken.NewJWTServiceAdapter(jwtService), logger)

	t.Run("rejects missing token", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/evidence", validBody()))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/evidence", validBody())
		req.Header.Set("Authorization", "Bearer not-a-token")
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("accepts valid token", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(uuid.New(), uuid.New(), "observer", time.Hour)
		require.NoError(t, err)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/evidence", validBody())
		req.Header.Set("Authorization", "Bearer "+token)
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusAccepted, rr.Code)

		// The accept log carries the authenticated client for auditing.
		assert.Contains(t, logBuf.String(), "client_id=observer")
	})

	t.Run("status reads log the caller", func(t *testing.T) {
		tx := models.TxID("0xaudit")
		require.NoError(t, statuses.RecordObserved(context.Background(), tx, models.Evidence{TxID: tx}))

		userID := uuid.New()
		token, err := jwtService.GenerateAccessToken(userID, uuid.New(), "operator", time.Hour)
		require.NoError(t, err)

		req := testutil.NewRequest(t, http.MethodGet, "/v1/transactions/0xaudit/status")
		req.Header.Set("Authorization", "Bearer "+token)
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, logBuf.String(), "user_id="+userID.String())
	})

	t.Run("healthz stays open", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("metrics stays open", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
