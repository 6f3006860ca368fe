package status_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"fastlp/internal/advancer/models"
	"fastlp/internal/status"
	"fastlp/internal/status/store"
	dErrors "fastlp/pkg/domain-errors"
)

type StatusServiceSuite struct {
	suite.Suite
	service *status.Service
}

func TestStatusServiceSuite(t *testing.T) {
	suite.Run(t, new(StatusServiceSuite))
}

func (s *StatusServiceSuite) SetupTest() {
	var err error
	s.service, err = status.New(store.NewMemory())
	s.Require().NoError(err)
}

func (s *StatusServiceSuite) TestNew() {
	_, err := status.New(nil)
	s.Error(err)
}

func (s *StatusServiceSuite) TestRecordObserved() {
	ctx := context.Background()
	tx := models.TxID("0xobs")

	s.Run("first observation succeeds", func() {
		s.NoError(s.service.RecordObserved(ctx, tx, models.Evidence{TxID: tx}))
	})

	s.Run("second observation conflicts", func() {
		err := s.service.RecordObserved(ctx, tx, models.Evidence{TxID: tx})
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})
}

func (s *StatusServiceSuite) TestRecordAdvancing() {
	ctx := context.Background()

	s.Run("requires prior observation", func() {
		err := s.service.RecordAdvancing(ctx, models.TxID("0xnever"))
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("succeeds after observation", func() {
		tx := models.TxID("0xadv")
		s.Require().NoError(s.service.RecordObserved(ctx, tx, models.Evidence{TxID: tx}))
		s.NoError(s.service.RecordAdvancing(ctx, tx))
	})

	s.Run("duplicate advancing is rejected", func() {
		tx := models.TxID("0xadv2")
		s.Require().NoError(s.service.RecordObserved(ctx, tx, models.Evidence{TxID: tx}))
		s.Require().NoError(s.service.RecordAdvancing(ctx, tx))

		err := s.service.RecordAdvancing(ctx, tx)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *StatusServiceSuite) TestRecordAdvanceSkipped() {
	ctx := context.Background()
	tx := models.TxID("0xskip")
	s.Require().NoError(s.service.RecordObserved(ctx, tx, models.Evidence{TxID: tx}))

	s.NoError(s.service.RecordAdvanceSkipped(ctx, tx, []string{"SANCTIONED"}))

	history, err := s.service.History(ctx, tx)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(status.StatusObserved, history[0].Status)
	s.Equal(status.StatusAdvanceSkipped, history[1].Status)
	s.Equal([]string{"SANCTIONED"}, history[1].Risks)
}

func (s *StatusServiceSuite) TestHistory() {
	ctx := context.Background()

	s.Run("unknown transaction is not found", func() {
		_, err := s.service.History(ctx, models.TxID("0xmissing"))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("history preserves append order", func() {
		tx := models.TxID("0xfull")
		s.Require().NoError(s.service.RecordObserved(ctx, tx, models.Evidence{TxID: tx}))
		s.Require().NoError(s.service.RecordAdvancing(ctx, tx))
		s.Require().NoError(s.service.RecordSettled(ctx, tx))

		history, err := s.service.History(ctx, tx)
		s.Require().NoError(err)
		s.Require().Len(history, 3)
		s.Equal(status.StatusObserved, history[0].Status)
		s.Equal(status.StatusAdvancing, history[1].Status)
		s.Equal(status.StatusSettled, history[2].Status)
	})
}
