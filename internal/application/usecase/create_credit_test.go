package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/application/usecase"
	"github.com/kassa-app/kassa/internal/domain/model"
)

func createCreditRequest() dto.CreateCreditRequest {
	return dto.CreateCreditRequest{
		Name:        "mortgage",
		Principal:   decimal.NewFromInt(1200000),
		Currency:    "RUB",
		RatePercent: decimal.NewFromInt(12),
		TermMonths:  12,
		StartDate:   time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
		PaymentDay:  10,
		AccountID:   uuid.New().String(),
		CategoryID:  uuid.New().String(),
	}
}

func TestCreateCredit_Execute(t *testing.T) {
	t.Run("derives the schedule from an explicit term", func(t *testing.T) {
		repo := &mockCreditRepository{}
		uc := usecase.NewCreateCreditUseCase(repo)

		resp, err := uc.Execute(context.Background(), createCreditRequest())

		require.NoError(t, err)
		require.Len(t, resp.Schedule, 12)
		assert.Equal(t, "106618.55", resp.Schedule[0].Total.String())
		assert.Equal(t, string(model.CreditStatusActive), resp.Status)
		require.Len(t, repo.savedCredits, 1)
		assert.NotEmpty(t, repo.savedCredits[0].DomainEvents())
	})

	t.Run("derives the term from an end date", func(t *testing.T) {
		repo := &mockCreditRepository{}
		uc := usecase.NewCreateCreditUseCase(repo)

		req := createCreditRequest()
		req.TermMonths = 0
		end := time.Date(2027, time.January, 10, 0, 0, 0, 0, time.UTC)
		req.EndDate = &end

		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 12, resp.TermMonths)
		assert.Len(t, resp.Schedule, 12)
	})

	t.Run("rounds a partial final month down to whole months", func(t *testing.T) {
		repo := &mockCreditRepository{}
		uc := usecase.NewCreateCreditUseCase(repo)

		req := createCreditRequest()
		req.TermMonths = 0
		end := time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC)
		req.EndDate = &end

		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 11, resp.TermMonths)
	})

	t.Run("requires a term or an end date", func(t *testing.T) {
		uc := usecase.NewCreateCreditUseCase(&mockCreditRepository{})

		req := createCreditRequest()
		req.TermMonths = 0

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("premarks payments already made on a migrated credit", func(t *testing.T) {
		repo := &mockCreditRepository{}
		uc := usecase.NewCreateCreditUseCase(repo)

		req := createCreditRequest()
		req.PaymentsMade = 3

		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, resp.Schedule[0].Paid)
		assert.True(t, resp.Schedule[2].Paid)
		assert.False(t, resp.Schedule[3].Paid)
		assert.Equal(t, string(model.CreditStatusActive), resp.Status)
	})

	t.Run("completes a credit arriving fully paid", func(t *testing.T) {
		repo := &mockCreditRepository{}
		uc := usecase.NewCreateCreditUseCase(repo)

		req := createCreditRequest()
		req.PaymentsMade = 12

		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, string(model.CreditStatusCompleted), resp.Status)
	})

	t.Run("rejects more payments made than schedule rows", func(t *testing.T) {
		repo := &mockCreditRepository{}
		uc := usecase.NewCreateCreditUseCase(repo)

		req := createCreditRequest()
		req.PaymentsMade = 13

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, model.ErrValidation)
		assert.Empty(t, repo.savedCredits)
	})
}
