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
	"github.com/kassa-app/kassa/internal/domain/service"
	"github.com/kassa-app/kassa/pkg/money"
)

func activeCredit(t *testing.T) (model.Credit, []model.ScheduleItem) {
	t.Helper()

	principal, err := money.NewFromString("1200000", "RUB")
	require.NoError(t, err)
	rate, err := money.NewRateFromString("12")
	require.NoError(t, err)

	credit, err := model.NewCredit("mortgage", principal, rate, 12,
		time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), 15,
		uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	items, err := service.GenerateSchedule(service.ScheduleSpec{
		CreditID:   credit.ID(),
		Principal:  credit.Principal(),
		AnnualRate: credit.Rate(),
		TermMonths: credit.TermMonths(),
		StartDate:  credit.StartDate(),
		PaymentDay: credit.PaymentDay(),
	})
	require.NoError(t, err)
	return credit, items
}

func creditRepoFor(credit model.Credit, items []model.ScheduleItem, eps []model.EarlyPayment) *mockCreditRepository {
	return &mockCreditRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Credit, error) {
			return credit, nil
		},
		scheduleFunc: func(ctx context.Context, creditID uuid.UUID) ([]model.ScheduleItem, error) {
			return items, nil
		},
		earlyPaymentsFunc: func(ctx context.Context, creditID uuid.UUID) ([]model.EarlyPayment, error) {
			return eps, nil
		},
	}
}

func TestRecordEarlyPayment_Execute(t *testing.T) {
	t.Run("folds the payment into the schedule", func(t *testing.T) {
		credit, items := activeCredit(t)
		repo := creditRepoFor(credit, items, nil)

		uc := usecase.NewRecordEarlyPaymentUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.RecordEarlyPaymentRequest{
			CreditID: credit.ID().String(),
			Date:     time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			Amount:   decimal.NewFromInt(200000),
			Kind:     string(model.EarlyPaymentReduceTerm),
		})

		require.NoError(t, err)
		assert.Less(t, len(resp.Schedule), 12)
		require.Len(t, resp.EarlyPayments, 1)

		require.Len(t, repo.savedSchedules, 1)
		require.Len(t, repo.savedEPs[0], 1)
		assert.NotEmpty(t, repo.savedCredits[0].DomainEvents())
	})

	t.Run("rejects an overpayment and saves nothing", func(t *testing.T) {
		credit, items := activeCredit(t)
		repo := creditRepoFor(credit, items, nil)

		uc := usecase.NewRecordEarlyPaymentUseCase(repo)

		_, err := uc.Execute(context.Background(), dto.RecordEarlyPaymentRequest{
			CreditID: credit.ID().String(),
			Date:     time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			Amount:   decimal.NewFromInt(2000000),
			Kind:     string(model.EarlyPaymentReducePayment),
		})

		assert.ErrorIs(t, err, model.ErrOverpaymentRejected)
		assert.Empty(t, repo.savedCredits)
	})

	t.Run("rejects a completed credit", func(t *testing.T) {
		credit, items := activeCredit(t)
		completed, err := credit.Complete(time.Now().UTC())
		require.NoError(t, err)

		repo := creditRepoFor(completed, items, nil)
		uc := usecase.NewRecordEarlyPaymentUseCase(repo)

		_, err = uc.Execute(context.Background(), dto.RecordEarlyPaymentRequest{
			CreditID: completed.ID().String(),
			Date:     time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			Amount:   decimal.NewFromInt(100000),
			Kind:     string(model.EarlyPaymentReduceTerm),
		})

		assert.ErrorIs(t, err, model.ErrIllegalStateTransition)
	})

	t.Run("keeps paid flags on the untouched head", func(t *testing.T) {
		credit, items := activeCredit(t)
		items[0].Paid = true

		repo := creditRepoFor(credit, items, nil)
		uc := usecase.NewRecordEarlyPaymentUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.RecordEarlyPaymentRequest{
			CreditID: credit.ID().String(),
			Date:     time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			Amount:   decimal.NewFromInt(200000),
			Kind:     string(model.EarlyPaymentReducePayment),
		})

		require.NoError(t, err)
		assert.True(t, resp.Schedule[0].Paid)
		assert.False(t, resp.Schedule[1].Paid)
	})
}
