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
	"github.com/kassa-app/kassa/pkg/money"
)

func plannedDistributionFixture(t *testing.T) (model.IncomeDistribution, model.Fund, model.Income) {
	t.Helper()

	fund, err := model.NewFund("investments", money.RUB)
	require.NoError(t, err)

	amount, err := money.NewFromString("10000", "RUB")
	require.NoError(t, err)
	income, err := model.NewIncome(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), amount)
	require.NoError(t, err)

	planned, err := money.NewFromString("6000", "RUB")
	require.NoError(t, err)
	dist, err := model.NewIncomeDistribution(income.ID(), fund.ID(), planned)
	require.NoError(t, err)

	return dist, fund, income
}

func TestConfirmThenCancelRoundTrip(t *testing.T) {
	dist, fund, income := plannedDistributionFixture(t)

	distRepo := &mockDistributionRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.IncomeDistribution, error) {
			return dist, nil
		},
	}
	fundRepo := &mockFundRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Fund, error) {
			return fund, nil
		},
	}
	incomeRepo := &mockIncomeRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Income, error) {
			return income, nil
		},
	}
	uow := &mockUnitOfWork{}

	confirm := usecase.NewConfirmDistributionUseCase(distRepo, fundRepo, incomeRepo, uow)

	resp, err := confirm.Execute(context.Background(), dto.ConfirmDistributionRequest{
		DistributionID: dist.ID().String(),
		ActualAmount:   decimal.NewFromInt(5800),
		Allocations: []dto.AllocationRequest{
			{Asset: "SBER", Amount: decimal.NewFromInt(3000)},
			{Asset: "GOLD", Amount: decimal.NewFromInt(2800)},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, string(model.DistributionConfirmed), resp.Status)
	require.NotNil(t, resp.ActualAmount)
	assert.True(t, decimal.NewFromInt(5800).Equal(*resp.ActualAmount))

	require.Len(t, uow.confirmations, 1)
	confirmed := uow.confirmations[0]

	assert.Equal(t, "3000.00 RUB", confirmed.fund.Balance("SBER").String())
	assert.Equal(t, "2800.00 RUB", confirmed.fund.Balance("GOLD").String())
	assert.Equal(t, "4200.00 RUB", confirmed.income.RemainingForBudget().String())

	// Cancel is the exact compensating transaction: rerun against the state
	// the confirm committed.
	distRepo.findByIDFunc = func(ctx context.Context, id uuid.UUID) (model.IncomeDistribution, error) {
		return confirmed.dist, nil
	}
	fundRepo.findByIDFunc = func(ctx context.Context, id uuid.UUID) (model.Fund, error) {
		return confirmed.fund, nil
	}
	incomeRepo.findByIDFunc = func(ctx context.Context, id uuid.UUID) (model.Income, error) {
		return confirmed.income, nil
	}

	cancel := usecase.NewCancelDistributionUseCase(distRepo, fundRepo, incomeRepo, uow)

	cancelResp, err := cancel.Execute(context.Background(), dto.CancelDistributionRequest{
		DistributionID: dist.ID().String(),
	})

	require.NoError(t, err)
	assert.Equal(t, string(model.DistributionPlanned), cancelResp.Status)
	assert.Nil(t, cancelResp.ActualAmount)

	require.Len(t, uow.cancellations, 1)
	reverted := uow.cancellations[0]

	assert.True(t, reverted.fund.Balance("SBER").IsZero())
	assert.True(t, reverted.fund.Balance("GOLD").IsZero())
	assert.Equal(t, "10000.00 RUB", reverted.income.RemainingForBudget().String())
}

func TestCancelRequiresConfirmedDistribution(t *testing.T) {
	dist, fund, income := plannedDistributionFixture(t)

	distRepo := &mockDistributionRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.IncomeDistribution, error) {
			return dist, nil
		},
	}
	fundRepo := &mockFundRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Fund, error) {
			return fund, nil
		},
	}
	incomeRepo := &mockIncomeRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Income, error) {
			return income, nil
		},
	}

	cancel := usecase.NewCancelDistributionUseCase(distRepo, fundRepo, incomeRepo, &mockUnitOfWork{})

	_, err := cancel.Execute(context.Background(), dto.CancelDistributionRequest{
		DistributionID: dist.ID().String(),
	})

	assert.ErrorIs(t, err, model.ErrIllegalStateTransition)
}

func TestConfirmRejectsMismatchedAllocations(t *testing.T) {
	dist, fund, income := plannedDistributionFixture(t)

	distRepo := &mockDistributionRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.IncomeDistribution, error) {
			return dist, nil
		},
	}
	fundRepo := &mockFundRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Fund, error) {
			return fund, nil
		},
	}
	incomeRepo := &mockIncomeRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Income, error) {
			return income, nil
		},
	}
	uow := &mockUnitOfWork{}

	confirm := usecase.NewConfirmDistributionUseCase(distRepo, fundRepo, incomeRepo, uow)

	_, err := confirm.Execute(context.Background(), dto.ConfirmDistributionRequest{
		DistributionID: dist.ID().String(),
		ActualAmount:   decimal.NewFromInt(5800),
		Allocations: []dto.AllocationRequest{
			{Asset: "SBER", Amount: decimal.NewFromInt(3000)},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Empty(t, uow.confirmations)
}
