package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
	"github.com/kassa-app/kassa/pkg/money"
)

// ConfirmDistributionUseCase completes a planned distribution: the actual
// amount moves into the fund as the given allocations and is drawn down from
// the income's budget remainder. All three aggregates commit in one
// transaction through the unit of work.
type ConfirmDistributionUseCase struct {
	distRepo   port.DistributionRepository
	fundRepo   port.FundRepository
	incomeRepo port.IncomeRepository
	uow        port.AllocationUnitOfWork
}

// NewConfirmDistributionUseCase wires dependencies.
func NewConfirmDistributionUseCase(
	distRepo port.DistributionRepository,
	fundRepo port.FundRepository,
	incomeRepo port.IncomeRepository,
	uow port.AllocationUnitOfWork,
) *ConfirmDistributionUseCase {
	return &ConfirmDistributionUseCase{
		distRepo: distRepo, fundRepo: fundRepo, incomeRepo: incomeRepo, uow: uow,
	}
}

// Execute confirms the distribution. The allocations must sum exactly to the
// actual amount; the actual amount may differ from the planned one.
func (uc *ConfirmDistributionUseCase) Execute(ctx context.Context, req dto.ConfirmDistributionRequest) (dto.DistributionResponse, error) {
	now := time.Now().UTC()

	id, err := parseID(req.DistributionID, "distribution ID")
	if err != nil {
		return dto.DistributionResponse{}, err
	}

	dist, err := uc.distRepo.FindByID(ctx, id)
	if err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("find distribution: %w", err)
	}
	fund, err := uc.fundRepo.FindByID(ctx, dist.FundID())
	if err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("find fund: %w", err)
	}
	income, err := uc.incomeRepo.FindByID(ctx, dist.IncomeID())
	if err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("find income: %w", err)
	}

	currency := fund.Currency()
	actual := money.New(req.ActualAmount, currency)
	allocations := make([]model.Allocation, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		allocations = append(allocations, model.Allocation{
			Asset:  a.Asset,
			Amount: money.New(a.Amount, currency),
		})
	}

	dist, err = dist.Confirm(actual, allocations, now)
	if err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("confirm distribution: %w", err)
	}
	fund, err = fund.ApplyAllocations(allocations, now)
	if err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("apply allocations: %w", err)
	}
	income, err = income.DrawDown(actual, now)
	if err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("draw down income: %w", err)
	}

	if err := uc.uow.SaveConfirmation(ctx, dist, fund, income); err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("save confirmation: %w", err)
	}

	return toDistributionResponse(dist), nil
}
