package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
)

// CancelDistributionUseCase is the compensating transaction for a confirm:
// the stored allocations are reversed verbatim out of the fund and the actual
// amount is restored to the income's budget remainder.
type CancelDistributionUseCase struct {
	distRepo   port.DistributionRepository
	fundRepo   port.FundRepository
	incomeRepo port.IncomeRepository
	uow        port.AllocationUnitOfWork
}

// NewCancelDistributionUseCase wires dependencies.
func NewCancelDistributionUseCase(
	distRepo port.DistributionRepository,
	fundRepo port.FundRepository,
	incomeRepo port.IncomeRepository,
	uow port.AllocationUnitOfWork,
) *CancelDistributionUseCase {
	return &CancelDistributionUseCase{
		distRepo: distRepo, fundRepo: fundRepo, incomeRepo: incomeRepo, uow: uow,
	}
}

// Execute cancels a confirmed distribution. A confirm followed by a cancel
// leaves fund balances and the income remainder exactly where they started.
func (uc *CancelDistributionUseCase) Execute(ctx context.Context, req dto.CancelDistributionRequest) (dto.DistributionResponse, error) {
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

	dist, reversal, err := dist.Cancel(now)
	if err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("cancel distribution: %w", err)
	}
	actual, err := model.SumAllocations(reversal)
	if err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("sum reversal: %w", err)
	}

	fund, err = fund.ReverseAllocations(reversal, now)
	if err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("reverse allocations: %w", err)
	}
	income, err = income.Restore(actual, now)
	if err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("restore income: %w", err)
	}

	if err := uc.uow.SaveCancellation(ctx, dist, fund, income); err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("save cancellation: %w", err)
	}

	return toDistributionResponse(dist), nil
}
