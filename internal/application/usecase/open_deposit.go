package usecase

import (
	"context"
	"fmt"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
	"github.com/kassa-app/kassa/internal/domain/service"
	"github.com/kassa-app/kassa/pkg/money"
)

// OpenDepositUseCase registers a deposit and precomputes its accrual records.
type OpenDepositUseCase struct {
	depositRepo port.DepositRepository
	fundRepo    port.FundRepository
}

// NewOpenDepositUseCase wires dependencies.
func NewOpenDepositUseCase(depositRepo port.DepositRepository, fundRepo port.FundRepository) *OpenDepositUseCase {
	return &OpenDepositUseCase{depositRepo: depositRepo, fundRepo: fundRepo}
}

// Execute validates the deposit against its fund, derives every accrual
// record up front and persists the lot. Terms that do not divide into whole
// accrual periods are rejected by the aggregate.
func (uc *OpenDepositUseCase) Execute(ctx context.Context, req dto.OpenDepositRequest) (dto.DepositResponse, error) {
	fundID, err := parseID(req.FundID, "fund ID")
	if err != nil {
		return dto.DepositResponse{}, err
	}
	currency, err := money.NewCurrency(req.Currency)
	if err != nil {
		return dto.DepositResponse{}, fmt.Errorf("parse currency: %w", err)
	}
	rate, err := money.NewRate(req.RatePercent)
	if err != nil {
		return dto.DepositResponse{}, fmt.Errorf("parse rate: %w", err)
	}

	if _, err := uc.fundRepo.FindByID(ctx, fundID); err != nil {
		return dto.DepositResponse{}, fmt.Errorf("find fund: %w", err)
	}

	deposit, err := model.NewDeposit(fundID, money.New(req.Principal, currency), rate,
		req.TermMonths, model.AccrualPeriod(req.AccrualPeriod), req.Capitalizing, req.StartDate)
	if err != nil {
		return dto.DepositResponse{}, fmt.Errorf("open deposit: %w", err)
	}

	proj, err := service.ProjectMaturity(deposit)
	if err != nil {
		return dto.DepositResponse{}, fmt.Errorf("project accruals: %w", err)
	}

	if err := uc.depositRepo.Save(ctx, deposit, proj.Records); err != nil {
		return dto.DepositResponse{}, fmt.Errorf("save deposit: %w", err)
	}

	return toDepositResponse(deposit, proj.Records), nil
}
