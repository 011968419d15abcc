package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/port"
	"github.com/kassa-app/kassa/internal/domain/service"
)

// CloseDepositEarlyUseCase terminates a deposit. Before maturity the payout
// covers the full accrual periods already elapsed and interest for the period
// in progress is forfeited; at or past the maturity date the deposit matures
// instead, with every period paid out in full.
type CloseDepositEarlyUseCase struct {
	depositRepo port.DepositRepository
}

// NewCloseDepositEarlyUseCase wires dependencies.
func NewCloseDepositEarlyUseCase(depositRepo port.DepositRepository) *CloseDepositEarlyUseCase {
	return &CloseDepositEarlyUseCase{depositRepo: depositRepo}
}

// Execute truncates the accrual records to the elapsed periods and moves the
// deposit to its terminal state.
func (uc *CloseDepositEarlyUseCase) Execute(ctx context.Context, req dto.CloseDepositEarlyRequest) (dto.CloseDepositResponse, error) {
	closedAt := req.ClosedAt
	if closedAt.IsZero() {
		closedAt = time.Now().UTC()
	}

	id, err := parseID(req.DepositID, "deposit ID")
	if err != nil {
		return dto.CloseDepositResponse{}, err
	}

	deposit, err := uc.depositRepo.FindByID(ctx, id)
	if err != nil {
		return dto.CloseDepositResponse{}, fmt.Errorf("find deposit: %w", err)
	}

	records, payout, err := service.ProjectAsOf(deposit, closedAt)
	if err != nil {
		return dto.CloseDepositResponse{}, fmt.Errorf("project accruals: %w", err)
	}

	if closedAt.Before(deposit.MaturityDate()) {
		deposit, err = deposit.CloseEarly(payout, closedAt)
	} else {
		deposit, err = deposit.Mature(closedAt)
	}
	if err != nil {
		return dto.CloseDepositResponse{}, fmt.Errorf("close deposit: %w", err)
	}

	if err := uc.depositRepo.Save(ctx, deposit, records); err != nil {
		return dto.CloseDepositResponse{}, fmt.Errorf("save deposit: %w", err)
	}

	return dto.CloseDepositResponse{
		Deposit:        toDepositResponse(deposit, records),
		Payout:         payout.Amount(),
		AccruedPeriods: len(records),
	}, nil
}
