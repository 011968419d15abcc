package usecase

import (
	"context"
	"fmt"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/port"
)

// GetDepositUseCase retrieves a deposit with its accrual records.
type GetDepositUseCase struct {
	depositRepo port.DepositRepository
}

// NewGetDepositUseCase wires dependencies.
func NewGetDepositUseCase(depositRepo port.DepositRepository) *GetDepositUseCase {
	return &GetDepositUseCase{depositRepo: depositRepo}
}

// Execute loads the deposit and its stored accrual records.
func (uc *GetDepositUseCase) Execute(ctx context.Context, req dto.GetDepositRequest) (dto.DepositResponse, error) {
	id, err := parseID(req.DepositID, "deposit ID")
	if err != nil {
		return dto.DepositResponse{}, err
	}

	deposit, err := uc.depositRepo.FindByID(ctx, id)
	if err != nil {
		return dto.DepositResponse{}, fmt.Errorf("find deposit: %w", err)
	}
	records, err := uc.depositRepo.AccrualRecords(ctx, id)
	if err != nil {
		return dto.DepositResponse{}, fmt.Errorf("load accrual records: %w", err)
	}

	return toDepositResponse(deposit, records), nil
}
