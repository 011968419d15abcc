package usecase

import (
	"context"
	"fmt"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
)

// GetCreditUseCase retrieves a credit, optionally with its schedule.
type GetCreditUseCase struct {
	creditRepo port.CreditRepository
}

// NewGetCreditUseCase wires dependencies.
func NewGetCreditUseCase(creditRepo port.CreditRepository) *GetCreditUseCase {
	return &GetCreditUseCase{creditRepo: creditRepo}
}

// Execute loads the credit and, when requested, its schedule rows and
// recorded early payments.
func (uc *GetCreditUseCase) Execute(ctx context.Context, req dto.GetCreditRequest) (dto.CreditResponse, error) {
	id, err := parseID(req.CreditID, "credit ID")
	if err != nil {
		return dto.CreditResponse{}, err
	}

	credit, err := uc.creditRepo.FindByID(ctx, id)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("find credit: %w", err)
	}

	var (
		items []model.ScheduleItem
		eps   []model.EarlyPayment
	)
	if req.IncludeSchedule {
		if items, err = uc.creditRepo.Schedule(ctx, id); err != nil {
			return dto.CreditResponse{}, fmt.Errorf("load schedule: %w", err)
		}
		if eps, err = uc.creditRepo.EarlyPayments(ctx, id); err != nil {
			return dto.CreditResponse{}, fmt.Errorf("load early payments: %w", err)
		}
	}

	return toCreditResponse(credit, items, eps), nil
}
