package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
)

// MarkSchedulePaymentUseCase flips the paid flag of one schedule row. Marking
// the last unpaid row completes the credit.
type MarkSchedulePaymentUseCase struct {
	creditRepo port.CreditRepository
}

// NewMarkSchedulePaymentUseCase wires dependencies.
func NewMarkSchedulePaymentUseCase(creditRepo port.CreditRepository) *MarkSchedulePaymentUseCase {
	return &MarkSchedulePaymentUseCase{creditRepo: creditRepo}
}

// Execute marks the row and persists the updated schedule.
func (uc *MarkSchedulePaymentUseCase) Execute(ctx context.Context, req dto.MarkSchedulePaymentRequest) (dto.CreditResponse, error) {
	now := time.Now().UTC()

	id, err := parseID(req.CreditID, "credit ID")
	if err != nil {
		return dto.CreditResponse{}, err
	}

	credit, err := uc.creditRepo.FindByID(ctx, id)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("find credit: %w", err)
	}
	items, err := uc.creditRepo.Schedule(ctx, id)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("load schedule: %w", err)
	}
	eps, err := uc.creditRepo.EarlyPayments(ctx, id)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("load early payments: %w", err)
	}

	marked := false
	allPaid := true
	for i := range items {
		if items[i].Number == req.Number {
			items[i].Paid = req.Paid
			marked = true
		}
		if !items[i].Paid {
			allPaid = false
		}
	}
	if !marked {
		return dto.CreditResponse{}, fmt.Errorf("%w: payment %d of credit %s", model.ErrNotFound, req.Number, id)
	}

	if allPaid && credit.Status() == model.CreditStatusActive {
		if credit, err = credit.Complete(now); err != nil {
			return dto.CreditResponse{}, fmt.Errorf("complete credit: %w", err)
		}
	}

	if err := uc.creditRepo.Save(ctx, credit, items, eps); err != nil {
		return dto.CreditResponse{}, fmt.Errorf("save credit: %w", err)
	}

	return toCreditResponse(credit, items, eps), nil
}
