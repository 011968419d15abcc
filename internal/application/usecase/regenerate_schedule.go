package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/port"
	"github.com/kassa-app/kassa/internal/domain/service"
)

// RegenerateScheduleUseCase rebuilds a credit's schedule from its parameters
// and the complete early-payment history. Running it against unchanged inputs
// reproduces the stored schedule row for row.
type RegenerateScheduleUseCase struct {
	creditRepo port.CreditRepository
}

// NewRegenerateScheduleUseCase wires dependencies.
func NewRegenerateScheduleUseCase(creditRepo port.CreditRepository) *RegenerateScheduleUseCase {
	return &RegenerateScheduleUseCase{creditRepo: creditRepo}
}

// Execute recalculates the schedule, carries paid flags over by payment
// number, and replaces the stored rows wholesale.
func (uc *RegenerateScheduleUseCase) Execute(ctx context.Context, req dto.RegenerateScheduleRequest) (dto.CreditResponse, error) {
	now := time.Now().UTC()

	id, err := parseID(req.CreditID, "credit ID")
	if err != nil {
		return dto.CreditResponse{}, err
	}

	credit, err := uc.creditRepo.FindByID(ctx, id)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("find credit: %w", err)
	}
	current, err := uc.creditRepo.Schedule(ctx, id)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("load schedule: %w", err)
	}
	eps, err := uc.creditRepo.EarlyPayments(ctx, id)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("load early payments: %w", err)
	}

	items, err := service.Recalculate(scheduleSpecFor(credit), eps)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("recalculate schedule: %w", err)
	}
	items = service.CarryPaidFlags(current, items)

	credit = credit.MarkRegenerated(len(items), now)

	if err := uc.creditRepo.Save(ctx, credit, items, eps); err != nil {
		return dto.CreditResponse{}, fmt.Errorf("save credit: %w", err)
	}

	return toCreditResponse(credit, items, eps), nil
}
