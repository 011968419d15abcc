package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
	"github.com/kassa-app/kassa/internal/domain/service"
)

// DeleteEarlyPaymentUseCase removes a recorded early payment and rebuilds the
// schedule without it.
type DeleteEarlyPaymentUseCase struct {
	creditRepo port.CreditRepository
}

// NewDeleteEarlyPaymentUseCase wires dependencies.
func NewDeleteEarlyPaymentUseCase(creditRepo port.CreditRepository) *DeleteEarlyPaymentUseCase {
	return &DeleteEarlyPaymentUseCase{creditRepo: creditRepo}
}

// Execute drops the payment from the history and refolds the rest. Deleting
// the only early payment restores the original annuity schedule.
func (uc *DeleteEarlyPaymentUseCase) Execute(ctx context.Context, req dto.DeleteEarlyPaymentRequest) (dto.CreditResponse, error) {
	now := time.Now().UTC()

	creditID, err := parseID(req.CreditID, "credit ID")
	if err != nil {
		return dto.CreditResponse{}, err
	}
	epID, err := parseID(req.EarlyPaymentID, "early payment ID")
	if err != nil {
		return dto.CreditResponse{}, err
	}

	credit, err := uc.creditRepo.FindByID(ctx, creditID)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("find credit: %w", err)
	}
	current, err := uc.creditRepo.Schedule(ctx, creditID)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("load schedule: %w", err)
	}
	eps, err := uc.creditRepo.EarlyPayments(ctx, creditID)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("load early payments: %w", err)
	}

	kept := eps[:0:0]
	found := false
	for _, ep := range eps {
		if ep.ID == epID {
			found = true
			continue
		}
		kept = append(kept, ep)
	}
	if !found {
		return dto.CreditResponse{}, fmt.Errorf("%w: early payment %s of credit %s", model.ErrNotFound, epID, creditID)
	}

	items, err := service.Recalculate(scheduleSpecFor(credit), kept)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("recalculate schedule: %w", err)
	}
	items = service.CarryPaidFlags(current, items)

	credit = credit.MarkEarlyPaymentDeleted(epID, now)

	if err := uc.creditRepo.Save(ctx, credit, items, kept); err != nil {
		return dto.CreditResponse{}, fmt.Errorf("save credit: %w", err)
	}

	return toCreditResponse(credit, items, kept), nil
}
