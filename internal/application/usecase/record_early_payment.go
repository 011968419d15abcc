package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
	"github.com/kassa-app/kassa/internal/domain/service"
	"github.com/kassa-app/kassa/pkg/money"
)

// RecordEarlyPaymentUseCase folds one early payment into a credit's schedule.
type RecordEarlyPaymentUseCase struct {
	creditRepo port.CreditRepository
}

// NewRecordEarlyPaymentUseCase wires dependencies.
func NewRecordEarlyPaymentUseCase(creditRepo port.CreditRepository) *RecordEarlyPaymentUseCase {
	return &RecordEarlyPaymentUseCase{creditRepo: creditRepo}
}

// Execute validates the payment, recalculates the schedule with it folded in,
// and persists the payment, the new schedule and the credit together. An
// amount covering the whole remaining balance is rejected with
// model.ErrOverpaymentRejected; the stored schedule stays untouched.
func (uc *RecordEarlyPaymentUseCase) Execute(ctx context.Context, req dto.RecordEarlyPaymentRequest) (dto.CreditResponse, error) {
	now := time.Now().UTC()

	id, err := parseID(req.CreditID, "credit ID")
	if err != nil {
		return dto.CreditResponse{}, err
	}

	credit, err := uc.creditRepo.FindByID(ctx, id)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("find credit: %w", err)
	}
	if credit.Status() != model.CreditStatusActive {
		return dto.CreditResponse{}, fmt.Errorf("%w: credit is %s, early payments require an active credit",
			model.ErrIllegalStateTransition, credit.Status())
	}

	ep, err := model.NewEarlyPayment(id, req.Date,
		money.New(req.Amount, credit.Principal().Currency()), model.EarlyPaymentKind(req.Kind))
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("create early payment: %w", err)
	}

	current, err := uc.creditRepo.Schedule(ctx, id)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("load schedule: %w", err)
	}
	eps, err := uc.creditRepo.EarlyPayments(ctx, id)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("load early payments: %w", err)
	}

	eps = append(eps, ep)
	items, err := service.Recalculate(scheduleSpecFor(credit), eps)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("recalculate schedule: %w", err)
	}
	items = service.CarryPaidFlags(current, items)

	credit = credit.MarkEarlyPaymentRecorded(ep, now)

	if err := uc.creditRepo.Save(ctx, credit, items, eps); err != nil {
		return dto.CreditResponse{}, fmt.Errorf("save credit: %w", err)
	}

	return toCreditResponse(credit, items, eps), nil
}
