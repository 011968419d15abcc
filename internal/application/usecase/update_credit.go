package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
)

// UpdateCreditUseCase edits the non-schedule fields of a credit or moves it
// to a terminal status. Principal, rate, term and start date are immutable;
// schedule changes go through early payments and regeneration.
type UpdateCreditUseCase struct {
	creditRepo port.CreditRepository
}

// NewUpdateCreditUseCase wires dependencies.
func NewUpdateCreditUseCase(creditRepo port.CreditRepository) *UpdateCreditUseCase {
	return &UpdateCreditUseCase{creditRepo: creditRepo}
}

// Execute applies the edit. A request carrying a terminal status performs the
// status transition and ignores the detail fields; the schedule and the
// early-payment history survive either way.
func (uc *UpdateCreditUseCase) Execute(ctx context.Context, req dto.UpdateCreditRequest) (dto.CreditResponse, error) {
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

	switch model.CreditStatus(req.Status) {
	case "", model.CreditStatusActive:
		accountID, err := parseID(req.AccountID, "account ID")
		if err != nil {
			return dto.CreditResponse{}, err
		}
		categoryID, err := parseID(req.CategoryID, "category ID")
		if err != nil {
			return dto.CreditResponse{}, err
		}
		credit, err = credit.UpdateDetails(req.Name, accountID, categoryID, req.PaymentDay, now)
		if err != nil {
			return dto.CreditResponse{}, fmt.Errorf("update credit: %w", err)
		}
	case model.CreditStatusCancelled:
		if credit, err = credit.Cancel(now); err != nil {
			return dto.CreditResponse{}, fmt.Errorf("cancel credit: %w", err)
		}
	case model.CreditStatusCompleted:
		if credit, err = credit.Complete(now); err != nil {
			return dto.CreditResponse{}, fmt.Errorf("complete credit: %w", err)
		}
	default:
		return dto.CreditResponse{}, fmt.Errorf("%w: unknown credit status %q", model.ErrValidation, req.Status)
	}

	if err := uc.creditRepo.Save(ctx, credit, items, eps); err != nil {
		return dto.CreditResponse{}, fmt.Errorf("save credit: %w", err)
	}

	return toCreditResponse(credit, items, eps), nil
}
