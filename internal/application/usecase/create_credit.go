package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
	"github.com/kassa-app/kassa/internal/domain/service"
	"github.com/kassa-app/kassa/pkg/money"
)

// CreateCreditUseCase registers a credit and derives its initial schedule.
type CreateCreditUseCase struct {
	creditRepo port.CreditRepository
}

// NewCreateCreditUseCase wires dependencies.
func NewCreateCreditUseCase(creditRepo port.CreditRepository) *CreateCreditUseCase {
	return &CreateCreditUseCase{creditRepo: creditRepo}
}

// Execute validates the request, builds the credit aggregate and its full
// amortization schedule, and persists both atomically.
func (uc *CreateCreditUseCase) Execute(ctx context.Context, req dto.CreateCreditRequest) (dto.CreditResponse, error) {
	currency, err := money.NewCurrency(req.Currency)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("parse currency: %w", err)
	}
	rate, err := money.NewRate(req.RatePercent)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("parse rate: %w", err)
	}
	accountID, err := parseID(req.AccountID, "account ID")
	if err != nil {
		return dto.CreditResponse{}, err
	}
	categoryID, err := parseID(req.CategoryID, "category ID")
	if err != nil {
		return dto.CreditResponse{}, err
	}

	var bankPayment *money.Money
	if req.BankPayment != nil {
		m := money.New(*req.BankPayment, currency)
		bankPayment = &m
	}

	term, err := resolveTerm(req)
	if err != nil {
		return dto.CreditResponse{}, err
	}

	credit, err := model.NewCredit(req.Name, money.New(req.Principal, currency), rate,
		term, req.StartDate, req.PaymentDay, accountID, categoryID, bankPayment)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("create credit: %w", err)
	}

	items, err := service.GenerateSchedule(scheduleSpecFor(credit))
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("generate schedule: %w", err)
	}

	if req.PaymentsMade < 0 || req.PaymentsMade > len(items) {
		return dto.CreditResponse{}, fmt.Errorf("%w: payments made must be within 0-%d, got %d",
			model.ErrValidation, len(items), req.PaymentsMade)
	}
	for i := 0; i < req.PaymentsMade; i++ {
		items[i].Paid = true
	}
	if len(items) > 0 && req.PaymentsMade == len(items) {
		if credit, err = credit.Complete(time.Now().UTC()); err != nil {
			return dto.CreditResponse{}, fmt.Errorf("complete credit: %w", err)
		}
	}

	if err := uc.creditRepo.Save(ctx, credit, items, nil); err != nil {
		return dto.CreditResponse{}, fmt.Errorf("save credit: %w", err)
	}

	return toCreditResponse(credit, items, nil), nil
}

// resolveTerm picks the term in months: an explicit term wins, otherwise the
// term is the whole months between the start date and the end date.
func resolveTerm(req dto.CreateCreditRequest) (int, error) {
	if req.TermMonths > 0 {
		return req.TermMonths, nil
	}
	if req.EndDate == nil {
		return 0, fmt.Errorf("%w: either a term in months or an end date is required", model.ErrValidation)
	}

	end := *req.EndDate
	months := (end.Year()-req.StartDate.Year())*12 + int(end.Month()) - int(req.StartDate.Month())
	if end.Day() < req.StartDate.Day() {
		months--
	}
	if months <= 0 {
		return 0, fmt.Errorf("%w: end date %s is not a whole month after the start date %s",
			model.ErrValidation, end.Format(time.DateOnly), req.StartDate.Format(time.DateOnly))
	}
	return months, nil
}

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s %q", model.ErrValidation, what, raw)
	}
	return id, nil
}
