package usecase

import (
	"context"
	"fmt"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/port"
	"github.com/kassa-app/kassa/internal/domain/service"
)

// GetCreditSummaryUseCase derives the aggregate state of a credit.
type GetCreditSummaryUseCase struct {
	creditRepo port.CreditRepository
}

// NewGetCreditSummaryUseCase wires dependencies.
func NewGetCreditSummaryUseCase(creditRepo port.CreditRepository) *GetCreditSummaryUseCase {
	return &GetCreditSummaryUseCase{creditRepo: creditRepo}
}

// Execute computes the summary from the stored schedule.
func (uc *GetCreditSummaryUseCase) Execute(ctx context.Context, req dto.GetCreditSummaryRequest) (dto.CreditSummaryResponse, error) {
	id, err := parseID(req.CreditID, "credit ID")
	if err != nil {
		return dto.CreditSummaryResponse{}, err
	}

	credit, err := uc.creditRepo.FindByID(ctx, id)
	if err != nil {
		return dto.CreditSummaryResponse{}, fmt.Errorf("find credit: %w", err)
	}
	items, err := uc.creditRepo.Schedule(ctx, id)
	if err != nil {
		return dto.CreditSummaryResponse{}, fmt.Errorf("load schedule: %w", err)
	}

	summary := service.Summarize(credit, items)

	resp := dto.CreditSummaryResponse{
		CreditID:               credit.ID().String(),
		OriginalPrincipal:      summary.OriginalPrincipal.Amount(),
		RemainingPrincipal:     summary.RemainingPrincipal.Amount(),
		TotalInterestPaid:      summary.TotalInterestPaid.Amount(),
		TotalInterestRemaining: summary.TotalInterestRemaining.Amount(),
		PaymentsMade:           summary.PaymentsMade,
		PaymentsRemaining:      summary.PaymentsRemaining,
		PercentComplete:        summary.PercentComplete,
	}
	if summary.NextPayment != nil {
		next := summary.NextPayment.Amount()
		resp.NextPayment = &next
	}
	return resp, nil
}
