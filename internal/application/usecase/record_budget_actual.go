package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
	"github.com/kassa-app/kassa/pkg/money"
)

// RecordBudgetActualUseCase books spent money against a budget item's
// currency limit, so Remaining reflects what the household actually paid.
type RecordBudgetActualUseCase struct {
	budgetRepo port.BudgetRepository
}

// NewRecordBudgetActualUseCase wires dependencies.
func NewRecordBudgetActualUseCase(budgetRepo port.BudgetRepository) *RecordBudgetActualUseCase {
	return &RecordBudgetActualUseCase{budgetRepo: budgetRepo}
}

// Execute adds the spent amount to the matching limit row. Spending in a
// category with no item yet creates the item; spending in a new currency
// creates the limit row with a zero ceiling, so over-budget stays visible.
func (uc *RecordBudgetActualUseCase) Execute(ctx context.Context, req dto.RecordBudgetActualRequest) (dto.BudgetLimitsResponse, error) {
	now := time.Now().UTC()

	budgetID, err := parseID(req.BudgetID, "budget ID")
	if err != nil {
		return dto.BudgetLimitsResponse{}, err
	}
	categoryID, err := parseID(req.CategoryID, "category ID")
	if err != nil {
		return dto.BudgetLimitsResponse{}, err
	}
	currency, err := money.NewCurrency(req.Currency)
	if err != nil {
		return dto.BudgetLimitsResponse{}, fmt.Errorf("parse currency: %w", err)
	}

	item, err := uc.budgetRepo.FindByCategory(ctx, budgetID, categoryID)
	if errors.Is(err, model.ErrNotFound) {
		item, err = model.NewBudgetItem(budgetID, categoryID)
	}
	if err != nil {
		return dto.BudgetLimitsResponse{}, fmt.Errorf("find budget item: %w", err)
	}

	item, err = item.RecordActual(money.New(req.Amount, currency), now)
	if err != nil {
		return dto.BudgetLimitsResponse{}, fmt.Errorf("record actual: %w", err)
	}

	if err := uc.budgetRepo.Save(ctx, item); err != nil {
		return dto.BudgetLimitsResponse{}, fmt.Errorf("save budget item: %w", err)
	}

	return toBudgetLimitsResponse(item), nil
}
