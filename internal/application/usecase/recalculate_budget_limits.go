package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
)

// RecalculateBudgetLimitsUseCase rebuilds a budget item's per-currency limits
// from its planned expenses, preserving manual buffers.
type RecalculateBudgetLimitsUseCase struct {
	budgetRepo port.BudgetRepository
}

// NewRecalculateBudgetLimitsUseCase wires dependencies.
func NewRecalculateBudgetLimitsUseCase(budgetRepo port.BudgetRepository) *RecalculateBudgetLimitsUseCase {
	return &RecalculateBudgetLimitsUseCase{budgetRepo: budgetRepo}
}

// Execute totals the planned expenses per currency and replaces the item's
// limit rows. A missing item is created on the fly: limits are derived state
// and planning an expense in a new category should not require a separate
// setup call.
func (uc *RecalculateBudgetLimitsUseCase) Execute(ctx context.Context, req dto.RecalculateBudgetLimitsRequest) (dto.BudgetLimitsResponse, error) {
	now := time.Now().UTC()

	budgetID, err := parseID(req.BudgetID, "budget ID")
	if err != nil {
		return dto.BudgetLimitsResponse{}, err
	}
	categoryID, err := parseID(req.CategoryID, "category ID")
	if err != nil {
		return dto.BudgetLimitsResponse{}, err
	}

	item, err := uc.budgetRepo.FindByCategory(ctx, budgetID, categoryID)
	if errors.Is(err, model.ErrNotFound) {
		item, err = model.NewBudgetItem(budgetID, categoryID)
	}
	if err != nil {
		return dto.BudgetLimitsResponse{}, fmt.Errorf("find budget item: %w", err)
	}

	planned, err := uc.budgetRepo.PlannedExpenses(ctx, budgetID, categoryID)
	if err != nil {
		return dto.BudgetLimitsResponse{}, fmt.Errorf("load planned expenses: %w", err)
	}

	item, err = item.RecalculateLimits(planned, now)
	if err != nil {
		return dto.BudgetLimitsResponse{}, fmt.Errorf("recalculate limits: %w", err)
	}

	if err := uc.budgetRepo.Save(ctx, item); err != nil {
		return dto.BudgetLimitsResponse{}, fmt.Errorf("save budget item: %w", err)
	}

	return toBudgetLimitsResponse(item), nil
}
