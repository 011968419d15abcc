package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/application/usecase"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/pkg/money"
)

func plannedExpense(t *testing.T, amount, currency string) model.PlannedExpense {
	t.Helper()
	m, err := money.NewFromString(amount, currency)
	require.NoError(t, err)
	return model.PlannedExpense{Amount: m}
}

func TestRecalculateBudgetLimits_Execute(t *testing.T) {
	budgetID := uuid.New()
	categoryID := uuid.New()

	t.Run("totals planned expenses per currency", func(t *testing.T) {
		item, err := model.NewBudgetItem(budgetID, categoryID)
		require.NoError(t, err)

		budgetRepo := &mockBudgetRepository{
			findByCategoryFunc: func(ctx context.Context, b, c uuid.UUID) (model.BudgetItem, error) {
				return item, nil
			},
			plannedExpensesFunc: func(ctx context.Context, b, c uuid.UUID) ([]model.PlannedExpense, error) {
				return []model.PlannedExpense{
					plannedExpense(t, "1200.00", "RUB"),
					plannedExpense(t, "800.50", "RUB"),
					plannedExpense(t, "40.00", "USD"),
				}, nil
			},
		}
		uc := usecase.NewRecalculateBudgetLimitsUseCase(budgetRepo)

		resp, err := uc.Execute(context.Background(), dto.RecalculateBudgetLimitsRequest{
			BudgetID:   budgetID.String(),
			CategoryID: categoryID.String(),
		})

		require.NoError(t, err)
		require.Len(t, resp.Limits, 2)
		assert.Equal(t, "RUB", resp.Limits[0].Currency)
		assert.Equal(t, "2000.5", resp.Limits[0].TotalLimit.String())
		assert.Equal(t, "USD", resp.Limits[1].Currency)
		assert.Equal(t, "40", resp.Limits[1].TotalLimit.String())

		require.Len(t, budgetRepo.savedItems, 1)
		assert.NotEmpty(t, budgetRepo.savedItems[0].DomainEvents())
	})

	t.Run("creates the item when the category has none yet", func(t *testing.T) {
		budgetRepo := &mockBudgetRepository{
			findByCategoryFunc: func(ctx context.Context, b, c uuid.UUID) (model.BudgetItem, error) {
				return model.BudgetItem{}, model.ErrNotFound
			},
			plannedExpensesFunc: func(ctx context.Context, b, c uuid.UUID) ([]model.PlannedExpense, error) {
				return []model.PlannedExpense{plannedExpense(t, "500.00", "RUB")}, nil
			},
		}

		uc := usecase.NewRecalculateBudgetLimitsUseCase(budgetRepo)

		resp, err := uc.Execute(context.Background(), dto.RecalculateBudgetLimitsRequest{
			BudgetID:   budgetID.String(),
			CategoryID: categoryID.String(),
		})

		require.NoError(t, err)
		require.Len(t, resp.Limits, 1)
		assert.Equal(t, "500", resp.Limits[0].TotalLimit.String())

		require.Len(t, budgetRepo.savedItems, 1)
		saved := budgetRepo.savedItems[0]
		assert.Equal(t, budgetID, saved.BudgetID())
		assert.Equal(t, categoryID, saved.CategoryID())
	})

	t.Run("keeps a manual buffer across recalculations", func(t *testing.T) {
		item, err := model.NewBudgetItem(budgetID, categoryID)
		require.NoError(t, err)
		item, err = item.RecalculateLimits([]model.PlannedExpense{
			plannedExpense(t, "1000.00", "RUB"),
		}, time.Now().UTC())
		require.NoError(t, err)

		cur := money.MustCurrency("RUB")
		limits := item.Limits()
		limits[0].Buffer = money.NewFromMinorUnits(30000, cur) // 300.00
		item = model.ReconstructBudgetItem(item.ID(), budgetID, categoryID,
			limits, item.Version(), item.CreatedAt(), item.UpdatedAt())

		budgetRepo := &mockBudgetRepository{
			findByCategoryFunc: func(ctx context.Context, b, c uuid.UUID) (model.BudgetItem, error) {
				return item, nil
			},
			plannedExpensesFunc: func(ctx context.Context, b, c uuid.UUID) ([]model.PlannedExpense, error) {
				return []model.PlannedExpense{plannedExpense(t, "2500.00", "RUB")}, nil
			},
		}

		uc := usecase.NewRecalculateBudgetLimitsUseCase(budgetRepo)

		resp, err := uc.Execute(context.Background(), dto.RecalculateBudgetLimitsRequest{
			BudgetID:   budgetID.String(),
			CategoryID: categoryID.String(),
		})

		require.NoError(t, err)
		require.Len(t, resp.Limits, 1)
		assert.Equal(t, "2500", resp.Limits[0].TotalLimit.String())
		assert.Equal(t, "300", resp.Limits[0].Buffer.String())
		assert.Equal(t, "2800", resp.Limits[0].Remaining.String())
	})

	t.Run("rejects a malformed budget ID", func(t *testing.T) {
		uc := usecase.NewRecalculateBudgetLimitsUseCase(&mockBudgetRepository{})

		_, err := uc.Execute(context.Background(), dto.RecalculateBudgetLimitsRequest{
			BudgetID:   "not-a-uuid",
			CategoryID: categoryID.String(),
		})

		assert.ErrorIs(t, err, model.ErrValidation)
	})
}
