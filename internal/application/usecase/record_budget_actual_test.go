package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/application/usecase"
	"github.com/kassa-app/kassa/internal/domain/model"
)

func TestRecordBudgetActual_Execute(t *testing.T) {
	budgetID := uuid.New()
	categoryID := uuid.New()

	t.Run("books spending against the currency limit", func(t *testing.T) {
		item, err := model.NewBudgetItem(budgetID, categoryID)
		require.NoError(t, err)
		item, err = item.RecalculateLimits([]model.PlannedExpense{
			plannedExpense(t, "2000.00", "RUB"),
		}, time.Now().UTC())
		require.NoError(t, err)

		budgetRepo := &mockBudgetRepository{
			findByCategoryFunc: func(ctx context.Context, b, c uuid.UUID) (model.BudgetItem, error) {
				return item, nil
			},
		}

		uc := usecase.NewRecordBudgetActualUseCase(budgetRepo)

		resp, err := uc.Execute(context.Background(), dto.RecordBudgetActualRequest{
			BudgetID:   budgetID.String(),
			CategoryID: categoryID.String(),
			Amount:     decimal.RequireFromString("450.50"),
			Currency:   "RUB",
		})

		require.NoError(t, err)
		require.Len(t, resp.Limits, 1)
		assert.Equal(t, "450.5", resp.Limits[0].Actual.String())
		assert.Equal(t, "1549.5", resp.Limits[0].Remaining.String())

		require.Len(t, budgetRepo.savedItems, 1)
	})

	t.Run("creates the item and a zero-ceiling limit for a new category", func(t *testing.T) {
		budgetRepo := &mockBudgetRepository{
			findByCategoryFunc: func(ctx context.Context, b, c uuid.UUID) (model.BudgetItem, error) {
				return model.BudgetItem{}, model.ErrNotFound
			},
		}

		uc := usecase.NewRecordBudgetActualUseCase(budgetRepo)

		resp, err := uc.Execute(context.Background(), dto.RecordBudgetActualRequest{
			BudgetID:   budgetID.String(),
			CategoryID: categoryID.String(),
			Amount:     decimal.NewFromInt(300),
			Currency:   "USD",
		})

		require.NoError(t, err)
		require.Len(t, resp.Limits, 1)
		assert.Equal(t, "USD", resp.Limits[0].Currency)
		assert.True(t, resp.Limits[0].TotalLimit.IsZero())
		// Over-budget stays visible instead of clamping at zero.
		assert.Equal(t, "-300", resp.Limits[0].Remaining.String())

		require.Len(t, budgetRepo.savedItems, 1)
		assert.Equal(t, budgetID, budgetRepo.savedItems[0].BudgetID())
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		item, err := model.NewBudgetItem(budgetID, categoryID)
		require.NoError(t, err)

		budgetRepo := &mockBudgetRepository{
			findByCategoryFunc: func(ctx context.Context, b, c uuid.UUID) (model.BudgetItem, error) {
				return item, nil
			},
		}

		uc := usecase.NewRecordBudgetActualUseCase(budgetRepo)

		_, err = uc.Execute(context.Background(), dto.RecordBudgetActualRequest{
			BudgetID:   budgetID.String(),
			CategoryID: categoryID.String(),
			Amount:     decimal.Zero,
			Currency:   "RUB",
		})

		assert.ErrorIs(t, err, model.ErrValidation)
		assert.Empty(t, budgetRepo.savedItems)
	})
}
