package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
	"github.com/kassa-app/kassa/pkg/money"
	pkgpostgres "github.com/kassa-app/kassa/pkg/postgres"
)

// Compile-time interface check.
var _ port.BudgetRepository = (*BudgetRepo)(nil)

// BudgetRepo implements BudgetRepository using PostgreSQL. Currency limits
// are one row per (item, currency); planned expenses are read-only input
// written by the planning tooling.
type BudgetRepo struct {
	pool *pgxpool.Pool
}

func NewBudgetRepo(pool *pgxpool.Pool) *BudgetRepo {
	return &BudgetRepo{pool: pool}
}

func (r *BudgetRepo) Save(ctx context.Context, item model.BudgetItem) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return saveBudgetItemTx(ctx, tx, item)
	})
}

func saveBudgetItemTx(ctx context.Context, tx pgx.Tx, item model.BudgetItem) error {
	tag, err := tx.Exec(ctx, `
		INSERT INTO budget_items (id, budget_id, category_id, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			version    = EXCLUDED.version,
			updated_at = EXCLUDED.updated_at
		WHERE budget_items.version < EXCLUDED.version
	`, item.ID(), item.BudgetID(), item.CategoryID(), item.Version(), item.CreatedAt(), item.UpdatedAt())
	if err != nil {
		return fmt.Errorf("upsert budget item: %w", err)
	}
	if tag.RowsAffected() == 0 && item.Version() > 1 {
		return fmt.Errorf("budget item %s: %w", item.ID(), ErrVersionConflict)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM currency_limits WHERE budget_item_id = $1`, item.ID()); err != nil {
		return fmt.Errorf("clear currency limits: %w", err)
	}
	for _, limit := range item.Limits() {
		_, err := tx.Exec(ctx, `
			INSERT INTO currency_limits (budget_item_id, currency, total_limit, buffer, actual)
			VALUES ($1, $2, $3, $4, $5)
		`, item.ID(), limit.Currency.Code(), limit.TotalLimit.Amount(), limit.Buffer.Amount(), limit.Actual.Amount())
		if err != nil {
			return fmt.Errorf("insert currency limit %s: %w", limit.Currency.Code(), err)
		}
	}

	return insertOutbox(ctx, tx, item.DomainEvents())
}

func (r *BudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (model.BudgetItem, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, budget_id, category_id, version, created_at, updated_at
		FROM budget_items WHERE id = $1
	`, id)
	item, err := r.scanBudgetRow(ctx, row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BudgetItem{}, fmt.Errorf("%w: budget item %s", model.ErrNotFound, id)
		}
		return model.BudgetItem{}, err
	}
	return item, nil
}

func (r *BudgetRepo) FindByCategory(ctx context.Context, budgetID, categoryID uuid.UUID) (model.BudgetItem, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, budget_id, category_id, version, created_at, updated_at
		FROM budget_items WHERE budget_id = $1 AND category_id = $2
	`, budgetID, categoryID)
	item, err := r.scanBudgetRow(ctx, row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BudgetItem{}, fmt.Errorf("%w: budget item for category %s", model.ErrNotFound, categoryID)
		}
		return model.BudgetItem{}, err
	}
	return item, nil
}

func (r *BudgetRepo) PlannedExpenses(ctx context.Context, budgetID, categoryID uuid.UUID) ([]model.PlannedExpense, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT amount, currency
		FROM planned_expenses
		WHERE budget_id = $1 AND category_id = $2
	`, budgetID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("query planned expenses: %w", err)
	}
	defer rows.Close()

	var planned []model.PlannedExpense
	for rows.Next() {
		var (
			amount decimal.Decimal
			code   string
		)
		if err := rows.Scan(&amount, &code); err != nil {
			return nil, fmt.Errorf("scan planned expense: %w", err)
		}
		m, err := scanMoney(amount, code)
		if err != nil {
			return nil, err
		}
		planned = append(planned, model.PlannedExpense{Amount: m})
	}
	return planned, rows.Err()
}

func (r *BudgetRepo) scanBudgetRow(ctx context.Context, row pgx.Row) (model.BudgetItem, error) {
	var (
		id, budgetID, categoryID uuid.UUID
		version                  int
		createdAt, updatedAt     time.Time
	)
	if err := row.Scan(&id, &budgetID, &categoryID, &version, &createdAt, &updatedAt); err != nil {
		return model.BudgetItem{}, err
	}

	limits, err := r.loadLimits(ctx, id)
	if err != nil {
		return model.BudgetItem{}, err
	}
	return model.ReconstructBudgetItem(id, budgetID, categoryID, limits, version, createdAt, updatedAt), nil
}

func (r *BudgetRepo) loadLimits(ctx context.Context, itemID uuid.UUID) ([]model.CurrencyLimit, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT currency, total_limit, buffer, actual
		FROM currency_limits
		WHERE budget_item_id = $1
		ORDER BY currency
	`, itemID)
	if err != nil {
		return nil, fmt.Errorf("query currency limits: %w", err)
	}
	defer rows.Close()

	var limits []model.CurrencyLimit
	for rows.Next() {
		var (
			code                  string
			total, buffer, actual decimal.Decimal
		)
		if err := rows.Scan(&code, &total, &buffer, &actual); err != nil {
			return nil, fmt.Errorf("scan currency limit: %w", err)
		}
		currency, err := money.NewCurrency(code)
		if err != nil {
			return nil, err
		}
		limits = append(limits, model.CurrencyLimit{
			Currency:   currency,
			TotalLimit: money.New(total, currency),
			Buffer:     money.New(buffer, currency),
			Actual:     money.New(actual, currency),
		})
	}
	return limits, rows.Err()
}
