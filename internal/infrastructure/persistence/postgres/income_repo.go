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
var _ port.IncomeRepository = (*IncomeRepo)(nil)

// IncomeRepo implements IncomeRepository using PostgreSQL.
type IncomeRepo struct {
	pool *pgxpool.Pool
}

func NewIncomeRepo(pool *pgxpool.Pool) *IncomeRepo {
	return &IncomeRepo{pool: pool}
}

func (r *IncomeRepo) Save(ctx context.Context, income model.Income) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return saveIncomeTx(ctx, tx, income)
	})
}

func saveIncomeTx(ctx context.Context, tx pgx.Tx, income model.Income) error {
	tag, err := tx.Exec(ctx, `
		INSERT INTO incomes (id, received_on, amount, currency, remaining, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			remaining  = EXCLUDED.remaining,
			version    = EXCLUDED.version,
			updated_at = EXCLUDED.updated_at
		WHERE incomes.version < EXCLUDED.version
	`, income.ID(), income.Date(), income.Amount().Amount(), income.Amount().Currency().Code(),
		income.RemainingForBudget().Amount(), income.Version(), income.CreatedAt(), income.UpdatedAt())
	if err != nil {
		return fmt.Errorf("upsert income: %w", err)
	}
	if tag.RowsAffected() == 0 && income.Version() > 1 {
		return fmt.Errorf("income %s: %w", income.ID(), ErrVersionConflict)
	}
	return nil
}

func (r *IncomeRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Income, error) {
	var (
		receivedOn           time.Time
		amount, remaining    decimal.Decimal
		currencyCode         string
		version              int
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT received_on, amount, currency, remaining, version, created_at, updated_at
		FROM incomes WHERE id = $1
	`, id).Scan(&receivedOn, &amount, &currencyCode, &remaining, &version, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Income{}, fmt.Errorf("%w: income %s", model.ErrNotFound, id)
		}
		return model.Income{}, fmt.Errorf("query income: %w", err)
	}

	currency, err := money.NewCurrency(currencyCode)
	if err != nil {
		return model.Income{}, err
	}

	return model.ReconstructIncome(id, receivedOn,
		money.New(amount, currency), money.New(remaining, currency),
		version, createdAt, updatedAt), nil
}
