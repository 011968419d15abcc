package postgres

import (
	"context"
	"encoding/json"
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
var _ port.DistributionRepository = (*DistributionRepo)(nil)

// DistributionRepo implements DistributionRepository using PostgreSQL. The
// confirmation, when present, is stored as JSONB: it is written and read as
// one opaque unit and never queried by field.
type DistributionRepo struct {
	pool *pgxpool.Pool
}

func NewDistributionRepo(pool *pgxpool.Pool) *DistributionRepo {
	return &DistributionRepo{pool: pool}
}

type storedConfirmation struct {
	ActualAmount decimal.Decimal    `json:"actual_amount"`
	Allocations  []storedAllocation `json:"allocations"`
	CompletedAt  time.Time          `json:"completed_at"`
}

type storedAllocation struct {
	Asset  string          `json:"asset"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *DistributionRepo) Save(ctx context.Context, dist model.IncomeDistribution) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return saveDistributionTx(ctx, tx, dist)
	})
}

func saveDistributionTx(ctx context.Context, tx pgx.Tx, dist model.IncomeDistribution) error {
	var confirmation []byte
	if c := dist.Confirmation(); c != nil {
		stored := storedConfirmation{
			ActualAmount: c.ActualAmount.Amount(),
			CompletedAt:  c.CompletedAt,
		}
		for _, a := range c.Allocations {
			stored.Allocations = append(stored.Allocations, storedAllocation{
				Asset:  a.Asset,
				Amount: a.Amount.Amount(),
			})
		}
		payload, err := json.Marshal(stored)
		if err != nil {
			return fmt.Errorf("marshal confirmation: %w", err)
		}
		confirmation = payload
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO income_distributions (
			id, income_id, fund_id, planned, currency, status, confirmation,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET
			planned      = EXCLUDED.planned,
			status       = EXCLUDED.status,
			confirmation = EXCLUDED.confirmation,
			version      = EXCLUDED.version,
			updated_at   = EXCLUDED.updated_at
		WHERE income_distributions.version < EXCLUDED.version
	`, dist.ID(), dist.IncomeID(), dist.FundID(), dist.Planned().Amount(),
		dist.Planned().Currency().Code(), string(dist.Status()), confirmation,
		dist.Version(), dist.CreatedAt(), dist.UpdatedAt())
	if err != nil {
		return fmt.Errorf("upsert distribution: %w", err)
	}
	if tag.RowsAffected() == 0 && dist.Version() > 1 {
		return fmt.Errorf("distribution %s: %w", dist.ID(), ErrVersionConflict)
	}

	return insertOutbox(ctx, tx, dist.DomainEvents())
}

func (r *DistributionRepo) FindByID(ctx context.Context, id uuid.UUID) (model.IncomeDistribution, error) {
	row := r.pool.QueryRow(ctx, distributionColumns+` WHERE id = $1`, id)
	dist, err := scanDistributionRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.IncomeDistribution{}, fmt.Errorf("%w: distribution %s", model.ErrNotFound, id)
	}
	return dist, err
}

func (r *DistributionRepo) ListByIncome(ctx context.Context, incomeID uuid.UUID) ([]model.IncomeDistribution, error) {
	rows, err := r.pool.Query(ctx, distributionColumns+` WHERE income_id = $1 ORDER BY created_at`, incomeID)
	if err != nil {
		return nil, fmt.Errorf("query distributions: %w", err)
	}
	defer rows.Close()

	var dists []model.IncomeDistribution
	for rows.Next() {
		dist, err := scanDistributionRow(rows)
		if err != nil {
			return nil, err
		}
		dists = append(dists, dist)
	}
	return dists, rows.Err()
}

const distributionColumns = `
	SELECT id, income_id, fund_id, planned, currency, status, confirmation,
		version, created_at, updated_at
	FROM income_distributions`

func scanDistributionRow(row pgx.Row) (model.IncomeDistribution, error) {
	var (
		id, incomeID, fundID uuid.UUID
		planned              decimal.Decimal
		currencyCode, status string
		confirmation         []byte
		version              int
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &incomeID, &fundID, &planned, &currencyCode, &status,
		&confirmation, &version, &createdAt, &updatedAt); err != nil {
		return model.IncomeDistribution{}, err
	}

	currency, err := money.NewCurrency(currencyCode)
	if err != nil {
		return model.IncomeDistribution{}, err
	}

	var conf *model.Confirmation
	if len(confirmation) > 0 {
		var stored storedConfirmation
		if err := json.Unmarshal(confirmation, &stored); err != nil {
			return model.IncomeDistribution{}, fmt.Errorf("unmarshal confirmation: %w", err)
		}
		conf = &model.Confirmation{
			ActualAmount: money.New(stored.ActualAmount, currency),
			CompletedAt:  stored.CompletedAt,
		}
		for _, a := range stored.Allocations {
			conf.Allocations = append(conf.Allocations, model.Allocation{
				Asset:  a.Asset,
				Amount: money.New(a.Amount, currency),
			})
		}
	}

	return model.ReconstructIncomeDistribution(id, incomeID, fundID,
		money.New(planned, currency), model.DistributionStatus(status), conf,
		version, createdAt, updatedAt), nil
}
