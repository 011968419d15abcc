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
var _ port.FundRepository = (*FundRepo)(nil)

// FundRepo implements FundRepository using PostgreSQL. Balances are one row
// per asset.
type FundRepo struct {
	pool *pgxpool.Pool
}

func NewFundRepo(pool *pgxpool.Pool) *FundRepo {
	return &FundRepo{pool: pool}
}

func (r *FundRepo) Save(ctx context.Context, fund model.Fund) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return saveFundTx(ctx, tx, fund)
	})
}

// saveFundTx upserts a fund inside an existing transaction. Shared with the
// allocation unit of work.
func saveFundTx(ctx context.Context, tx pgx.Tx, fund model.Fund) error {
	tag, err := tx.Exec(ctx, `
		INSERT INTO funds (id, name, currency, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name       = EXCLUDED.name,
			version    = EXCLUDED.version,
			updated_at = EXCLUDED.updated_at
		WHERE funds.version < EXCLUDED.version
	`, fund.ID(), fund.Name(), fund.Currency().Code(), fund.Version(), fund.CreatedAt(), fund.UpdatedAt())
	if err != nil {
		return fmt.Errorf("upsert fund: %w", err)
	}
	if tag.RowsAffected() == 0 && fund.Version() > 1 {
		return fmt.Errorf("fund %s: %w", fund.ID(), ErrVersionConflict)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM fund_balances WHERE fund_id = $1`, fund.ID()); err != nil {
		return fmt.Errorf("clear fund balances: %w", err)
	}
	for asset, balance := range fund.Balances() {
		_, err := tx.Exec(ctx, `
			INSERT INTO fund_balances (fund_id, asset, amount)
			VALUES ($1, $2, $3)
		`, fund.ID(), asset, balance.Amount())
		if err != nil {
			return fmt.Errorf("insert fund balance %s: %w", asset, err)
		}
	}
	return nil
}

func (r *FundRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Fund, error) {
	var (
		name, currencyCode   string
		version              int
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT name, currency, version, created_at, updated_at
		FROM funds WHERE id = $1
	`, id).Scan(&name, &currencyCode, &version, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Fund{}, fmt.Errorf("%w: fund %s", model.ErrNotFound, id)
		}
		return model.Fund{}, fmt.Errorf("query fund: %w", err)
	}

	currency, err := money.NewCurrency(currencyCode)
	if err != nil {
		return model.Fund{}, err
	}

	balances, err := r.loadBalances(ctx, id, currency)
	if err != nil {
		return model.Fund{}, err
	}

	return model.ReconstructFund(id, name, currency, balances, version, createdAt, updatedAt), nil
}

func (r *FundRepo) List(ctx context.Context) ([]model.Fund, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM funds ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query funds: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan fund id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	funds := make([]model.Fund, 0, len(ids))
	for _, id := range ids {
		fund, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		funds = append(funds, fund)
	}
	return funds, nil
}

func (r *FundRepo) loadBalances(ctx context.Context, fundID uuid.UUID, currency money.Currency) (map[string]money.Money, error) {
	rows, err := r.pool.Query(ctx, `SELECT asset, amount FROM fund_balances WHERE fund_id = $1`, fundID)
	if err != nil {
		return nil, fmt.Errorf("query fund balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[string]money.Money)
	for rows.Next() {
		var (
			asset  string
			amount decimal.Decimal
		)
		if err := rows.Scan(&asset, &amount); err != nil {
			return nil, fmt.Errorf("scan fund balance: %w", err)
		}
		balances[asset] = money.New(amount, currency)
	}
	return balances, rows.Err()
}
