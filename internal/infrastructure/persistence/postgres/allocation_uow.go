package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
	pkgpostgres "github.com/kassa-app/kassa/pkg/postgres"
)

// Compile-time interface check.
var _ port.AllocationUnitOfWork = (*AllocationUoW)(nil)

// AllocationUoW saves the aggregates of one allocation step in one
// transaction. The version predicates of the individual upserts apply to
// every row, so any stale aggregate rolls the whole operation back.
type AllocationUoW struct {
	pool *pgxpool.Pool
}

func NewAllocationUoW(pool *pgxpool.Pool) *AllocationUoW {
	return &AllocationUoW{pool: pool}
}

func (u *AllocationUoW) SavePlan(ctx context.Context, income model.Income, dists []model.IncomeDistribution) error {
	return pkgpostgres.WithTransaction(ctx, u.pool, func(tx pgx.Tx) error {
		if err := saveIncomeTx(ctx, tx, income); err != nil {
			return err
		}
		for _, dist := range dists {
			if err := saveDistributionTx(ctx, tx, dist); err != nil {
				return err
			}
		}
		return nil
	})
}

func (u *AllocationUoW) SaveConfirmation(ctx context.Context, dist model.IncomeDistribution, fund model.Fund, income model.Income) error {
	return u.saveAll(ctx, dist, fund, income)
}

func (u *AllocationUoW) SaveCancellation(ctx context.Context, dist model.IncomeDistribution, fund model.Fund, income model.Income) error {
	return u.saveAll(ctx, dist, fund, income)
}

func (u *AllocationUoW) saveAll(ctx context.Context, dist model.IncomeDistribution, fund model.Fund, income model.Income) error {
	return pkgpostgres.WithTransaction(ctx, u.pool, func(tx pgx.Tx) error {
		if err := saveDistributionTx(ctx, tx, dist); err != nil {
			return err
		}
		if err := saveFundTx(ctx, tx, fund); err != nil {
			return err
		}
		return saveIncomeTx(ctx, tx, income)
	})
}
