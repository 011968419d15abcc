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
var _ port.DepositRepository = (*DepositRepo)(nil)

// DepositRepo implements DepositRepository using PostgreSQL.
type DepositRepo struct {
	pool *pgxpool.Pool
}

func NewDepositRepo(pool *pgxpool.Pool) *DepositRepo {
	return &DepositRepo{pool: pool}
}

// Save upserts the deposit and replaces its accrual records wholesale.
func (r *DepositRepo) Save(ctx context.Context, deposit model.Deposit, records []model.AccrualRecord) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return saveDepositTx(ctx, tx, deposit, records)
	})
}

func saveDepositTx(ctx context.Context, tx pgx.Tx, deposit model.Deposit, records []model.AccrualRecord) error {
	tag, err := tx.Exec(ctx, `
		INSERT INTO deposits (
			id, fund_id, principal, currency, rate_percent, term_months,
			accrual_period, capitalizing, start_date, status, closed_at,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		ON CONFLICT (id) DO UPDATE SET
			status     = EXCLUDED.status,
			closed_at  = EXCLUDED.closed_at,
			version    = EXCLUDED.version,
			updated_at = EXCLUDED.updated_at
		WHERE deposits.version < EXCLUDED.version
	`, deposit.ID(), deposit.FundID(), deposit.Principal().Amount(), deposit.Principal().Currency().Code(),
		deposit.Rate().Percent(), deposit.TermMonths(), string(deposit.AccrualPeriod()),
		deposit.Capitalizing(), deposit.StartDate(), string(deposit.Status()), deposit.ClosedAt(),
		deposit.Version(), deposit.CreatedAt(), deposit.UpdatedAt())
	if err != nil {
		return fmt.Errorf("upsert deposit: %w", err)
	}
	if tag.RowsAffected() == 0 && deposit.Version() > 1 {
		return fmt.Errorf("deposit %s: %w", deposit.ID(), ErrVersionConflict)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM accrual_records WHERE deposit_id = $1`, deposit.ID()); err != nil {
		return fmt.Errorf("clear accrual records: %w", err)
	}
	for _, rec := range records {
		_, err := tx.Exec(ctx, `
			INSERT INTO accrual_records (deposit_id, number, period_end, interest, balance)
			VALUES ($1, $2, $3, $4, $5)
		`, rec.DepositID, rec.Number, rec.PeriodEnd, rec.Interest.Amount(), rec.Balance.Amount())
		if err != nil {
			return fmt.Errorf("insert accrual record %d: %w", rec.Number, err)
		}
	}

	return insertOutbox(ctx, tx, deposit.DomainEvents())
}

func (r *DepositRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Deposit, error) {
	row := r.pool.QueryRow(ctx, depositColumns+` WHERE id = $1`, id)
	deposit, err := scanDepositRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Deposit{}, fmt.Errorf("%w: deposit %s", model.ErrNotFound, id)
	}
	return deposit, err
}

func (r *DepositRepo) ListActive(ctx context.Context) ([]model.Deposit, error) {
	rows, err := r.pool.Query(ctx, depositColumns+` WHERE status = 'ACTIVE' ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query deposits: %w", err)
	}
	defer rows.Close()

	var deposits []model.Deposit
	for rows.Next() {
		deposit, err := scanDepositRow(rows)
		if err != nil {
			return nil, err
		}
		deposits = append(deposits, deposit)
	}
	return deposits, rows.Err()
}

func (r *DepositRepo) AccrualRecords(ctx context.Context, depositID uuid.UUID) ([]model.AccrualRecord, error) {
	var code string
	if err := r.pool.QueryRow(ctx, `SELECT currency FROM deposits WHERE id = $1`, depositID).Scan(&code); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: deposit %s", model.ErrNotFound, depositID)
		}
		return nil, fmt.Errorf("query deposit currency: %w", err)
	}
	currency, err := money.NewCurrency(code)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT deposit_id, number, period_end, interest, balance
		FROM accrual_records
		WHERE deposit_id = $1
		ORDER BY number
	`, depositID)
	if err != nil {
		return nil, fmt.Errorf("query accrual records: %w", err)
	}
	defer rows.Close()

	var records []model.AccrualRecord
	for rows.Next() {
		var (
			id                uuid.UUID
			number            int
			periodEnd         time.Time
			interest, balance decimal.Decimal
		)
		if err := rows.Scan(&id, &number, &periodEnd, &interest, &balance); err != nil {
			return nil, fmt.Errorf("scan accrual record: %w", err)
		}
		records = append(records, model.AccrualRecord{
			DepositID: id,
			Number:    number,
			PeriodEnd: periodEnd,
			Interest:  money.New(interest, currency),
			Balance:   money.New(balance, currency),
		})
	}
	return records, rows.Err()
}

const depositColumns = `
	SELECT id, fund_id, principal, currency, rate_percent, term_months,
		accrual_period, capitalizing, start_date, status, closed_at,
		version, created_at, updated_at
	FROM deposits`

func scanDepositRow(row pgx.Row) (model.Deposit, error) {
	var (
		id, fundID             uuid.UUID
		principal, ratePercent decimal.Decimal
		currencyCode           string
		termMonths             int
		accrualPeriod          string
		capitalizing           bool
		startDate              time.Time
		status                 string
		closedAt               *time.Time
		version                int
		createdAt, updatedAt   time.Time
	)

	if err := row.Scan(&id, &fundID, &principal, &currencyCode, &ratePercent, &termMonths,
		&accrualPeriod, &capitalizing, &startDate, &status, &closedAt,
		&version, &createdAt, &updatedAt); err != nil {
		return model.Deposit{}, err
	}

	principalMoney, err := scanMoney(principal, currencyCode)
	if err != nil {
		return model.Deposit{}, err
	}
	rate, err := money.NewRate(ratePercent)
	if err != nil {
		return model.Deposit{}, fmt.Errorf("stored rate: %w", err)
	}

	return model.ReconstructDeposit(id, fundID, principalMoney, rate, termMonths,
		model.AccrualPeriod(accrualPeriod), capitalizing, startDate,
		model.DepositStatus(status), closedAt, version, createdAt, updatedAt), nil
}
