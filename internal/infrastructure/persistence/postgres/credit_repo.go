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
var _ port.CreditRepository = (*CreditRepo)(nil)

// CreditRepo implements CreditRepository using PostgreSQL.
type CreditRepo struct {
	pool *pgxpool.Pool
}

func NewCreditRepo(pool *pgxpool.Pool) *CreditRepo {
	return &CreditRepo{pool: pool}
}

// Save upserts the credit and replaces its schedule rows and early payments
// wholesale. Schedule rows are derived state, so a delete-and-reinsert is
// simpler and safer than row-level diffing.
func (r *CreditRepo) Save(ctx context.Context, credit model.Credit, items []model.ScheduleItem, eps []model.EarlyPayment) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return saveCreditTx(ctx, tx, credit, items, eps)
	})
}

func saveCreditTx(ctx context.Context, tx pgx.Tx, credit model.Credit, items []model.ScheduleItem, eps []model.EarlyPayment) error {
	var bankPayment *decimal.Decimal
	if bp := credit.BankPayment(); bp != nil {
		amount := bp.Amount()
		bankPayment = &amount
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO credits (
			id, name, principal, currency, rate_percent, term_months,
			start_date, payment_day, bank_payment, status,
			account_id, category_id, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (id) DO UPDATE SET
			name        = EXCLUDED.name,
			status      = EXCLUDED.status,
			payment_day = EXCLUDED.payment_day,
			account_id  = EXCLUDED.account_id,
			category_id = EXCLUDED.category_id,
			version     = EXCLUDED.version,
			updated_at  = EXCLUDED.updated_at
		WHERE credits.version < EXCLUDED.version
	`, credit.ID(), credit.Name(), credit.Principal().Amount(), credit.Principal().Currency().Code(),
		credit.Rate().Percent(), credit.TermMonths(), credit.StartDate(), credit.PaymentDay(),
		bankPayment, string(credit.Status()), credit.AccountID(), credit.CategoryID(),
		credit.Version(), credit.CreatedAt(), credit.UpdatedAt())
	if err != nil {
		return fmt.Errorf("upsert credit: %w", err)
	}
	if tag.RowsAffected() == 0 && credit.Version() > 1 {
		return fmt.Errorf("credit %s: %w", credit.ID(), ErrVersionConflict)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM schedule_items WHERE credit_id = $1`, credit.ID()); err != nil {
		return fmt.Errorf("clear schedule: %w", err)
	}
	for _, item := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO schedule_items (credit_id, number, due_date, principal, interest, total, remaining_balance, paid)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, item.CreditID, item.Number, item.DueDate, item.Principal.Amount(),
			item.Interest.Amount(), item.Total.Amount(), item.RemainingBalance.Amount(), item.Paid)
		if err != nil {
			return fmt.Errorf("insert schedule item %d: %w", item.Number, err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM early_payments WHERE credit_id = $1`, credit.ID()); err != nil {
		return fmt.Errorf("clear early payments: %w", err)
	}
	for _, ep := range eps {
		_, err := tx.Exec(ctx, `
			INSERT INTO early_payments (id, credit_id, paid_at, amount, kind)
			VALUES ($1, $2, $3, $4, $5)
		`, ep.ID, ep.CreditID, ep.Date, ep.Amount.Amount(), string(ep.Kind))
		if err != nil {
			return fmt.Errorf("insert early payment %s: %w", ep.ID, err)
		}
	}

	return insertOutbox(ctx, tx, credit.DomainEvents())
}

func (r *CreditRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Credit, error) {
	return r.scanCredit(ctx, `
		SELECT id, name, principal, currency, rate_percent, term_months,
			start_date, payment_day, bank_payment, status,
			account_id, category_id, version, created_at, updated_at
		FROM credits WHERE id = $1
	`, id)
}

func (r *CreditRepo) List(ctx context.Context, status *model.CreditStatus) ([]model.Credit, error) {
	query := `
		SELECT id, name, principal, currency, rate_percent, term_months,
			start_date, payment_day, bank_payment, status,
			account_id, category_id, version, created_at, updated_at
		FROM credits
	`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query credits: %w", err)
	}
	defer rows.Close()

	var credits []model.Credit
	for rows.Next() {
		credit, err := scanCreditRow(rows)
		if err != nil {
			return nil, err
		}
		credits = append(credits, credit)
	}
	return credits, rows.Err()
}

func (r *CreditRepo) Schedule(ctx context.Context, creditID uuid.UUID) ([]model.ScheduleItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT credit_id, number, due_date, principal, interest, total, remaining_balance, paid
		FROM schedule_items
		WHERE credit_id = $1
		ORDER BY number
	`, creditID)
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	defer rows.Close()

	// The currency lives on the credit, not on every row.
	currency, err := r.creditCurrency(ctx, creditID)
	if err != nil {
		return nil, err
	}

	var items []model.ScheduleItem
	for rows.Next() {
		var (
			cid                                          uuid.UUID
			number                                       int
			dueDate                                      time.Time
			principal, interest, total, remainingBalance decimal.Decimal
			paid                                         bool
		)
		if err := rows.Scan(&cid, &number, &dueDate, &principal, &interest, &total, &remainingBalance, &paid); err != nil {
			return nil, fmt.Errorf("scan schedule item: %w", err)
		}
		items = append(items, model.ScheduleItem{
			CreditID:         cid,
			Number:           number,
			DueDate:          dueDate,
			Principal:        money.New(principal, currency),
			Interest:         money.New(interest, currency),
			Total:            money.New(total, currency),
			RemainingBalance: money.New(remainingBalance, currency),
			Paid:             paid,
		})
	}
	return items, rows.Err()
}

func (r *CreditRepo) EarlyPayments(ctx context.Context, creditID uuid.UUID) ([]model.EarlyPayment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, credit_id, paid_at, amount, kind
		FROM early_payments
		WHERE credit_id = $1
		ORDER BY paid_at
	`, creditID)
	if err != nil {
		return nil, fmt.Errorf("query early payments: %w", err)
	}
	defer rows.Close()

	currency, err := r.creditCurrency(ctx, creditID)
	if err != nil {
		return nil, err
	}

	var eps []model.EarlyPayment
	for rows.Next() {
		var (
			id, cid uuid.UUID
			paidAt  time.Time
			amount  decimal.Decimal
			kind    string
		)
		if err := rows.Scan(&id, &cid, &paidAt, &amount, &kind); err != nil {
			return nil, fmt.Errorf("scan early payment: %w", err)
		}
		eps = append(eps, model.EarlyPayment{
			ID:       id,
			CreditID: cid,
			Date:     paidAt,
			Amount:   money.New(amount, currency),
			Kind:     model.EarlyPaymentKind(kind),
		})
	}
	return eps, rows.Err()
}

func (r *CreditRepo) creditCurrency(ctx context.Context, creditID uuid.UUID) (money.Currency, error) {
	var code string
	if err := r.pool.QueryRow(ctx, `SELECT currency FROM credits WHERE id = $1`, creditID).Scan(&code); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return money.Currency{}, fmt.Errorf("%w: credit %s", model.ErrNotFound, creditID)
		}
		return money.Currency{}, fmt.Errorf("query credit currency: %w", err)
	}
	return money.NewCurrency(code)
}

func (r *CreditRepo) scanCredit(ctx context.Context, query string, args ...any) (model.Credit, error) {
	row := r.pool.QueryRow(ctx, query, args...)
	credit, err := scanCreditRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Credit{}, fmt.Errorf("%w: credit", model.ErrNotFound)
	}
	return credit, err
}

func scanCreditRow(row pgx.Row) (model.Credit, error) {
	var (
		id, accountID, categoryID uuid.UUID
		name, currencyCode        string
		principal, ratePercent    decimal.Decimal
		termMonths, paymentDay    int
		startDate                 time.Time
		bankPayment               *decimal.Decimal
		status                    string
		version                   int
		createdAt, updatedAt      time.Time
	)

	if err := row.Scan(&id, &name, &principal, &currencyCode, &ratePercent, &termMonths,
		&startDate, &paymentDay, &bankPayment, &status,
		&accountID, &categoryID, &version, &createdAt, &updatedAt); err != nil {
		return model.Credit{}, err
	}

	principalMoney, err := scanMoney(principal, currencyCode)
	if err != nil {
		return model.Credit{}, err
	}
	rate, err := money.NewRate(ratePercent)
	if err != nil {
		return model.Credit{}, fmt.Errorf("stored rate: %w", err)
	}

	var bp *money.Money
	if bankPayment != nil {
		m := money.New(*bankPayment, principalMoney.Currency())
		bp = &m
	}

	return model.ReconstructCredit(id, name, principalMoney, rate, termMonths, startDate,
		paymentDay, bp, model.CreditStatus(status), accountID, categoryID,
		version, createdAt, updatedAt), nil
}
