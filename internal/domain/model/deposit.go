package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kassa-app/kassa/internal/domain/event"
	"github.com/kassa-app/kassa/pkg/events"
	"github.com/kassa-app/kassa/pkg/money"
)

// AccrualPeriod is the frequency at which deposit interest is recorded.
type AccrualPeriod string

const (
	AccrualMonthly    AccrualPeriod = "MONTHLY"
	AccrualQuarterly  AccrualPeriod = "QUARTERLY"
	AccrualAnnually   AccrualPeriod = "ANNUALLY"
	AccrualAtMaturity AccrualPeriod = "AT_MATURITY"
)

// MonthsPerPeriod returns the period length in months. For AT_MATURITY the
// whole term is a single period, so the caller supplies the term.
func (p AccrualPeriod) MonthsPerPeriod(termMonths int) int {
	switch p {
	case AccrualMonthly:
		return 1
	case AccrualQuarterly:
		return 3
	case AccrualAnnually:
		return 12
	default:
		return termMonths
	}
}

func (p AccrualPeriod) valid() bool {
	switch p {
	case AccrualMonthly, AccrualQuarterly, AccrualAnnually, AccrualAtMaturity:
		return true
	}
	return false
}

// DepositStatus is the lifecycle state of a deposit.
type DepositStatus string

const (
	DepositStatusActive      DepositStatus = "ACTIVE"
	DepositStatusMatured     DepositStatus = "MATURED"
	DepositStatusClosedEarly DepositStatus = "CLOSED_EARLY"
)

// Deposit is the aggregate root for a term deposit held in a fund.
type Deposit struct {
	principal     money.Money
	rate          money.Rate
	termMonths    int
	accrualPeriod AccrualPeriod
	capitalizing  bool
	startDate     time.Time
	status        DepositStatus
	closedAt      *time.Time
	createdAt     time.Time
	updatedAt     time.Time
	domainEvents  []events.DomainEvent
	version       int
	id            uuid.UUID
	fundID        uuid.UUID
}

// NewDeposit creates an active deposit. The term must divide evenly into
// whole accrual periods so every accrual event lands on a period boundary
// inside the original term.
func NewDeposit(
	fundID uuid.UUID,
	principal money.Money,
	rate money.Rate,
	termMonths int,
	accrualPeriod AccrualPeriod,
	capitalizing bool,
	startDate time.Time,
) (Deposit, error) {
	if fundID == uuid.Nil {
		return Deposit{}, fmt.Errorf("%w: fund ID is required", ErrValidation)
	}
	if !principal.IsPositive() {
		return Deposit{}, fmt.Errorf("%w: principal must be positive, got %s", ErrValidation, principal)
	}
	if termMonths <= 0 {
		return Deposit{}, fmt.Errorf("%w: term must be at least one month, got %d", ErrValidation, termMonths)
	}
	if !accrualPeriod.valid() {
		return Deposit{}, fmt.Errorf("%w: unknown accrual period %q", ErrValidation, accrualPeriod)
	}
	if months := accrualPeriod.MonthsPerPeriod(termMonths); termMonths%months != 0 {
		return Deposit{}, fmt.Errorf("%w: term of %d months does not divide into %d-month accrual periods", ErrValidation, termMonths, months)
	}
	if startDate.IsZero() {
		return Deposit{}, fmt.Errorf("%w: start date is required", ErrValidation)
	}

	now := time.Now().UTC()
	depositID := uuid.New()

	d := Deposit{
		id:            depositID,
		fundID:        fundID,
		principal:     principal,
		rate:          rate,
		termMonths:    termMonths,
		accrualPeriod: accrualPeriod,
		capitalizing:  capitalizing,
		startDate:     startDate,
		status:        DepositStatusActive,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}

	d.domainEvents = append(d.domainEvents,
		event.NewDepositOpened(depositID, fundID, principal),
	)

	return d, nil
}

// ReconstructDeposit recreates a Deposit from persistence (no validation, no events).
func ReconstructDeposit(
	id, fundID uuid.UUID,
	principal money.Money,
	rate money.Rate,
	termMonths int,
	accrualPeriod AccrualPeriod,
	capitalizing bool,
	startDate time.Time,
	status DepositStatus,
	closedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) Deposit {
	return Deposit{
		id:            id,
		fundID:        fundID,
		principal:     principal,
		rate:          rate,
		termMonths:    termMonths,
		accrualPeriod: accrualPeriod,
		capitalizing:  capitalizing,
		startDate:     startDate,
		status:        status,
		closedAt:      closedAt,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// MaturityDate is the end of the deposit's term.
func (d Deposit) MaturityDate() time.Time {
	return d.startDate.AddDate(0, d.termMonths, 0)
}

// Mature transitions the deposit from ACTIVE to MATURED.
func (d Deposit) Mature(now time.Time) (Deposit, error) {
	if d.status != DepositStatusActive {
		return Deposit{}, fmt.Errorf("%w: deposit is %s, only active deposits mature", ErrIllegalStateTransition, d.status)
	}

	matured := d
	matured.status = DepositStatusMatured
	matured.updatedAt = now
	matured.version++
	matured.domainEvents = append(copyEvents(d.domainEvents),
		event.NewDepositMatured(d.id),
	)
	return matured, nil
}

// CloseEarly transitions the deposit to CLOSED_EARLY. The transition is
// terminal: no accrual events are generated afterwards. The payout carries
// the recomputed value over elapsed periods only.
func (d Deposit) CloseEarly(payout money.Money, now time.Time) (Deposit, error) {
	if d.status != DepositStatusActive {
		return Deposit{}, fmt.Errorf("%w: deposit is %s, only active deposits close early", ErrIllegalStateTransition, d.status)
	}

	closedAt := now
	closed := d
	closed.status = DepositStatusClosedEarly
	closed.closedAt = &closedAt
	closed.updatedAt = now
	closed.version++
	closed.domainEvents = append(copyEvents(d.domainEvents),
		event.NewDepositClosedEarly(d.id, payout, now),
	)
	return closed, nil
}

// Accessors
func (d Deposit) ID() uuid.UUID                      { return d.id }
func (d Deposit) FundID() uuid.UUID                  { return d.fundID }
func (d Deposit) Principal() money.Money             { return d.principal }
func (d Deposit) Rate() money.Rate                   { return d.rate }
func (d Deposit) TermMonths() int                    { return d.termMonths }
func (d Deposit) AccrualPeriod() AccrualPeriod       { return d.accrualPeriod }
func (d Deposit) Capitalizing() bool                 { return d.capitalizing }
func (d Deposit) StartDate() time.Time               { return d.startDate }
func (d Deposit) Status() DepositStatus              { return d.status }
func (d Deposit) ClosedAt() *time.Time               { return d.closedAt }
func (d Deposit) Version() int                       { return d.version }
func (d Deposit) CreatedAt() time.Time               { return d.createdAt }
func (d Deposit) UpdatedAt() time.Time               { return d.updatedAt }
func (d Deposit) DomainEvents() []events.DomainEvent { return d.domainEvents }

// AccrualRecord is one accrual event at a period boundary. Balance is the
// cumulative balance after the accrual: principal plus capitalized interest
// to date, or the unchanged principal for non-capitalizing deposits.
type AccrualRecord struct {
	DepositID uuid.UUID
	Number    int // 1-based period index
	PeriodEnd time.Time
	Interest  money.Money
	Balance   money.Money
}
