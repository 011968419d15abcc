package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kassa-app/kassa/internal/domain/event"
	"github.com/kassa-app/kassa/pkg/events"
	"github.com/kassa-app/kassa/pkg/money"
)

// CreditStatus is the lifecycle state of a credit.
type CreditStatus string

const (
	CreditStatusActive    CreditStatus = "ACTIVE"
	CreditStatusCompleted CreditStatus = "COMPLETED"
	CreditStatusCancelled CreditStatus = "CANCELLED"
)

// Credit is the aggregate root for a loan taken by the household. The schedule
// itself is derived state owned by the credit: schedule rows and early
// payments are persisted with it and regenerated through the amortization
// calculator, never mutated directly.
type Credit struct {
	name         string
	principal    money.Money
	rate         money.Rate
	termMonths   int
	startDate    time.Time
	paymentDay   int
	bankPayment  *money.Money
	status       CreditStatus
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []events.DomainEvent
	version      int
	id           uuid.UUID
	accountID    uuid.UUID
	categoryID   uuid.UUID
}

// NewCredit creates a new active credit. All validation happens here, before
// any schedule is generated.
func NewCredit(
	name string,
	principal money.Money,
	rate money.Rate,
	termMonths int,
	startDate time.Time,
	paymentDay int,
	accountID, categoryID uuid.UUID,
	bankPayment *money.Money,
) (Credit, error) {
	if name == "" {
		return Credit{}, fmt.Errorf("%w: credit name is required", ErrValidation)
	}
	if !principal.IsPositive() {
		return Credit{}, fmt.Errorf("%w: principal must be positive, got %s", ErrValidation, principal)
	}
	if termMonths <= 0 {
		return Credit{}, fmt.Errorf("%w: term must be at least one month, got %d", ErrValidation, termMonths)
	}
	if paymentDay < 1 || paymentDay > 31 {
		return Credit{}, fmt.Errorf("%w: payment day must be within 1-31, got %d", ErrValidation, paymentDay)
	}
	if startDate.IsZero() {
		return Credit{}, fmt.Errorf("%w: start date is required", ErrValidation)
	}
	if accountID == uuid.Nil {
		return Credit{}, fmt.Errorf("%w: account ID is required", ErrValidation)
	}
	if categoryID == uuid.Nil {
		return Credit{}, fmt.Errorf("%w: category ID is required", ErrValidation)
	}
	if bankPayment != nil {
		if !bankPayment.IsPositive() {
			return Credit{}, fmt.Errorf("%w: bank payment override must be positive", ErrValidation)
		}
		if bankPayment.Currency() != principal.Currency() {
			return Credit{}, fmt.Errorf("%w: bank payment override must be in %s", ErrValidation, principal.Currency())
		}
	}

	now := time.Now().UTC()
	creditID := uuid.New()

	c := Credit{
		id:          creditID,
		name:        name,
		principal:   principal,
		rate:        rate,
		termMonths:  termMonths,
		startDate:   startDate,
		paymentDay:  paymentDay,
		bankPayment: bankPayment,
		status:      CreditStatusActive,
		accountID:   accountID,
		categoryID:  categoryID,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}

	c.domainEvents = append(c.domainEvents,
		event.NewCreditCreated(creditID, principal, rate, termMonths),
	)

	return c, nil
}

// ReconstructCredit recreates a Credit from persistence (no validation, no events).
func ReconstructCredit(
	id uuid.UUID,
	name string,
	principal money.Money,
	rate money.Rate,
	termMonths int,
	startDate time.Time,
	paymentDay int,
	bankPayment *money.Money,
	status CreditStatus,
	accountID, categoryID uuid.UUID,
	version int,
	createdAt, updatedAt time.Time,
) Credit {
	return Credit{
		id:          id,
		name:        name,
		principal:   principal,
		rate:        rate,
		termMonths:  termMonths,
		startDate:   startDate,
		paymentDay:  paymentDay,
		bankPayment: bankPayment,
		status:      status,
		accountID:   accountID,
		categoryID:  categoryID,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// UpdateDetails applies the rate-preserving edits: name, funding account,
// expense category and payment day. Schedule-affecting fields are immutable;
// schedule changes go through early payments and regeneration.
func (c Credit) UpdateDetails(name string, accountID, categoryID uuid.UUID, paymentDay int, now time.Time) (Credit, error) {
	if c.status != CreditStatusActive {
		return Credit{}, fmt.Errorf("%w: cannot edit a %s credit", ErrIllegalStateTransition, c.status)
	}
	if name == "" {
		return Credit{}, fmt.Errorf("%w: credit name is required", ErrValidation)
	}
	if paymentDay < 1 || paymentDay > 31 {
		return Credit{}, fmt.Errorf("%w: payment day must be within 1-31, got %d", ErrValidation, paymentDay)
	}

	updated := c
	updated.name = name
	updated.accountID = accountID
	updated.categoryID = categoryID
	updated.paymentDay = paymentDay
	updated.updatedAt = now
	updated.version++
	return updated, nil
}

// Complete soft-completes the credit; the schedule is retained for history.
func (c Credit) Complete(now time.Time) (Credit, error) {
	return c.transition(CreditStatusCompleted, now)
}

// Cancel soft-cancels the credit; the schedule is retained for history.
func (c Credit) Cancel(now time.Time) (Credit, error) {
	return c.transition(CreditStatusCancelled, now)
}

func (c Credit) transition(to CreditStatus, now time.Time) (Credit, error) {
	if c.status != CreditStatusActive {
		return Credit{}, fmt.Errorf("%w: credit is %s, only active credits can become %s", ErrIllegalStateTransition, c.status, to)
	}

	changed := c
	changed.status = to
	changed.updatedAt = now
	changed.version++
	changed.domainEvents = append(copyEvents(c.domainEvents),
		event.NewCreditStatusChanged(c.id, string(to)),
	)
	return changed, nil
}

// MarkRegenerated records that the schedule was re-derived with the given
// number of items. The version bump serializes concurrent regenerations.
func (c Credit) MarkRegenerated(items int, now time.Time) Credit {
	changed := c
	changed.updatedAt = now
	changed.version++
	changed.domainEvents = append(copyEvents(c.domainEvents),
		event.NewScheduleRegenerated(c.id, items),
	)
	return changed
}

// MarkEarlyPaymentRecorded records the fold of a new early payment.
func (c Credit) MarkEarlyPaymentRecorded(ep EarlyPayment, now time.Time) Credit {
	changed := c
	changed.updatedAt = now
	changed.version++
	changed.domainEvents = append(copyEvents(c.domainEvents),
		event.NewEarlyPaymentRecorded(c.id, ep.ID, ep.Amount, string(ep.Kind), ep.Date),
	)
	return changed
}

// MarkEarlyPaymentDeleted records the removal of an early payment.
func (c Credit) MarkEarlyPaymentDeleted(earlyPaymentID uuid.UUID, now time.Time) Credit {
	changed := c
	changed.updatedAt = now
	changed.version++
	changed.domainEvents = append(copyEvents(c.domainEvents),
		event.NewEarlyPaymentDeleted(c.id, earlyPaymentID),
	)
	return changed
}

// Accessors
func (c Credit) ID() uuid.UUID                      { return c.id }
func (c Credit) Name() string                       { return c.name }
func (c Credit) Principal() money.Money             { return c.principal }
func (c Credit) Rate() money.Rate                   { return c.rate }
func (c Credit) TermMonths() int                    { return c.termMonths }
func (c Credit) StartDate() time.Time               { return c.startDate }
func (c Credit) PaymentDay() int                    { return c.paymentDay }
func (c Credit) BankPayment() *money.Money          { return c.bankPayment }
func (c Credit) Status() CreditStatus               { return c.status }
func (c Credit) AccountID() uuid.UUID               { return c.accountID }
func (c Credit) CategoryID() uuid.UUID              { return c.categoryID }
func (c Credit) Version() int                       { return c.version }
func (c Credit) CreatedAt() time.Time               { return c.createdAt }
func (c Credit) UpdatedAt() time.Time               { return c.updatedAt }
func (c Credit) DomainEvents() []events.DomainEvent { return c.domainEvents }

// copyEvents creates a defensive copy of an event slice.
func copyEvents(evts []events.DomainEvent) []events.DomainEvent {
	if evts == nil {
		return nil
	}
	c := make([]events.DomainEvent, len(evts))
	copy(c, evts)
	return c
}
