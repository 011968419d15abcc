package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kassa-app/kassa/pkg/money"
)

// Income is a received income event. RemainingForBudget tracks how much of it
// has not yet been turned into confirmed fund distributions; confirm draws it
// down and cancel restores it.
type Income struct {
	date      time.Time
	amount    money.Money
	remaining money.Money
	createdAt time.Time
	updatedAt time.Time
	version   int
	id        uuid.UUID
}

// NewIncome creates an income with the full amount still undistributed.
func NewIncome(date time.Time, amount money.Money) (Income, error) {
	if date.IsZero() {
		return Income{}, fmt.Errorf("%w: income date is required", ErrValidation)
	}
	if !amount.IsPositive() {
		return Income{}, fmt.Errorf("%w: income amount must be positive, got %s", ErrValidation, amount)
	}

	now := time.Now().UTC()
	return Income{
		id:        uuid.New(),
		date:      date,
		amount:    amount,
		remaining: amount,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructIncome recreates an Income from persistence.
func ReconstructIncome(
	id uuid.UUID,
	date time.Time,
	amount, remaining money.Money,
	version int,
	createdAt, updatedAt time.Time,
) Income {
	return Income{
		id:        id,
		date:      date,
		amount:    amount,
		remaining: remaining,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// DrawDown reduces the remaining-for-budget amount by a confirmed
// distribution. Over-distribution past zero is representable: rules can
// legitimately plan more than the income.
func (i Income) DrawDown(amount money.Money, now time.Time) (Income, error) {
	next, err := i.remaining.Subtract(amount)
	if err != nil {
		return Income{}, err
	}

	changed := i
	changed.remaining = next
	changed.updatedAt = now
	changed.version++
	return changed, nil
}

// Restore adds an amount back after a cancelled distribution.
func (i Income) Restore(amount money.Money, now time.Time) (Income, error) {
	next, err := i.remaining.Add(amount)
	if err != nil {
		return Income{}, err
	}

	changed := i
	changed.remaining = next
	changed.updatedAt = now
	changed.version++
	return changed, nil
}

// Accessors
func (i Income) ID() uuid.UUID                  { return i.id }
func (i Income) Date() time.Time                { return i.date }
func (i Income) Amount() money.Money            { return i.amount }
func (i Income) RemainingForBudget() money.Money { return i.remaining }
func (i Income) Version() int                   { return i.version }
func (i Income) CreatedAt() time.Time           { return i.createdAt }
func (i Income) UpdatedAt() time.Time           { return i.updatedAt }
