package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kassa-app/kassa/internal/domain/event"
	"github.com/kassa-app/kassa/pkg/events"
	"github.com/kassa-app/kassa/pkg/money"
)

// DistributionStatus is the two-phase state of an income distribution.
type DistributionStatus string

const (
	DistributionPlanned   DistributionStatus = "PLANNED"
	DistributionConfirmed DistributionStatus = "CONFIRMED"
)

// Confirmation carries everything set at confirm time. It exists as one
// struct, present exactly when status is CONFIRMED, so a half-confirmed row
// is unrepresentable. Cancel reverses the recorded allocations verbatim
// rather than recomputing them.
type Confirmation struct {
	ActualAmount money.Money
	Allocations  []Allocation
	CompletedAt  time.Time
}

// IncomeDistribution links one income to one fund. The lifecycle is
// planned -> confirmed -> (cancel) -> planned; no other transitions exist.
type IncomeDistribution struct {
	planned      money.Money
	status       DistributionStatus
	confirmation *Confirmation
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []events.DomainEvent
	version      int
	id           uuid.UUID
	incomeID     uuid.UUID
	fundID       uuid.UUID
}

// NewIncomeDistribution creates a planned distribution with a rule-produced
// planned amount.
func NewIncomeDistribution(incomeID, fundID uuid.UUID, planned money.Money) (IncomeDistribution, error) {
	if incomeID == uuid.Nil {
		return IncomeDistribution{}, fmt.Errorf("%w: income ID is required", ErrValidation)
	}
	if fundID == uuid.Nil {
		return IncomeDistribution{}, fmt.Errorf("%w: fund ID is required", ErrValidation)
	}
	if planned.IsNegative() {
		return IncomeDistribution{}, fmt.Errorf("%w: planned amount must not be negative, got %s", ErrValidation, planned)
	}

	now := time.Now().UTC()
	return IncomeDistribution{
		id:        uuid.New(),
		incomeID:  incomeID,
		fundID:    fundID,
		planned:   planned,
		status:    DistributionPlanned,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructIncomeDistribution recreates a distribution from persistence.
func ReconstructIncomeDistribution(
	id, incomeID, fundID uuid.UUID,
	planned money.Money,
	status DistributionStatus,
	confirmation *Confirmation,
	version int,
	createdAt, updatedAt time.Time,
) IncomeDistribution {
	return IncomeDistribution{
		id:           id,
		incomeID:     incomeID,
		fundID:       fundID,
		planned:      planned,
		status:       status,
		confirmation: confirmation,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Confirm fixes the actual amount and its asset breakdown, moving the
// distribution to CONFIRMED. The caller applies the matching fund and income
// deltas in the same transaction.
func (d IncomeDistribution) Confirm(actual money.Money, allocations []Allocation, now time.Time) (IncomeDistribution, error) {
	if d.status != DistributionPlanned {
		return IncomeDistribution{}, fmt.Errorf("%w: distribution %s is already confirmed", ErrIllegalStateTransition, d.id)
	}
	if !actual.IsPositive() {
		return IncomeDistribution{}, fmt.Errorf("%w: actual amount must be positive, got %s", ErrValidation, actual)
	}

	total, err := SumAllocations(allocations)
	if err != nil {
		return IncomeDistribution{}, err
	}
	if !total.Equal(actual) {
		return IncomeDistribution{}, fmt.Errorf("%w: allocations sum to %s, want %s", ErrValidation, total, actual)
	}

	kept := make([]Allocation, len(allocations))
	copy(kept, allocations)

	confirmed := d
	confirmed.status = DistributionConfirmed
	confirmed.confirmation = &Confirmation{
		ActualAmount: actual,
		Allocations:  kept,
		CompletedAt:  now,
	}
	confirmed.updatedAt = now
	confirmed.version++
	confirmed.domainEvents = append(copyEvents(d.domainEvents),
		event.NewDistributionConfirmed(d.id, d.incomeID, d.fundID, actual),
	)
	return confirmed, nil
}

// Cancel returns a confirmed distribution to PLANNED, clearing the
// confirmation. The returned reversal breakdown is the exact delta applied at
// confirm time; the caller reverses the fund and income with it in the same
// transaction.
func (d IncomeDistribution) Cancel(now time.Time) (IncomeDistribution, []Allocation, error) {
	if d.status != DistributionConfirmed {
		return IncomeDistribution{}, nil, fmt.Errorf("%w: distribution %s is not confirmed", ErrIllegalStateTransition, d.id)
	}
	if d.confirmation == nil {
		return IncomeDistribution{}, nil, fmt.Errorf("%w: confirmed distribution %s has no confirmation record", ErrInvariantViolation, d.id)
	}

	reversal := make([]Allocation, len(d.confirmation.Allocations))
	copy(reversal, d.confirmation.Allocations)
	reversed := d.confirmation.ActualAmount

	cancelled := d
	cancelled.status = DistributionPlanned
	cancelled.confirmation = nil
	cancelled.updatedAt = now
	cancelled.version++
	cancelled.domainEvents = append(copyEvents(d.domainEvents),
		event.NewDistributionCancelled(d.id, d.incomeID, d.fundID, reversed),
	)
	return cancelled, reversal, nil
}

// IsCompleted reports whether the distribution has been confirmed.
func (d IncomeDistribution) IsCompleted() bool {
	return d.status == DistributionConfirmed
}

// Accessors
func (d IncomeDistribution) ID() uuid.UUID                      { return d.id }
func (d IncomeDistribution) IncomeID() uuid.UUID                { return d.incomeID }
func (d IncomeDistribution) FundID() uuid.UUID                  { return d.fundID }
func (d IncomeDistribution) Planned() money.Money               { return d.planned }
func (d IncomeDistribution) Status() DistributionStatus         { return d.status }
func (d IncomeDistribution) Confirmation() *Confirmation        { return d.confirmation }
func (d IncomeDistribution) Version() int                       { return d.version }
func (d IncomeDistribution) CreatedAt() time.Time               { return d.createdAt }
func (d IncomeDistribution) UpdatedAt() time.Time               { return d.updatedAt }
func (d IncomeDistribution) DomainEvents() []events.DomainEvent { return d.domainEvents }
