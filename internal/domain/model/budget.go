package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kassa-app/kassa/internal/domain/event"
	"github.com/kassa-app/kassa/pkg/events"
	"github.com/kassa-app/kassa/pkg/money"
)

// CurrencyLimit is a planned spending ceiling for one currency within a
// budget item. Remaining may go negative: over-budget is representable, not
// rejected.
type CurrencyLimit struct {
	Currency   money.Currency
	TotalLimit money.Money // recalculated from planned expenses
	Buffer     money.Money // manual additive headroom, never overwritten
	Actual     money.Money // spent so far
}

// Remaining is totalLimit + buffer - actual.
func (l CurrencyLimit) Remaining() money.Money {
	return l.TotalLimit.MustAdd(l.Buffer).MustSubtract(l.Actual)
}

// PlannedExpense is one planned expense amount feeding a budget item's
// currency limits.
type PlannedExpense struct {
	Amount money.Money
}

// BudgetItem is one expense category within one month's budget, carrying zero
// or more per-currency limits.
type BudgetItem struct {
	limits       []CurrencyLimit
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []events.DomainEvent
	version      int
	id           uuid.UUID
	budgetID     uuid.UUID
	categoryID   uuid.UUID
}

// NewBudgetItem creates a budget item with no limits yet.
func NewBudgetItem(budgetID, categoryID uuid.UUID) (BudgetItem, error) {
	if budgetID == uuid.Nil {
		return BudgetItem{}, fmt.Errorf("%w: budget ID is required", ErrValidation)
	}
	if categoryID == uuid.Nil {
		return BudgetItem{}, fmt.Errorf("%w: category ID is required", ErrValidation)
	}

	now := time.Now().UTC()
	return BudgetItem{
		id:         uuid.New(),
		budgetID:   budgetID,
		categoryID: categoryID,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructBudgetItem recreates a BudgetItem from persistence.
func ReconstructBudgetItem(
	id, budgetID, categoryID uuid.UUID,
	limits []CurrencyLimit,
	version int,
	createdAt, updatedAt time.Time,
) BudgetItem {
	return BudgetItem{
		id:         id,
		budgetID:   budgetID,
		categoryID: categoryID,
		limits:     limits,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// RecalculateLimits resets each currency limit's total to the sum of the
// planned expenses in that currency. Manual buffers survive: they stay
// additive on top of the recalculated totals. Limits for currencies with no
// planned expenses are kept only while they carry a buffer or actuals.
func (b BudgetItem) RecalculateLimits(planned []PlannedExpense, now time.Time) (BudgetItem, error) {
	totals := make(map[string]money.Money)
	for _, p := range planned {
		code := p.Amount.Currency().Code()
		current, ok := totals[code]
		if !ok {
			current = money.Zero(p.Amount.Currency())
		}
		sum, err := current.Add(p.Amount)
		if err != nil {
			return BudgetItem{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		totals[code] = sum
	}

	existing := make(map[string]CurrencyLimit, len(b.limits))
	for _, l := range b.limits {
		existing[l.Currency.Code()] = l
	}

	codes := make(map[string]struct{}, len(totals)+len(existing))
	for code := range totals {
		codes[code] = struct{}{}
	}
	for code := range existing {
		codes[code] = struct{}{}
	}

	ordered := make([]string, 0, len(codes))
	for code := range codes {
		ordered = append(ordered, code)
	}
	sort.Strings(ordered)

	next := make([]CurrencyLimit, 0, len(ordered))
	for _, code := range ordered {
		limit, had := existing[code]
		if !had {
			cur := totals[code].Currency()
			limit = CurrencyLimit{
				Currency:   cur,
				TotalLimit: money.Zero(cur),
				Buffer:     money.Zero(cur),
				Actual:     money.Zero(cur),
			}
		}

		total, has := totals[code]
		if !has {
			if limit.Buffer.IsZero() && limit.Actual.IsZero() {
				continue
			}
			total = money.Zero(limit.Currency)
		}
		limit.TotalLimit = total
		next = append(next, limit)
	}

	changed := b
	changed.limits = next
	changed.updatedAt = now
	changed.version++
	changed.domainEvents = append(copyEvents(b.domainEvents),
		event.NewBudgetLimitsRecalculated(b.id, len(next)),
	)
	return changed, nil
}

// RecordActual adds a spent amount to the matching currency limit, creating
// the limit row when the currency is new.
func (b BudgetItem) RecordActual(spent money.Money, now time.Time) (BudgetItem, error) {
	if !spent.IsPositive() {
		return BudgetItem{}, fmt.Errorf("%w: spent amount must be positive, got %s", ErrValidation, spent)
	}

	changed := b
	changed.limits = make([]CurrencyLimit, len(b.limits))
	copy(changed.limits, b.limits)

	found := false
	for i, l := range changed.limits {
		if l.Currency == spent.Currency() {
			changed.limits[i].Actual = l.Actual.MustAdd(spent)
			found = true
			break
		}
	}
	if !found {
		changed.limits = append(changed.limits, CurrencyLimit{
			Currency:   spent.Currency(),
			TotalLimit: money.Zero(spent.Currency()),
			Buffer:     money.Zero(spent.Currency()),
			Actual:     spent,
		})
	}

	changed.updatedAt = now
	changed.version++
	return changed, nil
}

// Limits returns a copy of the per-currency limits.
func (b BudgetItem) Limits() []CurrencyLimit {
	out := make([]CurrencyLimit, len(b.limits))
	copy(out, b.limits)
	return out
}

// Accessors
func (b BudgetItem) ID() uuid.UUID                      { return b.id }
func (b BudgetItem) BudgetID() uuid.UUID                { return b.budgetID }
func (b BudgetItem) CategoryID() uuid.UUID              { return b.categoryID }
func (b BudgetItem) Version() int                       { return b.version }
func (b BudgetItem) CreatedAt() time.Time               { return b.createdAt }
func (b BudgetItem) UpdatedAt() time.Time               { return b.updatedAt }
func (b BudgetItem) DomainEvents() []events.DomainEvent { return b.domainEvents }
