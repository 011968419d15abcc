package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kassa-app/kassa/pkg/money"
)

// Allocation is an asset-level slice of a fund movement: "this much of the
// confirmed amount went into this asset". The breakdown is retained verbatim
// on confirmation so a later cancel can reverse the exact delta even if asset
// prices moved.
type Allocation struct {
	Asset  string
	Amount money.Money
}

// SumAllocations adds up an allocation breakdown, rejecting empty breakdowns,
// non-positive parts and mixed currencies.
func SumAllocations(allocations []Allocation) (money.Money, error) {
	if len(allocations) == 0 {
		return money.Money{}, fmt.Errorf("%w: at least one allocation is required", ErrValidation)
	}

	total := money.Zero(allocations[0].Amount.Currency())
	for _, a := range allocations {
		if a.Asset == "" {
			return money.Money{}, fmt.Errorf("%w: allocation asset is required", ErrValidation)
		}
		if !a.Amount.IsPositive() {
			return money.Money{}, fmt.Errorf("%w: allocation for %s must be positive, got %s", ErrValidation, a.Asset, a.Amount)
		}
		sum, err := total.Add(a.Amount)
		if err != nil {
			return money.Money{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		total = sum
	}
	return total, nil
}

// Fund is a savings fund holding per-asset balances in a single currency.
// Fund movements carry no events of their own; they are reported through the
// IncomeDistribution events that cause them.
type Fund struct {
	name      string
	currency  money.Currency
	balances  map[string]money.Money
	createdAt time.Time
	updatedAt time.Time
	version   int
	id        uuid.UUID
}

// NewFund creates an empty fund.
func NewFund(name string, currency money.Currency) (Fund, error) {
	if name == "" {
		return Fund{}, fmt.Errorf("%w: fund name is required", ErrValidation)
	}

	now := time.Now().UTC()
	return Fund{
		id:        uuid.New(),
		name:      name,
		currency:  currency,
		balances:  make(map[string]money.Money),
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructFund recreates a Fund from persistence.
func ReconstructFund(
	id uuid.UUID,
	name string,
	currency money.Currency,
	balances map[string]money.Money,
	version int,
	createdAt, updatedAt time.Time,
) Fund {
	if balances == nil {
		balances = make(map[string]money.Money)
	}
	return Fund{
		id:        id,
		name:      name,
		currency:  currency,
		balances:  balances,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ApplyAllocations increments per-asset balances by the breakdown.
func (f Fund) ApplyAllocations(allocations []Allocation, now time.Time) (Fund, error) {
	return f.shift(allocations, false, now)
}

// ReverseAllocations decrements per-asset balances by the exact breakdown
// applied earlier. This is the compensating half of confirm/cancel.
func (f Fund) ReverseAllocations(allocations []Allocation, now time.Time) (Fund, error) {
	return f.shift(allocations, true, now)
}

func (f Fund) shift(allocations []Allocation, reverse bool, now time.Time) (Fund, error) {
	changed := f
	changed.balances = make(map[string]money.Money, len(f.balances))
	for asset, bal := range f.balances {
		changed.balances[asset] = bal
	}

	for _, a := range allocations {
		if a.Amount.Currency() != f.currency {
			return Fund{}, fmt.Errorf("%w: allocation in %s against %s fund", money.ErrCurrencyMismatch, a.Amount.Currency(), f.currency)
		}
		current, ok := changed.balances[a.Asset]
		if !ok {
			current = money.Zero(f.currency)
		}
		var (
			next money.Money
			err  error
		)
		if reverse {
			next, err = current.Subtract(a.Amount)
		} else {
			next, err = current.Add(a.Amount)
		}
		if err != nil {
			return Fund{}, err
		}
		changed.balances[a.Asset] = next
	}

	changed.updatedAt = now
	changed.version++
	return changed, nil
}

// Balance returns the balance held in one asset.
func (f Fund) Balance(asset string) money.Money {
	if bal, ok := f.balances[asset]; ok {
		return bal
	}
	return money.Zero(f.currency)
}

// Balances returns a copy of the per-asset balances.
func (f Fund) Balances() map[string]money.Money {
	out := make(map[string]money.Money, len(f.balances))
	for asset, bal := range f.balances {
		out[asset] = bal
	}
	return out
}

// TotalBalance sums all asset balances.
func (f Fund) TotalBalance() money.Money {
	assets := make([]string, 0, len(f.balances))
	for asset := range f.balances {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	total := money.Zero(f.currency)
	for _, asset := range assets {
		total = total.MustAdd(f.balances[asset])
	}
	return total
}

// Accessors
func (f Fund) ID() uuid.UUID            { return f.id }
func (f Fund) Name() string             { return f.name }
func (f Fund) Currency() money.Currency { return f.currency }
func (f Fund) Version() int             { return f.version }
func (f Fund) CreatedAt() time.Time     { return f.createdAt }
func (f Fund) UpdatedAt() time.Time     { return f.updatedAt }
