package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ratePrecision is the number of decimal digits carried by intermediate rate
// divisions (annual -> monthly, annual -> per-period). Monetary results are
// rounded to the minor unit only at the end of a computation chain.
const ratePrecision = 18

// Rate is an annual interest rate expressed as a percentage, backed by an
// exact decimal so repeated schedule recomputation never accumulates binary
// floating point error.
type Rate struct {
	percent decimal.Decimal
}

// NewRate creates a Rate from a decimal percentage, e.g. 12.5 for 12.5% p.a.
// Negative rates are rejected.
func NewRate(percent decimal.Decimal) (Rate, error) {
	if percent.IsNegative() {
		return Rate{}, fmt.Errorf("rate must not be negative, got %s%%", percent)
	}
	return Rate{percent: percent}, nil
}

// NewRateFromString parses a percentage string such as "12.5".
func NewRateFromString(s string) (Rate, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	return NewRate(d)
}

// NewRateFromBasisPoints creates a Rate from basis points, e.g. 1250 = 12.50%.
func NewRateFromBasisPoints(bps int64) (Rate, error) {
	return NewRate(decimal.New(bps, -2))
}

// ZeroRate is a 0% rate.
func ZeroRate() Rate {
	return Rate{percent: decimal.Zero}
}

// Percent returns the rate as a percentage value.
func (r Rate) Percent() decimal.Decimal {
	return r.percent
}

// BasisPoints returns the rate in basis points, rounded half-up.
func (r Rate) BasisPoints() int64 {
	return r.percent.Shift(2).Round(0).IntPart()
}

// Fraction returns the rate as a decimal fraction, e.g. 0.125 for 12.5%.
func (r Rate) Fraction() decimal.Decimal {
	return r.percent.Shift(-2)
}

// Monthly returns the monthly rate fraction (annual / 12).
func (r Rate) Monthly() decimal.Decimal {
	return r.PerPeriods(12)
}

// PerPeriods returns the per-period rate fraction for n periods per year.
func (r Rate) PerPeriods(n int) decimal.Decimal {
	return r.Fraction().DivRound(decimal.NewFromInt(int64(n)), ratePrecision)
}

// IsZero returns true for a 0% rate.
func (r Rate) IsZero() bool {
	return r.percent.IsZero()
}

// String formats the rate as a percentage, e.g. "12.5%".
func (r Rate) String() string {
	return r.percent.String() + "%"
}
