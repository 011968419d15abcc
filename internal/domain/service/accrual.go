package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/pkg/money"
)

// fractionPrecision bounds intermediate period-rate divisions so projections
// are deterministic across platforms.
const fractionPrecision = 18

// MaturityProjection is the full accrual picture of a deposit held to term.
type MaturityProjection struct {
	DepositID           uuid.UUID
	FinalAmount         money.Money
	TotalYield          money.Money
	EffectiveAnnualRate decimal.Decimal // percent, two decimal places
	MaturityDate        time.Time
	Records             []model.AccrualRecord
}

// ProjectMaturity computes every accrual record of a deposit held to its
// maturity date plus the derived totals.
//
// Interest is derived from the closed-form cumulative value at each period
// boundary, rounded to the minor unit there, with the period's interest being
// the difference from the previous boundary. The records therefore sum
// exactly to the final amount: rounding happens once per boundary, never on
// intermediate arithmetic.
func ProjectMaturity(d model.Deposit) (MaturityProjection, error) {
	records, final, err := AccrueThrough(d, d.TermMonths()/d.AccrualPeriod().MonthsPerPeriod(d.TermMonths()))
	if err != nil {
		return MaturityProjection{}, err
	}

	principal := d.Principal().RoundMinor()
	yield := final.MustSubtract(principal)

	return MaturityProjection{
		DepositID:           d.ID(),
		FinalAmount:         final,
		TotalYield:          yield,
		EffectiveAnnualRate: effectiveAnnualRate(principal, final, d.TermMonths()),
		MaturityDate:        d.MaturityDate(),
		Records:             records,
	}, nil
}

// ProjectAsOf computes the accrual records for the full periods elapsed at
// the given instant, and the deposit's value after them. Interest for a
// partial period in progress is not accrued; an early closure forfeits it.
func ProjectAsOf(d model.Deposit, asOf time.Time) ([]model.AccrualRecord, money.Money, error) {
	return AccrueThrough(d, ElapsedPeriods(d, asOf))
}

// ElapsedPeriods counts the accrual boundaries at or before the given
// instant, capped at the deposit's term.
func ElapsedPeriods(d model.Deposit, asOf time.Time) int {
	monthsPer := d.AccrualPeriod().MonthsPerPeriod(d.TermMonths())
	total := d.TermMonths() / monthsPer

	elapsed := 0
	for k := 1; k <= total; k++ {
		if accrualBoundary(d.StartDate(), monthsPer, k).After(asOf) {
			break
		}
		elapsed = k
	}
	return elapsed
}

// AccrueThrough builds the first n accrual records and the deposit value
// after them. For a capitalizing deposit the cumulative value is
//
//	P * (1 + f*m/12)^k
//
// with f the annual rate as a fraction and m the months per period; without
// capitalization interest is simple, P * (1 + f*m*k/12), and the balance
// column stays at the principal.
func AccrueThrough(d model.Deposit, periods int) ([]model.AccrualRecord, money.Money, error) {
	monthsPer := d.AccrualPeriod().MonthsPerPeriod(d.TermMonths())
	if total := d.TermMonths() / monthsPer; periods > total {
		return nil, money.Money{}, fmt.Errorf("%w: %d periods requested of a %d-period deposit",
			model.ErrValidation, periods, total)
	}

	principal := d.Principal().RoundMinor()
	currency := principal.Currency()
	exp := currency.Exponent()

	periodFraction := d.Rate().Fraction().
		Mul(decimal.NewFromInt(int64(monthsPer))).
		DivRound(decimal.NewFromInt(12), fractionPrecision)

	records := make([]model.AccrualRecord, 0, periods)
	previous := principal.Amount()
	one := decimal.NewFromInt(1)

	for k := 1; k <= periods; k++ {
		var cumulative decimal.Decimal
		if d.Capitalizing() {
			cumulative = principal.Amount().Mul(one.Add(periodFraction).Pow(decimal.NewFromInt(int64(k)))).Round(exp)
		} else {
			cumulative = principal.Amount().Mul(one.Add(periodFraction.Mul(decimal.NewFromInt(int64(k))))).Round(exp)
		}

		interest := cumulative.Sub(previous)
		previous = cumulative

		balance := cumulative
		if !d.Capitalizing() {
			balance = principal.Amount()
		}

		records = append(records, model.AccrualRecord{
			DepositID: d.ID(),
			Number:    k,
			PeriodEnd: accrualBoundary(d.StartDate(), monthsPer, k),
			Interest:  money.New(interest, currency),
			Balance:   money.New(balance, currency),
		})
	}

	// Value after the requested periods: capitalized balance, or principal
	// plus the interest paid out so far.
	value := money.New(previous, currency)
	return records, value, nil
}

// effectiveAnnualRate annualizes the realized yield:
//
//	((final/principal)^(12/term) - 1) * 100
//
// rounded to two decimal places, as a comparable figure across deposits of
// different terms and accrual modes.
func effectiveAnnualRate(principal, final money.Money, termMonths int) decimal.Decimal {
	if !principal.IsPositive() || termMonths == 0 {
		return decimal.Zero
	}

	growth := final.Amount().DivRound(principal.Amount(), fractionPrecision)
	exponent := decimal.NewFromInt(12).DivRound(decimal.NewFromInt(int64(termMonths)), fractionPrecision)

	annualized, err := growth.PowWithPrecision(exponent, fractionPrecision)
	if err != nil {
		return decimal.Zero
	}
	return annualized.Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100)).Round(2)
}

// accrualBoundary is the end of period k: the start date shifted by k
// periods, clamped to the last day of short months.
func accrualBoundary(start time.Time, monthsPer, k int) time.Time {
	anchor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, monthsPer*k, 0)
	day := start.Day()
	if lastDay := time.Date(anchor.Year(), anchor.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day(); day > lastDay {
		day = lastDay
	}
	return time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, time.UTC)
}
