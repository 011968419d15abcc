package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/pkg/money"
)

func testDeposit(t *testing.T, period model.AccrualPeriod, capitalizing bool) model.Deposit {
	t.Helper()

	rate, err := money.NewRateFromString("20")
	require.NoError(t, err)

	d, err := model.NewDeposit(uuid.New(), mustMoney(t, "100000", "RUB"), rate, 12, period, capitalizing,
		time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return d
}

func TestProjectMaturityMonthlyCapitalizing(t *testing.T) {
	d := testDeposit(t, model.AccrualMonthly, true)

	proj, err := ProjectMaturity(d)
	require.NoError(t, err)

	// 100 000 at 20% compounded monthly over a year.
	assert.Equal(t, "121939.11 RUB", proj.FinalAmount.String())
	assert.Equal(t, "21939.11 RUB", proj.TotalYield.String())
	assert.Equal(t, "21.94", proj.EffectiveAnnualRate.String())
	assert.Equal(t, time.Date(2027, time.January, 10, 0, 0, 0, 0, time.UTC), proj.MaturityDate)
	require.Len(t, proj.Records, 12)

	// Interest entries sum exactly to the yield: rounding happens at each
	// boundary, never on the total.
	sum := money.Zero(money.RUB)
	for _, rec := range proj.Records {
		sum = sum.MustAdd(rec.Interest)
	}
	assert.True(t, sum.Equal(proj.TotalYield), "got %s", sum)

	assert.Equal(t, "1666.67 RUB", proj.Records[0].Interest.String())
	assert.Equal(t, "101666.67 RUB", proj.Records[0].Balance.String())
	assert.Equal(t, proj.FinalAmount.String(), proj.Records[11].Balance.String())
}

func TestProjectMaturityMonthlySimple(t *testing.T) {
	d := testDeposit(t, model.AccrualMonthly, false)

	proj, err := ProjectMaturity(d)
	require.NoError(t, err)

	// Simple interest: 20% of 100 000 over a year.
	assert.Equal(t, "120000.00 RUB", proj.FinalAmount.String())
	assert.Equal(t, "20000.00 RUB", proj.TotalYield.String())

	for _, rec := range proj.Records {
		assert.Equal(t, "100000.00 RUB", rec.Balance.String(), "period %d", rec.Number)
	}

	sum := money.Zero(money.RUB)
	for _, rec := range proj.Records {
		sum = sum.MustAdd(rec.Interest)
	}
	assert.Equal(t, "20000.00 RUB", sum.String())
}

func TestProjectMaturityQuarterlyCapitalizing(t *testing.T) {
	d := testDeposit(t, model.AccrualQuarterly, true)

	proj, err := ProjectMaturity(d)
	require.NoError(t, err)
	require.Len(t, proj.Records, 4)

	// 100 000 * 1.05^4.
	assert.Equal(t, "121550.63 RUB", proj.FinalAmount.String())
	assert.Equal(t, time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC), proj.Records[0].PeriodEnd)
}

func TestProjectMaturityAtMaturity(t *testing.T) {
	d := testDeposit(t, model.AccrualAtMaturity, true)

	proj, err := ProjectMaturity(d)
	require.NoError(t, err)
	require.Len(t, proj.Records, 1)

	assert.Equal(t, "120000.00 RUB", proj.FinalAmount.String())
	assert.Equal(t, d.MaturityDate(), proj.Records[0].PeriodEnd)
}

func TestProjectAsOfForfeitsPartialPeriod(t *testing.T) {
	d := testDeposit(t, model.AccrualMonthly, true)

	// Mid-April: three full periods elapsed, the fourth is in progress.
	records, value, err := ProjectAsOf(d, time.Date(2026, time.April, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, records[2].Balance.String(), value.String())
	assert.Equal(t, 3, ElapsedPeriods(d, time.Date(2026, time.April, 25, 0, 0, 0, 0, time.UTC)))
}

func TestProjectAsOfBeforeFirstBoundary(t *testing.T) {
	d := testDeposit(t, model.AccrualMonthly, true)

	records, value, err := ProjectAsOf(d, d.StartDate().AddDate(0, 0, 5))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, "100000.00 RUB", value.String())
}

func TestAccrueThroughRejectsExcessPeriods(t *testing.T) {
	d := testDeposit(t, model.AccrualQuarterly, true)

	_, _, err := AccrueThrough(d, 5)
	assert.ErrorIs(t, err, model.ErrValidation)
}
