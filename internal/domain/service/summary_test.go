package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kassa-app/kassa/internal/domain/model"
)

func TestSummarize(t *testing.T) {
	spec := testScheduleSpec(t)

	credit, err := model.NewCredit("mortgage", spec.Principal, spec.AnnualRate, spec.TermMonths,
		spec.StartDate, spec.PaymentDay, uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	items, err := GenerateSchedule(spec)
	require.NoError(t, err)
	items[0].Paid = true
	items[1].Paid = true

	summary := Summarize(credit, items)

	assert.Equal(t, "1200000.00 RUB", summary.OriginalPrincipal.String())
	assert.Equal(t, 2, summary.PaymentsMade)
	assert.Equal(t, 10, summary.PaymentsRemaining)

	paidPrincipal := items[0].Principal.MustAdd(items[1].Principal)
	assert.Equal(t, summary.OriginalPrincipal.MustSubtract(paidPrincipal).String(), summary.RemainingPrincipal.String())

	paidInterest := items[0].Interest.MustAdd(items[1].Interest)
	assert.Equal(t, paidInterest.String(), summary.TotalInterestPaid.String())

	require.NotNil(t, summary.NextPayment)
	assert.Equal(t, items[2].Total.String(), summary.NextPayment.String())

	// 190 183.29 of 1 200 000 is 15.85%.
	assert.Equal(t, "15.85", summary.PercentComplete.String())
}

func TestSummarizeUntouchedCredit(t *testing.T) {
	spec := testScheduleSpec(t)

	credit, err := model.NewCredit("car loan", spec.Principal, spec.AnnualRate, spec.TermMonths,
		spec.StartDate, spec.PaymentDay, uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	items, err := GenerateSchedule(spec)
	require.NoError(t, err)

	summary := Summarize(credit, items)
	assert.True(t, summary.TotalInterestPaid.IsZero())
	assert.True(t, summary.PercentComplete.IsZero())
	assert.Equal(t, 12, summary.PaymentsRemaining)
	assert.Equal(t, summary.OriginalPrincipal.String(), summary.RemainingPrincipal.String())
}
