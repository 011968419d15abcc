package service

import (
	"github.com/shopspring/decimal"

	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/pkg/money"
)

// CreditSummary is a derived read model over a credit and its current
// schedule. Percentages are principal-based.
type CreditSummary struct {
	OriginalPrincipal      money.Money
	RemainingPrincipal     money.Money
	TotalInterestPaid      money.Money
	TotalInterestRemaining money.Money
	NextPayment            *money.Money // nil when fully paid
	PaymentsMade           int
	PaymentsRemaining      int
	PercentComplete        decimal.Decimal // 0-100, two decimal places
}

// Summarize computes the summary from the credit parameters and the schedule
// rows. Remaining principal is the original principal minus the principal
// parts of paid rows; interest splits the same way.
func Summarize(credit model.Credit, items []model.ScheduleItem) CreditSummary {
	currency := credit.Principal().Currency()

	principalPaid := money.Zero(currency)
	interestPaid := money.Zero(currency)
	interestRemaining := money.Zero(currency)
	made, remaining := 0, 0
	var next *money.Money

	for _, item := range items {
		if item.Paid {
			principalPaid = principalPaid.MustAdd(item.Principal)
			interestPaid = interestPaid.MustAdd(item.Interest)
			made++
			continue
		}
		interestRemaining = interestRemaining.MustAdd(item.Interest)
		remaining++
		if next == nil {
			total := item.Total
			next = &total
		}
	}

	original := credit.Principal().RoundMinor()
	left := original.MustSubtract(principalPaid)

	percent := decimal.Zero
	if original.IsPositive() {
		percent = principalPaid.Amount().Mul(decimal.NewFromInt(100)).DivRound(original.Amount(), 2)
	}

	return CreditSummary{
		OriginalPrincipal:      original,
		RemainingPrincipal:     left,
		TotalInterestPaid:      interestPaid,
		TotalInterestRemaining: interestRemaining,
		NextPayment:            next,
		PaymentsMade:           made,
		PaymentsRemaining:      remaining,
		PercentComplete:        percent,
	}
}
