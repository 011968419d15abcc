package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/pkg/money"
)

// ScheduleSpec is the full input to schedule generation. It is deliberately a
// plain value: the calculator is pure, takes everything it needs as
// parameters and touches no ambient state.
type ScheduleSpec struct {
	CreditID    uuid.UUID
	Principal   money.Money
	AnnualRate  money.Rate
	TermMonths  int
	StartDate   time.Time
	PaymentDay  int
	BankPayment *money.Money // fixed installment override, used verbatim when set
}

// openLoopCeiling bounds the reduce-term loop. A truncated schedule is always
// shorter than the original term; hitting the ceiling means the calculator
// diverged.
const openLoopCeiling = 12000

// GenerateSchedule computes an amortization schedule.
//
// Without an override the installment is the standard annuity
//
//	A = P * r * (1+r)^n / ((1+r)^n - 1)
//
// with r the monthly rate and n the term in months. Interest is rounded
// half-up to the minor unit per period; the final period takes the whole
// remaining balance so the principal parts sum exactly to the principal.
// A zero term or zero principal yields an empty schedule; a zero rate
// degenerates to equal principal-only installments.
func GenerateSchedule(spec ScheduleSpec) ([]model.ScheduleItem, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	opening := spec.Principal.RoundMinor().Amount()
	if spec.TermMonths == 0 || opening.IsZero() {
		return nil, nil
	}

	monthlyRate := spec.AnnualRate.Monthly()

	var payment decimal.Decimal
	if spec.BankPayment != nil {
		payment = spec.BankPayment.RoundMinor().Amount()
	} else {
		payment = annuityPayment(opening, monthlyRate, spec.TermMonths, spec.Principal.Currency().Exponent())
	}

	return buildSegment(segmentParams{
		spec:        spec,
		opening:     opening,
		monthlyRate: monthlyRate,
		payment:     payment,
		periods:     spec.TermMonths,
		firstNumber: 1,
	})
}

// ApplyEarlyPayment folds one early payment into an existing schedule:
// the rows strictly before the payment date are kept, the balance at that
// point is reduced by the payment amount, and the tail is re-derived: with a
// fresh annuity over the remaining schedule rows for REDUCE_PAYMENT, or with
// the unchanged installment over a shorter tail for REDUCE_TERM.
func ApplyEarlyPayment(spec ScheduleSpec, items []model.ScheduleItem, ep model.EarlyPayment) ([]model.ScheduleItem, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	cut := 0
	for cut < len(items) && items[cut].DueDate.Before(ep.Date) {
		cut++
	}

	remaining := spec.Principal.RoundMinor()
	if cut > 0 {
		remaining = items[cut-1].RemainingBalance
	}

	epAmount := ep.Amount.RoundMinor()
	cmp, err := epAmount.Compare(remaining)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	if cmp >= 0 {
		return nil, fmt.Errorf("%w: early payment of %s against remaining balance of %s; mark the credit completed instead",
			model.ErrOverpaymentRejected, epAmount, remaining)
	}

	newBalance := remaining.MustSubtract(epAmount).Amount()

	head := make([]model.ScheduleItem, cut)
	copy(head, items[:cut])

	monthlyRate := spec.AnnualRate.Monthly()
	exp := spec.Principal.Currency().Exponent()

	params := segmentParams{
		spec:        spec,
		opening:     newBalance,
		monthlyRate: monthlyRate,
		firstNumber: cut + 1,
	}

	switch ep.Kind {
	case model.EarlyPaymentReducePayment:
		// Remaining periods come from the actual rows, not the nominal
		// term: a prior REDUCE_TERM fold may already have shortened the
		// schedule, and the new annuity must not stretch it back out.
		periodsLeft := len(items) - cut
		if periodsLeft < 1 {
			periodsLeft = 1
		}
		params.payment = annuityPayment(newBalance, monthlyRate, periodsLeft, exp)
		params.periods = periodsLeft
	case model.EarlyPaymentReduceTerm:
		params.payment = keptInstallment(spec, items, cut, monthlyRate, exp)
		params.periods = 0 // run until the balance reaches zero
	default:
		return nil, fmt.Errorf("%w: unknown early payment kind %q", model.ErrValidation, ep.Kind)
	}

	tail, err := buildSegment(params)
	if err != nil {
		return nil, err
	}

	return append(head, tail...), nil
}

// Recalculate re-derives the full schedule from the credit parameters plus
// the complete early-payment list, folded left to right in date order. It is
// deterministic: calling it twice with the same inputs yields identical rows.
func Recalculate(spec ScheduleSpec, eps []model.EarlyPayment) ([]model.ScheduleItem, error) {
	items, err := GenerateSchedule(spec)
	if err != nil {
		return nil, err
	}

	for _, ep := range model.SortEarlyPayments(eps) {
		items, err = ApplyEarlyPayment(spec, items, ep)
		if err != nil {
			return nil, err
		}
	}

	if err := model.ValidateSchedule(items); err != nil {
		return nil, err
	}
	return items, nil
}

// CarryPaidFlags copies paid marks from an old schedule onto a regenerated
// one, matched by payment number. Rows past the end of the new schedule are
// dropped with their flags; a truncated tail has nothing left to pay.
func CarryPaidFlags(old, regenerated []model.ScheduleItem) []model.ScheduleItem {
	paid := make(map[int]bool, len(old))
	for _, item := range old {
		if item.Paid {
			paid[item.Number] = true
		}
	}

	out := make([]model.ScheduleItem, len(regenerated))
	copy(out, regenerated)
	for i := range out {
		if paid[out[i].Number] {
			out[i].Paid = true
		}
	}
	return out
}

type segmentParams struct {
	spec        ScheduleSpec
	opening     decimal.Decimal
	monthlyRate decimal.Decimal
	payment     decimal.Decimal
	periods     int // fixed period count; 0 = run until the balance reaches zero
	firstNumber int
}

func buildSegment(p segmentParams) ([]model.ScheduleItem, error) {
	currency := p.spec.Principal.Currency()
	exp := currency.Exponent()

	if !p.payment.IsPositive() {
		return nil, fmt.Errorf("%w: installment must be positive, got %s", model.ErrValidation, p.payment)
	}

	var items []model.ScheduleItem
	balance := p.opening
	number := p.firstNumber

	for n := 1; ; n++ {
		if n > openLoopCeiling {
			return nil, fmt.Errorf("%w: schedule did not converge after %d periods", model.ErrInvariantViolation, openLoopCeiling)
		}

		interest := balance.Mul(p.monthlyRate).Round(exp)
		principalPart := p.payment.Sub(interest)

		last := p.periods > 0 && n == p.periods
		if principalPart.GreaterThanOrEqual(balance) {
			last = true
		}
		if last {
			// Final period absorbs the rounding drift: the whole remaining
			// balance is paid off regardless of the nominal installment.
			principalPart = balance
		}

		if !principalPart.IsPositive() {
			return nil, fmt.Errorf("%w: installment of %s does not cover interest of %s at payment %d",
				model.ErrValidation, p.payment, interest, number)
		}

		balance = balance.Sub(principalPart)

		items = append(items, model.ScheduleItem{
			CreditID:         p.spec.CreditID,
			Number:           number,
			DueDate:          paymentDueDate(p.spec.StartDate, p.spec.PaymentDay, number),
			Principal:        money.New(principalPart, currency),
			Interest:         money.New(interest, currency),
			Total:            money.New(principalPart.Add(interest), currency),
			RemainingBalance: money.New(balance, currency),
		})
		number++

		if last || balance.IsZero() {
			return items, nil
		}
	}
}

// annuityPayment computes the fixed installment. Intermediate values carry
// full decimal precision; rounding to the minor unit happens once, on the
// division.
func annuityPayment(balance, monthlyRate decimal.Decimal, periods int, exp int32) decimal.Decimal {
	n := decimal.NewFromInt(int64(periods))
	if monthlyRate.IsZero() {
		return balance.DivRound(n, exp)
	}

	one := decimal.NewFromInt(1)
	factor := one.Add(monthlyRate).Pow(n)
	return balance.Mul(monthlyRate).Mul(factor).DivRound(factor.Sub(one), exp)
}

// keptInstallment is the installment a REDUCE_TERM tail keeps: the next
// scheduled payment at the cut point. When the cut lands past the end of the
// current schedule the last installment is used.
func keptInstallment(spec ScheduleSpec, items []model.ScheduleItem, cut int, monthlyRate decimal.Decimal, exp int32) decimal.Decimal {
	switch {
	case cut < len(items):
		return items[cut].Total.Amount()
	case len(items) > 0:
		return items[len(items)-1].Total.Amount()
	default:
		return annuityPayment(spec.Principal.RoundMinor().Amount(), monthlyRate, spec.TermMonths, exp)
	}
}

// paymentDueDate is the due date of payment n: the payment day of the n-th
// month after the start date, clamped to the last day of short months.
func paymentDueDate(start time.Time, paymentDay, n int) time.Time {
	anchor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := paymentDay
	if lastDay := time.Date(anchor.Year(), anchor.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day(); day > lastDay {
		day = lastDay
	}
	return time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, time.UTC)
}

func validateSpec(spec ScheduleSpec) error {
	if spec.TermMonths < 0 {
		return fmt.Errorf("%w: term must not be negative, got %d", model.ErrValidation, spec.TermMonths)
	}
	if spec.Principal.IsNegative() {
		return fmt.Errorf("%w: principal must not be negative, got %s", model.ErrValidation, spec.Principal)
	}
	if spec.PaymentDay < 1 || spec.PaymentDay > 31 {
		return fmt.Errorf("%w: payment day must be within 1-31, got %d", model.ErrValidation, spec.PaymentDay)
	}
	if spec.BankPayment != nil && spec.BankPayment.Currency() != spec.Principal.Currency() {
		return fmt.Errorf("%w: bank payment in %s against %s principal", money.ErrCurrencyMismatch,
			spec.BankPayment.Currency(), spec.Principal.Currency())
	}
	return nil
}
