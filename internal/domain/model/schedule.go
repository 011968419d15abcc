package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kassa-app/kassa/pkg/money"
)

// ScheduleItem is one row of a credit's amortization schedule. Items are
// immutable value objects; the schedule is always replaced wholesale when
// regenerated, never patched row by row.
type ScheduleItem struct {
	CreditID         uuid.UUID
	Number           int // 1-based, contiguous
	DueDate          time.Time
	Principal        money.Money
	Interest         money.Money
	Total            money.Money
	RemainingBalance money.Money // after this payment
	Paid             bool
}

// EarlyPaymentKind selects how an early payment reshapes the schedule tail.
type EarlyPaymentKind string

const (
	// EarlyPaymentReduceTerm keeps the installment size and finishes earlier.
	EarlyPaymentReduceTerm EarlyPaymentKind = "REDUCE_TERM"
	// EarlyPaymentReducePayment keeps the term and lowers future installments.
	EarlyPaymentReducePayment EarlyPaymentKind = "REDUCE_PAYMENT"
)

// EarlyPayment is an unscheduled principal reduction applied mid-term.
type EarlyPayment struct {
	ID       uuid.UUID
	CreditID uuid.UUID
	Date     time.Time
	Amount   money.Money
	Kind     EarlyPaymentKind
}

// NewEarlyPayment validates and creates an early payment.
func NewEarlyPayment(creditID uuid.UUID, date time.Time, amount money.Money, kind EarlyPaymentKind) (EarlyPayment, error) {
	if creditID == uuid.Nil {
		return EarlyPayment{}, fmt.Errorf("%w: credit ID is required", ErrValidation)
	}
	if date.IsZero() {
		return EarlyPayment{}, fmt.Errorf("%w: early payment date is required", ErrValidation)
	}
	if !amount.IsPositive() {
		return EarlyPayment{}, fmt.Errorf("%w: early payment amount must be positive, got %s", ErrValidation, amount)
	}
	if kind != EarlyPaymentReduceTerm && kind != EarlyPaymentReducePayment {
		return EarlyPayment{}, fmt.Errorf("%w: unknown early payment kind %q", ErrValidation, kind)
	}

	return EarlyPayment{
		ID:       uuid.New(),
		CreditID: creditID,
		Date:     date,
		Amount:   amount,
		Kind:     kind,
	}, nil
}

// SortEarlyPayments orders early payments by date ascending. Recalculation is
// a left-to-right fold over this order; the Nth application always starts
// from the state after the (N-1)th.
func SortEarlyPayments(eps []EarlyPayment) []EarlyPayment {
	sorted := make([]EarlyPayment, len(eps))
	copy(sorted, eps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// ValidateSchedule checks the structural invariants of a schedule: contiguous
// 1-based numbering, non-negative strictly decreasing remaining balance, and
// a zero balance on the final item. A violation here is a calculator bug.
func ValidateSchedule(items []ScheduleItem) error {
	for i, item := range items {
		if item.Number != i+1 {
			return fmt.Errorf("%w: schedule numbering has a gap at index %d (number %d)", ErrInvariantViolation, i, item.Number)
		}
		if item.RemainingBalance.IsNegative() {
			return fmt.Errorf("%w: negative remaining balance %s at payment %d", ErrInvariantViolation, item.RemainingBalance, item.Number)
		}
		if i > 0 {
			cmp, err := item.RemainingBalance.Compare(items[i-1].RemainingBalance)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
			}
			if cmp >= 0 {
				return fmt.Errorf("%w: remaining balance not decreasing at payment %d", ErrInvariantViolation, item.Number)
			}
		}
	}
	if n := len(items); n > 0 && !items[n-1].RemainingBalance.IsZero() {
		return fmt.Errorf("%w: final remaining balance is %s, want zero", ErrInvariantViolation, items[n-1].RemainingBalance)
	}
	return nil
}
