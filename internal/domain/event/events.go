package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/kassa-app/kassa/pkg/events"
	"github.com/kassa-app/kassa/pkg/money"
)

const (
	AggregateTypeCredit       = "Credit"
	AggregateTypeDeposit      = "Deposit"
	AggregateTypeDistribution = "IncomeDistribution"
	AggregateTypeBudgetItem   = "BudgetItem"
)

// CreditCreated is emitted when a credit is created with its initial schedule.
type CreditCreated struct {
	events.BaseEvent
	CreditID  uuid.UUID `json:"credit_id"`
	Principal string    `json:"principal"`
	Currency  string    `json:"currency"`
	RatePct   string    `json:"rate_pct"`
	TermMonths int      `json:"term_months"`
}

func NewCreditCreated(creditID uuid.UUID, principal money.Money, rate money.Rate, termMonths int) CreditCreated {
	return CreditCreated{
		BaseEvent:  events.NewBaseEvent("credit.created", creditID, AggregateTypeCredit),
		CreditID:   creditID,
		Principal:  principal.Amount().String(),
		Currency:   principal.Currency().Code(),
		RatePct:    rate.Percent().String(),
		TermMonths: termMonths,
	}
}

// ScheduleRegenerated is emitted whenever a credit's schedule is re-derived.
type ScheduleRegenerated struct {
	events.BaseEvent
	CreditID uuid.UUID `json:"credit_id"`
	Items    int       `json:"items"`
}

func NewScheduleRegenerated(creditID uuid.UUID, items int) ScheduleRegenerated {
	return ScheduleRegenerated{
		BaseEvent: events.NewBaseEvent("credit.schedule.regenerated", creditID, AggregateTypeCredit),
		CreditID:  creditID,
		Items:     items,
	}
}

// EarlyPaymentRecorded is emitted when an early payment is folded into a schedule.
type EarlyPaymentRecorded struct {
	events.BaseEvent
	CreditID       uuid.UUID `json:"credit_id"`
	EarlyPaymentID uuid.UUID `json:"early_payment_id"`
	Amount         string    `json:"amount"`
	Currency       string    `json:"currency"`
	Kind           string    `json:"kind"`
	Date           time.Time `json:"date"`
}

func NewEarlyPaymentRecorded(creditID, earlyPaymentID uuid.UUID, amount money.Money, kind string, date time.Time) EarlyPaymentRecorded {
	return EarlyPaymentRecorded{
		BaseEvent:      events.NewBaseEvent("credit.early_payment.recorded", creditID, AggregateTypeCredit),
		CreditID:       creditID,
		EarlyPaymentID: earlyPaymentID,
		Amount:         amount.Amount().String(),
		Currency:       amount.Currency().Code(),
		Kind:           kind,
		Date:           date,
	}
}

// EarlyPaymentDeleted is emitted when an early payment is removed and the
// schedule re-derived without it.
type EarlyPaymentDeleted struct {
	events.BaseEvent
	CreditID       uuid.UUID `json:"credit_id"`
	EarlyPaymentID uuid.UUID `json:"early_payment_id"`
}

func NewEarlyPaymentDeleted(creditID, earlyPaymentID uuid.UUID) EarlyPaymentDeleted {
	return EarlyPaymentDeleted{
		BaseEvent:      events.NewBaseEvent("credit.early_payment.deleted", creditID, AggregateTypeCredit),
		CreditID:       creditID,
		EarlyPaymentID: earlyPaymentID,
	}
}

// CreditStatusChanged is emitted on completion or cancellation.
type CreditStatusChanged struct {
	events.BaseEvent
	CreditID uuid.UUID `json:"credit_id"`
	Status   string    `json:"status"`
}

func NewCreditStatusChanged(creditID uuid.UUID, status string) CreditStatusChanged {
	return CreditStatusChanged{
		BaseEvent: events.NewBaseEvent("credit.status.changed", creditID, AggregateTypeCredit),
		CreditID:  creditID,
		Status:    status,
	}
}

// DepositOpened is emitted when a deposit is opened.
type DepositOpened struct {
	events.BaseEvent
	DepositID uuid.UUID `json:"deposit_id"`
	FundID    uuid.UUID `json:"fund_id"`
	Principal string    `json:"principal"`
	Currency  string    `json:"currency"`
}

func NewDepositOpened(depositID, fundID uuid.UUID, principal money.Money) DepositOpened {
	return DepositOpened{
		BaseEvent: events.NewBaseEvent("deposit.opened", depositID, AggregateTypeDeposit),
		DepositID: depositID,
		FundID:    fundID,
		Principal: principal.Amount().String(),
		Currency:  principal.Currency().Code(),
	}
}

// DepositMatured is emitted when a deposit reaches the end of its term.
type DepositMatured struct {
	events.BaseEvent
	DepositID uuid.UUID `json:"deposit_id"`
}

func NewDepositMatured(depositID uuid.UUID) DepositMatured {
	return DepositMatured{
		BaseEvent: events.NewBaseEvent("deposit.matured", depositID, AggregateTypeDeposit),
		DepositID: depositID,
	}
}

// DepositClosedEarly is emitted on early closure; the payout reflects elapsed
// accrual periods only.
type DepositClosedEarly struct {
	events.BaseEvent
	DepositID uuid.UUID `json:"deposit_id"`
	Payout    string    `json:"payout"`
	Currency  string    `json:"currency"`
	ClosedAt  time.Time `json:"closed_at"`
}

func NewDepositClosedEarly(depositID uuid.UUID, payout money.Money, closedAt time.Time) DepositClosedEarly {
	return DepositClosedEarly{
		BaseEvent: events.NewBaseEvent("deposit.closed_early", depositID, AggregateTypeDeposit),
		DepositID: depositID,
		Payout:    payout.Amount().String(),
		Currency:  payout.Currency().Code(),
		ClosedAt:  closedAt,
	}
}

// DistributionConfirmed is emitted when a planned distribution becomes an
// actual fund balance change.
type DistributionConfirmed struct {
	events.BaseEvent
	DistributionID uuid.UUID `json:"distribution_id"`
	IncomeID       uuid.UUID `json:"income_id"`
	FundID         uuid.UUID `json:"fund_id"`
	ActualAmount   string    `json:"actual_amount"`
	Currency       string    `json:"currency"`
}

func NewDistributionConfirmed(distributionID, incomeID, fundID uuid.UUID, actual money.Money) DistributionConfirmed {
	return DistributionConfirmed{
		BaseEvent:      events.NewBaseEvent("distribution.confirmed", distributionID, AggregateTypeDistribution),
		DistributionID: distributionID,
		IncomeID:       incomeID,
		FundID:         fundID,
		ActualAmount:   actual.Amount().String(),
		Currency:       actual.Currency().Code(),
	}
}

// DistributionCancelled is emitted when a confirmed distribution is rolled
// back to planned, reversing the exact balance delta.
type DistributionCancelled struct {
	events.BaseEvent
	DistributionID uuid.UUID `json:"distribution_id"`
	IncomeID       uuid.UUID `json:"income_id"`
	FundID         uuid.UUID `json:"fund_id"`
	ReversedAmount string    `json:"reversed_amount"`
	Currency       string    `json:"currency"`
}

func NewDistributionCancelled(distributionID, incomeID, fundID uuid.UUID, reversed money.Money) DistributionCancelled {
	return DistributionCancelled{
		BaseEvent:      events.NewBaseEvent("distribution.cancelled", distributionID, AggregateTypeDistribution),
		DistributionID: distributionID,
		IncomeID:       incomeID,
		FundID:         fundID,
		ReversedAmount: reversed.Amount().String(),
		Currency:       reversed.Currency().Code(),
	}
}

// BudgetLimitsRecalculated is emitted after currency-limit bookkeeping.
type BudgetLimitsRecalculated struct {
	events.BaseEvent
	BudgetItemID uuid.UUID `json:"budget_item_id"`
	Currencies   int       `json:"currencies"`
}

func NewBudgetLimitsRecalculated(budgetItemID uuid.UUID, currencies int) BudgetLimitsRecalculated {
	return BudgetLimitsRecalculated{
		BaseEvent:    events.NewBaseEvent("budget.limits.recalculated", budgetItemID, AggregateTypeBudgetItem),
		BudgetItemID: budgetItemID,
		Currencies:   currencies,
	}
}
