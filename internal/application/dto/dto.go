package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateCreditRequest carries the parameters of a new credit. The term is
// given either directly in months or as an end date; a credit migrated from
// another ledger may arrive with its first payments already made.
type CreateCreditRequest struct {
	Name         string           `json:"name"`
	Principal    decimal.Decimal  `json:"principal"`
	Currency     string           `json:"currency"`
	RatePercent  decimal.Decimal  `json:"rate_percent"`
	TermMonths   int              `json:"term_months,omitempty"`
	EndDate      *time.Time       `json:"end_date,omitempty"`
	StartDate    time.Time        `json:"start_date"`
	PaymentDay   int              `json:"payment_day"`
	PaymentsMade int              `json:"payments_made,omitempty"`
	BankPayment  *decimal.Decimal `json:"bank_payment,omitempty"`
	AccountID    string           `json:"account_id"`
	CategoryID   string           `json:"category_id"`
}

// UpdateCreditRequest edits the non-schedule fields of a credit, or moves it
// to a terminal status. Schedule-affecting fields are immutable.
type UpdateCreditRequest struct {
	CreditID   string `json:"credit_id"`
	Name       string `json:"name"`
	AccountID  string `json:"account_id"`
	CategoryID string `json:"category_id"`
	PaymentDay int    `json:"payment_day"`
	Status     string `json:"status,omitempty"`
}

// GetCreditRequest identifies a credit to retrieve.
type GetCreditRequest struct {
	CreditID        string `json:"credit_id"`
	IncludeSchedule bool   `json:"include_schedule"`
}

// RegenerateScheduleRequest asks for a full schedule rebuild.
type RegenerateScheduleRequest struct {
	CreditID string `json:"credit_id"`
}

// RecordEarlyPaymentRequest carries one early payment against a credit.
type RecordEarlyPaymentRequest struct {
	CreditID string          `json:"credit_id"`
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Kind     string          `json:"kind"`
}

// DeleteEarlyPaymentRequest removes a recorded early payment.
type DeleteEarlyPaymentRequest struct {
	CreditID       string `json:"credit_id"`
	EarlyPaymentID string `json:"early_payment_id"`
}

// GetCreditSummaryRequest identifies a credit to summarize.
type GetCreditSummaryRequest struct {
	CreditID string `json:"credit_id"`
}

// MarkSchedulePaymentRequest flips the paid flag of one schedule row.
type MarkSchedulePaymentRequest struct {
	CreditID string `json:"credit_id"`
	Number   int    `json:"number"`
	Paid     bool   `json:"paid"`
}

// OpenDepositRequest carries the parameters of a new deposit.
type OpenDepositRequest struct {
	FundID        string          `json:"fund_id"`
	Principal     decimal.Decimal `json:"principal"`
	Currency      string          `json:"currency"`
	RatePercent   decimal.Decimal `json:"rate_percent"`
	TermMonths    int             `json:"term_months"`
	AccrualPeriod string          `json:"accrual_period"`
	Capitalizing  bool            `json:"capitalizing"`
	StartDate     time.Time       `json:"start_date"`
}

// GetDepositRequest identifies a deposit to retrieve.
type GetDepositRequest struct {
	DepositID string `json:"deposit_id"`
}

// ProjectMaturityRequest identifies a deposit to project to maturity.
type ProjectMaturityRequest struct {
	DepositID string `json:"deposit_id"`
}

// CloseDepositEarlyRequest closes a deposit before its maturity date.
type CloseDepositEarlyRequest struct {
	DepositID string    `json:"deposit_id"`
	ClosedAt  time.Time `json:"closed_at"`
}

// PlanDistributionsRequest registers an income and plans its distribution.
type PlanDistributionsRequest struct {
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// AllocationRequest is one confirmed asset purchase or transfer.
type AllocationRequest struct {
	Asset  string          `json:"asset"`
	Amount decimal.Decimal `json:"amount"`
}

// ConfirmDistributionRequest completes a planned distribution with what was
// actually moved.
type ConfirmDistributionRequest struct {
	DistributionID string              `json:"distribution_id"`
	ActualAmount   decimal.Decimal     `json:"actual_amount"`
	Allocations    []AllocationRequest `json:"allocations"`
}

// CancelDistributionRequest reverses a confirmed distribution.
type CancelDistributionRequest struct {
	DistributionID string `json:"distribution_id"`
}

// RecalculateBudgetLimitsRequest rebuilds the per-currency limits of a
// budget item from its planned expenses.
type RecalculateBudgetLimitsRequest struct {
	BudgetID   string `json:"budget_id"`
	CategoryID string `json:"category_id"`
}

// RecordBudgetActualRequest books spent money against a budget item's
// currency limit.
type RecordBudgetActualRequest struct {
	BudgetID   string          `json:"budget_id"`
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScheduleItemResponse is one row of an amortization schedule.
type ScheduleItemResponse struct {
	Number           int             `json:"number"`
	DueDate          time.Time       `json:"due_date"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Paid             bool            `json:"paid"`
}

// EarlyPaymentResponse is one recorded early payment.
type EarlyPaymentResponse struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Kind   string          `json:"kind"`
}

// CreditResponse is the external representation of a credit.
type CreditResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Principal     decimal.Decimal        `json:"principal"`
	Currency      string                 `json:"currency"`
	RatePercent   decimal.Decimal        `json:"rate_percent"`
	TermMonths    int                    `json:"term_months"`
	StartDate     time.Time              `json:"start_date"`
	PaymentDay    int                    `json:"payment_day"`
	Status        string                 `json:"status"`
	Schedule      []ScheduleItemResponse `json:"schedule,omitempty"`
	EarlyPayments []EarlyPaymentResponse `json:"early_payments,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// CreditSummaryResponse is the derived state of a credit.
type CreditSummaryResponse struct {
	CreditID               string           `json:"credit_id"`
	OriginalPrincipal      decimal.Decimal  `json:"original_principal"`
	RemainingPrincipal     decimal.Decimal  `json:"remaining_principal"`
	TotalInterestPaid      decimal.Decimal  `json:"total_interest_paid"`
	TotalInterestRemaining decimal.Decimal  `json:"total_interest_remaining"`
	NextPayment            *decimal.Decimal `json:"next_payment,omitempty"`
	PaymentsMade           int              `json:"payments_made"`
	PaymentsRemaining      int              `json:"payments_remaining"`
	PercentComplete        decimal.Decimal  `json:"percent_complete"`
}

// AccrualRecordResponse is one deposit accrual entry.
type AccrualRecordResponse struct {
	Number    int             `json:"number"`
	PeriodEnd time.Time       `json:"period_end"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

// DepositResponse is the external representation of a deposit.
type DepositResponse struct {
	ID            string                  `json:"id"`
	FundID        string                  `json:"fund_id"`
	Principal     decimal.Decimal         `json:"principal"`
	Currency      string                  `json:"currency"`
	RatePercent   decimal.Decimal         `json:"rate_percent"`
	TermMonths    int                     `json:"term_months"`
	AccrualPeriod string                  `json:"accrual_period"`
	Capitalizing  bool                    `json:"capitalizing"`
	StartDate     time.Time               `json:"start_date"`
	MaturityDate  time.Time               `json:"maturity_date"`
	Status        string                  `json:"status"`
	Records       []AccrualRecordResponse `json:"records,omitempty"`
}

// MaturityProjectionResponse is the full held-to-term picture of a deposit.
type MaturityProjectionResponse struct {
	DepositID           string                  `json:"deposit_id"`
	FinalAmount         decimal.Decimal         `json:"final_amount"`
	TotalYield          decimal.Decimal         `json:"total_yield"`
	EffectiveAnnualRate decimal.Decimal         `json:"effective_annual_rate"`
	MaturityDate        time.Time               `json:"maturity_date"`
	Records             []AccrualRecordResponse `json:"records"`
}

// CloseDepositResponse reports an early closure.
type CloseDepositResponse struct {
	Deposit        DepositResponse `json:"deposit"`
	Payout         decimal.Decimal `json:"payout"`
	AccruedPeriods int             `json:"accrued_periods"`
}

// PlannedDistributionResponse is one evaluated rule in a plan.
type PlannedDistributionResponse struct {
	DistributionID string          `json:"distribution_id"`
	FundID         string          `json:"fund_id"`
	RuleID         string          `json:"rule_id"`
	Amount         decimal.Decimal `json:"amount"`
}

// DistributionPlanResponse is the outcome of planning an income.
type DistributionPlanResponse struct {
	IncomeID      string                        `json:"income_id"`
	Planned       []PlannedDistributionResponse `json:"planned"`
	Unassigned    decimal.Decimal               `json:"unassigned"`
	PercentTotal  decimal.Decimal               `json:"percent_total"`
	OverAllocated bool                          `json:"over_allocated"`
}

// DistributionResponse is the external representation of a distribution.
type DistributionResponse struct {
	ID           string           `json:"id"`
	IncomeID     string           `json:"income_id"`
	FundID       string           `json:"fund_id"`
	Planned      decimal.Decimal  `json:"planned"`
	Status       string           `json:"status"`
	ActualAmount *decimal.Decimal `json:"actual_amount,omitempty"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty"`
}

// CurrencyLimitResponse is one per-currency budget limit row.
type CurrencyLimitResponse struct {
	Currency   string          `json:"currency"`
	TotalLimit decimal.Decimal `json:"total_limit"`
	Buffer     decimal.Decimal `json:"buffer"`
	Actual     decimal.Decimal `json:"actual"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// BudgetLimitsResponse reports the recalculated limits of a budget item.
type BudgetLimitsResponse struct {
	BudgetItemID string                  `json:"budget_item_id"`
	Limits       []CurrencyLimitResponse `json:"limits"`
}
