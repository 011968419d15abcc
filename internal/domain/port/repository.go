// Package port declares the outbound interfaces of the domain. Infrastructure
// implements them; use cases depend on them.
package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/kassa-app/kassa/internal/domain/model"
)

// CreditRepository persists credits together with their schedule and early
// payments. Save replaces the schedule wholesale and writes the aggregate's
// pending domain events to the outbox in the same transaction; it fails with
// model.ErrIllegalStateTransition when the stored version does not match the
// aggregate's.
type CreditRepository interface {
	Save(ctx context.Context, credit model.Credit, items []model.ScheduleItem, eps []model.EarlyPayment) error
	FindByID(ctx context.Context, id uuid.UUID) (model.Credit, error)
	Schedule(ctx context.Context, creditID uuid.UUID) ([]model.ScheduleItem, error)
	EarlyPayments(ctx context.Context, creditID uuid.UUID) ([]model.EarlyPayment, error)
	List(ctx context.Context, status *model.CreditStatus) ([]model.Credit, error)
}

// DepositRepository persists deposits and their accrual records.
type DepositRepository interface {
	Save(ctx context.Context, deposit model.Deposit, records []model.AccrualRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (model.Deposit, error)
	AccrualRecords(ctx context.Context, depositID uuid.UUID) ([]model.AccrualRecord, error)
	ListActive(ctx context.Context) ([]model.Deposit, error)
}

// FundRepository persists funds.
type FundRepository interface {
	Save(ctx context.Context, fund model.Fund) error
	FindByID(ctx context.Context, id uuid.UUID) (model.Fund, error)
	List(ctx context.Context) ([]model.Fund, error)
}

// RuleRepository reads the distribution rule set.
type RuleRepository interface {
	Save(ctx context.Context, rule model.DistributionRule) error
	ListActive(ctx context.Context) ([]model.DistributionRule, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// IncomeRepository persists incomes.
type IncomeRepository interface {
	Save(ctx context.Context, income model.Income) error
	FindByID(ctx context.Context, id uuid.UUID) (model.Income, error)
}

// DistributionRepository persists income distributions.
type DistributionRepository interface {
	Save(ctx context.Context, dist model.IncomeDistribution) error
	FindByID(ctx context.Context, id uuid.UUID) (model.IncomeDistribution, error)
	ListByIncome(ctx context.Context, incomeID uuid.UUID) ([]model.IncomeDistribution, error)
}

// BudgetRepository persists budget items and reads the planned expenses
// their limits derive from.
type BudgetRepository interface {
	Save(ctx context.Context, item model.BudgetItem) error
	FindByID(ctx context.Context, id uuid.UUID) (model.BudgetItem, error)
	FindByCategory(ctx context.Context, budgetID, categoryID uuid.UUID) (model.BudgetItem, error)
	PlannedExpenses(ctx context.Context, budgetID, categoryID uuid.UUID) ([]model.PlannedExpense, error)
}

// AllocationUnitOfWork saves every aggregate an allocation step touches in
// one transaction. SavePlan commits a new income with all of its planned
// distributions; SaveConfirmation and SaveCancellation commit the
// distribution together with the fund it moves money into or out of and the
// income whose remainder it draws down or restores. Version checks on every
// row apply; any mismatch rolls the whole operation back.
type AllocationUnitOfWork interface {
	SavePlan(ctx context.Context, income model.Income, dists []model.IncomeDistribution) error
	SaveConfirmation(ctx context.Context, dist model.IncomeDistribution, fund model.Fund, income model.Income) error
	SaveCancellation(ctx context.Context, dist model.IncomeDistribution, fund model.Fund, income model.Income) error
}
