package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kassa-app/kassa/internal/domain/model"
)

type mockCreditRepository struct {
	findByIDFunc      func(ctx context.Context, id uuid.UUID) (model.Credit, error)
	scheduleFunc      func(ctx context.Context, creditID uuid.UUID) ([]model.ScheduleItem, error)
	earlyPaymentsFunc func(ctx context.Context, creditID uuid.UUID) ([]model.EarlyPayment, error)
	saveFunc          func(ctx context.Context, credit model.Credit, items []model.ScheduleItem, eps []model.EarlyPayment) error

	savedCredits   []model.Credit
	savedSchedules [][]model.ScheduleItem
	savedEPs       [][]model.EarlyPayment
}

func (m *mockCreditRepository) Save(ctx context.Context, credit model.Credit, items []model.ScheduleItem, eps []model.EarlyPayment) error {
	if m.saveFunc != nil {
		if err := m.saveFunc(ctx, credit, items, eps); err != nil {
			return err
		}
	}
	m.savedCredits = append(m.savedCredits, credit)
	m.savedSchedules = append(m.savedSchedules, items)
	m.savedEPs = append(m.savedEPs, eps)
	return nil
}

func (m *mockCreditRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Credit, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Credit{}, fmt.Errorf("%w: credit %s", model.ErrNotFound, id)
}

func (m *mockCreditRepository) Schedule(ctx context.Context, creditID uuid.UUID) ([]model.ScheduleItem, error) {
	if m.scheduleFunc != nil {
		return m.scheduleFunc(ctx, creditID)
	}
	return nil, nil
}

func (m *mockCreditRepository) EarlyPayments(ctx context.Context, creditID uuid.UUID) ([]model.EarlyPayment, error) {
	if m.earlyPaymentsFunc != nil {
		return m.earlyPaymentsFunc(ctx, creditID)
	}
	return nil, nil
}

func (m *mockCreditRepository) List(ctx context.Context, status *model.CreditStatus) ([]model.Credit, error) {
	return nil, nil
}

type mockDepositRepository struct {
	findByIDFunc func(ctx context.Context, id uuid.UUID) (model.Deposit, error)

	savedDeposits []model.Deposit
	savedRecords  [][]model.AccrualRecord
}

func (m *mockDepositRepository) Save(ctx context.Context, deposit model.Deposit, records []model.AccrualRecord) error {
	m.savedDeposits = append(m.savedDeposits, deposit)
	m.savedRecords = append(m.savedRecords, records)
	return nil
}

func (m *mockDepositRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Deposit, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Deposit{}, fmt.Errorf("%w: deposit %s", model.ErrNotFound, id)
}

func (m *mockDepositRepository) AccrualRecords(ctx context.Context, depositID uuid.UUID) ([]model.AccrualRecord, error) {
	return nil, nil
}

func (m *mockDepositRepository) ListActive(ctx context.Context) ([]model.Deposit, error) {
	return nil, nil
}

type mockFundRepository struct {
	findByIDFunc func(ctx context.Context, id uuid.UUID) (model.Fund, error)

	savedFunds []model.Fund
}

func (m *mockFundRepository) Save(ctx context.Context, fund model.Fund) error {
	m.savedFunds = append(m.savedFunds, fund)
	return nil
}

func (m *mockFundRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Fund, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Fund{}, fmt.Errorf("%w: fund %s", model.ErrNotFound, id)
}

func (m *mockFundRepository) List(ctx context.Context) ([]model.Fund, error) {
	return nil, nil
}

type mockRuleRepository struct {
	listActiveFunc func(ctx context.Context) ([]model.DistributionRule, error)
}

func (m *mockRuleRepository) Save(ctx context.Context, rule model.DistributionRule) error { return nil }

func (m *mockRuleRepository) ListActive(ctx context.Context) ([]model.DistributionRule, error) {
	if m.listActiveFunc != nil {
		return m.listActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockRuleRepository) Deactivate(ctx context.Context, id uuid.UUID) error { return nil }

type mockIncomeRepository struct {
	findByIDFunc func(ctx context.Context, id uuid.UUID) (model.Income, error)

	savedIncomes []model.Income
}

func (m *mockIncomeRepository) Save(ctx context.Context, income model.Income) error {
	m.savedIncomes = append(m.savedIncomes, income)
	return nil
}

func (m *mockIncomeRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Income, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Income{}, fmt.Errorf("%w: income %s", model.ErrNotFound, id)
}

type mockDistributionRepository struct {
	findByIDFunc func(ctx context.Context, id uuid.UUID) (model.IncomeDistribution, error)

	savedDistributions []model.IncomeDistribution
}

func (m *mockDistributionRepository) Save(ctx context.Context, dist model.IncomeDistribution) error {
	m.savedDistributions = append(m.savedDistributions, dist)
	return nil
}

func (m *mockDistributionRepository) FindByID(ctx context.Context, id uuid.UUID) (model.IncomeDistribution, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.IncomeDistribution{}, fmt.Errorf("%w: distribution %s", model.ErrNotFound, id)
}

func (m *mockDistributionRepository) ListByIncome(ctx context.Context, incomeID uuid.UUID) ([]model.IncomeDistribution, error) {
	return nil, nil
}

type mockBudgetRepository struct {
	findByCategoryFunc  func(ctx context.Context, budgetID, categoryID uuid.UUID) (model.BudgetItem, error)
	plannedExpensesFunc func(ctx context.Context, budgetID, categoryID uuid.UUID) ([]model.PlannedExpense, error)

	savedItems []model.BudgetItem
}

func (m *mockBudgetRepository) Save(ctx context.Context, item model.BudgetItem) error {
	m.savedItems = append(m.savedItems, item)
	return nil
}

func (m *mockBudgetRepository) FindByID(ctx context.Context, id uuid.UUID) (model.BudgetItem, error) {
	return model.BudgetItem{}, fmt.Errorf("%w: budget item %s", model.ErrNotFound, id)
}

func (m *mockBudgetRepository) FindByCategory(ctx context.Context, budgetID, categoryID uuid.UUID) (model.BudgetItem, error) {
	if m.findByCategoryFunc != nil {
		return m.findByCategoryFunc(ctx, budgetID, categoryID)
	}
	return model.BudgetItem{}, fmt.Errorf("%w: budget item", model.ErrNotFound)
}

func (m *mockBudgetRepository) PlannedExpenses(ctx context.Context, budgetID, categoryID uuid.UUID) ([]model.PlannedExpense, error) {
	if m.plannedExpensesFunc != nil {
		return m.plannedExpensesFunc(ctx, budgetID, categoryID)
	}
	return nil, nil
}

type mockUnitOfWork struct {
	savePlanFunc func(ctx context.Context, income model.Income, dists []model.IncomeDistribution) error

	plans         []savedPlan
	confirmations []savedAllocation
	cancellations []savedAllocation
}

type savedPlan struct {
	income model.Income
	dists  []model.IncomeDistribution
}

type savedAllocation struct {
	dist   model.IncomeDistribution
	fund   model.Fund
	income model.Income
	at     time.Time
}

func (m *mockUnitOfWork) SavePlan(ctx context.Context, income model.Income, dists []model.IncomeDistribution) error {
	if m.savePlanFunc != nil {
		if err := m.savePlanFunc(ctx, income, dists); err != nil {
			return err
		}
	}
	m.plans = append(m.plans, savedPlan{income: income, dists: dists})
	return nil
}

func (m *mockUnitOfWork) SaveConfirmation(ctx context.Context, dist model.IncomeDistribution, fund model.Fund, income model.Income) error {
	m.confirmations = append(m.confirmations, savedAllocation{dist: dist, fund: fund, income: income, at: time.Now()})
	return nil
}

func (m *mockUnitOfWork) SaveCancellation(ctx context.Context, dist model.IncomeDistribution, fund model.Fund, income model.Income) error {
	m.cancellations = append(m.cancellations, savedAllocation{dist: dist, fund: fund, income: income, at: time.Now()})
	return nil
}
