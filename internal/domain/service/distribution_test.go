package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/pkg/money"
)

func mustRule(t *testing.T, kind model.RuleKind, value string, priority int) model.DistributionRule {
	t.Helper()
	rule, err := model.NewDistributionRule(uuid.New(), kind, decimal.RequireFromString(value), priority)
	require.NoError(t, err)
	rule.Priority = priority
	return rule
}

func TestEvaluateRulesPercentages(t *testing.T) {
	income := mustMoney(t, "10000", "RUB")
	rules := []model.DistributionRule{
		mustRule(t, model.RulePercentage, "60", 1),
		mustRule(t, model.RulePercentage, "30", 2),
	}

	result, err := EvaluateRules(income, rules)
	require.NoError(t, err)
	require.Len(t, result.Planned, 2)

	assert.Equal(t, "6000.00 RUB", result.Planned[0].Amount.String())
	assert.Equal(t, "3000.00 RUB", result.Planned[1].Amount.String())
	assert.Equal(t, "1000.00 RUB", result.Unassigned.String())
	assert.Equal(t, "90", result.PercentTotal.String())
	assert.False(t, result.OverAllocated)
}

func TestEvaluateRulesFixedDrawDownPool(t *testing.T) {
	income := mustMoney(t, "10000", "RUB")
	rules := []model.DistributionRule{
		mustRule(t, model.RuleFixed, "5000", 2),
		mustRule(t, model.RuleFixed, "7000", 1),
	}

	result, err := EvaluateRules(income, rules)
	require.NoError(t, err)
	require.Len(t, result.Planned, 2)

	// Priority 1 takes its full amount; priority 2 is capped at what is
	// left of the pool.
	assert.Equal(t, "7000.00 RUB", result.Planned[0].Amount.String())
	assert.Equal(t, 1, result.Planned[0].Rule.Priority)
	assert.Equal(t, "3000.00 RUB", result.Planned[1].Amount.String())
	assert.True(t, result.Unassigned.IsZero())
	assert.False(t, result.OverAllocated)
}

func TestEvaluateRulesMixed(t *testing.T) {
	income := mustMoney(t, "10000", "RUB")
	rules := []model.DistributionRule{
		mustRule(t, model.RulePercentage, "50", 2),
		mustRule(t, model.RuleFixed, "4000", 1),
	}

	result, err := EvaluateRules(income, rules)
	require.NoError(t, err)
	require.Len(t, result.Planned, 2)

	// The percentage is computed on the original income, not on the pool
	// left after fixed rules.
	assert.Equal(t, "4000.00 RUB", result.Planned[0].Amount.String())
	assert.Equal(t, "5000.00 RUB", result.Planned[1].Amount.String())
	assert.Equal(t, "1000.00 RUB", result.Unassigned.String())
}

func TestEvaluateRulesOverAllocation(t *testing.T) {
	income := mustMoney(t, "10000", "RUB")
	rules := []model.DistributionRule{
		mustRule(t, model.RulePercentage, "80", 1),
		mustRule(t, model.RulePercentage, "30", 2),
	}

	result, err := EvaluateRules(income, rules)
	require.NoError(t, err)

	assert.Equal(t, "110", result.PercentTotal.String())
	assert.Equal(t, "-1000.00 RUB", result.Unassigned.String())
	assert.True(t, result.OverAllocated)
}

func TestEvaluateRulesFixedExhaustsPool(t *testing.T) {
	income := mustMoney(t, "10000", "RUB")
	rules := []model.DistributionRule{
		mustRule(t, model.RuleFixed, "10000", 1),
		mustRule(t, model.RuleFixed, "2500", 2),
	}

	result, err := EvaluateRules(income, rules)
	require.NoError(t, err)

	// The second fixed rule finds an empty pool and plans nothing.
	require.Len(t, result.Planned, 1)
	assert.Equal(t, "10000.00 RUB", result.Planned[0].Amount.String())
	assert.True(t, result.Unassigned.IsZero())
}

func TestEvaluateRulesSkipsInactive(t *testing.T) {
	income := mustMoney(t, "10000", "RUB")
	disabled := mustRule(t, model.RulePercentage, "50", 1)
	disabled.Active = false

	result, err := EvaluateRules(income, []model.DistributionRule{
		disabled,
		mustRule(t, model.RulePercentage, "10", 2),
	})
	require.NoError(t, err)

	require.Len(t, result.Planned, 1)
	assert.Equal(t, "1000.00 RUB", result.Planned[0].Amount.String())
	assert.Equal(t, "10", result.PercentTotal.String())
}

func TestEvaluateRulesRejectsNonPositiveIncome(t *testing.T) {
	_, err := EvaluateRules(money.Zero(money.RUB), nil)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestEvaluateRulesRoundsHalfUp(t *testing.T) {
	income := mustMoney(t, "100.01", "RUB")
	rules := []model.DistributionRule{
		mustRule(t, model.RulePercentage, "33.333", 1),
	}

	result, err := EvaluateRules(income, rules)
	require.NoError(t, err)
	require.Len(t, result.Planned, 1)

	// 100.01 * 0.33333 = 33.3363333 rounds to two places.
	assert.Equal(t, "33.34 RUB", result.Planned[0].Amount.String())
}
