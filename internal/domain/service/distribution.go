package service

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/pkg/money"
)

// PlannedDistribution is one evaluated rule: how much of an income a fund
// should receive before anyone confirms anything.
type PlannedDistribution struct {
	FundID uuid.UUID
	Rule   model.DistributionRule
	Amount money.Money
}

// EvaluationResult is the outcome of running a rule set against an income.
type EvaluationResult struct {
	Planned       []PlannedDistribution
	Unassigned    money.Money     // income minus everything planned; negative when over-allocated
	PercentTotal  decimal.Decimal // sum of percentage rule values
	OverAllocated bool
}

// EvaluateRules applies a rule set to an income amount.
//
// Fixed rules run first in ascending priority, each drawing down a shared
// pool and capped at what remains of it. Percentage rules are then computed
// against the original income amount, not against the depleted pool, and are
// never capped; the rule set is not normalized when the percentages exceed
// 100, the result is simply flagged. Rules for the same fund are evaluated
// independently.
func EvaluateRules(income money.Money, rules []model.DistributionRule) (EvaluationResult, error) {
	if !income.IsPositive() {
		return EvaluationResult{}, fmt.Errorf("%w: income must be positive, got %s", model.ErrValidation, income)
	}

	ordered := make([]model.DistributionRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Kind != ordered[j].Kind {
			return ordered[i].Kind == model.RuleFixed
		}
		return ordered[i].Priority < ordered[j].Priority
	})

	currency := income.Currency()
	exp := currency.Exponent()
	pool := income.RoundMinor().Amount()
	hundred := decimal.NewFromInt(100)

	result := EvaluationResult{
		PercentTotal: decimal.Zero,
	}

	assigned := decimal.Zero
	for _, rule := range ordered {
		if !rule.Active {
			continue
		}
		var amount decimal.Decimal
		switch rule.Kind {
		case model.RuleFixed:
			amount = rule.Value.Round(exp)
			if amount.GreaterThan(pool) {
				amount = pool
			}
			pool = pool.Sub(amount)
		case model.RulePercentage:
			result.PercentTotal = result.PercentTotal.Add(rule.Value)
			amount = income.RoundMinor().Amount().Mul(rule.Value).DivRound(hundred, exp)
		default:
			return EvaluationResult{}, fmt.Errorf("%w: unknown rule kind %q", model.ErrValidation, rule.Kind)
		}

		if amount.IsZero() {
			continue
		}
		assigned = assigned.Add(amount)
		result.Planned = append(result.Planned, PlannedDistribution{
			FundID: rule.FundID,
			Rule:   rule,
			Amount: money.New(amount, currency),
		})
	}

	result.Unassigned = income.RoundMinor().MustSubtract(money.New(assigned, currency))
	result.OverAllocated = result.PercentTotal.GreaterThan(hundred) || result.Unassigned.IsNegative()
	return result, nil
}
