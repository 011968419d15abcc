package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RuleKind distinguishes percentage rules from fixed-amount rules.
type RuleKind string

const (
	RulePercentage RuleKind = "PERCENTAGE"
	RuleFixed      RuleKind = "FIXED"
)

// DistributionRule is a per-fund policy for earmarking incoming money.
// Percentage values are percents of the original income; fixed values are
// amounts in the income currency. Lower priority evaluates first.
type DistributionRule struct {
	ID       uuid.UUID
	FundID   uuid.UUID
	Kind     RuleKind
	Value    decimal.Decimal
	Priority int
	Active   bool
}

// NewDistributionRule validates and creates a rule.
func NewDistributionRule(fundID uuid.UUID, kind RuleKind, value decimal.Decimal, priority int) (DistributionRule, error) {
	if fundID == uuid.Nil {
		return DistributionRule{}, fmt.Errorf("%w: fund ID is required", ErrValidation)
	}
	if kind != RulePercentage && kind != RuleFixed {
		return DistributionRule{}, fmt.Errorf("%w: unknown rule kind %q", ErrValidation, kind)
	}
	if !value.IsPositive() {
		return DistributionRule{}, fmt.Errorf("%w: rule value must be positive, got %s", ErrValidation, value)
	}

	return DistributionRule{
		ID:       uuid.New(),
		FundID:   fundID,
		Kind:     kind,
		Value:    value,
		Priority: priority,
		Active:   true,
	}, nil
}
