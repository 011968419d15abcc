package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
	"github.com/kassa-app/kassa/internal/domain/service"
	"github.com/kassa-app/kassa/pkg/money"
)

// PlanDistributionsUseCase registers an income and evaluates the active rule
// set against it, producing one planned distribution per matching rule. The
// income and all of its planned rows commit in one transaction through the
// unit of work; a failed plan leaves no income behind.
type PlanDistributionsUseCase struct {
	ruleRepo port.RuleRepository
	uow      port.AllocationUnitOfWork
	logger   *slog.Logger
}

// NewPlanDistributionsUseCase wires dependencies.
func NewPlanDistributionsUseCase(
	ruleRepo port.RuleRepository,
	uow port.AllocationUnitOfWork,
	logger *slog.Logger,
) *PlanDistributionsUseCase {
	return &PlanDistributionsUseCase{ruleRepo: ruleRepo, uow: uow, logger: logger}
}

// Execute plans the income. An over-allocated rule set still plans — the
// percentages are applied as configured, without normalization — but the
// response flags it and the plan is logged with a warning.
func (uc *PlanDistributionsUseCase) Execute(ctx context.Context, req dto.PlanDistributionsRequest) (dto.DistributionPlanResponse, error) {
	currency, err := money.NewCurrency(req.Currency)
	if err != nil {
		return dto.DistributionPlanResponse{}, fmt.Errorf("parse currency: %w", err)
	}

	income, err := model.NewIncome(req.Date, money.New(req.Amount, currency))
	if err != nil {
		return dto.DistributionPlanResponse{}, fmt.Errorf("create income: %w", err)
	}

	rules, err := uc.ruleRepo.ListActive(ctx)
	if err != nil {
		return dto.DistributionPlanResponse{}, fmt.Errorf("load rules: %w", err)
	}

	result, err := service.EvaluateRules(income.Amount(), rules)
	if err != nil {
		return dto.DistributionPlanResponse{}, fmt.Errorf("evaluate rules: %w", err)
	}

	resp := dto.DistributionPlanResponse{
		IncomeID:      income.ID().String(),
		Unassigned:    result.Unassigned.Amount(),
		PercentTotal:  result.PercentTotal,
		OverAllocated: result.OverAllocated,
	}

	dists := make([]model.IncomeDistribution, 0, len(result.Planned))
	for _, planned := range result.Planned {
		dist, err := model.NewIncomeDistribution(income.ID(), planned.FundID, planned.Amount)
		if err != nil {
			return dto.DistributionPlanResponse{}, fmt.Errorf("create distribution: %w", err)
		}
		dists = append(dists, dist)
		resp.Planned = append(resp.Planned, dto.PlannedDistributionResponse{
			DistributionID: dist.ID().String(),
			FundID:         planned.FundID.String(),
			RuleID:         planned.Rule.ID.String(),
			Amount:         planned.Amount.Amount(),
		})
	}

	if err := uc.uow.SavePlan(ctx, income, dists); err != nil {
		return dto.DistributionPlanResponse{}, fmt.Errorf("save plan: %w", err)
	}

	if result.OverAllocated {
		uc.logger.Warn("distribution plan exceeds income",
			"income_id", income.ID().String(),
			"percent_total", result.PercentTotal.String(),
			"unassigned", result.Unassigned.String(),
		)
	}

	return resp, nil
}
