package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/internal/domain/port"
)

// Compile-time interface check.
var _ port.RuleRepository = (*RuleRepo)(nil)

// RuleRepo implements RuleRepository using PostgreSQL.
type RuleRepo struct {
	pool *pgxpool.Pool
}

func NewRuleRepo(pool *pgxpool.Pool) *RuleRepo {
	return &RuleRepo{pool: pool}
}

func (r *RuleRepo) Save(ctx context.Context, rule model.DistributionRule) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO distribution_rules (id, fund_id, kind, value, priority, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			kind     = EXCLUDED.kind,
			value    = EXCLUDED.value,
			priority = EXCLUDED.priority,
			active   = EXCLUDED.active
	`, rule.ID, rule.FundID, string(rule.Kind), rule.Value, rule.Priority, rule.Active)
	if err != nil {
		return fmt.Errorf("upsert rule: %w", err)
	}
	return nil
}

func (r *RuleRepo) ListActive(ctx context.Context) ([]model.DistributionRule, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, fund_id, kind, value, priority, active
		FROM distribution_rules
		WHERE active
		ORDER BY priority, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query rules: %w", err)
	}
	defer rows.Close()

	var rules []model.DistributionRule
	for rows.Next() {
		var (
			id, fundID uuid.UUID
			kind       string
			value      decimal.Decimal
			priority   int
			active     bool
		)
		if err := rows.Scan(&id, &fundID, &kind, &value, &priority, &active); err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		rules = append(rules, model.DistributionRule{
			ID:       id,
			FundID:   fundID,
			Kind:     model.RuleKind(kind),
			Value:    value,
			Priority: priority,
			Active:   active,
		})
	}
	return rules, rows.Err()
}

func (r *RuleRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE distribution_rules SET active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: rule %s", model.ErrNotFound, id)
	}
	return nil
}
