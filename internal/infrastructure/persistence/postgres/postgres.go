// Package postgres implements the domain ports on PostgreSQL via pgx.
// Aggregates are upserted with an optimistic version predicate, and pending
// domain events are written to the outbox table inside the same transaction.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kassa-app/kassa/internal/domain/model"
	"github.com/kassa-app/kassa/pkg/events"
	"github.com/kassa-app/kassa/pkg/money"
)

// ErrVersionConflict signals a lost optimistic-concurrency race; the caller
// should reload and retry.
var ErrVersionConflict = fmt.Errorf("%w: stale aggregate version", model.ErrIllegalStateTransition)

func insertOutbox(ctx context.Context, tx pgx.Tx, evts []events.DomainEvent) error {
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal outbox event: %w", err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO outbox (id, aggregate_id, aggregate_type, event_type, payload, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, evt.EventID(), evt.AggregateID(), evt.AggregateType(), evt.EventType(), payload, evt.OccurredAt())
		if err != nil {
			return fmt.Errorf("insert outbox event: %w", err)
		}
	}
	return nil
}

func scanMoney(amount decimal.Decimal, code string) (money.Money, error) {
	currency, err := money.NewCurrency(code)
	if err != nil {
		return money.Money{}, fmt.Errorf("stored currency %q: %w", code, err)
	}
	return money.New(amount, currency), nil
}
