// Package messaging delivers domain events to Kafka. The outbox relay is the
// single delivery path: repositories stage events in the outbox table inside
// the aggregate's transaction, and the relay drains them to the broker.
package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kassa-app/kassa/pkg/events"
	pkgkafka "github.com/kassa-app/kassa/pkg/kafka"
)

// Producer is the broker side of the relay, satisfied by pkg/kafka.Producer.
type Producer interface {
	Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error
}

// OutboxRelay drains the outbox table into Kafka on a fixed interval.
// Delivery is at-least-once: a crash between Publish and MarkPublished
// resends the batch on the next tick.
type OutboxRelay struct {
	outbox    events.OutboxRepository
	producer  Producer
	topic     string
	batchSize int
	interval  time.Duration
	logger    *slog.Logger
}

func NewOutboxRelay(outbox events.OutboxRepository, producer Producer, topic string, logger *slog.Logger) *OutboxRelay {
	return &OutboxRelay{
		outbox:    outbox,
		producer:  producer,
		topic:     topic,
		batchSize: 100,
		interval:  time.Second,
		logger:    logger,
	}
}

// Run blocks until ctx is cancelled, relaying one batch per tick.
func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.relayBatch(ctx); err != nil {
				r.logger.ErrorContext(ctx, "outbox relay batch failed", "error", err)
			}
		}
	}
}

func (r *OutboxRelay) relayBatch(ctx context.Context) error {
	entries, err := r.outbox.FetchUnpublished(ctx, r.batchSize)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	messages := make([]pkgkafka.Message, 0, len(entries))
	ids := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		messages = append(messages, pkgkafka.Message{
			Key:   []byte(entry.AggregateID.String()),
			Value: entry.Payload,
			Headers: map[string]string{
				"event_type": entry.EventType,
				"event_id":   entry.ID.String(),
			},
		})
		ids = append(ids, entry.ID)
	}

	if err := r.producer.Publish(ctx, r.topic, messages...); err != nil {
		return err
	}
	if err := r.outbox.MarkPublished(ctx, ids); err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "relayed outbox batch", "count", len(entries), "topic", r.topic)
	return nil
}
