package messaging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kassa-app/kassa/pkg/events"
	pkgkafka "github.com/kassa-app/kassa/pkg/kafka"
)

type stubOutbox struct {
	entries   []events.OutboxEntry
	published [][]uuid.UUID
}

func (s *stubOutbox) FetchUnpublished(ctx context.Context, batchSize int) ([]events.OutboxEntry, error) {
	if len(s.entries) > batchSize {
		return s.entries[:batchSize], nil
	}
	return s.entries, nil
}

func (s *stubOutbox) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	s.published = append(s.published, ids)
	remaining := s.entries[:0]
	for _, e := range s.entries {
		marked := false
		for _, id := range ids {
			if e.ID == id {
				marked = true
				break
			}
		}
		if !marked {
			remaining = append(remaining, e)
		}
	}
	s.entries = remaining
	return nil
}

type stubProducer struct {
	batches [][]pkgkafka.Message
	topics  []string
	err     error
}

func (p *stubProducer) Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error {
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.batches = append(p.batches, messages)
	return nil
}

func outboxEntry(eventType string) events.OutboxEntry {
	return events.OutboxEntry{
		ID:            uuid.New(),
		AggregateID:   uuid.New(),
		AggregateType: "credit",
		EventType:     eventType,
		Payload:       []byte(`{"ok":true}`),
		CreatedAt:     time.Now().UTC(),
	}
}

func TestOutboxRelay_RelayBatch(t *testing.T) {
	logger := slog.Default()

	t.Run("delivers each staged event once and marks it published", func(t *testing.T) {
		first := outboxEntry("credit.created")
		second := outboxEntry("credit.schedule_regenerated")
		outbox := &stubOutbox{entries: []events.OutboxEntry{first, second}}
		producer := &stubProducer{}

		relay := NewOutboxRelay(outbox, producer, "kassa-events", logger)

		require.NoError(t, relay.relayBatch(context.Background()))

		require.Len(t, producer.batches, 1)
		require.Len(t, producer.batches[0], 2)
		assert.Equal(t, []string{"kassa-events"}, producer.topics)

		msg := producer.batches[0][0]
		assert.Equal(t, first.AggregateID.String(), string(msg.Key))
		assert.Equal(t, first.Payload, msg.Value)
		assert.Equal(t, "credit.created", msg.Headers["event_type"])
		assert.Equal(t, first.ID.String(), msg.Headers["event_id"])

		require.Len(t, outbox.published, 1)
		assert.Equal(t, []uuid.UUID{first.ID, second.ID}, outbox.published[0])

		// A second pass over the drained outbox publishes nothing.
		require.NoError(t, relay.relayBatch(context.Background()))
		assert.Len(t, producer.batches, 1)
	})

	t.Run("keeps entries unpublished when the broker rejects the batch", func(t *testing.T) {
		entry := outboxEntry("deposit.opened")
		outbox := &stubOutbox{entries: []events.OutboxEntry{entry}}
		producer := &stubProducer{err: assert.AnError}

		relay := NewOutboxRelay(outbox, producer, "kassa-events", logger)

		assert.Error(t, relay.relayBatch(context.Background()))
		assert.Empty(t, outbox.published)
		assert.Len(t, outbox.entries, 1)
	})
}
