package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"netter/internal/config"
	"netter/internal/core/outbox"
	outboxPort "netter/internal/ports/outbox"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	EventsChannel   = "netter:events"
	RecentEventsKey = "netter:events:recent"
	RecentEventsCap = 1000
)

type EventPublisherRedis struct {
	Client *redis.Client
}

func NewEventPublisherRedis(client *redis.Client) *EventPublisherRedis {
	return &EventPublisherRedis{
		Client: client,
	}
}

// Publish sends the event to EventsChannel and prepends it to the capped RecentEventsKey
// list in one round trip.
func (r *EventPublisherRedis) Publish(ctx context.Context, event *outbox.Event) error {
	body, err := encode(event)
	if err != nil {
		return err
	}

	_, err = r.Client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Publish(ctx, EventsChannel, body)
		pipe.LPush(ctx, RecentEventsKey, body)
		pipe.LTrim(ctx, RecentEventsKey, 0, RecentEventsCap-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("publish event %s: %w", event.ID, err)
	}

	config.Logger.Debug("Published event", zap.String("topic", event.Topic), zap.String("eventID", event.ID.String()))
	return nil
}

// Recent returns up to n of the most recently published messages, newest first.
func (r *EventPublisherRedis) Recent(ctx context.Context, n int64) ([]outboxPort.Message, error) {
	raw, err := r.Client.LRange(ctx, RecentEventsKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	msgs := make([]outboxPort.Message, 0, len(raw))
	for _, s := range raw {
		var m outboxPort.Message
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			return nil, fmt.Errorf("decode recent event: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func encode(event *outbox.Event) ([]byte, error) {
	payload := json.RawMessage(event.Payload)
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return json.Marshal(outboxPort.Message{
		ID:          event.ID.String(),
		Topic:       event.Topic,
		AggregateID: event.AggregateID.String(),
		OccurredAt:  event.CreatedAt.UTC().Format(time.RFC3339Nano),
		Payload:     payload,
	})
}
