package outbox

import (
	"context"
	"encoding/json"

	"netter/internal/core/outbox"

	"github.com/gofrs/uuid"
)

// Repository reads and settles outbox rows written by persistence scopes.
type Repository interface {
	GetPending(ctx context.Context, limit int) ([]*outbox.Event, error)
	MarkDone(ctx context.Context, id uuid.UUID) error
}

// Publisher delivers an event to subscribers.
type Publisher interface {
	Publish(ctx context.Context, event *outbox.Event) error
}

// Message is the wire shape published for each event.
type Message struct {
	ID          string          `json:"id"`
	Topic       string          `json:"topic"`
	AggregateID string          `json:"aggregateId"`
	OccurredAt  string          `json:"occurredAt"`
	Payload     json.RawMessage `json:"payload"`
}
