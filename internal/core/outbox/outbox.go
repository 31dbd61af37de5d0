package outbox

import (
	"time"

	"github.com/gofrs/uuid"
)

// Status of an outbox row.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// Event announces that an aggregate was created. It is written in the same transaction as
// the aggregate and relayed to subscribers afterwards.
type Event struct {
	ID          uuid.UUID
	Topic       string
	AggregateID uuid.UUID
	Payload     []byte
	Status      string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// NewEvent returns a pending event for the aggregate.
func NewEvent(topic string, aggregateID uuid.UUID, payload []byte, at time.Time) *Event {
	return &Event{
		ID:          uuid.Must(uuid.NewV4()),
		Topic:       topic,
		AggregateID: aggregateID,
		Payload:     payload,
		Status:      StatusPending,
		CreatedAt:   at,
	}
}
