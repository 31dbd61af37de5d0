package persistence

import (
	"context"

	"github.com/gofrs/uuid"
)

// Repository is the storage port for one aggregate type. Writes are queued and become
// durable only when the UnitOfWork sharing the same scope saves.
type Repository[T any] interface {
	// Add queues the entity for insertion and returns it.
	Add(ctx context.Context, entity T) (T, error)
	// GetByID returns the zero value and a nil error when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (T, error)
	// GetAll returns every stored entity in no particular order.
	GetAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, entity T) error
	Remove(ctx context.Context, entity T) error
}

// UnitOfWork commits the queued writes of every repository in its scope atomically.
type UnitOfWork interface {
	// SaveChanges returns the number of entity rows affected.
	SaveChanges(ctx context.Context) (int64, error)
}
