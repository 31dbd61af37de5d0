package database

import (
	"context"

	"netter/internal/core/entity"
	"netter/internal/core/outbox"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// OutboxRepository reads and settles outbox rows outside of any scope.
type OutboxRepository struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) *OutboxRepository {
	return &OutboxRepository{db: db}
}

func (s *Store) Outbox() *OutboxRepository { return NewOutboxRepository(s.db) }

// GetPending returns up to limit pending events, oldest first.
func (repo *OutboxRepository) GetPending(ctx context.Context, limit int) ([]*outbox.Event, error) {
	var recs []*OutboxRecord
	if err := repo.db.WithContext(ctx).
		Where("status = ?", outbox.StatusPending).
		Order("created_at, id").
		Limit(limit).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	events := make([]*outbox.Event, 0, len(recs))
	for _, rec := range recs {
		events = append(events, outboxToDomain(rec))
	}
	return events, nil
}

func (repo *OutboxRepository) MarkDone(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Model(&OutboxRecord{}).
		Where("id = ?", id.String()).
		Updates(map[string]any{
			"status":       outbox.StatusDone,
			"processed_at": entity.Now(),
		}).Error
}
