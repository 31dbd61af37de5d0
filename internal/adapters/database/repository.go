package database

import (
	"context"
	"errors"

	"netter/internal/core/entity"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// repository is the gorm implementation of persistence.Repository shared by every aggregate.
// Writes are queued on the owning scope.
type repository[T entity.Identifiable, R any] struct {
	scope    *Scope
	kind     string
	toRecord func(T) *R
	toDomain func(*R) T
}

func newRepository[T entity.Identifiable, R any](scope *Scope, kind string, toRecord func(T) *R, toDomain func(*R) T) *repository[T, R] {
	return &repository[T, R]{scope: scope, kind: kind, toRecord: toRecord, toDomain: toDomain}
}

func (r *repository[T, R]) Add(ctx context.Context, e T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	rec := r.toRecord(e)
	event, err := createdEvent(r.kind, e, rec)
	if err != nil {
		return zero, err
	}
	r.scope.enqueue(change{counted: true, apply: func(tx *gorm.DB) (int64, error) {
		res := tx.Omit(clause.Associations).Create(rec)
		return res.RowsAffected, res.Error
	}}, event)
	return e, nil
}

// GetByID returns the zero value and a nil error when no row matches.
func (r *repository[T, R]) GetByID(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	var rec R
	err := r.scope.db.WithContext(ctx).Where("id = ?", id.String()).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return zero, nil
	}
	if err != nil {
		return zero, err
	}
	return r.toDomain(&rec), nil
}

func (r *repository[T, R]) GetAll(ctx context.Context) ([]T, error) {
	return r.find(ctx)
}

func (r *repository[T, R]) Update(ctx context.Context, e T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec := r.toRecord(e)
	r.scope.enqueue(change{counted: true, apply: func(tx *gorm.DB) (int64, error) {
		res := tx.Model(rec).Omit(clause.Associations).Select("*").Updates(rec)
		return res.RowsAffected, res.Error
	}})
	return nil
}

func (r *repository[T, R]) Remove(ctx context.Context, e T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := e.ID().String()
	r.scope.enqueue(change{counted: true, apply: func(tx *gorm.DB) (int64, error) {
		res := tx.Where("id = ?", id).Delete(new(R))
		return res.RowsAffected, res.Error
	}})
	return nil
}

// find loads the rows matching conds, oldest first.
func (r *repository[T, R]) find(ctx context.Context, conds ...any) ([]T, error) {
	var recs []R
	if err := r.scope.db.WithContext(ctx).Order("created_at, id").Find(&recs, conds...).Error; err != nil {
		return nil, err
	}
	out := make([]T, 0, len(recs))
	for i := range recs {
		out = append(out, r.toDomain(&recs[i]))
	}
	return out, nil
}
