package database

import (
	"context"

	commentEntity "netter/internal/core/comment"

	"github.com/gofrs/uuid"
)

type CommentRepository struct {
	*repository[*commentEntity.Comment, CommentRecord]
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]*commentEntity.Comment, error) {
	return r.find(ctx, "post_id = ?", postID.String())
}
