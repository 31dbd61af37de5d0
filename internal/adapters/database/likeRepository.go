package database

import (
	"context"

	likeEntity "netter/internal/core/like"

	"github.com/gofrs/uuid"
)

type LikeRepository struct {
	*repository[*likeEntity.Like, LikeRecord]
}

func (r *LikeRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]*likeEntity.Like, error) {
	return r.find(ctx, "post_id = ?", postID.String())
}
