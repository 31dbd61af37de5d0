package like

import (
	"context"
	"time"

	"netter/internal/core/like"
	"netter/internal/ports/persistence"

	"github.com/gofrs/uuid"
)

type Repository interface {
	persistence.Repository[*like.Like]
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*like.Like, error)
}

type LikePostCommand struct {
	UserID string `json:"userId"`
	PostID string `json:"-"`
}

type LikeDTO struct {
	LikeID    string    `json:"likeId"`
	UserID    string    `json:"userId"`
	PostID    string    `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToDTO(l *like.Like) *LikeDTO {
	return &LikeDTO{
		LikeID:    l.ID().String(),
		UserID:    l.UserID().String(),
		PostID:    l.PostID().String(),
		CreatedAt: l.CreatedAt(),
	}
}
