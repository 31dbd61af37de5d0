package comment

import (
	"context"
	"time"

	"netter/internal/core/comment"
	"netter/internal/ports/persistence"

	"github.com/gofrs/uuid"
)

type Repository interface {
	persistence.Repository[*comment.Comment]
	// ListByPost includes soft-deleted comments; filtering is up to the caller.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*comment.Comment, error)
}

type AddCommentCommand struct {
	UserID  string `json:"userId"`
	PostID  string `json:"-"`
	Content string `json:"content"`
}

type EditCommentCommand struct {
	CommentID string `json:"-"`
	Content   string `json:"content"`
}

type CommentDTO struct {
	CommentID string    `json:"commentId"`
	UserID    string    `json:"userId"`
	PostID    string    `json:"postId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToDTO(c *comment.Comment) *CommentDTO {
	return &CommentDTO{
		CommentID: c.ID().String(),
		UserID:    c.UserID().String(),
		PostID:    c.PostID().String(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}
