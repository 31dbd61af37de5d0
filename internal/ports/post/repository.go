package post

import (
	"time"

	"netter/internal/core/post"
	"netter/internal/ports/persistence"
)

// Repository is the storage port for posts.
type Repository = persistence.Repository[*post.Post]

type CreatePostCommand struct {
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

type CreatePostResult struct {
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type GetPostsQuery struct{}

// PostDTO is one entry of a post listing.
type PostDTO struct {
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UpdatePostCommand struct {
	PostID  string `json:"-"`
	Content string `json:"content"`
}

// SetDeletedCommand soft-deletes (Deleted=true) or restores a post.
type SetDeletedCommand struct {
	PostID  string
	Deleted bool
}

func ToDTO(p *post.Post) *PostDTO {
	return &PostDTO{
		PostID:    p.ID().String(),
		UserID:    p.UserID().String(),
		Content:   p.Content(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}
