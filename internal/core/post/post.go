package post

import (
	"time"

	"netter/internal/core/apperr"
	"netter/internal/core/entity"

	"github.com/gofrs/uuid"
)

// MaxContentLength is the largest post accepted, in characters.
const MaxContentLength = 500

// Post is a message published by a user. Deleting a post only hides it.
type Post struct {
	entity.Base
	userID  uuid.UUID
	content string
	deleted bool
}

// New validates the owner and content and returns a visible post with trimmed content.
func New(userID uuid.UUID, content string) (*Post, error) {
	const op = "post.New"
	if err := entity.RequireID(op, "user id", userID); err != nil {
		return nil, err
	}
	trimmed, err := entity.Content(op, content, MaxContentLength)
	if err != nil {
		return nil, err
	}
	return &Post{
		Base:    entity.NewBase(),
		userID:  userID,
		content: trimmed,
	}, nil
}

func (p *Post) UserID() uuid.UUID { return p.userID }

func (p *Post) Content() string { return p.content }

func (p *Post) IsDeleted() bool { return p.deleted }

// UpdateContent replaces the content of a visible post.
func (p *Post) UpdateContent(content string) error {
	const op = "post.UpdateContent"
	if p.deleted {
		return apperr.InvalidOperation(op, "cannot update a deleted post")
	}
	trimmed, err := entity.Content(op, content, MaxContentLength)
	if err != nil {
		return err
	}
	p.content = trimmed
	p.Touch()
	return nil
}

func (p *Post) Delete() {
	p.deleted = true
	p.Touch()
}

func (p *Post) Restore() {
	p.deleted = false
	p.Touch()
}

// Snapshot is the persisted form of a Post.
type Snapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Post) Snapshot() Snapshot {
	return Snapshot{
		ID:        p.ID(),
		UserID:    p.userID,
		Content:   p.content,
		IsDeleted: p.deleted,
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

// Rehydrate rebuilds a Post from stored state without re-running validation.
func Rehydrate(s Snapshot) *Post {
	return &Post{
		Base:    entity.RestoreBase(s.ID, s.CreatedAt, s.UpdatedAt),
		userID:  s.UserID,
		content: s.Content,
		deleted: s.IsDeleted,
	}
}
