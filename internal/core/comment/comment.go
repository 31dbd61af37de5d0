package comment

import (
	"time"

	"netter/internal/core/apperr"
	"netter/internal/core/entity"

	"github.com/gofrs/uuid"
)

// MaxContentLength is shorter than a post's limit.
const MaxContentLength = 200

// Comment is a reply by a user on a post.
type Comment struct {
	entity.Base
	userID  uuid.UUID
	postID  uuid.UUID
	content string
	deleted bool
}

func New(userID, postID uuid.UUID, content string) (*Comment, error) {
	const op = "comment.New"
	if err := entity.RequireID(op, "user id", userID); err != nil {
		return nil, err
	}
	if err := entity.RequireID(op, "post id", postID); err != nil {
		return nil, err
	}
	trimmed, err := entity.Content(op, content, MaxContentLength)
	if err != nil {
		return nil, err
	}
	return &Comment{
		Base:    entity.NewBase(),
		userID:  userID,
		postID:  postID,
		content: trimmed,
	}, nil
}

func (c *Comment) UserID() uuid.UUID { return c.userID }

func (c *Comment) PostID() uuid.UUID { return c.postID }

func (c *Comment) Content() string { return c.content }

func (c *Comment) IsDeleted() bool { return c.deleted }

func (c *Comment) UpdateContent(content string) error {
	const op = "comment.UpdateContent"
	if c.deleted {
		return apperr.InvalidOperation(op, "cannot update a deleted comment")
	}
	trimmed, err := entity.Content(op, content, MaxContentLength)
	if err != nil {
		return err
	}
	c.content = trimmed
	c.Touch()
	return nil
}

func (c *Comment) Delete() {
	c.deleted = true
	c.Touch()
}

func (c *Comment) Restore() {
	c.deleted = false
	c.Touch()
}

type Snapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PostID    uuid.UUID
	Content   string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Comment) Snapshot() Snapshot {
	return Snapshot{
		ID:        c.ID(),
		UserID:    c.userID,
		PostID:    c.postID,
		Content:   c.content,
		IsDeleted: c.deleted,
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func Rehydrate(s Snapshot) *Comment {
	return &Comment{
		Base:    entity.RestoreBase(s.ID, s.CreatedAt, s.UpdatedAt),
		userID:  s.UserID,
		postID:  s.PostID,
		content: s.Content,
		deleted: s.IsDeleted,
	}
}
