package like

import (
	"time"

	"netter/internal/core/entity"

	"github.com/gofrs/uuid"
)

// Like records that a user liked a post.
type Like struct {
	entity.Base
	userID uuid.UUID
	postID uuid.UUID
}

func New(userID, postID uuid.UUID) (*Like, error) {
	const op = "like.New"
	if err := entity.RequireID(op, "user id", userID); err != nil {
		return nil, err
	}
	if err := entity.RequireID(op, "post id", postID); err != nil {
		return nil, err
	}
	return &Like{
		Base:   entity.NewBase(),
		userID: userID,
		postID: postID,
	}, nil
}

func (l *Like) UserID() uuid.UUID { return l.userID }

func (l *Like) PostID() uuid.UUID { return l.postID }

type Snapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PostID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *Like) Snapshot() Snapshot {
	return Snapshot{
		ID:        l.ID(),
		UserID:    l.userID,
		PostID:    l.postID,
		CreatedAt: l.CreatedAt(),
		UpdatedAt: l.UpdatedAt(),
	}
}

func Rehydrate(s Snapshot) *Like {
	return &Like{
		Base:   entity.RestoreBase(s.ID, s.CreatedAt, s.UpdatedAt),
		userID: s.UserID,
		postID: s.PostID,
	}
}
