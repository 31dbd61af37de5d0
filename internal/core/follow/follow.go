package follow

import (
	"time"

	"netter/internal/core/apperr"
	"netter/internal/core/entity"

	"github.com/gofrs/uuid"
)

// Follow is a directed edge: the follower receives the followee's posts.
// Two edges with the same pair can exist in memory; storage rejects the second.
type Follow struct {
	entity.Base
	followerID uuid.UUID
	followeeID uuid.UUID
}

func New(followerID, followeeID uuid.UUID) (*Follow, error) {
	const op = "follow.New"
	if err := entity.RequireID(op, "follower id", followerID); err != nil {
		return nil, err
	}
	if err := entity.RequireID(op, "followee id", followeeID); err != nil {
		return nil, err
	}
	if followerID == followeeID {
		return nil, apperr.InvalidArgument(op, "user cannot follow themselves")
	}
	return &Follow{
		Base:       entity.NewBase(),
		followerID: followerID,
		followeeID: followeeID,
	}, nil
}

func (f *Follow) FollowerID() uuid.UUID { return f.followerID }

func (f *Follow) FolloweeID() uuid.UUID { return f.followeeID }

type Snapshot struct {
	ID         uuid.UUID
	FollowerID uuid.UUID
	FolloweeID uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (f *Follow) Snapshot() Snapshot {
	return Snapshot{
		ID:         f.ID(),
		FollowerID: f.followerID,
		FolloweeID: f.followeeID,
		CreatedAt:  f.CreatedAt(),
		UpdatedAt:  f.UpdatedAt(),
	}
}

func Rehydrate(s Snapshot) *Follow {
	return &Follow{
		Base:       entity.RestoreBase(s.ID, s.CreatedAt, s.UpdatedAt),
		followerID: s.FollowerID,
		followeeID: s.FolloweeID,
	}
}
