package follow

import (
	"context"
	"time"

	"netter/internal/core/follow"
	"netter/internal/ports/persistence"

	"github.com/gofrs/uuid"
)

// Repository stores follow edges and answers the graph queries the handlers need.
type Repository interface {
	persistence.Repository[*follow.Follow]
	// FindEdge returns nil and a nil error when followerID does not follow followeeID.
	FindEdge(ctx context.Context, followerID, followeeID uuid.UUID) (*follow.Follow, error)
	// ListFollowers returns the edges pointing at userID.
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]*follow.Follow, error)
	// ListFollowing returns the edges starting at userID.
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]*follow.Follow, error)
}

type FollowCommand struct {
	FollowerID string `json:"followerId"`
	FolloweeID string `json:"followeeId"`
}

type FollowDTO struct {
	FollowID   string    `json:"followId"`
	FollowerID string    `json:"followerId"`
	FolloweeID string    `json:"followeeId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToDTO(f *follow.Follow) *FollowDTO {
	return &FollowDTO{
		FollowID:   f.ID().String(),
		FollowerID: f.FollowerID().String(),
		FolloweeID: f.FolloweeID().String(),
		CreatedAt:  f.CreatedAt(),
	}
}
