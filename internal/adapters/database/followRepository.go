package database

import (
	"context"
	"errors"

	followEntity "netter/internal/core/follow"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// FollowRepository implements the follow storage port.
type FollowRepository struct {
	*repository[*followEntity.Follow, FollowRecord]
}

func (r *FollowRepository) FindEdge(ctx context.Context, followerID, followeeID uuid.UUID) (*followEntity.Follow, error) {
	var rec FollowRecord
	err := r.scope.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID.String(), followeeID.String()).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return followToDomain(&rec), nil
}

func (r *FollowRepository) ListFollowers(ctx context.Context, userID uuid.UUID) ([]*followEntity.Follow, error) {
	return r.find(ctx, "followee_id = ?", userID.String())
}

func (r *FollowRepository) ListFollowing(ctx context.Context, userID uuid.UUID) ([]*followEntity.Follow, error) {
	return r.find(ctx, "follower_id = ?", userID.String())
}
