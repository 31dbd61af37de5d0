package followapp

import (
	"context"

	"netter/internal/config"
	"netter/internal/core/apperr"
	"netter/internal/core/entity"
	followEntity "netter/internal/core/follow"
	followPort "netter/internal/ports/follow"
	"netter/internal/ports/persistence"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type FollowService struct {
	FollowRepository followPort.Repository
	UnitOfWork       persistence.UnitOfWork
}

func NewFollowService(repo followPort.Repository, uow persistence.UnitOfWork) *FollowService {
	return &FollowService{
		FollowRepository: repo,
		UnitOfWork:       uow,
	}
}

// FollowUser creates the edge follower -> followee. An existing edge is reported as a
// conflict here; a concurrent duplicate is still rejected by the unique index at commit.
func (s *FollowService) FollowUser(ctx context.Context, cmd followPort.FollowCommand) (*followPort.FollowDTO, error) {
	const op = "followapp.FollowUser"
	followerID, followeeID, err := parsePair(op, cmd)
	if err != nil {
		return nil, err
	}

	f, err := followEntity.New(followerID, followeeID)
	if err != nil {
		config.Logger.Warn("follow rejected", zap.String("followerID", cmd.FollowerID), zap.Error(err))
		return nil, err
	}

	existing, err := s.FollowRepository.FindEdge(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict(op, "already following this user")
	}

	if _, err := s.FollowRepository.Add(ctx, f); err != nil {
		return nil, err
	}
	if _, err := s.UnitOfWork.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return followPort.ToDTO(f), nil
}

func (s *FollowService) UnfollowUser(ctx context.Context, cmd followPort.FollowCommand) error {
	const op = "followapp.UnfollowUser"
	followerID, followeeID, err := parsePair(op, cmd)
	if err != nil {
		return err
	}

	existing, err := s.FollowRepository.FindEdge(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound(op, "follow relationship not found")
	}

	if err := s.FollowRepository.Remove(ctx, existing); err != nil {
		return err
	}
	_, err = s.UnitOfWork.SaveChanges(ctx)
	return err
}

// GetFollowers never returns a nil slice.
func (s *FollowService) GetFollowers(ctx context.Context, userID string) ([]*followPort.FollowDTO, error) {
	id, err := entity.ParseID("followapp.GetFollowers", "user id", userID)
	if err != nil {
		return nil, err
	}
	edges, err := s.FollowRepository.ListFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTOs(edges), nil
}

func (s *FollowService) GetFollowing(ctx context.Context, userID string) ([]*followPort.FollowDTO, error) {
	id, err := entity.ParseID("followapp.GetFollowing", "user id", userID)
	if err != nil {
		return nil, err
	}
	edges, err := s.FollowRepository.ListFollowing(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTOs(edges), nil
}

func parsePair(op string, cmd followPort.FollowCommand) (uuid.UUID, uuid.UUID, error) {
	followerID, err := entity.ParseID(op, "follower id", cmd.FollowerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	followeeID, err := entity.ParseID(op, "followee id", cmd.FolloweeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return followerID, followeeID, nil
}

func toDTOs(edges []*followEntity.Follow) []*followPort.FollowDTO {
	dtos := make([]*followPort.FollowDTO, 0, len(edges))
	for _, f := range edges {
		dtos = append(dtos, followPort.ToDTO(f))
	}
	return dtos
}
