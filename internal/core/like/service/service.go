package likeapp

import (
	"context"

	"netter/internal/core/entity"
	likeEntity "netter/internal/core/like"
	likePort "netter/internal/ports/like"
	"netter/internal/ports/persistence"
)

type LikeService struct {
	LikeRepository likePort.Repository
	UnitOfWork     persistence.UnitOfWork
}

func NewLikeService(repo likePort.Repository, uow persistence.UnitOfWork) *LikeService {
	return &LikeService{LikeRepository: repo, UnitOfWork: uow}
}

func (s *LikeService) LikePost(ctx context.Context, cmd likePort.LikePostCommand) (*likePort.LikeDTO, error) {
	const op = "likeapp.LikePost"
	userID, err := entity.ParseID(op, "user id", cmd.UserID)
	if err != nil {
		return nil, err
	}
	postID, err := entity.ParseID(op, "post id", cmd.PostID)
	if err != nil {
		return nil, err
	}

	l, err := likeEntity.New(userID, postID)
	if err != nil {
		return nil, err
	}
	if _, err := s.LikeRepository.Add(ctx, l); err != nil {
		return nil, err
	}
	if _, err := s.UnitOfWork.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return likePort.ToDTO(l), nil
}

func (s *LikeService) GetLikes(ctx context.Context, postID string) ([]*likePort.LikeDTO, error) {
	id, err := entity.ParseID("likeapp.GetLikes", "post id", postID)
	if err != nil {
		return nil, err
	}
	likes, err := s.LikeRepository.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	dtos := make([]*likePort.LikeDTO, 0, len(likes))
	for _, l := range likes {
		dtos = append(dtos, likePort.ToDTO(l))
	}
	return dtos, nil
}
