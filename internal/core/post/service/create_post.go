package postapp

import (
	"context"

	"netter/internal/core/entity"
	postEntity "netter/internal/core/post"
	"netter/internal/ports/persistence"
	postPort "netter/internal/ports/post"
)

// CreatePostHandler publishes a post for an existing user.
type CreatePostHandler struct {
	PostRepository postPort.Repository
	UnitOfWork     persistence.UnitOfWork
}

func NewCreatePostHandler(repo postPort.Repository, uow persistence.UnitOfWork) *CreatePostHandler {
	return &CreatePostHandler{
		PostRepository: repo,
		UnitOfWork:     uow,
	}
}

func (h *CreatePostHandler) Handle(ctx context.Context, cmd postPort.CreatePostCommand) (*postPort.CreatePostResult, error) {
	userID, err := entity.ParseID("postapp.CreatePost", "user id", cmd.UserID)
	if err != nil {
		return nil, err
	}
	post, err := postEntity.New(userID, cmd.Content)
	if err != nil {
		return nil, err
	}

	if _, err := h.PostRepository.Add(ctx, post); err != nil {
		return nil, err
	}
	if _, err := h.UnitOfWork.SaveChanges(ctx); err != nil {
		return nil, err
	}

	return &postPort.CreatePostResult{
		PostID:    post.ID().String(),
		UserID:    post.UserID().String(),
		Content:   post.Content(),
		CreatedAt: post.CreatedAt(),
	}, nil
}
