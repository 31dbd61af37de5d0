package postapp

import (
	"context"

	"netter/internal/core/apperr"
	"netter/internal/core/entity"
	postEntity "netter/internal/core/post"
	"netter/internal/ports/persistence"
	postPort "netter/internal/ports/post"

	"github.com/gofrs/uuid"
)

// UpdatePostContentHandler edits the content of a visible post.
type UpdatePostContentHandler struct {
	PostRepository postPort.Repository
	UnitOfWork     persistence.UnitOfWork
}

func NewUpdatePostContentHandler(repo postPort.Repository, uow persistence.UnitOfWork) *UpdatePostContentHandler {
	return &UpdatePostContentHandler{PostRepository: repo, UnitOfWork: uow}
}

func (h *UpdatePostContentHandler) Handle(ctx context.Context, cmd postPort.UpdatePostCommand) (*postPort.PostDTO, error) {
	post, err := loadPost(ctx, h.PostRepository, "postapp.UpdatePostContent", cmd.PostID)
	if err != nil {
		return nil, err
	}
	if err := post.UpdateContent(cmd.Content); err != nil {
		return nil, err
	}
	return savePost(ctx, h.PostRepository, h.UnitOfWork, post)
}

// SetPostDeletedHandler soft-deletes or restores a post.
type SetPostDeletedHandler struct {
	PostRepository postPort.Repository
	UnitOfWork     persistence.UnitOfWork
}

func NewSetPostDeletedHandler(repo postPort.Repository, uow persistence.UnitOfWork) *SetPostDeletedHandler {
	return &SetPostDeletedHandler{PostRepository: repo, UnitOfWork: uow}
}

func (h *SetPostDeletedHandler) Handle(ctx context.Context, cmd postPort.SetDeletedCommand) (*postPort.PostDTO, error) {
	post, err := loadPost(ctx, h.PostRepository, "postapp.SetPostDeleted", cmd.PostID)
	if err != nil {
		return nil, err
	}
	if cmd.Deleted {
		post.Delete()
	} else {
		post.Restore()
	}
	return savePost(ctx, h.PostRepository, h.UnitOfWork, post)
}

func loadPost(ctx context.Context, repo postPort.Repository, op, rawID string) (*postEntity.Post, error) {
	id, err := entity.ParseID(op, "post id", rawID)
	if err != nil || id == uuid.Nil {
		return nil, apperr.NotFound(op, "post not found")
	}
	post, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound(op, "post not found")
	}
	return post, nil
}

func savePost(ctx context.Context, repo postPort.Repository, uow persistence.UnitOfWork, post *postEntity.Post) (*postPort.PostDTO, error) {
	if err := repo.Update(ctx, post); err != nil {
		return nil, err
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return postPort.ToDTO(post), nil
}
