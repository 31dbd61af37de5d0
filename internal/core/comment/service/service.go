package commentapp

import (
	"bytes"
	"context"
	"slices"

	"netter/internal/core/apperr"
	commentEntity "netter/internal/core/comment"
	"netter/internal/core/entity"
	commentPort "netter/internal/ports/comment"
	"netter/internal/ports/persistence"

	"github.com/gofrs/uuid"
)

type CommentService struct {
	CommentRepository commentPort.Repository
	UnitOfWork        persistence.UnitOfWork
}

func NewCommentService(repo commentPort.Repository, uow persistence.UnitOfWork) *CommentService {
	return &CommentService{CommentRepository: repo, UnitOfWork: uow}
}

func (s *CommentService) AddComment(ctx context.Context, cmd commentPort.AddCommentCommand) (*commentPort.CommentDTO, error) {
	const op = "commentapp.AddComment"
	userID, err := entity.ParseID(op, "user id", cmd.UserID)
	if err != nil {
		return nil, err
	}
	postID, err := entity.ParseID(op, "post id", cmd.PostID)
	if err != nil {
		return nil, err
	}

	c, err := commentEntity.New(userID, postID, cmd.Content)
	if err != nil {
		return nil, err
	}
	if _, err := s.CommentRepository.Add(ctx, c); err != nil {
		return nil, err
	}
	if _, err := s.UnitOfWork.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return commentPort.ToDTO(c), nil
}

func (s *CommentService) EditComment(ctx context.Context, cmd commentPort.EditCommentCommand) (*commentPort.CommentDTO, error) {
	c, err := s.load(ctx, "commentapp.EditComment", cmd.CommentID)
	if err != nil {
		return nil, err
	}
	if err := c.UpdateContent(cmd.Content); err != nil {
		return nil, err
	}
	return s.save(ctx, c)
}

// DeleteComment hides the comment; it stays in storage.
func (s *CommentService) DeleteComment(ctx context.Context, commentID string) (*commentPort.CommentDTO, error) {
	c, err := s.load(ctx, "commentapp.DeleteComment", commentID)
	if err != nil {
		return nil, err
	}
	c.Delete()
	return s.save(ctx, c)
}

// RestoreComment makes a deleted comment visible again.
func (s *CommentService) RestoreComment(ctx context.Context, commentID string) (*commentPort.CommentDTO, error) {
	c, err := s.load(ctx, "commentapp.RestoreComment", commentID)
	if err != nil {
		return nil, err
	}
	c.Restore()
	return s.save(ctx, c)
}

// GetComments lists the visible comments of a post, oldest first.
func (s *CommentService) GetComments(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error) {
	id, err := entity.ParseID("commentapp.GetComments", "post id", postID)
	if err != nil {
		return nil, err
	}
	all, err := s.CommentRepository.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	visible := slices.DeleteFunc(slices.Clone(all), func(c *commentEntity.Comment) bool {
		return c == nil || c.IsDeleted()
	})
	slices.SortStableFunc(visible, func(a, b *commentEntity.Comment) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return bytes.Compare(a.ID().Bytes(), b.ID().Bytes())
	})

	dtos := make([]*commentPort.CommentDTO, 0, len(visible))
	for _, c := range visible {
		dtos = append(dtos, commentPort.ToDTO(c))
	}
	return dtos, nil
}

func (s *CommentService) load(ctx context.Context, op, rawID string) (*commentEntity.Comment, error) {
	id, err := entity.ParseID(op, "comment id", rawID)
	if err != nil || id == uuid.Nil {
		return nil, apperr.NotFound(op, "comment not found")
	}
	c, err := s.CommentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound(op, "comment not found")
	}
	return c, nil
}

func (s *CommentService) save(ctx context.Context, c *commentEntity.Comment) (*commentPort.CommentDTO, error) {
	if err := s.CommentRepository.Update(ctx, c); err != nil {
		return nil, err
	}
	if _, err := s.UnitOfWork.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return commentPort.ToDTO(c), nil
}
