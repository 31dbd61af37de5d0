package postapp

import (
	"bytes"
	"context"
	"slices"

	postEntity "netter/internal/core/post"
	postPort "netter/internal/ports/post"
)

type GetPostsHandler struct {
	PostRepository postPort.Repository
}

func NewGetPostsHandler(repo postPort.Repository) *GetPostsHandler {
	return &GetPostsHandler{PostRepository: repo}
}

// Handle lists visible posts, newest first. Posts created at the same instant are ordered
// by id so repeated calls return the same sequence.
func (h *GetPostsHandler) Handle(ctx context.Context, _ postPort.GetPostsQuery) ([]*postPort.PostDTO, error) {
	all, err := h.PostRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*postEntity.Post, 0, len(all))
	for _, p := range all {
		if p != nil && !p.IsDeleted() {
			visible = append(visible, p)
		}
	}
	slices.SortStableFunc(visible, newestFirst)

	result := make([]*postPort.PostDTO, 0, len(visible))
	for _, p := range visible {
		result = append(result, postPort.ToDTO(p))
	}
	return result, nil
}

func newestFirst(a, b *postEntity.Post) int {
	if c := b.CreatedAt().Compare(a.CreatedAt()); c != 0 {
		return c
	}
	return bytes.Compare(a.ID().Bytes(), b.ID().Bytes())
}
