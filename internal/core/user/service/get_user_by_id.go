package userapp

import (
	"context"

	"netter/internal/core/entity"
	userPort "netter/internal/ports/user"
)

type GetUserByIDHandler struct {
	UserRepository userPort.Repository
}

func NewGetUserByIDHandler(repo userPort.Repository) *GetUserByIDHandler {
	return &GetUserByIDHandler{UserRepository: repo}
}

// Handle returns nil without an error when the user does not exist or the id is malformed.
func (h *GetUserByIDHandler) Handle(ctx context.Context, query userPort.GetUserByIDQuery) (*userPort.UserDTO, error) {
	id, err := entity.ParseID("userapp.GetUserByID", "user id", query.UserID)
	if err != nil {
		return nil, nil
	}

	user, err := h.UserRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return userPort.ToDTO(user), nil
}
