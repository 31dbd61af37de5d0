package userapp

import (
	"context"

	userEntity "netter/internal/core/user"
	"netter/internal/ports/persistence"
	userPort "netter/internal/ports/user"
)

// CreateUserHandler registers a new user.
type CreateUserHandler struct {
	UserRepository userPort.Repository
	UnitOfWork     persistence.UnitOfWork
}

func NewCreateUserHandler(repo userPort.Repository, uow persistence.UnitOfWork) *CreateUserHandler {
	return &CreateUserHandler{
		UserRepository: repo,
		UnitOfWork:     uow,
	}
}

// Handle validates the command before touching storage; a duplicate username or email
// surfaces from SaveChanges as a conflict.
func (h *CreateUserHandler) Handle(ctx context.Context, cmd userPort.CreateUserCommand) (*userPort.CreateUserResult, error) {
	user, err := userEntity.New(cmd.Username, cmd.Email, cmd.DisplayName)
	if err != nil {
		return nil, err
	}

	if _, err := h.UserRepository.Add(ctx, user); err != nil {
		return nil, err
	}
	if _, err := h.UnitOfWork.SaveChanges(ctx); err != nil {
		return nil, err
	}

	return &userPort.CreateUserResult{
		UserID:      user.ID().String(),
		Username:    user.Username(),
		Email:       user.Email(),
		DisplayName: user.DisplayName(),
		CreatedAt:   user.CreatedAt(),
	}, nil
}
