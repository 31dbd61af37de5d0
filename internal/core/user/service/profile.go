package userapp

import (
	"context"

	"netter/internal/core/apperr"
	"netter/internal/core/entity"
	userEntity "netter/internal/core/user"
	"netter/internal/ports/persistence"
	userPort "netter/internal/ports/user"

	"github.com/gofrs/uuid"
)

// UpdateProfileHandler changes a user's display name, bio and profile image.
type UpdateProfileHandler struct {
	UserRepository userPort.Repository
	UnitOfWork     persistence.UnitOfWork
}

func NewUpdateProfileHandler(repo userPort.Repository, uow persistence.UnitOfWork) *UpdateProfileHandler {
	return &UpdateProfileHandler{UserRepository: repo, UnitOfWork: uow}
}

func (h *UpdateProfileHandler) Handle(ctx context.Context, cmd userPort.UpdateProfileCommand) (*userPort.UserDTO, error) {
	user, err := loadUser(ctx, h.UserRepository, "userapp.UpdateProfile", cmd.UserID)
	if err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(cmd.DisplayName, cmd.Bio, cmd.ProfileImageURL); err != nil {
		return nil, err
	}
	return saveUser(ctx, h.UserRepository, h.UnitOfWork, user)
}

// SetActiveHandler deactivates or re-activates a user.
type SetActiveHandler struct {
	UserRepository userPort.Repository
	UnitOfWork     persistence.UnitOfWork
}

func NewSetActiveHandler(repo userPort.Repository, uow persistence.UnitOfWork) *SetActiveHandler {
	return &SetActiveHandler{UserRepository: repo, UnitOfWork: uow}
}

func (h *SetActiveHandler) Handle(ctx context.Context, cmd userPort.SetActiveCommand) (*userPort.UserDTO, error) {
	user, err := loadUser(ctx, h.UserRepository, "userapp.SetActive", cmd.UserID)
	if err != nil {
		return nil, err
	}
	if cmd.Active {
		user.Activate()
	} else {
		user.Deactivate()
	}
	return saveUser(ctx, h.UserRepository, h.UnitOfWork, user)
}

func loadUser(ctx context.Context, repo userPort.Repository, op, rawID string) (*userEntity.User, error) {
	id, err := entity.ParseID(op, "user id", rawID)
	if err != nil || id == uuid.Nil {
		return nil, apperr.NotFound(op, "user not found")
	}
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound(op, "user not found")
	}
	return user, nil
}

func saveUser(ctx context.Context, repo userPort.Repository, uow persistence.UnitOfWork, user *userEntity.User) (*userPort.UserDTO, error) {
	if err := repo.Update(ctx, user); err != nil {
		return nil, err
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return userPort.ToDTO(user), nil
}
