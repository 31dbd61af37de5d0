package user

import (
	"time"

	"netter/internal/core/user"
	"netter/internal/ports/persistence"
)

// Repository is the storage port for users.
type Repository = persistence.Repository[*user.User]

type CreateUserCommand struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type CreateUserResult struct {
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

type GetUserByIDQuery struct {
	UserID string
}

// UserDTO is the full profile returned by queries and profile commands.
type UserDTO struct {
	UserID          string    `json:"userId"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	DisplayName     string    `json:"displayName"`
	Bio             *string   `json:"bio"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

type UpdateProfileCommand struct {
	UserID          string  `json:"-"`
	DisplayName     string  `json:"displayName"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

type SetActiveCommand struct {
	UserID string
	Active bool
}

// ToDTO maps a user to its profile shape.
func ToDTO(u *user.User) *UserDTO {
	return &UserDTO{
		UserID:          u.ID().String(),
		Username:        u.Username(),
		Email:           u.Email(),
		DisplayName:     u.DisplayName(),
		Bio:             u.Bio(),
		ProfileImageURL: u.ProfileImageURL(),
		IsActive:        u.IsActive(),
		CreatedAt:       u.CreatedAt(),
	}
}
