package user

import (
	"strings"
	"time"

	"netter/internal/core/apperr"
	"netter/internal/core/entity"

	"github.com/gofrs/uuid"
)

// User is a member of the network. It is created through New and changed only through
// its named operations.
type User struct {
	entity.Base
	username        string
	email           string
	displayName     string
	bio             *string
	profileImageURL *string
	active          bool
}

// New validates the profile fields and returns an active user. Username and email are
// stored lowercased; the display name is kept as given.
func New(username, email, displayName string) (*User, error) {
	const op = "user.New"
	if entity.Blank(username) {
		return nil, apperr.InvalidArgument(op, "username cannot be empty")
	}
	if entity.Blank(email) {
		return nil, apperr.InvalidArgument(op, "email cannot be empty")
	}
	if entity.Blank(displayName) {
		return nil, apperr.InvalidArgument(op, "display name cannot be empty")
	}

	return &User{
		Base:        entity.NewBase(),
		username:    strings.ToLower(username),
		email:       strings.ToLower(email),
		displayName: displayName,
		active:      true,
	}, nil
}

func (u *User) Username() string { return u.username }

func (u *User) Email() string { return u.email }

func (u *User) DisplayName() string { return u.displayName }

func (u *User) Bio() *string { return u.bio }

func (u *User) ProfileImageURL() *string { return u.profileImageURL }

func (u *User) IsActive() bool { return u.active }

// UpdateProfile replaces the display name, bio and profile image. A nil bio or image
// clears the stored value.
func (u *User) UpdateProfile(displayName string, bio, profileImageURL *string) error {
	if entity.Blank(displayName) {
		return apperr.InvalidArgument("user.UpdateProfile", "display name cannot be empty")
	}
	u.displayName = displayName
	u.bio = bio
	u.profileImageURL = profileImageURL
	u.Touch()
	return nil
}

func (u *User) Deactivate() {
	u.active = false
	u.Touch()
}

func (u *User) Activate() {
	u.active = true
	u.Touch()
}

// Snapshot is the persisted form of a User. It is read and written only by storage adapters.
type Snapshot struct {
	ID              uuid.UUID
	Username        string
	Email           string
	DisplayName     string
	Bio             *string
	ProfileImageURL *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (u *User) Snapshot() Snapshot {
	return Snapshot{
		ID:              u.ID(),
		Username:        u.username,
		Email:           u.email,
		DisplayName:     u.displayName,
		Bio:             u.bio,
		ProfileImageURL: u.profileImageURL,
		IsActive:        u.active,
		CreatedAt:       u.CreatedAt(),
		UpdatedAt:       u.UpdatedAt(),
	}
}

// Rehydrate rebuilds a User from stored state without re-running validation.
func Rehydrate(s Snapshot) *User {
	return &User{
		Base:            entity.RestoreBase(s.ID, s.CreatedAt, s.UpdatedAt),
		username:        s.Username,
		email:           s.Email,
		displayName:     s.DisplayName,
		bio:             s.Bio,
		profileImageURL: s.ProfileImageURL,
		active:          s.IsActive,
	}
}
