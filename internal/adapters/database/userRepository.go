package database

import (
	userEntity "netter/internal/core/user"
)

// UserRepository implements the user storage port.
type UserRepository struct {
	*repository[*userEntity.User, UserRecord]
}
