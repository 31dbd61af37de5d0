package database

import (
	"context"

	"gorm.io/gorm"
)

// Migrate creates or updates every table, index and foreign key.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}
