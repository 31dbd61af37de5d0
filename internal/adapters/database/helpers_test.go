package database

import (
	"context"
	"testing"

	"netter/internal/config"
	postEntity "netter/internal/core/post"
	userEntity "netter/internal/core/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestStore opens a private in-memory sqlite database with the schema applied.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := config.OpenDB(config.DriverSQLite, "file::memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewStore(db)
}

// setupMockDB returns a gorm MySQL handle backed by sqlmock.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true, Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gormDB, mock
}

func mustUser(t *testing.T, username string) *userEntity.User {
	t.Helper()
	u, err := userEntity.New(username, username+"@example.com", "Display "+username)
	require.NoError(t, err)
	return u
}

func mustPost(t *testing.T, owner *userEntity.User, content string) *postEntity.Post {
	t.Helper()
	p, err := postEntity.New(owner.ID(), content)
	require.NoError(t, err)
	return p
}

// seedUser commits a user through its own scope.
func seedUser(t *testing.T, store *Store, username string) *userEntity.User {
	t.Helper()
	u := mustUser(t, username)
	sc := store.NewScope()
	_, err := sc.Users().Add(context.Background(), u)
	require.NoError(t, err)
	_, err = sc.SaveChanges(context.Background())
	require.NoError(t, err)
	return u
}

func countRows(t *testing.T, store *Store, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, store.DB().Model(model).Count(&n).Error)
	return n
}

func userEntityWithEmail(username, email string) (*userEntity.User, error) {
	return userEntity.New(username, email, "Display "+username)
}
