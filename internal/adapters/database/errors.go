package database

import (
	"errors"
	"strings"

	"netter/internal/core/apperr"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

// MapError turns unique-constraint violations into conflicts. Every other error is returned
// unchanged.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if apperr.CodeOf(err) != "" {
		return err
	}
	if isUniqueViolation(err) {
		return apperr.Wrap(apperr.CodeConflict, op, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}
