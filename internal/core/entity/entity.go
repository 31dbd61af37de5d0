// Package entity holds the identity and timestamp state shared by every aggregate.
package entity

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"netter/internal/core/apperr"

	"github.com/gofrs/uuid"
)

// Now is the clock used for created/updated timestamps.
var Now = func() time.Time { return time.Now().UTC() }

// Base carries the identifier and timestamps of an aggregate.
type Base struct {
	id        uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// NewBase assigns a fresh identifier and stamps both timestamps with the current time.
func NewBase() Base {
	now := Now()
	return Base{
		id:        uuid.Must(uuid.NewV4()),
		createdAt: now,
		updatedAt: now,
	}
}

// RestoreBase rebuilds persisted identity state.
func RestoreBase(id uuid.UUID, createdAt, updatedAt time.Time) Base {
	return Base{id: id, createdAt: createdAt, updatedAt: updatedAt}
}

func (b *Base) ID() uuid.UUID { return b.id }

func (b *Base) CreatedAt() time.Time { return b.createdAt }

func (b *Base) UpdatedAt() time.Time { return b.updatedAt }

// Touch refreshes the last-updated timestamp.
func (b *Base) Touch() { b.updatedAt = Now() }

// Identifiable is implemented by every aggregate through Base.
type Identifiable interface {
	ID() uuid.UUID
}

// Same reports identity equality: both nil, or the same concrete type with the same identifier.
func Same(a, b Identifiable) bool {
	aNil, bNil := isNil(a), isNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.ID() == b.ID()
}

func isNil(v Identifiable) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// Blank reports whether s is empty or only whitespace.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Content validates user-authored text and returns it trimmed. The limit applies to the
// raw input, counted in code points.
func Content(op, content string, limit int) (string, error) {
	if Blank(content) {
		return "", apperr.InvalidArgument(op, "content cannot be empty")
	}
	if utf8.RuneCountInString(content) > limit {
		return "", apperr.InvalidArgument(op, fmt.Sprintf("content cannot exceed %d characters", limit))
	}
	return strings.TrimSpace(content), nil
}

// RequireID rejects the nil identifier.
func RequireID(op, field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.InvalidArgument(op, field+" cannot be empty")
	}
	return nil
}

// ParseID parses a textual identifier. The empty string yields uuid.Nil so that the
// entity constructors report the missing value.
func ParseID(op, field, s string) (uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.FromString(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, apperr.InvalidArgument(op, field+" is not a valid identifier")
	}
	return id, nil
}
