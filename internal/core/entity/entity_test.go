package entity

import (
	"strings"
	"testing"
	"time"

	"netter/internal/core/apperr"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct{ Base }

type gadget struct{ Base }

func TestNewBaseAssignsIdentityAndTimestamps(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	restore := Now
	Now = func() time.Time { return fixed }
	t.Cleanup(func() { Now = restore })

	b := NewBase()
	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, fixed, b.CreatedAt())
	assert.Equal(t, fixed, b.UpdatedAt())

	later := fixed.Add(time.Minute)
	Now = func() time.Time { return later }
	b.Touch()
	assert.Equal(t, fixed, b.CreatedAt())
	assert.Equal(t, later, b.UpdatedAt())
}

func TestSame(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	now := time.Now()

	a := &widget{RestoreBase(id, now, now)}
	b := &widget{RestoreBase(id, now.Add(time.Hour), now.Add(time.Hour))}
	other := &widget{NewBase()}
	sameIDOtherType := &gadget{RestoreBase(id, now, now)}
	var nilWidget *widget

	assert.True(t, Same(a, b))
	assert.True(t, Same(a, a))
	assert.False(t, Same(a, other))
	assert.False(t, Same(a, sameIDOtherType))
	assert.False(t, Same(a, nil))
	assert.False(t, Same(nilWidget, a))
	assert.True(t, Same(nil, nil))
	assert.True(t, Same(nilWidget, nil))
}

func TestContent(t *testing.T) {
	got, err := Content("op", "  hello  ", 10)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := Content("op", in, 10)
		assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument), "input %q", in)
	}

	_, err = Content("op", strings.Repeat("a", 11), 10)
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument))

	_, err = Content("op", strings.Repeat("é", 10), 10)
	assert.NoError(t, err)
}

func TestRequireID(t *testing.T) {
	assert.True(t, apperr.IsCode(RequireID("op", "user id", uuid.Nil), apperr.CodeInvalidArgument))
	assert.NoError(t, RequireID("op", "user id", uuid.Must(uuid.NewV4())))
}

func TestParseID(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	got, err := ParseID("op", "user id", id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = ParseID("op", "user id", "")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, got)

	_, err = ParseID("op", "user id", "not-a-uuid")
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument))
}
