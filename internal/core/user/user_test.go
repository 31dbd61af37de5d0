package user

import (
	"testing"
	"time"

	"netter/internal/core/apperr"
	"netter/internal/core/entity"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepClock(t *testing.T) {
	t.Helper()
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	restore := entity.Now
	entity.Now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
	t.Cleanup(func() { entity.Now = restore })
}

func strPtr(s string) *string { return &s }

func TestNewUser(t *testing.T) {
	u, err := New("johndoe", "john@example.com", "John Doe")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "johndoe", u.Username())
	assert.Equal(t, "john@example.com", u.Email())
	assert.Equal(t, "John Doe", u.DisplayName())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.Bio())
	assert.Nil(t, u.ProfileImageURL())
	assert.WithinDuration(t, time.Now(), u.CreatedAt(), time.Second)
}

func TestNewUserNormalizesCase(t *testing.T) {
	u, err := New("JohnDoe", "John@Example.COM", "John Doe")
	require.NoError(t, err)

	assert.Equal(t, "johndoe", u.Username())
	assert.Equal(t, "john@example.com", u.Email())
	assert.Equal(t, "John Doe", u.DisplayName())

	again, err := New(u.Username(), u.Email(), u.DisplayName())
	require.NoError(t, err)
	assert.Equal(t, u.Username(), again.Username())
	assert.Equal(t, u.Email(), again.Email())
}

func TestNewUserRejectsBlankFields(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		email       string
		displayName string
	}{
		{"empty username", "", "john@example.com", "John Doe"},
		{"whitespace username", " ", "john@example.com", "John Doe"},
		{"empty email", "johndoe", "", "John Doe"},
		{"whitespace email", "johndoe", "\t", "John Doe"},
		{"empty display name", "johndoe", "john@example.com", ""},
		{"whitespace display name", "johndoe", "john@example.com", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := New(tt.username, tt.email, tt.displayName)
			assert.Nil(t, u)
			assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument), "got %v", err)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	stepClock(t)
	u, err := New("johndoe", "john@example.com", "John Doe")
	require.NoError(t, err)
	created := u.CreatedAt()

	require.NoError(t, u.UpdateProfile("John Updated", strPtr("Software Developer"), strPtr("https://example.com/avatar.jpg")))
	assert.Equal(t, "John Updated", u.DisplayName())
	assert.Equal(t, "Software Developer", *u.Bio())
	assert.Equal(t, "https://example.com/avatar.jpg", *u.ProfileImageURL())
	assert.True(t, u.UpdatedAt().After(created))
	assert.Equal(t, created, u.CreatedAt())

	require.NoError(t, u.UpdateProfile("John", nil, nil))
	assert.Nil(t, u.Bio())
	assert.Nil(t, u.ProfileImageURL())
}

func TestUpdateProfileRejectsBlankDisplayName(t *testing.T) {
	u, err := New("johndoe", "john@example.com", "John Doe")
	require.NoError(t, err)

	err = u.UpdateProfile(" ", strPtr("bio"), nil)
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument))
	assert.Equal(t, "John Doe", u.DisplayName())
	assert.Nil(t, u.Bio())
}

func TestDeactivateAndActivateAlwaysTouch(t *testing.T) {
	stepClock(t)
	u, err := New("johndoe", "john@example.com", "John Doe")
	require.NoError(t, err)

	u.Deactivate()
	assert.False(t, u.IsActive())
	first := u.UpdatedAt()

	u.Deactivate()
	assert.False(t, u.IsActive())
	assert.True(t, u.UpdatedAt().After(first))

	second := u.UpdatedAt()
	u.Activate()
	assert.True(t, u.IsActive())
	assert.True(t, u.UpdatedAt().After(second))
}

func TestSnapshotRoundTrip(t *testing.T) {
	u, err := New("johndoe", "john@example.com", "John Doe")
	require.NoError(t, err)
	require.NoError(t, u.UpdateProfile("John", strPtr("bio"), nil))
	u.Deactivate()

	restored := Rehydrate(u.Snapshot())
	assert.True(t, entity.Same(u, restored))
	assert.Equal(t, u.Snapshot(), restored.Snapshot())
}
