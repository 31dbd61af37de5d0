package follow

import (
	"testing"

	"netter/internal/core/apperr"
	"netter/internal/core/entity"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFollow(t *testing.T) {
	a, b := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())

	f, err := New(a, b)
	require.NoError(t, err)
	assert.Equal(t, a, f.FollowerID())
	assert.Equal(t, b, f.FolloweeID())
}

func TestSelfFollowIsRejected(t *testing.T) {
	for i := 0; i < 20; i++ {
		id := uuid.Must(uuid.NewV4())
		f, err := New(id, id)
		assert.Nil(t, f)
		assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument))
	}
}

func TestNilIdentifiersAreRejected(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	for _, pair := range [][2]uuid.UUID{{uuid.Nil, id}, {id, uuid.Nil}, {uuid.Nil, uuid.Nil}} {
		_, err := New(pair[0], pair[1])
		assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument))
	}
}

func TestDuplicatePairsAreRepresentableInMemory(t *testing.T) {
	a, b := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	first, err := New(a, b)
	require.NoError(t, err)
	second, err := New(a, b)
	require.NoError(t, err)

	assert.False(t, entity.Same(first, second))
	assert.Equal(t, first.Snapshot(), Rehydrate(first.Snapshot()).Snapshot())
}
