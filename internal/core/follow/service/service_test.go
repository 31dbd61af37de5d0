package followapp

import (
	"context"
	"testing"

	"netter/internal/core/apperr"
	followEntity "netter/internal/core/follow"
	followPort "netter/internal/ports/follow"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type followRepoStub struct {
	edges   []*followEntity.Follow
	added   int
	removed []*followEntity.Follow
}

func (s *followRepoStub) Add(_ context.Context, f *followEntity.Follow) (*followEntity.Follow, error) {
	s.added++
	s.edges = append(s.edges, f)
	return f, nil
}

func (s *followRepoStub) GetByID(context.Context, uuid.UUID) (*followEntity.Follow, error) {
	return nil, nil
}

func (s *followRepoStub) GetAll(context.Context) ([]*followEntity.Follow, error) { return s.edges, nil }

func (s *followRepoStub) Update(context.Context, *followEntity.Follow) error { return nil }

func (s *followRepoStub) Remove(_ context.Context, f *followEntity.Follow) error {
	s.removed = append(s.removed, f)
	return nil
}

func (s *followRepoStub) FindEdge(_ context.Context, followerID, followeeID uuid.UUID) (*followEntity.Follow, error) {
	for _, f := range s.edges {
		if f.FollowerID() == followerID && f.FolloweeID() == followeeID {
			return f, nil
		}
	}
	return nil, nil
}

func (s *followRepoStub) ListFollowers(_ context.Context, userID uuid.UUID) ([]*followEntity.Follow, error) {
	var out []*followEntity.Follow
	for _, f := range s.edges {
		if f.FolloweeID() == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *followRepoStub) ListFollowing(_ context.Context, userID uuid.UUID) ([]*followEntity.Follow, error) {
	var out []*followEntity.Follow
	for _, f := range s.edges {
		if f.FollowerID() == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

type uowStub struct{ saves int }

func (s *uowStub) SaveChanges(context.Context) (int64, error) {
	s.saves++
	return 1, nil
}

func newID() uuid.UUID { return uuid.Must(uuid.NewV4()) }

func TestFollowService_FollowAndDuplicate(t *testing.T) {
	repo := &followRepoStub{}
	uow := &uowStub{}
	svc := NewFollowService(repo, uow)
	alice, bob := newID(), newID()
	cmd := followPort.FollowCommand{FollowerID: alice.String(), FolloweeID: bob.String()}

	res, err := svc.FollowUser(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, alice.String(), res.FollowerID)
	assert.Equal(t, bob.String(), res.FolloweeID)
	assert.Equal(t, 1, uow.saves)

	_, err = svc.FollowUser(context.Background(), cmd)
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
	assert.Equal(t, 1, repo.added)
	assert.Equal(t, 1, uow.saves)
}

func TestFollowService_RejectsInvalidPairs(t *testing.T) {
	alice := newID()
	cases := map[string]followPort.FollowCommand{
		"self":      {FollowerID: alice.String(), FolloweeID: alice.String()},
		"missing":   {FollowerID: "", FolloweeID: alice.String()},
		"malformed": {FollowerID: alice.String(), FolloweeID: "bob"},
	}
	for name, cmd := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &followRepoStub{}
			uow := &uowStub{}
			_, err := NewFollowService(repo, uow).FollowUser(context.Background(), cmd)
			assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument), "got %v", err)
			assert.Zero(t, repo.added)
			assert.Zero(t, uow.saves)
		})
	}
}

func TestFollowService_Unfollow(t *testing.T) {
	repo := &followRepoStub{}
	uow := &uowStub{}
	svc := NewFollowService(repo, uow)
	alice, bob := newID(), newID()
	cmd := followPort.FollowCommand{FollowerID: alice.String(), FolloweeID: bob.String()}

	err := svc.UnfollowUser(context.Background(), cmd)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	_, err = svc.FollowUser(context.Background(), cmd)
	require.NoError(t, err)
	require.NoError(t, svc.UnfollowUser(context.Background(), cmd))
	require.Len(t, repo.removed, 1)
	assert.Equal(t, alice, repo.removed[0].FollowerID())
	assert.Equal(t, 2, uow.saves)
}

func TestFollowService_Lists(t *testing.T) {
	repo := &followRepoStub{}
	svc := NewFollowService(repo, &uowStub{})
	alice, bob, carol := newID(), newID(), newID()
	for _, pair := range [][2]uuid.UUID{{alice, bob}, {carol, bob}} {
		_, err := svc.FollowUser(context.Background(), followPort.FollowCommand{FollowerID: pair[0].String(), FolloweeID: pair[1].String()})
		require.NoError(t, err)
	}

	followers, err := svc.GetFollowers(context.Background(), bob.String())
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	following, err := svc.GetFollowing(context.Background(), bob.String())
	require.NoError(t, err)
	assert.NotNil(t, following)
	assert.Empty(t, following)

	_, err = svc.GetFollowers(context.Background(), "bad")
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument))
}
