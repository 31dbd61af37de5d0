package postapp

import (
	"context"
	"strings"
	"testing"
	"time"

	"netter/internal/core/apperr"
	postEntity "netter/internal/core/post"
	postPort "netter/internal/ports/post"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postRepoStub struct {
	getByIDFn func(context.Context, uuid.UUID) (*postEntity.Post, error)
	getAllFn  func(context.Context) ([]*postEntity.Post, error)

	added   []*postEntity.Post
	updated []*postEntity.Post
}

func (s *postRepoStub) Add(_ context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	s.added = append(s.added, p)
	return p, nil
}

func (s *postRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*postEntity.Post, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *postRepoStub) GetAll(ctx context.Context) ([]*postEntity.Post, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, nil
}

func (s *postRepoStub) Update(_ context.Context, p *postEntity.Post) error {
	s.updated = append(s.updated, p)
	return nil
}

func (s *postRepoStub) Remove(context.Context, *postEntity.Post) error { return nil }

type uowStub struct{ saves int }

func (s *uowStub) SaveChanges(context.Context) (int64, error) {
	s.saves++
	return 1, nil
}

func newID() uuid.UUID { return uuid.Must(uuid.NewV4()) }

func TestCreatePostHandler_Success(t *testing.T) {
	repo := &postRepoStub{}
	uow := &uowStub{}
	userID := newID()

	res, err := NewCreatePostHandler(repo, uow).Handle(context.Background(), postPort.CreatePostCommand{
		UserID:  userID.String(),
		Content: "  This is my first post!  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "This is my first post!", res.Content)
	assert.Equal(t, userID.String(), res.UserID)
	assert.NotEmpty(t, res.PostID)
	require.Len(t, repo.added, 1)
	assert.Equal(t, 1, uow.saves)
}

func TestCreatePostHandler_InvalidInputTouchesNothing(t *testing.T) {
	cases := map[string]postPort.CreatePostCommand{
		"empty content":     {UserID: newID().String(), Content: ""},
		"blank content":     {UserID: newID().String(), Content: "   "},
		"too long":          {UserID: newID().String(), Content: strings.Repeat("a", postEntity.MaxContentLength+1)},
		"missing user":      {UserID: "", Content: "hello"},
		"malformed user id": {UserID: "abc", Content: "hello"},
	}
	for name, cmd := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &postRepoStub{}
			uow := &uowStub{}

			res, err := NewCreatePostHandler(repo, uow).Handle(context.Background(), cmd)
			assert.Nil(t, res)
			assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument), "got %v", err)
			assert.Empty(t, repo.added)
			assert.Zero(t, uow.saves)
		})
	}
}

func TestCreatePostHandler_ExactlyMaxLength(t *testing.T) {
	res, err := NewCreatePostHandler(&postRepoStub{}, &uowStub{}).Handle(context.Background(), postPort.CreatePostCommand{
		UserID:  newID().String(),
		Content: strings.Repeat("a", postEntity.MaxContentLength),
	})
	require.NoError(t, err)
	assert.Len(t, res.Content, postEntity.MaxContentLength)
}

func postAt(t *testing.T, at time.Time, id uuid.UUID, content string, deleted bool) *postEntity.Post {
	t.Helper()
	return postEntity.Rehydrate(postEntity.Snapshot{
		ID:        id,
		UserID:    newID(),
		Content:   content,
		IsDeleted: deleted,
		CreatedAt: at,
		UpdatedAt: at,
	})
}

func TestGetPostsHandler_FiltersDeletedNewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := []*postEntity.Post{
		postAt(t, base, newID(), "oldest", false),
		postAt(t, base.Add(2*time.Hour), newID(), "deleted", true),
		postAt(t, base.Add(3*time.Hour), newID(), "newest", false),
		postAt(t, base.Add(time.Hour), newID(), "middle", false),
	}
	repo := &postRepoStub{getAllFn: func(context.Context) ([]*postEntity.Post, error) { return posts, nil }}

	res, err := NewGetPostsHandler(repo).Handle(context.Background(), postPort.GetPostsQuery{})
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "newest", res[0].Content)
	assert.Equal(t, "middle", res[1].Content)
	assert.Equal(t, "oldest", res[2].Content)
}

func TestGetPostsHandler_TiesOrderedByID(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	low := uuid.FromStringOrNil("00000000-0000-4000-8000-000000000001")
	high := uuid.FromStringOrNil("ffffffff-0000-4000-8000-000000000001")
	repo := &postRepoStub{getAllFn: func(context.Context) ([]*postEntity.Post, error) {
		return []*postEntity.Post{postAt(t, at, high, "high", false), postAt(t, at, low, "low", false)}, nil
	}}

	for i := 0; i < 3; i++ {
		res, err := NewGetPostsHandler(repo).Handle(context.Background(), postPort.GetPostsQuery{})
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "low", res[0].Content)
		assert.Equal(t, "high", res[1].Content)
	}
}

func TestGetPostsHandler_EmptyIsNotNil(t *testing.T) {
	res, err := NewGetPostsHandler(&postRepoStub{}).Handle(context.Background(), postPort.GetPostsQuery{})
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestUpdatePostContentHandler(t *testing.T) {
	p, err := postEntity.New(newID(), "original")
	require.NoError(t, err)
	repo := &postRepoStub{getByIDFn: func(context.Context, uuid.UUID) (*postEntity.Post, error) { return p, nil }}
	uow := &uowStub{}

	res, err := NewUpdatePostContentHandler(repo, uow).Handle(context.Background(), postPort.UpdatePostCommand{PostID: p.ID().String(), Content: "changed"})
	require.NoError(t, err)
	assert.Equal(t, "changed", res.Content)
	assert.Equal(t, 1, uow.saves)

	p.Delete()
	_, err = NewUpdatePostContentHandler(repo, uow).Handle(context.Background(), postPort.UpdatePostCommand{PostID: p.ID().String(), Content: "again"})
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidOperation))
	assert.Equal(t, 1, uow.saves)

	_, err = NewUpdatePostContentHandler(&postRepoStub{}, uow).Handle(context.Background(), postPort.UpdatePostCommand{PostID: newID().String(), Content: "x"})
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestSetPostDeletedHandler(t *testing.T) {
	p, err := postEntity.New(newID(), "original")
	require.NoError(t, err)
	repo := &postRepoStub{getByIDFn: func(context.Context, uuid.UUID) (*postEntity.Post, error) { return p, nil }}
	uow := &uowStub{}
	h := NewSetPostDeletedHandler(repo, uow)

	_, err = h.Handle(context.Background(), postPort.SetDeletedCommand{PostID: p.ID().String(), Deleted: true})
	require.NoError(t, err)
	assert.True(t, p.IsDeleted())

	_, err = h.Handle(context.Background(), postPort.SetDeletedCommand{PostID: p.ID().String(), Deleted: false})
	require.NoError(t, err)
	assert.False(t, p.IsDeleted())
	assert.Len(t, repo.updated, 2)

	_, err = h.Handle(context.Background(), postPort.SetDeletedCommand{PostID: "garbage", Deleted: true})
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

