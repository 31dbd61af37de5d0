package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"netter/internal/core/entity"
	"netter/internal/core/outbox"
	commentPort "netter/internal/ports/comment"
	followPort "netter/internal/ports/follow"
	likePort "netter/internal/ports/like"
	postPort "netter/internal/ports/post"
	userPort "netter/internal/ports/user"

	"gorm.io/gorm"
)

// Store hands out scopes over one connection pool.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB { return s.db }

// NewScope starts a unit of work. A scope is meant for one request.
func (s *Store) NewScope() *Scope {
	sc := &Scope{db: s.db}
	sc.users = &UserRepository{repository: newRepository(sc, "user", userToRecord, userToDomain)}
	sc.posts = &PostRepository{repository: newRepository(sc, "post", postToRecord, postToDomain)}
	sc.follows = &FollowRepository{repository: newRepository(sc, "follow", followToRecord, followToDomain)}
	sc.likes = &LikeRepository{repository: newRepository(sc, "like", likeToRecord, likeToDomain)}
	sc.comments = &CommentRepository{repository: newRepository(sc, "comment", commentToRecord, commentToDomain)}
	return sc
}

// change is one queued write. Outbox writes are not counted in SaveChanges.
type change struct {
	apply   func(tx *gorm.DB) (int64, error)
	counted bool
}

// Scope collects writes from its repositories and applies them atomically on SaveChanges.
// Reads go straight to the database and do not see queued writes.
type Scope struct {
	db *gorm.DB

	mu      sync.Mutex
	pending []change

	users    *UserRepository
	posts    *PostRepository
	follows  *FollowRepository
	likes    *LikeRepository
	comments *CommentRepository
}

func (s *Scope) Users() userPort.Repository       { return s.users }
func (s *Scope) Posts() postPort.Repository       { return s.posts }
func (s *Scope) Follows() followPort.Repository   { return s.follows }
func (s *Scope) Likes() likePort.Repository       { return s.likes }
func (s *Scope) Comments() commentPort.Repository { return s.comments }

// enqueue appends changes as one unit so a write and its outbox row are queued together.
func (s *Scope) enqueue(cs ...change) {
	s.mu.Lock()
	s.pending = append(s.pending, cs...)
	s.mu.Unlock()
}

// createdEvent builds the outbox write announcing a new aggregate.
func createdEvent(kind string, e entity.Identifiable, payload any) (change, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return change{}, fmt.Errorf("encode %s event: %w", kind, err)
	}
	rec := outboxToRecord(outbox.NewEvent(kind+".created", e.ID(), body, entity.Now()))
	return change{apply: func(tx *gorm.DB) (int64, error) {
		res := tx.Create(rec)
		return res.RowsAffected, res.Error
	}}, nil
}

// SaveChanges applies every queued write in one transaction and returns the number of
// aggregate rows written. The queue is emptied whether or not the commit succeeds; a
// cancelled context aborts before anything reaches the database.
func (s *Scope) SaveChanges(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := s.pending
	s.pending = nil

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	var rows int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range pending {
			n, err := c.apply(tx)
			if err != nil {
				return err
			}
			if c.counted {
				rows += n
			}
		}
		return nil
	})
	if err != nil {
		return 0, MapError("database.SaveChanges", err)
	}
	return rows, nil
}
