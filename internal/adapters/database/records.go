package database

import (
	"time"

	commentEntity "netter/internal/core/comment"
	followEntity "netter/internal/core/follow"
	likeEntity "netter/internal/core/like"
	"netter/internal/core/outbox"
	postEntity "netter/internal/core/post"
	userEntity "netter/internal/core/user"

	"github.com/gofrs/uuid"
)

// Records are the storage shapes of the aggregates. Timestamps come from the entities, so
// gorm's automatic time tracking is disabled.

type UserRecord struct {
	ID              string    `gorm:"type:char(36);primaryKey" json:"id"`
	Username        string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"username"`
	Email           string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	DisplayName     string    `gorm:"type:varchar(100);not null" json:"displayName"`
	Bio             *string   `gorm:"type:varchar(500)" json:"bio,omitempty"`
	ProfileImageURL *string   `gorm:"column:profile_image_url;type:varchar(2048)" json:"profileImageUrl,omitempty"`
	IsActive        bool      `gorm:"not null" json:"isActive"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}

func (UserRecord) TableName() string { return "users" }

type PostRecord struct {
	ID        string     `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string     `gorm:"type:char(36);not null;index" json:"userId"`
	User      UserRecord `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Content   string     `gorm:"type:varchar(500);not null" json:"content"`
	IsDeleted bool       `gorm:"not null;index" json:"isDeleted"`
	CreatedAt time.Time  `gorm:"not null;index;autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}

func (PostRecord) TableName() string { return "posts" }

type FollowRecord struct {
	ID         string     `gorm:"type:char(36);primaryKey" json:"id"`
	FollowerID string     `gorm:"type:char(36);not null;uniqueIndex:idx_follows_pair,priority:1" json:"followerId"`
	Follower   UserRecord `gorm:"foreignKey:FollowerID;constraint:OnDelete:RESTRICT" json:"-"`
	FolloweeID string     `gorm:"type:char(36);not null;uniqueIndex:idx_follows_pair,priority:2;index" json:"followeeId"`
	Followee   UserRecord `gorm:"foreignKey:FolloweeID;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt  time.Time  `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}

func (FollowRecord) TableName() string { return "follows" }

type LikeRecord struct {
	ID        string     `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string     `gorm:"type:char(36);not null;index" json:"userId"`
	User      UserRecord `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	PostID    string     `gorm:"type:char(36);not null;index" json:"postId"`
	Post      PostRecord `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}

func (LikeRecord) TableName() string { return "likes" }

type CommentRecord struct {
	ID        string     `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string     `gorm:"type:char(36);not null;index" json:"userId"`
	User      UserRecord `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	PostID    string     `gorm:"type:char(36);not null;index" json:"postId"`
	Post      PostRecord `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Content   string     `gorm:"type:varchar(200);not null" json:"content"`
	IsDeleted bool       `gorm:"not null" json:"isDeleted"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}

func (CommentRecord) TableName() string { return "comments" }

type OutboxRecord struct {
	ID          string     `gorm:"type:char(36);primaryKey"`
	Topic       string     `gorm:"type:varchar(100);not null"`
	AggregateID string     `gorm:"type:char(36);not null"`
	Payload     []byte     `gorm:"not null"`
	Status      string     `gorm:"type:varchar(16);not null;index:idx_outbox_status_created,priority:1"`
	CreatedAt   time.Time  `gorm:"not null;index:idx_outbox_status_created,priority:2;autoCreateTime:false"`
	ProcessedAt *time.Time
}

func (OutboxRecord) TableName() string { return "outbox_events" }

// Models lists every table in creation order.
func Models() []any {
	return []any{&UserRecord{}, &PostRecord{}, &FollowRecord{}, &LikeRecord{}, &CommentRecord{}, &OutboxRecord{}}
}

func userToRecord(u *userEntity.User) *UserRecord {
	s := u.Snapshot()
	return &UserRecord{
		ID:              s.ID.String(),
		Username:        s.Username,
		Email:           s.Email,
		DisplayName:     s.DisplayName,
		Bio:             s.Bio,
		ProfileImageURL: s.ProfileImageURL,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func userToDomain(r *UserRecord) *userEntity.User {
	return userEntity.Rehydrate(userEntity.Snapshot{
		ID:              uuid.FromStringOrNil(r.ID),
		Username:        r.Username,
		Email:           r.Email,
		DisplayName:     r.DisplayName,
		Bio:             r.Bio,
		ProfileImageURL: r.ProfileImageURL,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	})
}

func postToRecord(p *postEntity.Post) *PostRecord {
	s := p.Snapshot()
	return &PostRecord{
		ID:        s.ID.String(),
		UserID:    s.UserID.String(),
		Content:   s.Content,
		IsDeleted: s.IsDeleted,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func postToDomain(r *PostRecord) *postEntity.Post {
	return postEntity.Rehydrate(postEntity.Snapshot{
		ID:        uuid.FromStringOrNil(r.ID),
		UserID:    uuid.FromStringOrNil(r.UserID),
		Content:   r.Content,
		IsDeleted: r.IsDeleted,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	})
}

func followToRecord(f *followEntity.Follow) *FollowRecord {
	s := f.Snapshot()
	return &FollowRecord{
		ID:         s.ID.String(),
		FollowerID: s.FollowerID.String(),
		FolloweeID: s.FolloweeID.String(),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func followToDomain(r *FollowRecord) *followEntity.Follow {
	return followEntity.Rehydrate(followEntity.Snapshot{
		ID:         uuid.FromStringOrNil(r.ID),
		FollowerID: uuid.FromStringOrNil(r.FollowerID),
		FolloweeID: uuid.FromStringOrNil(r.FolloweeID),
		CreatedAt:  r.CreatedAt.UTC(),
		UpdatedAt:  r.UpdatedAt.UTC(),
	})
}

func likeToRecord(l *likeEntity.Like) *LikeRecord {
	s := l.Snapshot()
	return &LikeRecord{
		ID:        s.ID.String(),
		UserID:    s.UserID.String(),
		PostID:    s.PostID.String(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func likeToDomain(r *LikeRecord) *likeEntity.Like {
	return likeEntity.Rehydrate(likeEntity.Snapshot{
		ID:        uuid.FromStringOrNil(r.ID),
		UserID:    uuid.FromStringOrNil(r.UserID),
		PostID:    uuid.FromStringOrNil(r.PostID),
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	})
}

func commentToRecord(c *commentEntity.Comment) *CommentRecord {
	s := c.Snapshot()
	return &CommentRecord{
		ID:        s.ID.String(),
		UserID:    s.UserID.String(),
		PostID:    s.PostID.String(),
		Content:   s.Content,
		IsDeleted: s.IsDeleted,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func commentToDomain(r *CommentRecord) *commentEntity.Comment {
	return commentEntity.Rehydrate(commentEntity.Snapshot{
		ID:        uuid.FromStringOrNil(r.ID),
		UserID:    uuid.FromStringOrNil(r.UserID),
		PostID:    uuid.FromStringOrNil(r.PostID),
		Content:   r.Content,
		IsDeleted: r.IsDeleted,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	})
}

func outboxToRecord(e *outbox.Event) *OutboxRecord {
	return &OutboxRecord{
		ID:          e.ID.String(),
		Topic:       e.Topic,
		AggregateID: e.AggregateID.String(),
		Payload:     e.Payload,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		ProcessedAt: e.ProcessedAt,
	}
}

func outboxToDomain(r *OutboxRecord) *outbox.Event {
	return &outbox.Event{
		ID:          uuid.FromStringOrNil(r.ID),
		Topic:       r.Topic,
		AggregateID: uuid.FromStringOrNil(r.AggregateID),
		Payload:     r.Payload,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt.UTC(),
		ProcessedAt: r.ProcessedAt,
	}
}
