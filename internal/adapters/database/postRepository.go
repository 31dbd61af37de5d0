package database

import (
	postEntity "netter/internal/core/post"
)

// PostRepository implements the post storage port.
type PostRepository struct {
	*repository[*postEntity.Post, PostRecord]
}
