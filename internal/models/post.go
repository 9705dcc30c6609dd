package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a top-level feed entry. It owns its comments and is a reaction
// target. Engagement fields are never persisted; the annotator fills them
// per request.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"not null" json:"content"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"author"`
	// LikesCount is not persisted; computed at query time
	LikesCount int64 `gorm:"-" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int64 `gorm:"-" json:"comments_count"`
	// Liked indicates whether the requesting user liked this post (computed)
	Liked     bool           `gorm:"-" json:"is_liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PostDetail is the read model for the single-post view: the post plus its
// fully threaded comment forest.
type PostDetail struct {
	Post
	Comments []*Comment `json:"comments"`
}
