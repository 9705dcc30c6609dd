package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment belongs to exactly one post. ParentID is nil for root comments;
// when set it must reference another comment on the same post (the thread
// builder relies on this).
type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"not null" json:"content"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	PostID   uint   `gorm:"not null;index" json:"post_id"`
	ParentID *uint  `gorm:"index" json:"parent_id,omitempty"`
	User     User   `gorm:"foreignKey:UserID" json:"author"`
	// LikesCount is not persisted; computed at query time
	LikesCount int64 `gorm:"-" json:"likes_count"`
	// Liked indicates whether the requesting user liked this comment (computed)
	Liked bool `gorm:"-" json:"is_liked"`
	// Replies is filled by the thread builder for the duration of one request.
	Replies   []*Comment     `gorm:"-" json:"replies"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
