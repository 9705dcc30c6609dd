package models

import "time"

// TargetKind discriminates what a reaction points at. Reactions never hold a
// native foreign key to their target; counting and membership checks operate
// on the (kind, id) pair directly.
type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
)

// Valid reports whether k is one of the known target kinds.
func (k TargetKind) Valid() bool {
	return k == TargetPost || k == TargetComment
}

// Reaction records one user's like on a post or a comment.
// The (UserID, TargetKind, TargetID) tuple is unique; the database index is
// the enforcement mechanism, so concurrent duplicate toggles cannot leave
// two records. Reactions are hard-deleted on un-like.
type Reaction struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_reaction_tuple" json:"user_id"`
	TargetKind TargetKind `gorm:"type:varchar(16);not null;uniqueIndex:idx_reaction_tuple" json:"target_kind"`
	TargetID   uint       `gorm:"not null;uniqueIndex:idx_reaction_tuple" json:"target_id"`
	CreatedAt  time.Time  `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// LeaderboardEntry is an ephemeral scoring row, recomputed per request.
type LeaderboardEntry struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
}
