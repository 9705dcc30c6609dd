// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"time"

	"pulse/internal/models"

	"gorm.io/gorm"
)

// AuthorEngagement is one grouped row of likes received by an author within
// a time window. Used by the leaderboard scorer.
type AuthorEngagement struct {
	UserID   uint   `gorm:"column:user_id"`
	Username string `gorm:"column:username"`
	Likes    int64  `gorm:"column:likes"`
}

// ReactionRepository is the ledger of likes. One record per
// (user, target kind, target id) tuple, enforced by a unique index.
type ReactionRepository interface {
	Toggle(ctx context.Context, userID uint, kind models.TargetKind, targetID uint) (liked bool, err error)
	CountByTarget(ctx context.Context, kind models.TargetKind, targetIDs []uint) (map[uint]int64, error)
	LikedTargetIDs(ctx context.Context, userID uint, kind models.TargetKind, targetIDs []uint) ([]uint, error)
	PostLikesByAuthor(ctx context.Context, since time.Time) ([]AuthorEngagement, error)
	CommentLikesByAuthor(ctx context.Context, since time.Time) ([]AuthorEngagement, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new reaction repository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Toggle flips the like state for the tuple in a race-safe way.
// INSERT ... ON CONFLICT DO NOTHING is atomic: if the insert lands, the
// tuple was absent and the state is now "liked". Zero rows affected means
// the record already existed (possibly created a moment ago by a duplicate
// in-flight request), so the record is deleted and the state is "unliked".
func (r *reactionRepository) Toggle(ctx context.Context, userID uint, kind models.TargetKind, targetID uint) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO reactions (user_id, target_kind, target_id, created_at)
		 VALUES (?, ?, ?, NOW())
		 ON CONFLICT (user_id, target_kind, target_id) DO NOTHING`,
		userID, kind, targetID,
	)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	// The tuple existed; remove it. A concurrent toggle may have deleted it
	// first, in which case zero rows go away and the final state is the same.
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, kind, targetID).
		Delete(&models.Reaction{}).Error
	return false, err
}

// CountByTarget returns like counts for the given targets in one grouped
// query. Targets with no likes are absent from the result map.
func (r *reactionRepository) CountByTarget(ctx context.Context, kind models.TargetKind, targetIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TargetID uint  `gorm:"column:target_id"`
		Count    int64 `gorm:"column:count"`
	}
	err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Select("target_id, COUNT(*) AS count").
		Where("target_kind = ? AND target_id IN ?", kind, targetIDs).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.TargetID] = row.Count
	}
	return counts, nil
}

// LikedTargetIDs returns the subset of targetIDs the user has liked.
func (r *reactionRepository) LikedTargetIDs(ctx context.Context, userID uint, kind models.TargetKind, targetIDs []uint) ([]uint, error) {
	if len(targetIDs) == 0 {
		return nil, nil
	}
	var likedIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Where("user_id = ? AND target_kind = ? AND target_id IN ?", userID, kind, targetIDs).
		Pluck("target_id", &likedIDs).Error
	return likedIDs, err
}

// PostLikesByAuthor counts likes received on posts since the cutoff, grouped
// by the post's author. Reactions whose target post no longer resolves are
// excluded by the join.
func (r *reactionRepository) PostLikesByAuthor(ctx context.Context, since time.Time) ([]AuthorEngagement, error) {
	var rows []AuthorEngagement
	err := r.db.WithContext(ctx).
		Table("reactions").
		Select("posts.user_id AS user_id, users.username AS username, COUNT(*) AS likes").
		Joins("JOIN posts ON posts.id = reactions.target_id AND posts.deleted_at IS NULL").
		Joins("JOIN users ON users.id = posts.user_id").
		Where("reactions.target_kind = ? AND reactions.created_at >= ?", models.TargetPost, since).
		Group("posts.user_id, users.username").
		Scan(&rows).Error
	return rows, err
}

// CommentLikesByAuthor counts likes received on comments since the cutoff,
// grouped by the comment's author.
func (r *reactionRepository) CommentLikesByAuthor(ctx context.Context, since time.Time) ([]AuthorEngagement, error) {
	var rows []AuthorEngagement
	err := r.db.WithContext(ctx).
		Table("reactions").
		Select("comments.user_id AS user_id, users.username AS username, COUNT(*) AS likes").
		Joins("JOIN comments ON comments.id = reactions.target_id AND comments.deleted_at IS NULL").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("reactions.target_kind = ? AND reactions.created_at >= ?", models.TargetComment, since).
		Group("comments.user_id, users.username").
		Scan(&rows).Error
	return rows, err
}
