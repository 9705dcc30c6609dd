// Package service contains the application's business logic.
package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
)

// EngagementService computes per-item engagement snapshots (like counts,
// comment counts, viewer-liked flags) in bulk. It issues a fixed number of
// queries regardless of how many items are annotated, and never writes.
type EngagementService struct {
	reactions repository.ReactionRepository
	comments  repository.CommentRepository
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(
	reactions repository.ReactionRepository,
	comments repository.CommentRepository,
) *EngagementService {
	return &EngagementService{
		reactions: reactions,
		comments:  comments,
	}
}

// AnnotatePosts fills LikesCount, CommentsCount and Liked on every post.
// viewerID zero means anonymous; Liked stays false.
func (s *EngagementService) AnnotatePosts(ctx context.Context, posts []*models.Post, viewerID uint) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	likes, err := s.reactions.CountByTarget(ctx, models.TargetPost, ids)
	if err != nil {
		return err
	}
	commentCounts, err := s.comments.CountByPost(ctx, ids)
	if err != nil {
		return err
	}

	liked, err := s.likedSet(ctx, viewerID, models.TargetPost, ids)
	if err != nil {
		return err
	}

	for _, p := range posts {
		p.LikesCount = likes[p.ID]
		p.CommentsCount = commentCounts[p.ID]
		_, p.Liked = liked[p.ID]
	}
	return nil
}

// AnnotateComments fills LikesCount and Liked on every comment.
func (s *EngagementService) AnnotateComments(ctx context.Context, comments []*models.Comment, viewerID uint) error {
	if len(comments) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}

	likes, err := s.reactions.CountByTarget(ctx, models.TargetComment, ids)
	if err != nil {
		return err
	}

	liked, err := s.likedSet(ctx, viewerID, models.TargetComment, ids)
	if err != nil {
		return err
	}

	for _, c := range comments {
		c.LikesCount = likes[c.ID]
		_, c.Liked = liked[c.ID]
	}
	return nil
}

func (s *EngagementService) likedSet(ctx context.Context, viewerID uint, kind models.TargetKind, ids []uint) (map[uint]struct{}, error) {
	set := make(map[uint]struct{})
	if viewerID == 0 {
		return set, nil
	}
	likedIDs, err := s.reactions.LikedTargetIDs(ctx, viewerID, kind, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range likedIDs {
		set[id] = struct{}{}
	}
	return set, nil
}
