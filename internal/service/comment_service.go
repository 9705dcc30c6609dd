package service

import (
	"context"
	"errors"

	"pulse/internal/models"
	"pulse/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLen = 10000

// CommentService validates and stores comments, including nested replies.
type CommentService struct {
	comments   repository.CommentRepository
	posts      repository.PostRepository
	engagement *EngagementService
}

// CreateCommentInput carries one comment creation request. ParentID nil
// means a root comment.
type CreateCommentInput struct {
	UserID   uint
	PostID   uint
	Content  string
	ParentID *uint
}

// NewCommentService creates a new CommentService
func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	engagement *EngagementService,
) *CommentService {
	return &CommentService{
		comments:   comments,
		posts:      posts,
		engagement: engagement,
	}
}

// CreateComment validates and stores a comment. A non-nil parent must be a
// comment on the same post; the thread builder relies on that invariant.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	if _, err := s.posts.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}

	if in.ParentID != nil {
		parent, err := s.comments.GetByID(ctx, *in.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewValidationError("Parent comment not found")
			}
			return nil, err
		}
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		Content:  in.Content,
		UserID:   in.UserID,
		PostID:   in.PostID,
		ParentID: in.ParentID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.comments.GetByID(ctx, comment.ID)
}

// ListComments returns the annotated, threaded comment forest for a post.
func (s *CommentService) ListComments(ctx context.Context, postID, viewerID uint) ([]*models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.engagement.AnnotateComments(ctx, comments, viewerID); err != nil {
		return nil, err
	}
	return BuildCommentTree(comments), nil
}
