package service

import (
	"context"
	"errors"

	"pulse/internal/models"
	"pulse/internal/repository"

	"gorm.io/gorm"
)

const maxPostLen = 5000

// PostService orchestrates the feed and single-post read models.
type PostService struct {
	posts      repository.PostRepository
	comments   repository.CommentRepository
	engagement *EngagementService
}

// CreatePostInput carries one post creation request.
type CreatePostInput struct {
	UserID  uint
	Content string
}

// NewPostService creates a new PostService
func NewPostService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	engagement *EngagementService,
) *PostService {
	return &PostService{
		posts:      posts,
		comments:   comments,
		engagement: engagement,
	}
}

// CreatePost validates and stores a new post, returning it with the author
// loaded.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxPostLen {
		return nil, models.NewValidationError("Post too long (max 5000 characters)")
	}

	post := &models.Post{
		Content: in.Content,
		UserID:  in.UserID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.posts.GetByID(ctx, post.ID)
}

// ListPosts returns the feed, newest first, with engagement annotated for
// the viewer (zero means anonymous).
func (s *PostService) ListPosts(ctx context.Context, viewerID uint) ([]*models.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.engagement.AnnotatePosts(ctx, posts, viewerID); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostDetail returns one post with its annotated, threaded comment
// forest.
func (s *PostService) GetPostDetail(ctx context.Context, postID, viewerID uint) (*models.PostDetail, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}

	if err := s.engagement.AnnotatePosts(ctx, []*models.Post{post}, viewerID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.engagement.AnnotateComments(ctx, comments, viewerID); err != nil {
		return nil, err
	}

	return &models.PostDetail{
		Post:     *post,
		Comments: BuildCommentTree(comments),
	}, nil
}
