package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pulse/internal/models"
	"pulse/internal/repository"

	"github.com/stretchr/testify/require"
)

// reactionRepoStub is a stub for repository.ReactionRepository.
type reactionRepoStub struct {
	toggleFn               func(context.Context, uint, models.TargetKind, uint) (bool, error)
	countByTargetFn        func(context.Context, models.TargetKind, []uint) (map[uint]int64, error)
	likedTargetIDsFn       func(context.Context, uint, models.TargetKind, []uint) ([]uint, error)
	postLikesByAuthorFn    func(context.Context, time.Time) ([]repository.AuthorEngagement, error)
	commentLikesByAuthorFn func(context.Context, time.Time) ([]repository.AuthorEngagement, error)
}

func (s *reactionRepoStub) Toggle(ctx context.Context, userID uint, kind models.TargetKind, targetID uint) (bool, error) {
	return s.toggleFn(ctx, userID, kind, targetID)
}
func (s *reactionRepoStub) CountByTarget(ctx context.Context, kind models.TargetKind, targetIDs []uint) (map[uint]int64, error) {
	return s.countByTargetFn(ctx, kind, targetIDs)
}
func (s *reactionRepoStub) LikedTargetIDs(ctx context.Context, userID uint, kind models.TargetKind, targetIDs []uint) ([]uint, error) {
	return s.likedTargetIDsFn(ctx, userID, kind, targetIDs)
}
func (s *reactionRepoStub) PostLikesByAuthor(ctx context.Context, since time.Time) ([]repository.AuthorEngagement, error) {
	return s.postLikesByAuthorFn(ctx, since)
}
func (s *reactionRepoStub) CommentLikesByAuthor(ctx context.Context, since time.Time) ([]repository.AuthorEngagement, error) {
	return s.commentLikesByAuthorFn(ctx, since)
}

func noopReactionRepo() *reactionRepoStub {
	return &reactionRepoStub{
		toggleFn: func(_ context.Context, _ uint, _ models.TargetKind, _ uint) (bool, error) {
			return true, nil
		},
		countByTargetFn: func(_ context.Context, _ models.TargetKind, _ []uint) (map[uint]int64, error) {
			return map[uint]int64{}, nil
		},
		likedTargetIDsFn: func(_ context.Context, _ uint, _ models.TargetKind, _ []uint) ([]uint, error) {
			return nil, nil
		},
		postLikesByAuthorFn: func(_ context.Context, _ time.Time) ([]repository.AuthorEngagement, error) {
			return nil, nil
		},
		commentLikesByAuthorFn: func(_ context.Context, _ time.Time) ([]repository.AuthorEngagement, error) {
			return nil, nil
		},
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	listByPostFn  func(context.Context, uint) ([]*models.Comment, error)
	countByPostFn func(context.Context, []uint) (map[uint]int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	return s.countByPostFn(ctx, postIDs)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: 1}, nil
		},
		listByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		countByPostFn: func(_ context.Context, _ []uint) (map[uint]int64, error) {
			return map[uint]int64{}, nil
		},
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn  func(context.Context, *models.Post) error
	getByIDFn func(context.Context, uint) (*models.Post, error)
	listFn    func(context.Context) ([]*models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]*models.Post, error) {
	return s.listFn(ctx)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		listFn: func(_ context.Context) ([]*models.Post, error) { return nil, nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T", err)
	require.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}
