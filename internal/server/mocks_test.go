package server

import (
	"context"
	"time"

	"pulse/internal/config"
	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Post), args.Error(1)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) CountByPost(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	args := m.Called(ctx, postIDs)
	return args.Get(0).(map[uint]int64), args.Error(1)
}

// MockReactionRepository is a mock of the ReactionRepository interface
type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) Toggle(ctx context.Context, userID uint, kind models.TargetKind, targetID uint) (bool, error) {
	args := m.Called(ctx, userID, kind, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReactionRepository) CountByTarget(ctx context.Context, kind models.TargetKind, targetIDs []uint) (map[uint]int64, error) {
	args := m.Called(ctx, kind, targetIDs)
	return args.Get(0).(map[uint]int64), args.Error(1)
}

func (m *MockReactionRepository) LikedTargetIDs(ctx context.Context, userID uint, kind models.TargetKind, targetIDs []uint) ([]uint, error) {
	args := m.Called(ctx, userID, kind, targetIDs)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockReactionRepository) PostLikesByAuthor(ctx context.Context, since time.Time) ([]repository.AuthorEngagement, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]repository.AuthorEngagement), args.Error(1)
}

func (m *MockReactionRepository) CommentLikesByAuthor(ctx context.Context, since time.Time) ([]repository.AuthorEngagement, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]repository.AuthorEngagement), args.Error(1)
}

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// testMocks bundles the repository mocks behind a Server with real services,
// matching the production wiring minus DB/Redis.
type testMocks struct {
	posts     *MockPostRepository
	comments  *MockCommentRepository
	reactions *MockReactionRepository
	users     *MockUserRepository
}

func newTestServer() (*Server, *testMocks) {
	mocks := &testMocks{
		posts:     new(MockPostRepository),
		comments:  new(MockCommentRepository),
		reactions: new(MockReactionRepository),
		users:     new(MockUserRepository),
	}

	engagement := service.NewEngagementService(mocks.reactions, mocks.comments)
	s := &Server{
		config:   &config.Config{JWTSecret: "test-secret-at-least-32-characters!!", LeaderboardWindow: 24},
		userRepo: mocks.users,
	}
	s.postService = service.NewPostService(mocks.posts, mocks.comments, engagement)
	s.commentService = service.NewCommentService(mocks.comments, mocks.posts, engagement)
	s.reactionService = service.NewReactionService(mocks.reactions)
	s.leaderboardService = service.NewLeaderboardService(mocks.reactions, 24*time.Hour)

	return s, mocks
}
