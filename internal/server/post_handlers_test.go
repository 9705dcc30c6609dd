package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	s, mocks := newTestServer()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		return c.Next()
	})
	app.Post("/posts", s.CreatePost)

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{"content": "Hello world"},
			mockSetup: func() {
				mocks.posts.On("Create", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) {
						args.Get(1).(*models.Post).ID = 1
					}).Return(nil).Once()
				mocks.posts.On("GetByID", mock.Anything, uint(1)).
					Return(&models.Post{ID: 1, Content: "Hello world"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Empty content",
			body:           map[string]string{"content": ""},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Content too long",
			body:           map[string]string{"content": strings.Repeat("x", 5001)},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}

	mocks.posts.AssertExpectations(t)
}

func TestGetPosts_AnonymousFeed(t *testing.T) {
	s, mocks := newTestServer()

	app := fiber.New()
	app.Get("/posts", s.GetPosts)

	mocks.posts.On("List", mock.Anything).
		Return([]*models.Post{{ID: 2, Content: "newer"}, {ID: 1, Content: "older"}}, nil).Once()
	mocks.reactions.On("CountByTarget", mock.Anything, models.TargetPost, []uint{2, 1}).
		Return(map[uint]int64{2: 3}, nil).Once()
	mocks.comments.On("CountByPost", mock.Anything, []uint{2, 1}).
		Return(map[uint]int64{1: 7}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var feed []map[string]any
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &feed))
	require.Len(t, feed, 2)

	assert.Equal(t, float64(3), feed[0]["likes_count"])
	assert.Equal(t, float64(0), feed[0]["comments_count"])
	assert.Equal(t, false, feed[0]["is_liked"])
	assert.Equal(t, float64(7), feed[1]["comments_count"])

	mocks.posts.AssertExpectations(t)
	mocks.reactions.AssertExpectations(t)
	// No LikedTargetIDs call expected for anonymous viewers.
	mocks.reactions.AssertNotCalled(t, "LikedTargetIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPost_DetailWithThreadedComments(t *testing.T) {
	s, mocks := newTestServer()

	app := fiber.New()
	app.Get("/posts/:id", s.GetPost)

	parentID := uint(1)
	mocks.posts.On("GetByID", mock.Anything, uint(5)).
		Return(&models.Post{ID: 5, Content: "hello"}, nil).Once()
	mocks.reactions.On("CountByTarget", mock.Anything, models.TargetPost, []uint{5}).
		Return(map[uint]int64{}, nil).Once()
	mocks.comments.On("CountByPost", mock.Anything, []uint{5}).
		Return(map[uint]int64{5: 2}, nil).Once()
	mocks.comments.On("ListByPost", mock.Anything, uint(5)).
		Return([]*models.Comment{
			{ID: 1, PostID: 5},
			{ID: 2, PostID: 5, ParentID: &parentID},
		}, nil).Once()
	mocks.reactions.On("CountByTarget", mock.Anything, models.TargetComment, []uint{1, 2}).
		Return(map[uint]int64{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/posts/5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail struct {
		ID       uint `json:"id"`
		Comments []struct {
			ID      uint `json:"id"`
			Replies []struct {
				ID uint `json:"id"`
			} `json:"replies"`
		} `json:"comments"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &detail))

	assert.Equal(t, uint(5), detail.ID)
	require.Len(t, detail.Comments, 1)
	require.Len(t, detail.Comments[0].Replies, 1)
	assert.Equal(t, uint(2), detail.Comments[0].Replies[0].ID)

	mocks.posts.AssertExpectations(t)
	mocks.comments.AssertExpectations(t)
}

func TestGetPost_BadID(t *testing.T) {
	s, _ := newTestServer()

	app := fiber.New()
	app.Get("/posts/:id", s.GetPost)

	for _, path := range []string{"/posts/abc", "/posts/0", "/posts/-3"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		_ = resp.Body.Close()
	}
}
