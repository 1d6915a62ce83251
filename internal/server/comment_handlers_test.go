package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chopbox/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func (m *MockCommentRepository) GetByChopID(ctx context.Context, chopID uint, limit, offset int) ([]*models.Comment, error) {
	args := m.Called(ctx, chopID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func TestCreateComment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockChops := new(MockChopRepository)
		mockComments := new(MockCommentRepository)
		s := newTestServer(new(MockUserRepository), mockChops, mockComments)

		app := fiber.New()
		app.Post("/chops/:id/comments", asUser(1, s.CreateComment))

		mockChops.On("GetByID", mock.Anything, uint(7), uint(0)).
			Return(&models.Chop{ID: 7}, nil)
		mockComments.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Comment).ID = 3
		}).Return(nil)
		mockComments.On("GetByID", mock.Anything, uint(3)).
			Return(&models.Comment{ID: 3, ChopID: 7, UserID: 1, Body: "nice one"}, nil)

		body, _ := json.Marshal(map[string]string{"body": "nice one"})
		req := httptest.NewRequest(http.MethodPost, "/chops/7/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var comment models.Comment
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&comment))
		assert.Equal(t, uint(3), comment.ID)
		assert.Equal(t, "nice one", comment.Body)
		mockComments.AssertExpectations(t)
	})

	t.Run("Parent Chop Not Found", func(t *testing.T) {
		mockChops := new(MockChopRepository)
		mockComments := new(MockCommentRepository)
		s := newTestServer(new(MockUserRepository), mockChops, mockComments)

		app := fiber.New()
		app.Post("/chops/:id/comments", asUser(1, s.CreateComment))

		mockChops.On("GetByID", mock.Anything, uint(999), uint(0)).
			Return(nil, models.NewNotFoundError("Chop", 999))

		body, _ := json.Marshal(map[string]string{"body": "hello?"})
		req := httptest.NewRequest(http.MethodPost, "/chops/999/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockComments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Empty Body", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		s := newTestServer(new(MockUserRepository), new(MockChopRepository), mockComments)

		app := fiber.New()
		app.Post("/chops/:id/comments", asUser(1, s.CreateComment))

		body, _ := json.Marshal(map[string]string{"body": "  "})
		req := httptest.NewRequest(http.MethodPost, "/chops/7/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockComments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetComments(t *testing.T) {
	mockChops := new(MockChopRepository)
	mockComments := new(MockCommentRepository)
	s := newTestServer(new(MockUserRepository), mockChops, mockComments)

	app := fiber.New()
	app.Get("/chops/:id/comments", s.GetComments)

	mockChops.On("GetByID", mock.Anything, uint(7), uint(0)).Return(&models.Chop{ID: 7}, nil)
	mockComments.On("GetByChopID", mock.Anything, uint(7), 50, 0).Return([]*models.Comment{
		{ID: 1, ChopID: 7, Body: "first"},
		{ID: 2, ChopID: 7, Body: "second"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/chops/7/comments", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Comments []*models.Comment `json:"comments"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Comments, 2)
	assert.Equal(t, "first", payload.Comments[0].Body)
}
