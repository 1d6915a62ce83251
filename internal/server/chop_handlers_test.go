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

// MockChopRepository is a mock of the ChopRepository interface
type MockChopRepository struct {
	mock.Mock
}

func (m *MockChopRepository) Create(ctx context.Context, chop *models.Chop) error {
	args := m.Called(ctx, chop)
	return args.Error(0)
}

func (m *MockChopRepository) GetByID(ctx context.Context, id, currentUserID uint) (*models.Chop, error) {
	args := m.Called(ctx, id, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chop), args.Error(1)
}

func (m *MockChopRepository) GetByAuthors(ctx context.Context, authorIDs []uint, currentUserID uint, limit, offset int) ([]*models.Chop, error) {
	args := m.Called(ctx, authorIDs, currentUserID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Chop), args.Error(1)
}

func (m *MockChopRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Chop, error) {
	args := m.Called(ctx, userID, limit, offset, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Chop), args.Error(1)
}

func (m *MockChopRepository) CountByAuthor(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChopRepository) Favourite(ctx context.Context, userID, chopID uint) (bool, int, error) {
	args := m.Called(ctx, userID, chopID)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockChopRepository) IsFavourited(ctx context.Context, userID, chopID uint) (bool, error) {
	args := m.Called(ctx, userID, chopID)
	return args.Bool(0), args.Error(1)
}

func TestCreateChop(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockChops := new(MockChopRepository)
	s := newTestServer(mockUsers, mockChops, nil)

	app := fiber.New()
	app.Post("/chops", asUser(1, s.CreateChop))

	t.Run("Success", func(t *testing.T) {
		mockChops.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Chop).ID = 5
		}).Return(nil).Once()
		mockChops.On("GetByID", mock.Anything, uint(5), uint(1)).
			Return(&models.Chop{ID: 5, Body: "hello", UserID: 1}, nil).Once()

		body, _ := json.Marshal(map[string]string{"body": "hello"})
		req := httptest.NewRequest(http.MethodPost, "/chops", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var chop models.Chop
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&chop))
		assert.Equal(t, uint(5), chop.ID)
	})

	t.Run("Empty Body", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"body": "   "})
		req := httptest.NewRequest(http.MethodPost, "/chops", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestFavouriteChop(t *testing.T) {
	newApp := func(mockUsers *MockUserRepository, mockChops *MockChopRepository) *fiber.App {
		s := newTestServer(mockUsers, mockChops, nil)
		app := fiber.New()
		app.Post("/chops/:id/favourite", asUser(1, s.FavouriteChop))
		return app
	}

	t.Run("First Favourite", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockChops := new(MockChopRepository)
		mockUsers.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1}, nil)
		mockChops.On("GetByID", mock.Anything, uint(42), uint(0)).Return(&models.Chop{ID: 42}, nil)
		mockChops.On("Favourite", mock.Anything, uint(1), uint(42)).Return(true, 6, nil)
		app := newApp(mockUsers, mockChops)

		req := httptest.NewRequest(http.MethodPost, "/chops/42/favourite", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var payload struct {
			Count   int  `json:"count"`
			Applied bool `json:"applied"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, 6, payload.Count)
		assert.True(t, payload.Applied)
	})

	t.Run("Repeat Favourite", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockChops := new(MockChopRepository)
		mockUsers.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1}, nil)
		mockChops.On("GetByID", mock.Anything, uint(42), uint(0)).Return(&models.Chop{ID: 42}, nil)
		mockChops.On("Favourite", mock.Anything, uint(1), uint(42)).Return(false, 6, nil)
		app := newApp(mockUsers, mockChops)

		req := httptest.NewRequest(http.MethodPost, "/chops/42/favourite", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var payload struct {
			Count   int  `json:"count"`
			Applied bool `json:"applied"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, 6, payload.Count)
		assert.False(t, payload.Applied)
	})

	t.Run("Unknown Chop", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockChops := new(MockChopRepository)
		mockUsers.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1}, nil)
		mockChops.On("GetByID", mock.Anything, uint(999), uint(0)).
			Return(nil, models.NewNotFoundError("Chop", 999))
		app := newApp(mockUsers, mockChops)

		req := httptest.NewRequest(http.MethodPost, "/chops/999/favourite", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockChops.AssertNotCalled(t, "Favourite", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		app := newApp(new(MockUserRepository), new(MockChopRepository))

		req := httptest.NewRequest(http.MethodPost, "/chops/abc/favourite", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetChop_PublicView(t *testing.T) {
	mockChops := new(MockChopRepository)
	s := newTestServer(new(MockUserRepository), mockChops, nil)

	app := fiber.New()
	app.Get("/chops/:id", s.GetChop)

	mockChops.On("GetByID", mock.Anything, uint(7), uint(0)).
		Return(&models.Chop{ID: 7, Body: "public", Likes: 3}, nil)

	req := httptest.NewRequest(http.MethodGet, "/chops/7", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var chop models.Chop
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&chop))
	assert.Equal(t, 3, chop.Likes)
	assert.False(t, chop.Liked)
}
