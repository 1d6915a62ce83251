package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"chopbox/internal/config"
	"chopbox/internal/repository"
	"chopbox/internal/service"
	"chopbox/internal/urlexpand"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// newTestServer wires a Server around mock repositories, mirroring what
// NewServerWithDeps does without a database.
func newTestServer(userRepo repository.UserRepository, chopRepo repository.ChopRepository, commentRepo repository.CommentRepository) *Server {
	s := &Server{
		config:      &config.Config{JWTSecret: "test_secret", BitlyFormat: "txt"},
		userRepo:    userRepo,
		chopRepo:    chopRepo,
		commentRepo: commentRepo,
	}
	s.rankingService = service.NewRankingService(userRepo)
	s.feedService = service.NewFeedService(chopRepo, userRepo)
	s.chopService = service.NewChopService(chopRepo)
	s.commentService = service.NewCommentService(commentRepo, chopRepo)
	s.userService = service.NewUserService(userRepo)
	s.socialAuth = service.NewSocialAuthService(userRepo, nil)
	s.urlExpander = urlexpand.NewClient(urlexpand.Config{Format: "txt"})
	return s
}

// asUser wraps a handler with a fake auth step that stores the user ID, the
// way AuthRequired does for real requests.
func asUser(userID uint, handler fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return handler(c)
	}
}

func TestParsePagination(t *testing.T) {
	app := fiber.New()
	var got Pagination
	app.Get("/items", func(c *fiber.Ctx) error {
		got = parsePagination(c, 25)
		return c.SendStatus(http.StatusOK)
	})

	tests := []struct {
		name     string
		query    string
		expected Pagination
	}{
		{"Defaults", "", Pagination{Limit: 25, Offset: 0}},
		{"Explicit", "?limit=10&offset=30", Pagination{Limit: 10, Offset: 30}},
		{"Negative Falls Back", "?limit=-5&offset=-1", Pagination{Limit: 25, Offset: 0}},
		{"Capped At Max", "?limit=5000", Pagination{Limit: maxPaginationLimit, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/items"+tt.query, nil)
			resp, _ := app.Test(req)
			_ = resp.Body.Close()
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHumanizeParam(t *testing.T) {
	assert.Equal(t, "ID", humanizeParam("id"))
	assert.Equal(t, "user ID", humanizeParam("userId"))
	assert.Equal(t, "chop ID", humanizeParam("chopId"))
	assert.Equal(t, "slug", humanizeParam("slug"))
}

func TestParseID_InvalidWrites400(t *testing.T) {
	s := &Server{}
	app := fiber.New()
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		if _, err := s.parseID(c, "id"); err != nil {
			return nil
		}
		return c.SendStatus(http.StatusOK)
	})

	for _, path := range []string{"/things/abc", "/things/0", "/things/-3"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, _ := app.Test(req)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/things/7", nil)
	resp, _ := app.Test(req)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
