package server

import (
	"chopbox/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ExpandURL handles GET /api/urls/expand. It accepts either a bare hash
// (?hash=abc123) or a full short URL (?shortUrl=http://bit.ly/abc123) and
// returns the resolved long URL.
func (s *Server) ExpandURL(c *fiber.Ctx) error {
	hash := c.Query("hash")
	shortURL := c.Query("shortUrl")

	if hash == "" && shortURL == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Either hash or shortUrl is required"))
	}

	var (
		longURL string
		err     error
	)
	if hash != "" {
		longURL, err = s.urlExpander.ExpandHash(c.Context(), hash)
	} else {
		longURL, err = s.urlExpander.ExpandURL(c.Context(), shortURL)
	}
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadGateway,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"long_url": longURL,
	})
}
