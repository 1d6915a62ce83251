package server

import (
	"chopbox/internal/models"
	"chopbox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateChop handles POST /api/chops
func (s *Server) CreateChop(c *fiber.Ctx) error {
	var req struct {
		Body string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	chop, err := s.chopService.CreateChop(c.Context(), service.CreateChopInput{
		UserID: currentUserID(c),
		Body:   req.Body,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(chop)
}

// GetChop handles GET /api/chops/:id. Anonymous viewers get the chop without
// a personalized liked flag.
func (s *Server) GetChop(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewerID, _ := s.optionalUserID(c)
	chop, err := s.chopService.GetChop(c.Context(), id, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(chop)
}

// GetUserChops handles GET /api/users/:id/chops
func (s *Server) GetUserChops(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	pagination := parsePagination(c, service.DefaultFeedPageSize)

	chops, err := s.chopService.GetUserChops(c.Context(), userID, pagination.Limit, pagination.Offset, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"chops": chops,
	})
}

// FavouriteChop handles POST /api/chops/:id/favourite. Safe to retry: a
// repeat favourite is a no-op that reports the current count.
func (s *Server) FavouriteChop(c *fiber.Ctx) error {
	chopID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.feedService.Favourite(c.Context(), currentUserID(c), chopID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(result)
}
