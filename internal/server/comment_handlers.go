package server

import (
	"chopbox/internal/models"
	"chopbox/internal/service"

	"github.com/gofiber/fiber/v2"
)

const defaultCommentLimit = 50

// CreateComment handles POST /api/chops/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	chopID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID: currentUserID(c),
		ChopID: chopID,
		Body:   req.Body,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/chops/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	chopID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	pagination := parsePagination(c, defaultCommentLimit)

	comments, err := s.commentService.GetComments(c.Context(), chopID, pagination.Limit, pagination.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"comments": comments,
	})
}
