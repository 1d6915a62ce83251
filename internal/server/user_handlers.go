package server

import (
	"chopbox/internal/models"
	"chopbox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// CompleteProfile handles PUT /api/users/me/profile. New accounts land here
// after signup to fill in the profile form.
func (s *Server) CompleteProfile(c *fiber.Ctx) error {
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Location  string `json:"location"`
		About     string `json:"about"`
		Gender    string `json:"gender"`
		BestFood  string `json:"best_food"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CompleteProfile(c.Context(), currentUserID(c), service.CompleteProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Location:  req.Location,
		About:     req.About,
		Gender:    req.Gender,
		BestFood:  req.BestFood,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetFollowing handles GET /api/users/me/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	ids, err := s.rankingService.GetFolloweeIDs(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"followee_ids": ids,
	})
}

// FollowUser handles POST /api/users/:id/follow. Idempotent: following an
// already-followed user succeeds without creating a second edge.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	followeeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	followerID := currentUserID(c)

	if followeeID == followerID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot follow yourself"))
	}

	// The followee must exist
	if _, err := s.userService.GetProfile(c.Context(), followeeID); err != nil {
		return respondServiceError(c, err)
	}

	if err := s.userRepo.Follow(c.Context(), followerID, followeeID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"following": true,
	})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	followeeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userRepo.Unfollow(c.Context(), currentUserID(c), followeeID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"following": false,
	})
}
