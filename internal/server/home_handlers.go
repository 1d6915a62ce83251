package server

import (
	"chopbox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetHome handles GET /api/home. It returns everything the home surface
// needs in one response: the viewer's feed (own chops plus followees') and
// the leaderboard.
func (s *Server) GetHome(c *fiber.Ctx) error {
	userID := currentUserID(c)
	pagination := parsePagination(c, service.DefaultFeedPageSize)

	viewer, err := s.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	followeeIDs, err := s.rankingService.GetFolloweeIDs(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	feed, err := s.feedService.GetChops(c.Context(), viewer, followeeIDs, pagination.Limit, pagination.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	leaderboard, err := s.rankingService.TopUsers(c.Context(), service.DefaultLeaderboardSize)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"feed":        feed,
		"leaderboard": leaderboard,
	})
}

// GetLeaderboard handles GET /api/leaderboard
func (s *Server) GetLeaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", service.DefaultLeaderboardSize)

	users, err := s.rankingService.TopUsers(c.Context(), limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"users": users,
	})
}
