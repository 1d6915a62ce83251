// Package service implements the application's business rules over the
// repository interfaces.
package service

import (
	"context"

	"chopbox/internal/cache"
	"chopbox/internal/models"
	"chopbox/internal/observability"
	"chopbox/internal/repository"
)

// DefaultLeaderboardSize is the leaderboard length shown on the home surface.
const DefaultLeaderboardSize = 10

// RankingService computes the leaderboard and exposes the follow graph.
type RankingService struct {
	userRepo repository.UserRepository
}

// NewRankingService creates a new ranking service
func NewRankingService(userRepo repository.UserRepository) *RankingService {
	return &RankingService{userRepo: userRepo}
}

// TopUsers returns at most limit users ordered by descending chop count,
// ties broken by ascending user ID. Calling it twice without a data change
// yields identical output. Only the default size goes through the cache, so
// ad-hoc sizes never pollute it.
func (s *RankingService) TopUsers(ctx context.Context, limit int) ([]*models.User, error) {
	if limit < 1 {
		return nil, models.NewValidationError("limit must be at least 1")
	}

	span, ctx := observability.NewSpan(ctx, "ranking.TopUsers")
	defer span.End()

	if limit != DefaultLeaderboardSize {
		observability.LeaderboardQueries.WithLabelValues("db").Inc()
		return s.userRepo.TopUsers(ctx, limit)
	}

	var users []*models.User
	fetched := false
	err := cache.Aside(ctx, cache.LeaderboardKey(limit), &users, cache.LeaderboardTTL, func() error {
		fetched = true
		var fetchErr error
		users, fetchErr = s.userRepo.TopUsers(ctx, limit)
		return fetchErr
	})
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	source := "cache"
	if fetched {
		source = "db"
	}
	observability.LeaderboardQueries.WithLabelValues(source).Inc()
	return users, nil
}

// GetFolloweeIDs returns the set of user IDs that userID follows.
// Unknown users fail with NotFound; a user who follows nobody gets an empty set.
func (s *RankingService) GetFolloweeIDs(ctx context.Context, userID uint) ([]uint, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.userRepo.GetFolloweeIDs(ctx, userID)
}
