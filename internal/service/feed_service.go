package service

import (
	"context"

	"chopbox/internal/cache"
	"chopbox/internal/models"
	"chopbox/internal/observability"
	"chopbox/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// DefaultFeedPageSize is the feed page length served on the home surface.
// Only this page goes through the cache.
const DefaultFeedPageSize = 50

// FeedService assembles personalized feeds and applies favourites.
type FeedService struct {
	chopRepo repository.ChopRepository
	userRepo repository.UserRepository
}

// FavouriteResult reports the outcome of a favourite operation.
type FavouriteResult struct {
	// Likes is the chop's counter value after the call.
	Likes int `json:"count"`
	// Applied is true when this call created the favourite; false means the
	// favourite already existed and the call was a no-op.
	Applied bool `json:"applied"`
}

// NewFeedService creates a new feed service
func NewFeedService(chopRepo repository.ChopRepository, userRepo repository.UserRepository) *FeedService {
	return &FeedService{chopRepo: chopRepo, userRepo: userRepo}
}

// GetChops builds the feed for viewer: their own chops plus those of every
// followee, ordered by descending creation time (ties: descending ID).
// A pure read; safe for any number of concurrent viewers.
func (s *FeedService) GetChops(ctx context.Context, viewer *models.User, followeeIDs []uint, limit, offset int) ([]*models.Chop, error) {
	span, ctx := observability.NewSpan(ctx, "feed.GetChops")
	defer span.End()

	// authorSet = {viewer} ∪ followees, deduplicated
	authorIDs := make([]uint, 0, len(followeeIDs)+1)
	seen := map[uint]struct{}{viewer.ID: {}}
	authorIDs = append(authorIDs, viewer.ID)
	for _, id := range followeeIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		authorIDs = append(authorIDs, id)
	}

	fetch := func() ([]*models.Chop, error) {
		return s.chopRepo.GetByAuthors(ctx, authorIDs, viewer.ID, limit, offset)
	}

	var chops []*models.Chop
	var err error
	if offset == 0 && limit == DefaultFeedPageSize {
		err = cache.Aside(ctx, cache.FeedKey(viewer.ID), &chops, cache.FeedTTL, func() error {
			var fetchErr error
			chops, fetchErr = fetch()
			return fetchErr
		})
	} else {
		chops, err = fetch()
	}
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	span.AddAttributes(
		attribute.Int("feed.authors", len(authorIDs)),
		attribute.Int("feed.chops", len(chops)),
	)
	observability.FeedSize.Observe(float64(len(chops)))
	return chops, nil
}

// Favourite applies userID's like to chopID, idempotently: the first call
// creates the favourite and moves the counter by exactly one; repeat calls
// return the current count unchanged. Both IDs must reference existing
// records or the call fails with NotFound before any mutation.
func (s *FeedService) Favourite(ctx context.Context, userID, chopID uint) (*FavouriteResult, error) {
	span, ctx := observability.NewSpan(ctx, "feed.Favourite")
	defer span.End()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.chopRepo.GetByID(ctx, chopID, 0); err != nil {
		return nil, err
	}

	applied, likes, err := s.chopRepo.Favourite(ctx, userID, chopID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	if applied {
		observability.FavouritesApplied.Inc()
	} else {
		observability.FavouritesDuplicate.Inc()
	}

	return &FavouriteResult{Likes: likes, Applied: applied}, nil
}
