package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix        = "user:%d"
	ChopKeyPrefix        = "chop:%d"
	FeedKeyPrefix        = "feed:%d"
	LeaderboardKeyPrefix = "leaderboard:%d"
)

const (
	UserTTL        = 5 * time.Minute
	ChopTTL        = 30 * time.Minute
	FeedTTL        = 1 * time.Minute
	LeaderboardTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ChopKey(chopID uint) string {
	return fmt.Sprintf(ChopKeyPrefix, chopID)
}

func FeedKey(viewerID uint) string {
	return fmt.Sprintf(FeedKeyPrefix, viewerID)
}

func LeaderboardKey(limit int) string {
	return fmt.Sprintf(LeaderboardKeyPrefix, limit)
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateChop(ctx context.Context, chopID uint) {
	Invalidate(ctx, ChopKey(chopID))
}

func InvalidateFeed(ctx context.Context, viewerID uint) {
	Invalidate(ctx, FeedKey(viewerID))
}

func InvalidateLeaderboard(ctx context.Context, limit int) {
	Invalidate(ctx, LeaderboardKey(limit))
}
