// Package observability provides Prometheus metrics and OpenTelemetry tracing
// for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chopbox_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// FavouritesApplied counts favourite operations that incremented a chop's counter.
	FavouritesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chopbox_favourites_applied_total",
		Help: "Total number of favourites that resulted in a counter increment",
	})

	// FavouritesDuplicate counts favourite operations absorbed by the idempotence guard.
	FavouritesDuplicate = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chopbox_favourites_duplicate_total",
		Help: "Total number of favourite requests ignored because the favourite already existed",
	})

	// FeedSize records the number of chops returned per feed assembly.
	FeedSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chopbox_feed_size_chops",
		Help:    "Number of chops returned per assembled feed",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})

	// LeaderboardQueries counts leaderboard computations by cache outcome.
	LeaderboardQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chopbox_leaderboard_queries_total",
		Help: "Total number of leaderboard computations by source",
	}, []string{"source"})
)
