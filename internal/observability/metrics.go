package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// ReactionToggles counts reaction toggles by target kind and resulting state.
	ReactionToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_reaction_toggles_total",
		Help: "Total number of reaction toggles by target kind and resulting state",
	}, []string{"target_kind", "state"})

	// LeaderboardComputeLatency records how long a full leaderboard scoring pass takes.
	LeaderboardComputeLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pulse_leaderboard_compute_latency_seconds",
		Help:    "Leaderboard scoring latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// CommentTreeSize records how many comments a single thread build processed.
	CommentTreeSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pulse_comment_tree_size",
		Help:    "Number of comments per thread reconstruction",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
	})
)
