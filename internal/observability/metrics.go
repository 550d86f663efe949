package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "amity_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// RelationshipMutations counts relationship writes by relation and operation.
	RelationshipMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "amity_relationship_mutations_total",
		Help: "Total number of relationship mutations by relation and operation",
	}, []string{"relation", "operation"})

	// FriendRequestOutcomes counts friend request attempts by outcome.
	FriendRequestOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "amity_friend_requests_total",
		Help: "Total number of friend request attempts by outcome",
	}, []string{"outcome"})

	// NotificationFailures counts outbound notification deliveries that failed.
	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "amity_notification_failures_total",
		Help: "Total number of failed outbound friend request notifications",
	})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "amity_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
