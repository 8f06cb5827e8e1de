// Package observability provides logging, metrics, and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pawnder_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pawnder_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// LikesSentTotal counts likes sent, labelled by outcome
	// (pending, matched, conflict, quota_exceeded, rejected).
	LikesSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pawnder_likes_sent_total",
		Help: "Total number of like attempts by outcome",
	}, []string{"outcome"})

	// MatchesCreatedTotal counts confirmed matches.
	MatchesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pawnder_matches_created_total",
		Help: "Total number of confirmed matches",
	})

	// UnmatchesTotal counts pass/unmatch transitions by prior status.
	UnmatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pawnder_unmatches_total",
		Help: "Total number of pass/unmatch transitions by prior status",
	}, []string{"prior_status"})

	// QuotaRejectionsTotal counts requests rejected by the daily quota.
	QuotaRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pawnder_quota_rejections_total",
		Help: "Total number of requests rejected by the daily action quota",
	}, []string{"action_type"})

	// WebSocketConnectionsTotal is the gauge of total WebSocket connections.
	WebSocketConnectionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pawnder_websocket_connections_total",
		Help: "Total number of active WebSocket connections",
	})

	// WebSocketEventsTotal counts WebSocket events by type.
	WebSocketEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pawnder_websocket_events_total",
		Help: "Total WebSocket events by type",
	}, []string{"event_type"})

	// WebSocketBackpressureDrops counts messages dropped because a client
	// send buffer was full or closed.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pawnder_websocket_backpressure_drops_total",
		Help: "Total WebSocket messages dropped due to backpressure",
	}, []string{"hub", "reason"})
)

// TrackQuery returns a completion callback recording latency for a query.
// Usage: defer observability.TrackQuery("select", "matches")()
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
