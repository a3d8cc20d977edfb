// Package metrics declares the prometheus collectors of the catalog service.
// All collectors register with the default registry, served on /metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route template and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// ScopeLockWait is the time spent waiting for a position scope lock.
	ScopeLockWait = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_scope_lock_wait_seconds",
			Help:    "Time spent acquiring a position scope lock",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"model"},
	)

	// PositionLookups counts MAX(position) queries; result is "hit" or "empty".
	PositionLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_position_lookups_total",
			Help: "Number of max position lookups by model and result",
		},
		[]string{"model", "result"},
	)

	// AggregatesSaved counts aggregates written by committed units of work.
	AggregatesSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_aggregates_saved_total",
			Help: "Aggregates persisted by committed transactions",
		},
		[]string{"kind"},
	)

	// PositionDuplicates and PositionGaps are set by the position audit job.
	PositionDuplicates = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_position_duplicates",
			Help: "Positions held by more than one record of the same scope",
		},
		[]string{"model"},
	)

	PositionGaps = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_position_gaps",
			Help: "Unused positions below the scope maximum",
		},
		[]string{"model"},
	)
)

// StatusLabel renders an HTTP status code for the status label.
func StatusLabel(code int) string {
	return strconv.Itoa(code)
}
