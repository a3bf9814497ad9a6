// Package metrics provides the centralized Prometheus metrics registry
// for the ledger service.
package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	HandicapComputationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fairway_ledger",
		Name:      "handicap_computations_total",
		Help:      "Total number of handicap index computations",
	})
	HandicapInsufficientDataTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fairway_ledger",
		Name:      "handicap_insufficient_data_total",
		Help:      "Handicap computations that returned no index for lack of qualifying rounds",
	})
	AnalyticsViewsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fairway_ledger",
		Name:      "analytics_views_total",
		Help:      "Total number of player analytics views assembled",
	})
	SettlementsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fairway_ledger",
		Name:      "settlements_total",
		Help:      "Total number of game sessions settled",
	})
	LineItemsGeneratedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fairway_ledger",
		Name:      "line_items_generated_total",
		Help:      "Total number of settlement line items generated",
	})
	UnresolvableCoursesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fairway_ledger",
		Name:      "unresolvable_courses_total",
		Help:      "Rounds skipped because their course could not be resolved",
	})
)

// Gauge metrics
var (
	TrackedPlayers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fairway_ledger",
		Name:      "tracked_players",
		Help:      "Number of distinct players with recorded rounds",
	})
	LastHandicapRefreshUnix = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fairway_ledger",
		Name:      "last_handicap_refresh_unix",
		Help:      "Unix timestamp of the last completed handicap refresh",
	})
)

// Histogram metrics
var (
	ComputationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fairway_ledger",
		Name:      "computation_duration_seconds",
		Help:      "Duration of analytics and settlement computations",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

// Registry returns the process-wide registry, registering all metrics
// exactly once.
func Registry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			HandicapComputationsTotal,
			HandicapInsufficientDataTotal,
			AnalyticsViewsTotal,
			SettlementsTotal,
			LineItemsGeneratedTotal,
			UnresolvableCoursesTotal,
			TrackedPlayers,
			LastHandicapRefreshUnix,
			ComputationDuration,
		)
	})
	return registry
}

// Handler returns an HTTP handler serving the registry
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{})
}

// NewServer builds an HTTP server exposing the metrics endpoint
func NewServer(port int, path string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(path, Handler())
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
}
