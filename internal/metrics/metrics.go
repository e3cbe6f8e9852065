// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes.
const (
	OutcomeServed   = "served"
	OutcomeFallback = "fallback"
	OutcomeCacheHit = "cache_hit"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepilot_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamepilot_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamepilot_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepilot_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepilot_recommendation_requests_total",
			Help: "Recommendation requests by outcome",
		},
		[]string{"outcome"}, // served, fallback, cache_hit, empty, error
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gamepilot_recommendation_duration_seconds",
			Help:    "Time to produce a recommendation list",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	RecommendationReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gamepilot_recommendation_returned",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 3, 5, 10, 20, 50},
		},
	)

	// Mood Service Metrics
	MoodServiceCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepilot_mood_service_calls_total",
			Help: "Mood service calls by endpoint and result",
		},
		[]string{"endpoint", "result"}, // success, fallback
	)

	MoodServiceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamepilot_mood_service_duration_seconds",
			Help:    "Mood service call duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gamepilot_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepilot_circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker by result",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gamepilot_circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepilot_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Library Metrics
	LibraryGames = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gamepilot_library_games",
			Help: "Games in the library by play status",
		},
		[]string{"status"},
	)

	LibraryVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamepilot_library_version",
			Help: "Library content version (changes on every write)",
		},
	)

	LibraryImports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepilot_library_imported_games_total",
			Help: "Games imported from external sources",
		},
		[]string{"source", "result"}, // added, updated
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one recommendation request.
func RecordRecommendation(outcome string, duration time.Duration, returned int) {
	RecommendationRequests.WithLabelValues(outcome).Inc()
	if outcome == OutcomeError {
		return
	}
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationReturned.Observe(float64(returned))
}

// RecordMoodServiceCall records a mood service call. fallback is true when
// the hard-coded payload was served instead of the remote one.
func RecordMoodServiceCall(endpoint string, duration time.Duration, fallback bool) {
	result := "success"
	if fallback {
		result = "fallback"
	}
	MoodServiceCalls.WithLabelValues(endpoint, result).Inc()
	MoodServiceDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// SetLibraryGames publishes per-status game counts and the library version.
func SetLibraryGames(byStatus map[string]int, version uint64) {
	for status, n := range byStatus {
		LibraryGames.WithLabelValues(status).Set(float64(n))
	}
	LibraryVersion.Set(float64(version))
}

// RecordImport counts games added and updated by an import.
func RecordImport(source string, added, updated int) {
	LibraryImports.WithLabelValues(source, "added").Add(float64(added))
	LibraryImports.WithLabelValues(source, "updated").Add(float64(updated))
}
