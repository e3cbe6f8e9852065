// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

/*
Package metrics provides Prometheus metrics for GamePilot.

All collectors are registered on the default registry through promauto and
are exposed at /metrics by the API router.

# Available Metrics

API Metrics:
  - gamepilot_api_requests_total: requests by method, endpoint, status_code
  - gamepilot_api_request_duration_seconds: latency by method, endpoint
  - gamepilot_api_active_requests: in-flight requests
  - gamepilot_api_rate_limit_hits_total: rejected requests by endpoint

Recommendation Metrics:
  - gamepilot_recommendation_requests_total: requests by outcome
    (served, fallback, cache_hit, empty, error)
  - gamepilot_recommendation_duration_seconds
  - gamepilot_recommendation_returned

Mood Service Metrics:
  - gamepilot_mood_service_calls_total: calls by endpoint and result
  - gamepilot_mood_service_duration_seconds
  - gamepilot_circuit_breaker_*: breaker state, requests, failures, transitions

Library Metrics:
  - gamepilot_library_games: games by play status
  - gamepilot_library_version
  - gamepilot_library_imported_games_total: by source and result

# Usage

	start := time.Now()
	resp, err := engine.Recommend(ctx, req)
	metrics.RecordRecommendation(metrics.OutcomeServed, time.Since(start), len(resp.Recommendations))
*/
package metrics
