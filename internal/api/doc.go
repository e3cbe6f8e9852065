// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

/*
Package api provides the HTTP REST API for GamePilot.

Every response uses the envelope:

	{"success": true, "data": ..., "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "NOT_FOUND", "message": "..."}, "meta": {...}}

Non-fatal conditions, such as a dropped secondary mood or fallback
recommendations, are reported in meta.notice with a 200 status. Games that
cannot be launched answer 422 with code LAUNCH_UNAVAILABLE.

Routes (all under /api/v1):

  - GET  /health/live, /health/ready
  - GET  /games, POST /games, POST /games/import/steam
  - GET  /games/{id}, PUT /games/{id}, DELETE /games/{id}
  - GET  /games/{id}/tags, /games/{id}/launch
  - GET  /moods, GET /moods/{mood}/games, POST /moods/selection
  - POST /recommendations, GET /recommendations/stats, GET /persona
  - GET  /mood-service/forecast, /mood-service/resonance, /mood-service/recommendations

Prometheus metrics are served at /metrics.

Middleware: request ID and correlation ID injection, chi RealIP and
Recoverer, go-chi/cors, go-chi/httprate per-IP limits, security headers and
per-route Prometheus metrics.

Usage:

	handler := api.NewHandler(store, engine, moodClient)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromSecurity(origins, 100, time.Minute, false))
	http.ListenAndServe(":8080", router.SetupChi())
*/
package api
