// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/gamepilot/internal/library"
	"github.com/tomtom215/gamepilot/internal/metrics"
	"github.com/tomtom215/gamepilot/internal/middleware"
)

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t, libraryGame("a", "Alpha", 1))

	rec, env := a.do(t, http.MethodGet, "/api/v1/health/live", "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Errorf("live = %d", rec.Code)
	}

	rec, env = a.do(t, http.MethodGet, "/api/v1/health/ready", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("ready = %d: %s", rec.Code, rec.Body.String())
	}
	var status map[string]interface{}
	decodeData(t, env, &status)
	if status["ready"] != true || status["games"] != float64(1) || status["mood_service"] != "closed" {
		t.Errorf("ready status = %v", status)
	}

	a.handler.store = failingStore{library.NewMemoryStore()}
	rec, env = a.do(t, http.MethodGet, "/api/v1/health/ready", "")
	expectError(t, rec, env, http.StatusServiceUnavailable, ErrCodeServiceUnavailable)
}

func TestRouterEnvelopeForUnknownRoutes(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)

	rec, env := a.do(t, http.MethodGet, "/api/v1/nope", "")
	expectError(t, rec, env, http.StatusNotFound, ErrCodeNotFound)

	rec, env = a.do(t, http.MethodPatch, "/api/v1/recommendations", "")
	expectError(t, rec, env, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED")
}

func TestRouterRequestIDAndSecurityHeaders(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/moods", http.NoBody)
	req.Header.Set(middleware.RequestIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.RequestIDHeader); got != "trace-123" {
		t.Errorf("X-Request-ID = %q, want the upstream id", got)
	}
	if !strings.Contains(rec.Body.String(), `"request_id":"trace-123"`) {
		t.Errorf("envelope does not carry the request id: %s", rec.Body.String())
	}
	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Cache-Control":          "no-store",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS must not be set for plain HTTP")
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.mux = NewRouter(a.handler, NewChiMiddlewareFromSecurity([]string{"https://games.example"}, 100, time.Minute, true)).SetupChi()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", http.NoBody)
	req.Header.Set("Origin", "https://games.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://games.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", http.NoBody)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin got Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouterRateLimit(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.mux = NewRouter(a.handler, NewChiMiddlewareFromSecurity([]string{"*"}, 2, time.Minute, false)).SetupChi()

	for i := 0; i < 2; i++ {
		if rec, _ := a.do(t, http.MethodGet, "/api/v1/moods", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}
	rec, env := a.do(t, http.MethodGet, "/api/v1/moods", "")
	expectError(t, rec, env, http.StatusTooManyRequests, ErrCodeTooManyRequests)

	// Health has its own, larger budget.
	if rec, _ := a.do(t, http.MethodGet, "/api/v1/health/live", ""); rec.Code != http.StatusOK {
		t.Errorf("health should not share the API budget, got %d", rec.Code)
	}
}

func TestRouterMetrics(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)

	// Older chi versions keep the subrouter's trailing slash in the pattern.
	labels := []string{"/api/v1/moods", "/api/v1/moods/"}
	total := func() float64 {
		var sum float64
		for _, l := range labels {
			sum += testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, l, "200"))
		}
		return sum
	}
	before := total()

	a.do(t, http.MethodGet, "/api/v1/moods", "")

	if d := total() - before; d < 1 {
		t.Errorf("request counter delta = %v, want >= 1", d)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "gamepilot_api_requests_total") {
		t.Errorf("/metrics = %d", rec.Code)
	}
}
