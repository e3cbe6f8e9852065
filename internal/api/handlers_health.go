// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package api

import (
	"context"
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 200 OK only when the library store answers. The mood service is
// optional and only reported.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	libraryReady := false
	gameCount := 0
	if h.store != nil {
		games, err := h.store.ListGames(ctx)
		libraryReady = err == nil
		gameCount = len(games)
	}

	moodService := "disabled"
	if h.moods != nil && h.moods.Enabled() {
		moodService = h.moods.State()
	}

	status := map[string]interface{}{
		"ready":           libraryReady && h.engine != nil,
		"library":         libraryReady,
		"games":           gameCount,
		"library_version": h.libraryVersion(),
		"mood_service":    moodService,
	}

	if !libraryReady || h.engine == nil {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service not ready", status)
		return
	}
	rw.Success(status)
}

func (h *Handler) libraryVersion() uint64 {
	if h.store == nil {
		return 0
	}
	return h.store.Version()
}
