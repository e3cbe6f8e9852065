// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package api

import (
	"net/http"

	"github.com/tomtom215/gamepilot/internal/mood"
)

// The mood service client never fails; it answers with fallback payloads
// flagged Fallback=true. These handlers only guard the missing client.

// MoodForecast handles GET /api/v1/mood-service/forecast.
func (h *Handler) MoodForecast(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.moods == nil {
		rw.ServiceUnavailable("Mood service is not configured")
		return
	}
	rw.Success(h.moods.Forecast(r.Context()))
}

// MoodResonance handles GET /api/v1/mood-service/resonance?gameId=ID.
func (h *Handler) MoodResonance(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.moods == nil {
		rw.ServiceUnavailable("Mood service is not configured")
		return
	}
	gameID := r.URL.Query().Get("gameId")
	if gameID == "" {
		rw.BadRequest("gameId is required")
		return
	}
	rw.Success(h.moods.Resonance(r.Context(), gameID))
}

// MoodSuggestions handles GET /api/v1/mood-service/recommendations?mood=ID.
func (h *Handler) MoodSuggestions(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.moods == nil {
		rw.ServiceUnavailable("Mood service is not configured")
		return
	}
	id, ok := mood.Parse(r.URL.Query().Get("mood"))
	if !ok {
		rw.BadRequest("mood must be a known mood id")
		return
	}
	rw.Success(h.moods.Recommendations(r.Context(), id))
}
