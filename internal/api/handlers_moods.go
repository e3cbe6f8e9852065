// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/gamepilot/internal/mood"
)

const defaultMoodGamesLimit = 10

// ListMoods handles GET /api/v1/moods and returns the taxonomy in display order.
func (h *Handler) ListMoods(w http.ResponseWriter, r *http.Request) {
	moods := mood.All()
	NewResponseWriter(w, r).List(moods, len(moods))
}

// MoodGames handles GET /api/v1/moods/{mood}/games?limit=N.
func (h *Handler) MoodGames(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok := getIntParam(r, "limit", defaultMoodGamesLimit)
	if !ok {
		rw.BadRequest("limit must be an integer")
		return
	}
	req := MoodGamesRequest{Mood: chi.URLParam(r, "mood"), Limit: limit}
	if !validateRequest(rw, &req) {
		return
	}
	id, _ := mood.Parse(req.Mood)

	games, err := h.engine.MoodGames(r.Context(), id, req.Limit)
	if err != nil {
		rw.StorageError(err)
		return
	}
	rw.List(games, len(games))
}

// ResolveMoodSelection handles POST /api/v1/moods/selection. It applies the
// pairing rule and reports a dropped secondary in the response notice.
func (h *Handler) ResolveMoodSelection(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req MoodSelectionRequest
	if !decodeJSONBody(rw, r, &req) || !validateRequest(rw, &req) {
		return
	}

	primary, _ := mood.Parse(req.Primary)
	var secondary *mood.ID
	if req.Secondary != "" {
		s, _ := mood.Parse(req.Secondary)
		secondary = &s
	}

	sel, dropped := mood.ResolveSelection(primary, secondary)
	meta := &APIMeta{}
	if dropped {
		meta.Notice = secondaryDroppedNotice(primary, *secondary)
	}
	rw.SuccessWithMeta(sel, meta)
}

func secondaryDroppedNotice(primary, secondary mood.ID) string {
	return "Secondary mood " + string(secondary) + " cannot be combined with " + string(primary) + " and was cleared"
}
