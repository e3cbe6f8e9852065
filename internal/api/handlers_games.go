// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tomtom215/gamepilot/internal/launch"
	"github.com/tomtom215/gamepilot/internal/library"
	"github.com/tomtom215/gamepilot/internal/logging"
	"github.com/tomtom215/gamepilot/internal/metrics"
	"github.com/tomtom215/gamepilot/internal/mood"
	"github.com/tomtom215/gamepilot/internal/recommend"
)

// ListGames handles GET /api/v1/games with optional status and mood filters.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q := r.URL.Query()
	req := GameListRequest{Status: q.Get("status"), Mood: q.Get("mood")}
	if !validateRequest(rw, &req) {
		return
	}

	games, err := h.store.ListGames(r.Context())
	if err != nil {
		rw.StorageError(err)
		return
	}

	moodID, _ := mood.Parse(req.Mood)
	out := make([]recommend.Game, 0, len(games))
	for i := range games {
		if req.Status != "" && games[i].PlayStatus != recommend.PlayStatus(req.Status) {
			continue
		}
		if moodID != "" && !mood.Contains(games[i].Moods, moodID) {
			continue
		}
		out = append(out, games[i])
	}
	rw.List(out, len(out))
}

// GetGame handles GET /api/v1/games/{id}.
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	g, ok := h.lookupGame(rw, r)
	if !ok {
		return
	}
	rw.Success(g)
}

// CreateGame handles POST /api/v1/games. A missing id is generated.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req GameRequest
	if !decodeJSONBody(rw, r, &req) || !validateRequest(rw, &req) {
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}
	stored, err := h.store.PutGame(r.Context(), req.toGame(id))
	if err != nil {
		h.writeStoreError(rw, err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("game_id", sanitizeLogValue(id)).Msg("Game added to library")
	rw.Created(stored)
}

// PutGame handles PUT /api/v1/games/{id}. The path id wins over the body.
func (h *Handler) PutGame(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req GameRequest
	if !decodeJSONBody(rw, r, &req) || !validateRequest(rw, &req) {
		return
	}

	stored, err := h.store.PutGame(r.Context(), req.toGame(chi.URLParam(r, "id")))
	if err != nil {
		h.writeStoreError(rw, err)
		return
	}
	rw.Success(stored)
}

// DeleteGame handles DELETE /api/v1/games/{id}.
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if err := h.store.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeStoreError(rw, err)
		return
	}
	rw.NoContent()
}

// ImportSteam handles POST /api/v1/games/import/steam. The body is a Steam
// Web API GetOwnedGames response. Existing games keep their user-assigned
// moods and genres.
func (h *Handler) ImportSteam(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	body := http.MaxBytesReader(w, r.Body, maxImportBytes)
	games, err := library.ImportSteamOwnedGames(body, h.now())
	if err != nil {
		rw.BadRequest("Invalid Steam owned games payload")
		return
	}

	res, err := library.MergeImport(r.Context(), h.store, games)
	if err != nil {
		rw.StorageError(err)
		return
	}
	metrics.RecordImport("steam", res.Added, res.Updated)

	logging.Ctx(r.Context()).Info().
		Int("added", res.Added).
		Int("updated", res.Updated).
		Msg("Steam library imported")
	rw.Success(res)
}

// GameTags handles GET /api/v1/games/{id}/tags.
func (h *Handler) GameTags(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	g, ok := h.lookupGame(rw, r)
	if !ok {
		return
	}
	rw.Success(recommend.Tag(&g, h.engine.GetConfig()))
}

// LaunchGame handles GET /api/v1/games/{id}/launch. Games that cannot be
// launched get a 422 notice rather than a server error.
func (h *Handler) LaunchGame(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	g, ok := h.lookupGame(rw, r)
	if !ok {
		return
	}

	target, err := launch.URL(&g)
	switch {
	case errors.Is(err, launch.ErrMissingAppID):
		rw.Error(http.StatusUnprocessableEntity, ErrCodeLaunchUnavailable, "This game has no launcher app id")
	case errors.Is(err, launch.ErrUnsupportedPlatform):
		rw.Error(http.StatusUnprocessableEntity, ErrCodeLaunchUnavailable, "Launching is not supported for this platform")
	case err != nil:
		rw.InternalError("Failed to build launch URL")
	default:
		rw.Success(target)
	}
}

func (h *Handler) lookupGame(rw *ResponseWriter, r *http.Request) (recommend.Game, bool) {
	g, err := h.store.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(rw, err)
		return recommend.Game{}, false
	}
	return g, true
}

func (h *Handler) writeStoreError(rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, library.ErrGameNotFound):
		rw.NotFound("Game not found")
	case errors.Is(err, library.ErrInvalidGame):
		rw.BadRequest(err.Error())
	default:
		rw.StorageError(err)
	}
}
