// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/gamepilot/internal/logging"
	"github.com/tomtom215/gamepilot/internal/metrics"
	"github.com/tomtom215/gamepilot/internal/mood"
	"github.com/tomtom215/gamepilot/internal/recommend"
)

// recommendTimeout bounds a recommendation pass including the library load.
const recommendTimeout = 10 * time.Second

const fallbackNotice = "No games matched this context, showing picks from your library instead"

// Recommendations handles POST /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	var req RecommendationRequest
	if !decodeJSONBody(rw, r, &req) || !validateRequest(rw, &req) {
		return
	}

	now := h.now()
	filters, notice := req.filters(now)

	ctx, cancel := context.WithTimeout(r.Context(), recommendTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		RequestID:     logging.RequestIDFromContext(r.Context()),
		Filters:       filters,
		PersonaWeight: req.PersonaWeight,
		Limit:         req.Limit,
		Now:           now,
	})
	if err != nil {
		metrics.RecordRecommendation(metrics.OutcomeError, time.Since(start), 0)
		logging.Ctx(r.Context()).Error().Err(err).Msg("Recommendation failed")
		rw.Error(http.StatusInternalServerError, ErrCodeRecommendationError, "Failed to generate recommendations")
		return
	}

	metrics.RecordRecommendation(recommendationOutcome(resp), time.Since(start), len(resp.Recommendations))

	meta := &APIMeta{Notice: notice}
	if resp.Fallback {
		meta.Notice = joinNotices(meta.Notice, fallbackNotice)
	}
	rw.SuccessWithMeta(resp, meta)
}

// Persona handles GET /api/v1/persona.
func (h *Handler) Persona(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	p, err := h.engine.Persona(r.Context())
	if err != nil {
		rw.StorageError(err)
		return
	}
	rw.Success(p)
}

// EngineStats handles GET /api/v1/recommendations/stats.
func (h *Handler) EngineStats(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"metrics": h.engine.GetMetrics(),
		"config":  h.engine.GetConfig(),
	})
}

// filters converts the request into engine filters. The returned notice is
// non-empty when an incompatible secondary mood was dropped.
func (req *RecommendationRequest) filters(now time.Time) (recommend.Filters, string) {
	f := recommend.Filters{
		ExcludeIDs:       req.ExcludeIDs,
		RequireTimeOfDay: req.RequireTimeOfDay,
		MatchMode:        recommend.MoodMatchMode(req.MatchMode),
	}

	var notice string
	moods := mood.ParseList(req.SelectedMoods)
	if len(moods) == 2 {
		sel, dropped := mood.ResolveSelection(moods[0], &moods[1])
		if dropped {
			notice = secondaryDroppedNotice(moods[0], moods[1])
		}
		moods = sel.Moods()
	}
	f.SelectedMoods = moods

	if req.SelectedSessionLength != "" {
		s := recommend.SessionLength(req.SelectedSessionLength)
		f.SelectedSessionLength = &s
	}
	switch {
	case req.TimeOfDay != "":
		t := recommend.TimeOfDay(req.TimeOfDay)
		f.TimeOfDay = &t
	case req.UseLocalTime:
		t := recommend.TimeOfDayAt(now)
		f.TimeOfDay = &t
	}
	return f, notice
}

func recommendationOutcome(resp *recommend.Response) string {
	switch {
	case resp.Metadata.CacheHit:
		return metrics.OutcomeCacheHit
	case resp.Fallback:
		return metrics.OutcomeFallback
	case len(resp.Recommendations) == 0:
		return metrics.OutcomeEmpty
	default:
		return metrics.OutcomeServed
	}
}

func joinNotices(a, b string) string {
	if a == "" {
		return b
	}
	return a + ". " + b
}
