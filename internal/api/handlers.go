// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package api

import (
	"context"
	"time"

	"github.com/tomtom215/gamepilot/internal/library"
	"github.com/tomtom215/gamepilot/internal/mood"
	"github.com/tomtom215/gamepilot/internal/moodservice"
	"github.com/tomtom215/gamepilot/internal/recommend"
)

// MoodService is the subset of the mood service client used by handlers.
// Implementations answer with fallback payloads instead of errors.
type MoodService interface {
	Enabled() bool
	State() string
	Forecast(ctx context.Context) moodservice.Forecast
	Resonance(ctx context.Context, gameID string) moodservice.Resonance
	Recommendations(ctx context.Context, id mood.ID) moodservice.Suggestions
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and readiness probes
//   - handlers_games.go: library CRUD, Steam import, tags and launch
//   - handlers_moods.go: taxonomy, mood games and selection
//   - handlers_recommend.go: recommendations and persona
//   - handlers_moodservice.go: mood service proxy
type Handler struct {
	store     library.Store
	engine    *recommend.Engine
	moods     MoodService
	startTime time.Time
	now       func() time.Time
}

// NewHandler creates a handler. moods may be nil, in which case the mood
// service routes answer 503.
func NewHandler(store library.Store, engine *recommend.Engine, moods MoodService) *Handler {
	return &Handler{
		store:     store,
		engine:    engine,
		moods:     moods,
		startTime: time.Now(),
		now:       time.Now,
	}
}
