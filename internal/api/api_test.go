// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/gamepilot/internal/genre"
	"github.com/tomtom215/gamepilot/internal/library"
	"github.com/tomtom215/gamepilot/internal/mood"
	"github.com/tomtom215/gamepilot/internal/moodservice"
	"github.com/tomtom215/gamepilot/internal/recommend"
)

// envelope mirrors APIResponse with raw data for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

type testAPI struct {
	handler *Handler
	store   *library.MemoryStore
	mux     http.Handler
}

func noLimits() *ChiMiddleware {
	return NewChiMiddlewareFromSecurity([]string{"*"}, 100, time.Minute, true)
}

func newTestAPI(t *testing.T, games ...recommend.Game) *testAPI {
	t.Helper()

	store := library.NewMemoryStore()
	if len(games) > 0 {
		if _, err := store.PutGames(context.Background(), games); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	engine.SetLibrary(store)

	h := NewHandler(store, engine, &fakeMoodService{})
	return &testAPI{
		handler: h,
		store:   store,
		mux:     NewRouter(h, noLimits()).SetupChi(),
	}
}

func (a *testAPI) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	return doRequest(t, a.mux, method, path, body)
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Code != http.StatusNoContent && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, env envelope, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	if env.Success || env.Error == nil || env.Error.Code != code {
		t.Fatalf("error = %+v, want code %s", env.Error, code)
	}
}

func libraryGame(id, title string, hours float64, moods ...mood.ID) recommend.Game {
	return recommend.Game{
		ID:          id,
		Title:       title,
		HoursPlayed: hours,
		Moods:       moods,
		Genres:      genre.FromNames("Indie"),
		PlayStatus:  recommend.StatusPlaying,
	}
}

// fakeMoodService answers canned payloads.
type fakeMoodService struct{}

func (*fakeMoodService) Enabled() bool { return true }
func (*fakeMoodService) State() string { return "closed" }
func (*fakeMoodService) Forecast(context.Context) moodservice.Forecast {
	return moodservice.Forecast{Summary: "calm evening ahead", Moods: []moodservice.MoodOutlook{{Mood: mood.Chill, Probability: 0.7}}}
}

func (*fakeMoodService) Resonance(_ context.Context, gameID string) moodservice.Resonance {
	return moodservice.Resonance{GameID: gameID, Score: 0.8}
}

func (*fakeMoodService) Recommendations(_ context.Context, id mood.ID) moodservice.Suggestions {
	return moodservice.Suggestions{Mood: id, Items: []moodservice.Suggestion{{GameID: "remote-1", Title: "Remote"}}}
}

// failingStore is a memory store whose reads fail.
type failingStore struct {
	*library.MemoryStore
}

var errStoreDown = errors.New("store down")

func (failingStore) ListGames(context.Context) ([]recommend.Game, error) {
	return nil, errStoreDown
}

func (failingStore) GetGame(context.Context, string) (recommend.Game, error) {
	return recommend.Game{}, errStoreDown
}
