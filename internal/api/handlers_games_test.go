// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/gamepilot/internal/launch"
	"github.com/tomtom215/gamepilot/internal/library"
	"github.com/tomtom215/gamepilot/internal/metrics"
	"github.com/tomtom215/gamepilot/internal/mood"
	"github.com/tomtom215/gamepilot/internal/recommend"
)

func TestGamesCRUD(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)

	rec, env := a.do(t, http.MethodPost, "/api/v1/games",
		`{"id":"hades","title":"Hades","genres":["Roguelike","Action"],"moods":["energetic","Relaxed"],"hoursPlayed":12}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var created recommend.Game
	decodeData(t, env, &created)
	if created.ID != "hades" || created.AddedAt.IsZero() {
		t.Errorf("created = %+v", created)
	}
	if len(created.Moods) != 2 || created.Moods[1] != mood.Chill {
		t.Errorf("mood aliases should normalize, got %v", created.Moods)
	}
	if len(created.Genres) != 2 || created.Genres[0].ID != "roguelike" {
		t.Errorf("genres = %+v", created.Genres)
	}

	rec, env = a.do(t, http.MethodGet, "/api/v1/games", "")
	if rec.Code != http.StatusOK || env.Meta == nil || env.Meta.Count == nil || *env.Meta.Count != 1 {
		t.Fatalf("list = %d %+v", rec.Code, env.Meta)
	}

	rec, env = a.do(t, http.MethodPut, "/api/v1/games/hades", `{"title":"Hades II","hoursPlayed":1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d: %s", rec.Code, rec.Body.String())
	}
	var updated recommend.Game
	decodeData(t, env, &updated)
	if updated.Title != "Hades II" || !updated.AddedAt.Equal(created.AddedAt) {
		t.Errorf("updated = %+v, AddedAt should be kept", updated)
	}

	rec, _ = a.do(t, http.MethodDelete, "/api/v1/games/hades", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec, env = a.do(t, http.MethodGet, "/api/v1/games/hades", "")
	expectError(t, rec, env, http.StatusNotFound, ErrCodeNotFound)

	rec, env = a.do(t, http.MethodDelete, "/api/v1/games/hades", "")
	expectError(t, rec, env, http.StatusNotFound, ErrCodeNotFound)
}

func TestCreateGameGeneratesID(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)

	rec, env := a.do(t, http.MethodPost, "/api/v1/games", `{"title":"Stardew Valley"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var g recommend.Game
	decodeData(t, env, &g)
	if _, err := uuid.Parse(g.ID); err != nil {
		t.Errorf("generated id %q is not a uuid", g.ID)
	}
	if g.PlayStatus != recommend.StatusBacklog {
		t.Errorf("PlayStatus = %q, want backlog", g.PlayStatus)
	}
}

func TestCreateGameAcceptsEveryPlayStatus(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)

	for _, s := range recommend.AllStatuses() {
		rec, env := a.do(t, http.MethodPost, "/api/v1/games", `{"title":"X","playStatus":"`+string(s)+`"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status %s: code = %d: %s", s, rec.Code, rec.Body.String())
		}
		var g recommend.Game
		decodeData(t, env, &g)
		if g.PlayStatus != s {
			t.Errorf("PlayStatus = %q, want %q", g.PlayStatus, s)
		}
	}
}

func TestCreateGameRejectsBadInput(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"missing title", `{"id":"x"}`, ErrCodeValidationFailed},
		{"unknown mood", `{"title":"X","moods":["sleepy"]}`, ErrCodeValidationFailed},
		{"negative hours", `{"title":"X","hoursPlayed":-1}`, ErrCodeValidationFailed},
		{"bad status", `{"title":"X","playStatus":"wishlist"}`, ErrCodeValidationFailed},
		{"bad cover url", `{"title":"X","coverImage":"not a url"}`, ErrCodeValidationFailed},
		{"malformed json", `{"title":`, ErrCodeBadRequest},
		{"empty body", ``, ErrCodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := a.do(t, http.MethodPost, "/api/v1/games", tt.body)
			expectError(t, rec, env, http.StatusBadRequest, tt.code)
		})
	}
}

func TestListGamesFilters(t *testing.T) {
	t.Parallel()

	done := libraryGame("a", "Alpha", 10, mood.Chill)
	done.PlayStatus = recommend.StatusCompleted
	a := newTestAPI(t, done, libraryGame("b", "Beta", 1, mood.Competitive), libraryGame("c", "Gamma", 2, mood.Chill))

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"a", "b", "c"}},
		{"?status=completed", []string{"a"}},
		{"?mood=chill", []string{"a", "c"}},
		{"?mood=relaxed&status=playing", []string{"c"}},
	}
	for _, tt := range tests {
		rec, env := a.do(t, http.MethodGet, "/api/v1/games"+tt.query, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%q: status %d", tt.query, rec.Code)
		}
		var games []recommend.Game
		decodeData(t, env, &games)
		got := make(map[string]bool, len(games))
		for _, g := range games {
			got[g.ID] = true
		}
		if len(games) != len(tt.want) {
			t.Errorf("%q: got %d games, want %v", tt.query, len(games), tt.want)
		}
		for _, id := range tt.want {
			if !got[id] {
				t.Errorf("%q: missing %s", tt.query, id)
			}
		}
	}

	rec, env := a.do(t, http.MethodGet, "/api/v1/games?status=abandoned", "")
	expectError(t, rec, env, http.StatusBadRequest, ErrCodeValidationFailed)
}

func TestGameTags(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t, libraryGame("a", "Alpha", 3, mood.Chill), libraryGame("b", "Beta", 0.2))

	rec, env := a.do(t, http.MethodGet, "/api/v1/games/a/tags", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var tags recommend.Tags
	decodeData(t, env, &tags)
	if tags.SessionLength != recommend.SessionMedium || len(tags.RecommendedTimes) == 0 {
		t.Errorf("tags = %+v", tags)
	}

	_, env = a.do(t, http.MethodGet, "/api/v1/games/b/tags", "")
	decodeData(t, env, &tags)
	if tags.SessionLength != recommend.SessionShort {
		t.Errorf("SessionLength = %s, want short", tags.SessionLength)
	}
}

func TestLaunchGame(t *testing.T) {
	t.Parallel()

	steam := libraryGame("steam-1145360", "Hades", 12)
	steam.Platform, steam.AppID = "steam", "1145360"
	gog := libraryGame("gog", "Witcher", 30)
	gog.Platform, gog.AppID = "GOG", "1207664663"
	noApp := libraryGame("noapp", "Loose", 1)
	epic := libraryGame("epic", "Fortnite", 1)
	epic.Platform, epic.AppID = "epic", "123"
	a := newTestAPI(t, steam, gog, noApp, epic)

	tests := []struct {
		id      string
		status  int
		wantURL string
	}{
		{"steam-1145360", http.StatusOK, "steam://rungameid/1145360"},
		{"gog", http.StatusOK, "goggalaxy://openGameView/1207664663"},
		{"noapp", http.StatusUnprocessableEntity, ""},
		{"epic", http.StatusUnprocessableEntity, ""},
		{"missing", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		rec, env := a.do(t, http.MethodGet, "/api/v1/games/"+tt.id+"/launch", "")
		if rec.Code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.id, rec.Code, tt.status)
			continue
		}
		switch tt.status {
		case http.StatusOK:
			var target launch.Target
			decodeData(t, env, &target)
			if target.URL != tt.wantURL {
				t.Errorf("%s: url = %q, want %q", tt.id, target.URL, tt.wantURL)
			}
		case http.StatusUnprocessableEntity:
			if env.Error == nil || env.Error.Code != ErrCodeLaunchUnavailable {
				t.Errorf("%s: error = %+v", tt.id, env.Error)
			}
		}
	}
}

func TestImportSteam(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)
	a.handler.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	added := metrics.LibraryImports.WithLabelValues("steam", "added")
	updated := metrics.LibraryImports.WithLabelValues("steam", "updated")
	addedBefore, updatedBefore := testutil.ToFloat64(added), testutil.ToFloat64(updated)

	payload := `{"response":{"game_count":2,"games":[
		{"appid":1145360,"name":"Hades","playtime_forever":720},
		{"appid":413150,"name":"Stardew Valley","playtime_forever":0}]}}`

	rec, env := a.do(t, http.MethodPost, "/api/v1/games/import/steam", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res library.ImportResult
	decodeData(t, env, &res)
	if res.Added != 2 || res.Updated != 0 {
		t.Errorf("first import = %+v", res)
	}

	// A user-assigned mood must survive a re-import.
	rec, _ = a.do(t, http.MethodPut, "/api/v1/games/steam-413150",
		`{"title":"Stardew Valley","moods":["cozy"],"platform":"steam","appId":"413150"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d", rec.Code)
	}

	rec, env = a.do(t, http.MethodPost, "/api/v1/games/import/steam", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	decodeData(t, env, &res)
	if res.Added != 0 || res.Updated != 2 {
		t.Errorf("second import = %+v", res)
	}

	_, env = a.do(t, http.MethodGet, "/api/v1/games/steam-413150", "")
	var g recommend.Game
	decodeData(t, env, &g)
	if len(g.Moods) != 1 || g.Moods[0] != mood.Cozy {
		t.Errorf("moods after re-import = %v", g.Moods)
	}

	if d := testutil.ToFloat64(added) - addedBefore; d != 2 {
		t.Errorf("added counter delta = %v, want 2", d)
	}
	if d := testutil.ToFloat64(updated) - updatedBefore; d != 2 {
		t.Errorf("updated counter delta = %v, want 2", d)
	}

	rec, env = a.do(t, http.MethodPost, "/api/v1/games/import/steam", `not json`)
	expectError(t, rec, env, http.StatusBadRequest, ErrCodeBadRequest)
}

func TestGamesStoreFailure(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)
	a.handler.store = failingStore{library.NewMemoryStore()}

	rec, env := a.do(t, http.MethodGet, "/api/v1/games", "")
	expectError(t, rec, env, http.StatusInternalServerError, ErrCodeStorageError)

	rec, env = a.do(t, http.MethodGet, "/api/v1/games/x", "")
	expectError(t, rec, env, http.StatusInternalServerError, ErrCodeStorageError)
}
