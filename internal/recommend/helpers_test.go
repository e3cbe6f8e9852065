// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package recommend

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/tomtom215/gamepilot/internal/genre"
	"github.com/tomtom215/gamepilot/internal/mood"
)

// game builds a test game with the given moods and hours.
func game(id string, hours float64, moods ...mood.ID) Game {
	return Game{ID: id, Title: "Game " + id, HoursPlayed: hours, Moods: moods, PlayStatus: StatusBacklog}
}

func withGenres(g Game, names ...string) Game {
	g.Genres = genre.FromNames(names...)
	return g
}

func withStatus(g Game, s PlayStatus) Game {
	g.PlayStatus = s
	return g
}

func gameIDs(games []Game) []string {
	out := make([]string, len(games))
	for i := range games {
		out[i] = games[i].ID
	}
	return out
}

func recIDs(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i := range recs {
		out[i] = recs[i].Game.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func ptr[T any](v T) *T { return &v }

// mockLibrary is an in-memory LibraryProvider.
type mockLibrary struct {
	mu      sync.Mutex
	games   []Game
	err     error
	version atomic.Uint64
	calls   atomic.Int64
}

func newMockLibrary(games ...Game) *mockLibrary {
	m := &mockLibrary{games: games}
	m.version.Store(1)
	return m
}

func (m *mockLibrary) ListGames(_ context.Context) ([]Game, error) {
	m.calls.Add(1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]Game(nil), m.games...), nil
}

func (m *mockLibrary) Version() uint64 { return m.version.Load() }

func (m *mockLibrary) set(games ...Game) {
	m.mu.Lock()
	m.games = games
	m.mu.Unlock()
	m.version.Add(1)
}

var errLibraryDown = errors.New("library down")
