// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package recommend

import (
	"testing"

	"github.com/tomtom215/gamepilot/internal/mood"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	games := []Game{
		game("a", 3, mood.Chill),
		game("b", 0.2, mood.Competitive),
		game("c", 12, mood.Chill, mood.Cozy),
		game("d", 0.5),
	}

	tests := []struct {
		name    string
		filters Filters
		limit   int
		want    []string
	}{
		{"no filters is identity", Filters{}, 0, []string{"a", "b", "c", "d"}},
		{"single mood", Filters{SelectedMoods: []mood.ID{mood.Chill}}, 0, []string{"a", "c"}},
		{"short session only", Filters{SelectedSessionLength: ptr(SessionShort)}, 0, []string{"b", "d"}},
		{"mood and session", Filters{SelectedMoods: []mood.ID{mood.Chill}, SelectedSessionLength: ptr(SessionLong)}, 0, []string{"c"}},
		{"any mode", Filters{SelectedMoods: []mood.ID{mood.Cozy, mood.Competitive}}, 0, []string{"b", "c"}},
		{"all mode", Filters{SelectedMoods: []mood.ID{mood.Chill, mood.Cozy}, MatchMode: MatchAll}, 0, []string{"c"}},
		{"all mode with three moods", Filters{SelectedMoods: []mood.ID{mood.Chill, mood.Cozy, mood.Story}, MatchMode: MatchAll}, 0, []string{}},
		{"time is a signal unless required", Filters{TimeOfDay: ptr(Morning)}, 0, []string{"a", "b", "c", "d"}},
		{"required time filters", Filters{TimeOfDay: ptr(Morning), RequireTimeOfDay: true}, 0, []string{"b"}},
		{"required evening keeps mood-less games", Filters{TimeOfDay: ptr(Evening), RequireTimeOfDay: true}, 0, []string{"d"}},
		{"limit truncates in order", Filters{}, 2, []string{"a", "b"}},
		{"no game matches", Filters{SelectedMoods: []mood.ID{mood.Story}}, 0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := gameIDs(Match(games, tt.filters, tt.limit, cfg))
			if !equalStrings(got, tt.want) {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchEmptyInput(t *testing.T) {
	t.Parallel()

	got := Match(nil, Filters{SelectedMoods: []mood.ID{mood.Chill}}, 5, DefaultConfig())
	if got == nil || len(got) != 0 {
		t.Errorf("Match(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestMatchUsesConfiguredMode(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.MatchMode = MatchAll
	games := []Game{game("a", 1, mood.Chill), game("c", 1, mood.Chill, mood.Cozy)}

	got := gameIDs(Match(games, Filters{SelectedMoods: []mood.ID{mood.Chill, mood.Cozy}}, 0, cfg))
	if !equalStrings(got, []string{"c"}) {
		t.Errorf("Match() with configured all mode = %v, want [c]", got)
	}
}

func TestMatchDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	games := []Game{game("a", 1, mood.Chill), game("b", 1, mood.Cozy)}
	_ = Match(games, Filters{SelectedMoods: []mood.ID{mood.Cozy}}, 0, DefaultConfig())
	if games[0].ID != "a" || games[1].ID != "b" || len(games[0].Moods) != 1 {
		t.Errorf("input mutated: %+v", games)
	}
}
