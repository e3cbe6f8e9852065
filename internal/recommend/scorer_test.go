// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package recommend

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/gamepilot/internal/mood"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func chillPersona() PersonaContext {
	return PersonaContext{
		DominantMoods:          []mood.ID{mood.Chill},
		PreferredSessionLength: SessionMedium,
		PreferredTimesOfDay:    []TimeOfDay{LateNight},
	}
}

func TestRecommendBlend(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	games := []Game{game("a", 3, mood.Chill)}
	filters := Filters{SelectedMoods: []mood.ID{mood.Chill}}

	got := Recommend(games, chillPersona(), filters, Options{PersonaWeight: 0.5}, cfg)
	if len(got) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(got))
	}
	// base 60 (tag), persona 60 + 25 + 15 = 100, blended at 0.5.
	if !approx(got[0].Score, 80) {
		t.Errorf("score = %v, want 80", got[0].Score)
	}
	want := []string{
		"Great for a chill mood",
		"Matches your favourite chill moods",
		"Matches your usual medium sessions",
	}
	if !reflect.DeepEqual(got[0].Reasons, want) {
		t.Errorf("reasons = %q, want %q", got[0].Reasons, want)
	}

	filters.TimeOfDay = ptr(LateNight)
	got = Recommend(games, chillPersona(), filters, Options{PersonaWeight: 0.5}, cfg)
	if !approx(got[0].Score, 85) {
		t.Errorf("score with time fit = %v, want 85", got[0].Score)
	}
	if len(got[0].Reasons) != 4 || got[0].Reasons[3] != "Good for the late night" {
		t.Errorf("reasons with time fit = %q", got[0].Reasons)
	}
}

func TestRecommendClampsWeightAndScore(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	games := []Game{game("a", 3, mood.Chill)}
	filters := Filters{SelectedMoods: []mood.ID{mood.Chill}, TimeOfDay: ptr(LateNight)}

	got := Recommend(games, chillPersona(), filters, Options{PersonaWeight: 7}, cfg)
	if got[0].Score != 100 {
		t.Errorf("score = %v, want clamp to 100", got[0].Score)
	}

	got = Recommend(games, chillPersona(), Filters{SelectedMoods: []mood.ID{mood.Chill}}, Options{PersonaWeight: -3}, cfg)
	if !approx(got[0].Score, 60) {
		t.Errorf("negative weight should clamp to 0, got %v", got[0].Score)
	}
}

func TestRecommendGenericReason(t *testing.T) {
	t.Parallel()

	got := Recommend([]Game{game("a", 20)}, PersonaContext{}, Filters{}, Options{}, DefaultConfig())
	if len(got) != 1 {
		t.Fatalf("got %d recommendations", len(got))
	}
	if !reflect.DeepEqual(got[0].Reasons, []string{ReasonSimilarToLibrary}) {
		t.Errorf("reasons = %q, want the generic reason", got[0].Reasons)
	}
	if !approx(got[0].Score, 50) {
		t.Errorf("score = %v, want neutral 50", got[0].Score)
	}
}

func TestRecommendDropsInvalidAndExcluded(t *testing.T) {
	t.Parallel()

	games := []Game{game("a", 1), game("", 1), game("b", 1), game("c", 1)}
	got := Recommend(games, PersonaContext{}, Filters{ExcludeIDs: []string{"b"}}, Options{}, DefaultConfig())
	if ids := recIDs(got); !equalStrings(ids, []string{"a", "c"}) {
		t.Errorf("Recommend() = %v, want [a c]", ids)
	}
}

func TestRecommendEmpty(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	got := Recommend([]Game{game("a", 1, mood.Cozy)}, PersonaContext{}, Filters{SelectedMoods: []mood.ID{mood.Competitive}}, Options{}, cfg)
	if got == nil || len(got) != 0 {
		t.Errorf("Recommend() = %#v, want empty non-nil", got)
	}
	if got := Recommend(nil, PersonaContext{}, Filters{}, Options{}, cfg); got == nil || len(got) != 0 {
		t.Errorf("Recommend(nil) = %#v, want empty non-nil", got)
	}
}

func TestRecommendEmptyFiltersIsStableTopN(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	moods := mood.IDs()
	var games []Game
	for i := 0; i < 25; i++ {
		g := game(fmt.Sprintf("g%02d", i), float64(i%7), moods[i%len(moods)])
		if i%3 == 0 {
			g = withGenres(g, "Puzzle")
		}
		games = append(games, g)
	}
	persona := BuildPersonaContext(games, cfg)
	filters := Filters{TimeOfDay: ptr(Evening)}

	top := Recommend(games, persona, filters, Options{PersonaWeight: 0.4, Limit: 10}, cfg)
	all := Recommend(games, persona, filters, Options{PersonaWeight: 0.4, Limit: 100}, cfg)

	if len(top) != 10 || len(all) != len(games) {
		t.Fatalf("len(top) = %d, len(all) = %d", len(top), len(all))
	}
	if !equalStrings(recIDs(top), recIDs(all[:10])) {
		t.Errorf("top-10 %v is not the prefix of the full ranking %v", recIDs(top), recIDs(all[:10]))
	}

	index := make(map[string]int, len(games))
	for i, g := range games {
		index[g.ID] = i
	}
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if cur.Score > prev.Score {
			t.Fatalf("ranking not descending at %d", i)
		}
		if cur.Score == prev.Score && index[cur.Game.ID] < index[prev.Game.ID] {
			t.Fatalf("tie at %d not broken by input order", i)
		}
	}
}

func TestRecommendDefaultLimit(t *testing.T) {
	t.Parallel()

	var games []Game
	for i := 0; i < 15; i++ {
		games = append(games, game(fmt.Sprintf("g%d", i), 1))
	}
	if got := Recommend(games, PersonaContext{}, Filters{}, Options{}, DefaultConfig()); len(got) != 10 {
		t.Errorf("default limit returned %d, want 10", len(got))
	}
}

func TestRecommendSecondaryAndFallbackMood(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	g := withGenres(game("a", 1, mood.Social), "Shooter")

	// Primary competitive: genre only (15). Secondary social: tagged (60), bonus 9.
	got := Recommend([]Game{g}, PersonaContext{}, Filters{SelectedMoods: []mood.ID{mood.Competitive, mood.Social}}, Options{}, cfg)
	if len(got) != 1 || !approx(got[0].Score, 24) {
		t.Fatalf("got %+v, want a single game scored 24", got)
	}

	// Primary story has no signal, so the best selected mood carries the score.
	got = Recommend([]Game{g}, PersonaContext{}, Filters{SelectedMoods: []mood.ID{mood.Story, mood.Social}}, Options{}, cfg)
	if len(got) != 1 || !approx(got[0].Score, 60) {
		t.Fatalf("got %+v, want a single game scored 60", got)
	}
	if got[0].Reasons[0] != "Great for a social mood" {
		t.Errorf("reason = %q", got[0].Reasons[0])
	}
}

func TestRecommendRecency(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	recent := game("recent", 1)
	recent.LastPlayed = ptr(now.Add(-7 * 24 * time.Hour))
	stale := game("stale", 1)
	stale.LastPlayed = ptr(now.Add(-30 * 24 * time.Hour))

	got := Recommend([]Game{stale, recent}, PersonaContext{}, Filters{}, Options{Now: now}, DefaultConfig())
	if recIDs(got)[0] != "recent" {
		t.Fatalf("recently played game should rank first, got %v", recIDs(got))
	}
	if !approx(got[0].Score, 55) || !approx(got[1].Score, 50) {
		t.Errorf("scores = %v, %v; want 55, 50", got[0].Score, got[1].Score)
	}

	noClock := Recommend([]Game{stale, recent}, PersonaContext{}, Filters{}, Options{}, DefaultConfig())
	if recIDs(noClock)[0] != "stale" {
		t.Errorf("without Now the input order should hold, got %v", recIDs(noClock))
	}
}

func TestRecommendMaxReasons(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Limits.MaxReasons = 2
	filters := Filters{SelectedMoods: []mood.ID{mood.Chill}, TimeOfDay: ptr(LateNight)}

	got := Recommend([]Game{game("a", 3, mood.Chill)}, chillPersona(), filters, Options{}, cfg)
	if len(got[0].Reasons) != 2 {
		t.Errorf("reasons = %q, want 2", got[0].Reasons)
	}
}

func TestRecommendDeterministic(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 20, 23, 0, 0, 0, time.UTC)
	recent := withGenres(game("recent", 3, mood.Chill), "Puzzle")
	recent.LastPlayed = ptr(now.Add(-24 * time.Hour))
	games := []Game{
		withGenres(game("a", 3, mood.Chill, mood.Focused), "Puzzle"),
		recent,
		withStatus(game("b", 0.5, mood.Chill), StatusCompleted),
		withGenres(game("c", 9, mood.Story), "RPG"),
		game("d", 3, mood.Chill),
		game("e", 3, mood.Chill),
	}
	filters := Filters{
		SelectedMoods:         []mood.ID{mood.Chill, mood.Focused},
		SelectedSessionLength: ptr(SessionMedium),
		TimeOfDay:             ptr(LateNight),
	}
	opts := Options{PersonaWeight: 0.3, Now: now}
	cfg := DefaultConfig()

	first := Recommend(games, chillPersona(), filters, opts, cfg)
	if len(first) == 0 {
		t.Fatal("no recommendations")
	}
	for i := 0; i < 10; i++ {
		if got := Recommend(games, chillPersona(), filters, opts, cfg); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d = %v, want %v", i, recIDs(got), recIDs(first))
		}
	}
}

func TestRecommendDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	games := []Game{game("a", 1, mood.Chill)}
	got := Recommend(games, PersonaContext{}, Filters{}, Options{}, DefaultConfig())
	got[0].Game.Moods[0] = mood.Social
	if games[0].Moods[0] != mood.Chill {
		t.Error("recommendation shares the caller's mood slice")
	}
}

func TestFallback(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	games := []Game{game("a", 1), game("", 1), game("b", 1), game("c", 1), game("d", 1)}

	got := Fallback(games, []string{"b"}, 2, cfg)
	if !equalStrings(recIDs(got), []string{"a", "c"}) {
		t.Fatalf("Fallback() = %v, want [a c]", recIDs(got))
	}
	for _, r := range got {
		if r.Score != cfg.Fallback.Score || len(r.Reasons) != 1 || r.Reasons[0] != cfg.Fallback.Reason {
			t.Errorf("fallback item %+v", r)
		}
	}
	if got := Fallback(nil, nil, 3, cfg); len(got) != 0 {
		t.Errorf("Fallback(nil) = %v", got)
	}
}
