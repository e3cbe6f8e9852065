// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package recommend

import (
	"github.com/tomtom215/gamepilot/internal/mood"
)

// Match returns the games that satisfy every active filter, in input order.
// A limit <= 0 means unbounded. Empty filters keep every game.
//
//nolint:gocritic // hugeParam: filters passed by value for immutability
func Match(games []Game, filters Filters, limit int, cfg *Config) []Game {
	mode := filters.MatchMode
	if mode == "" {
		mode = cfg.MatchMode
	}

	out := make([]Game, 0, len(games))
	for i := range games {
		if limit > 0 && len(out) >= limit {
			break
		}
		g := &games[i]
		if !matchesMoods(g.Moods, filters.SelectedMoods, mode) {
			continue
		}
		if filters.SelectedSessionLength != nil &&
			SessionLengthFor(g.HoursPlayed, cfg.Session) != *filters.SelectedSessionLength {
			continue
		}
		if filters.RequireTimeOfDay && filters.TimeOfDay != nil &&
			!containsTime(RecommendedTimes(g.Moods), *filters.TimeOfDay) {
			continue
		}
		out = append(out, *g)
	}
	return out
}

func matchesMoods(gameMoods, selected []mood.ID, mode MoodMatchMode) bool {
	if len(selected) == 0 {
		return true
	}
	if mode == MatchAll {
		for _, m := range selected {
			if !mood.Contains(gameMoods, m) {
				return false
			}
		}
		return true
	}
	for _, m := range selected {
		if mood.Contains(gameMoods, m) {
			return true
		}
	}
	return false
}
