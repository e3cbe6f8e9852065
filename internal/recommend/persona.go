// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package recommend

import (
	"sort"

	"github.com/tomtom215/gamepilot/internal/mood"
)

// played reports whether a game counts as play history.
func played(g *Game) bool {
	return g.HoursPlayed > 0 || g.PlayStatus == StatusPlaying || g.PlayStatus == StatusCompleted
}

// BuildPersonaContext summarises the user's library. An empty library yields
// an empty persona with a medium session preference and zero completion rate.
func BuildPersonaContext(games []Game, cfg *Config) PersonaContext {
	var history []*Game
	completed := 0
	for i := range games {
		g := &games[i]
		if g.PlayStatus == StatusCompleted {
			completed++
		}
		if played(g) {
			history = append(history, g)
		}
	}

	p := PersonaContext{
		DominantMoods:          dominantMoods(history, cfg.Persona.DominantMoodCount),
		PreferredSessionLength: preferredSession(history, cfg.Session),
		PreferredTimesOfDay:    preferredTimes(history, cfg.Persona.TopPlayedCount, cfg.Persona.MaxPreferredTimes),
		GamesConsidered:        len(history),
	}
	if len(games) > 0 {
		p.CompletionRate = float64(completed) / float64(len(games))
	}
	return p
}

// dominantMoods ranks moods by frequency. Ties keep first-encounter order.
func dominantMoods(history []*Game, n int) []mood.ID {
	type entry struct {
		id    mood.ID
		count int
	}
	var entries []entry
	pos := make(map[mood.ID]int)
	for _, g := range history {
		for _, m := range g.Moods {
			if i, ok := pos[m]; ok {
				entries[i].count++
				continue
			}
			pos[m] = len(entries)
			entries = append(entries, entry{id: m, count: 1})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].count > entries[j].count })
	if len(entries) > n {
		entries = entries[:n]
	}
	out := make([]mood.ID, len(entries))
	for i, e := range entries {
		out[i] = e.id
	}
	return out
}

// preferredSession picks the bucket carrying the most hours. Ties resolve to
// the shorter bucket.
func preferredSession(history []*Game, cfg SessionConfig) SessionLength {
	var hours [3]float64
	for _, g := range history {
		hours[sessionIndex(SessionLengthFor(g.HoursPlayed, cfg))] += g.HoursPlayed
	}

	best := -1
	for i, h := range hours {
		if h > 0 && (best < 0 || h > hours[best]) {
			best = i
		}
	}
	if best < 0 {
		return SessionMedium
	}
	return sessionOrder[best]
}

// preferredTimes collects recommended times from the most-played games,
// ordered by frequency then canonical order.
func preferredTimes(history []*Game, topN, maxTimes int) []TimeOfDay {
	top := append([]*Game(nil), history...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].HoursPlayed > top[j].HoursPlayed })
	if len(top) > topN {
		top = top[:topN]
	}

	var counts [4]int
	for _, g := range top {
		for _, t := range RecommendedTimes(g.Moods) {
			counts[timeIndex(t)]++
		}
	}

	out := make([]TimeOfDay, 0, len(timeOrder))
	for i, t := range timeOrder {
		if counts[i] > 0 {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return counts[timeIndex(out[i])] > counts[timeIndex(out[j])]
	})
	if len(out) > maxTimes {
		out = out[:maxTimes]
	}
	return out
}
