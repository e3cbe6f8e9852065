// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package recommend

import (
	"github.com/tomtom215/gamepilot/internal/mood"
)

// moodTimes maps moods onto the times of day they suit.
// Moods missing from the table contribute nothing.
var moodTimes = map[mood.ID][]TimeOfDay{
	mood.Chill:       {LateNight},
	mood.Cozy:        {LateNight},
	mood.Casual:      {LateNight},
	mood.Energetic:   {Morning},
	mood.Competitive: {Morning},
	mood.Focused:     {Morning},
	mood.Creative:    {Afternoon, Evening},
	mood.Story:       {Afternoon, Evening},
	mood.Exploratory: {Afternoon, Evening},
}

// DefaultTimes is used for games whose moods suggest no time of day.
var DefaultTimes = []TimeOfDay{Evening}

// SessionLengthFor buckets hours played.
func SessionLengthFor(hours float64, cfg SessionConfig) SessionLength {
	switch {
	case hours < cfg.ShortBelowHours:
		return SessionShort
	case hours <= cfg.MediumUpToHours:
		return SessionMedium
	default:
		return SessionLong
	}
}

// RecommendedTimes returns the union of times for the given moods in
// canonical order, or DefaultTimes when none apply.
func RecommendedTimes(moods []mood.ID) []TimeOfDay {
	var seen [4]bool
	for _, m := range moods {
		for _, t := range moodTimes[m] {
			seen[timeIndex(t)] = true
		}
	}

	out := make([]TimeOfDay, 0, len(timeOrder))
	for i, t := range timeOrder {
		if seen[i] {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return append(out, DefaultTimes...)
	}
	return out
}

// Tag derives contextual tags for a game. It never fails.
func Tag(g *Game, cfg *Config) Tags {
	return Tags{
		SessionLength:    SessionLengthFor(g.HoursPlayed, cfg.Session),
		RecommendedTimes: RecommendedTimes(g.Moods),
	}
}

func timeIndex(t TimeOfDay) int {
	for i, x := range timeOrder {
		if x == t {
			return i
		}
	}
	return -1
}

func sessionIndex(s SessionLength) int {
	for i, x := range sessionOrder {
		if x == s {
			return i
		}
	}
	return -1
}

func containsTime(ts []TimeOfDay, t TimeOfDay) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}
