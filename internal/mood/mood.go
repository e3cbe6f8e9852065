// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

// Package mood defines the closed set of play moods and the static taxonomy
// that ties each mood to genres, keywords and an energy level.
//
// The taxonomy is read-only data. Lookups return copies so callers cannot
// mutate the shared table.
package mood

import (
	"strings"

	"github.com/goccy/go-json"
)

// ID identifies a mood. Only the constants below are valid.
type ID string

// Mood identifiers in canonical order.
const (
	Chill       ID = "chill"
	Cozy        ID = "cozy"
	Casual      ID = "casual"
	Energetic   ID = "energetic"
	Competitive ID = "competitive"
	Focused     ID = "focused"
	Social      ID = "social"
	Creative    ID = "creative"
	Story       ID = "story"
	Exploratory ID = "exploratory"
)

// Energy is the intensity a mood asks of the player.
type Energy string

// Energy levels.
const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

var inputAliases = map[string]ID{
	"story-driven": Story,
	"narrative":    Story,
	"exploration":  Exploratory,
	"explore":      Exploratory,
	"relaxed":      Chill,
	"relaxing":     Chill,
	"multiplayer":  Social,
	"co-op":        Social,
	"intense":      Energetic,
}

// Parse resolves s to a mood, accepting case differences and common aliases.
func Parse(s string) (ID, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "-")
	key = strings.ReplaceAll(key, " ", "-")
	if _, ok := index[ID(key)]; ok {
		return ID(key), true
	}
	if id, ok := inputAliases[key]; ok {
		return id, true
	}
	return "", false
}

// Valid reports whether id is a known mood.
func (id ID) Valid() bool {
	_, ok := index[id]
	return ok
}

// UnmarshalJSON parses through Parse. Unknown moods decode to "" so that
// ParseList and game decoding can drop them.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, _ := Parse(s)
	*id = parsed
	return nil
}

// ParseList resolves each string, dropping unknown and duplicate moods.
func ParseList(in []string) []ID {
	out := make([]ID, 0, len(in))
	for _, s := range in {
		if id, ok := Parse(s); ok && !contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// Clean drops invalid and duplicate ids while preserving order.
func Clean(in []ID) []ID {
	out := make([]ID, 0, len(in))
	for _, id := range in {
		if id.Valid() && !contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// Contains reports whether ids includes id.
func Contains(ids []ID, id ID) bool { return contains(ids, id) }

func contains(ids []ID, id ID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// Order returns the canonical position of id, or -1.
func Order(id ID) int {
	if i, ok := index[id]; ok {
		return i
	}
	return -1
}
