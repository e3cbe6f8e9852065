// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/gamepilot/internal/genre"
	"github.com/tomtom215/gamepilot/internal/mood"
)

// PlayStatus tracks where a game sits in the user's backlog.
type PlayStatus string

// Play statuses.
const (
	StatusBacklog   PlayStatus = "backlog"
	StatusPlaying   PlayStatus = "playing"
	StatusPaused    PlayStatus = "paused"
	StatusCompleted PlayStatus = "completed"
	StatusAbandoned PlayStatus = "abandoned"
)

// Valid reports whether s is a known status.
func (s PlayStatus) Valid() bool {
	switch s {
	case StatusBacklog, StatusPlaying, StatusPaused, StatusCompleted, StatusAbandoned:
		return true
	}
	return false
}

// AllStatuses lists every play status.
func AllStatuses() []PlayStatus {
	return []PlayStatus{StatusBacklog, StatusPlaying, StatusPaused, StatusCompleted, StatusAbandoned}
}

// SessionLength buckets how long a game tends to be played per session.
type SessionLength string

// Session lengths in canonical order.
const (
	SessionShort  SessionLength = "short"
	SessionMedium SessionLength = "medium"
	SessionLong   SessionLength = "long"
)

// Valid reports whether s is a known session length.
func (s SessionLength) Valid() bool {
	return s == SessionShort || s == SessionMedium || s == SessionLong
}

var sessionOrder = []SessionLength{SessionShort, SessionMedium, SessionLong}

// TimeOfDay is a coarse part of the day.
type TimeOfDay string

// Times of day in canonical order.
const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	LateNight TimeOfDay = "late-night"
)

var timeOrder = []TimeOfDay{Morning, Afternoon, Evening, LateNight}

// Valid reports whether t is a known time of day.
func (t TimeOfDay) Valid() bool {
	for _, x := range timeOrder {
		if x == t {
			return true
		}
	}
	return false
}

// TimeOfDayAt buckets a wall-clock time.
func TimeOfDayAt(t time.Time) TimeOfDay {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return Morning
	case h >= 12 && h < 17:
		return Afternoon
	case h >= 17 && h < 22:
		return Evening
	default:
		return LateNight
	}
}

// Game is a library entry as seen by the scorer.
type Game struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Genres      []genre.Genre `json:"genres"`
	Moods       []mood.ID     `json:"moods"`
	Tags        []string      `json:"tags,omitempty"`
	HoursPlayed float64       `json:"hoursPlayed"`
	LastPlayed  *time.Time    `json:"lastPlayed,omitempty"`
	AddedAt     time.Time     `json:"addedAt"`
	CoverImage  string        `json:"coverImage,omitempty"`
	PlayStatus  PlayStatus    `json:"playStatus"`
	Platform    string        `json:"platform,omitempty"`
	AppID       string        `json:"appId,omitempty"`
}

// Normalize cleans decoded fields in place: genres are deduplicated, unknown
// moods dropped, an empty status becomes backlog and negative hours become 0.
func (g *Game) Normalize() {
	g.Genres = genre.Normalize(g.Genres)
	g.Moods = mood.Clean(g.Moods)
	if !g.PlayStatus.Valid() {
		g.PlayStatus = StatusBacklog
	}
	if g.HoursPlayed < 0 {
		g.HoursPlayed = 0
	}
}

// Clone returns a deep copy of g.
func (g *Game) Clone() Game {
	c := *g
	c.Genres = append([]genre.Genre(nil), g.Genres...)
	c.Moods = append([]mood.ID(nil), g.Moods...)
	c.Tags = append([]string(nil), g.Tags...)
	if g.LastPlayed != nil {
		lp := *g.LastPlayed
		c.LastPlayed = &lp
	}
	return c
}

// Tags are the contextual attributes derived from a game.
type Tags struct {
	SessionLength    SessionLength `json:"sessionLength"`
	RecommendedTimes []TimeOfDay   `json:"recommendedTimes"`
}

// PersonaContext summarises the user's play history.
type PersonaContext struct {
	DominantMoods          []mood.ID     `json:"dominantMoods"`
	PreferredSessionLength SessionLength `json:"preferredSessionLength"`
	PreferredTimesOfDay    []TimeOfDay   `json:"preferredTimesOfDay"`
	CompletionRate         float64       `json:"completionRate"`
	GamesConsidered        int           `json:"gamesConsidered"`
}

// MoodMatchMode selects how a game's moods are compared to a selection.
type MoodMatchMode string

// Mood match modes.
const (
	// MatchAny keeps games sharing at least one selected mood.
	MatchAny MoodMatchMode = "any"
	// MatchAll keeps games carrying every selected mood.
	MatchAll MoodMatchMode = "all"
)

// Filters narrows the candidate set.
type Filters struct {
	SelectedMoods         []mood.ID      `json:"selectedMoods"`
	SelectedSessionLength *SessionLength `json:"selectedSessionLength"`
	TimeOfDay             *TimeOfDay     `json:"timeOfDay"`
	ExcludeIDs            []string       `json:"excludeIds,omitempty"`

	// RequireTimeOfDay turns TimeOfDay from a scoring signal into a hard filter.
	RequireTimeOfDay bool `json:"requireTimeOfDay,omitempty"`

	// MatchMode defaults to the configured mode when empty.
	MatchMode MoodMatchMode `json:"matchMode,omitempty"`
}

// Options tunes a scoring pass.
type Options struct {
	// PersonaWeight is the share of the final score taken from persona affinity.
	// Clamped to [0, 1].
	PersonaWeight float64

	// Limit caps the result size. Zero means the configured default.
	Limit int

	// Now enables the recency bonus. The zero time disables it.
	Now time.Time
}

// Recommendation is a scored game.
type Recommendation struct {
	Game    Game     `json:"game"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// MoodMatch is the outcome of scoring one game against one mood.
type MoodMatch struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// ScoredGame pairs a game with its mood score.
type ScoredGame struct {
	Game      Game      `json:"game"`
	MoodMatch MoodMatch `json:"moodMatch"`
}

// Reranker reorders an already ranked list.
type Reranker interface {
	Name() string
	Rerank(ctx context.Context, recs []Recommendation, k int) []Recommendation
}
