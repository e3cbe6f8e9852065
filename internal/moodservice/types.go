// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package moodservice

import "github.com/tomtom215/gamepilot/internal/mood"

// MoodOutlook is one mood with its predicted likelihood.
type MoodOutlook struct {
	Mood        mood.ID `json:"mood"`
	Probability float64 `json:"probability"`
}

// Forecast predicts which moods the player is likely to be in.
type Forecast struct {
	Moods    []MoodOutlook `json:"moods"`
	Summary  string        `json:"summary"`
	Fallback bool          `json:"fallback"`
}

// Resonance describes how well a game fits the player's recent moods.
type Resonance struct {
	GameID   string    `json:"gameId"`
	Score    float64   `json:"score"`
	TopMoods []mood.ID `json:"topMoods"`
	Message  string    `json:"message"`
	Fallback bool      `json:"fallback"`
}

// Suggestion is a game the mood service proposes for a mood.
type Suggestion struct {
	GameID string  `json:"gameId"`
	Title  string  `json:"title"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Suggestions is the mood service recommendation payload.
type Suggestions struct {
	Mood     mood.ID      `json:"mood"`
	Items    []Suggestion `json:"items"`
	Message  string       `json:"message,omitempty"`
	Fallback bool         `json:"fallback"`
}

// Hard-coded payloads served when the mood service cannot be reached.

func fallbackForecast() Forecast {
	return Forecast{
		Moods: []MoodOutlook{
			{Mood: mood.Chill, Probability: 0.4},
			{Mood: mood.Story, Probability: 0.35},
			{Mood: mood.Energetic, Probability: 0.25},
		},
		Summary:  "Mood forecast unavailable, showing a typical evening mix",
		Fallback: true,
	}
}

func fallbackResonance(gameID string) Resonance {
	return Resonance{
		GameID:   gameID,
		Score:    50,
		TopMoods: []mood.ID{},
		Message:  "Mood resonance unavailable",
		Fallback: true,
	}
}

func fallbackSuggestions(id mood.ID) Suggestions {
	return Suggestions{
		Mood:     id,
		Items:    []Suggestion{},
		Message:  "Mood service unavailable, use library recommendations instead",
		Fallback: true,
	}
}
