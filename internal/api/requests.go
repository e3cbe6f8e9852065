// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package api

import (
	"strings"
	"time"

	"github.com/tomtom215/gamepilot/internal/genre"
	"github.com/tomtom215/gamepilot/internal/mood"
	"github.com/tomtom215/gamepilot/internal/recommend"
)

// GameRequest is the body for creating or replacing a library game.
// Genres are display names; they are slugged and deduplicated on the way in.
type GameRequest struct {
	ID          string     `json:"id" validate:"omitempty,max=128"`
	Title       string     `json:"title" validate:"required,max=256"`
	Genres      []string   `json:"genres" validate:"max=20,dive,required,max=64"`
	Moods       []string   `json:"moods" validate:"max=12,dive,mood"`
	Tags        []string   `json:"tags" validate:"max=50,dive,max=64"`
	HoursPlayed float64    `json:"hoursPlayed" validate:"min=0"`
	LastPlayed  *time.Time `json:"lastPlayed"`
	CoverImage  string     `json:"coverImage" validate:"omitempty,url"`
	PlayStatus  string     `json:"playStatus" validate:"omitempty,play_status"`
	Platform    string     `json:"platform" validate:"omitempty,max=32"`
	AppID       string     `json:"appId" validate:"omitempty,max=32"`
}

// toGame converts the request into a library game with id.
func (req *GameRequest) toGame(id string) recommend.Game {
	return recommend.Game{
		ID:          id,
		Title:       strings.TrimSpace(req.Title),
		Genres:      genre.FromNames(req.Genres...),
		Moods:       mood.ParseList(req.Moods),
		Tags:        req.Tags,
		HoursPlayed: req.HoursPlayed,
		LastPlayed:  req.LastPlayed,
		CoverImage:  req.CoverImage,
		PlayStatus:  recommend.PlayStatus(req.PlayStatus),
		Platform:    strings.ToLower(req.Platform),
		AppID:       req.AppID,
	}
}

// RecommendationRequest is the body of POST /recommendations.
//
// SelectedMoods holds a primary mood and an optional secondary. An
// incompatible secondary is dropped and reported in the response notice.
type RecommendationRequest struct {
	SelectedMoods         []string `json:"selectedMoods" validate:"max=2,dive,mood"`
	SelectedSessionLength string   `json:"selectedSessionLength" validate:"omitempty,session_length"`
	TimeOfDay             string   `json:"timeOfDay" validate:"omitempty,time_of_day"`
	ExcludeIDs            []string `json:"excludeIds" validate:"max=500,dive,required"`
	RequireTimeOfDay      bool     `json:"requireTimeOfDay"`
	MatchMode             string   `json:"matchMode" validate:"omitempty,match_mode"`
	PersonaWeight         *float64 `json:"personaWeight" validate:"omitempty,min=0,max=1"`
	Limit                 int      `json:"limit" validate:"omitempty,min=1,max=100"`

	// UseLocalTime fills a missing timeOfDay from the server clock.
	UseLocalTime bool `json:"useLocalTime"`
}

// MoodSelectionRequest is the body of POST /moods/selection.
type MoodSelectionRequest struct {
	Primary   string `json:"primary" validate:"required,mood"`
	Secondary string `json:"secondary" validate:"omitempty,mood"`
}

// MoodGamesRequest holds the query parameters of GET /moods/{mood}/games.
type MoodGamesRequest struct {
	Mood  string `validate:"required,mood"`
	Limit int    `validate:"min=1,max=100"`
}

// GameListRequest holds the query parameters of GET /games.
type GameListRequest struct {
	Status string `validate:"omitempty,play_status"`
	Mood   string `validate:"omitempty,mood"`
}
