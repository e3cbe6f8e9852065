// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

// Package launch builds client-side launch URLs for library games.
//
// The server never launches anything itself. It hands the client a URL such
// as steam://rungameid/620 and the client opens it.
package launch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/gamepilot/internal/recommend"
)

var (
	// ErrMissingAppID is returned when a game has no platform app ID.
	ErrMissingAppID = errors.New("game has no app id")

	// ErrUnsupportedPlatform is returned for platforms without a URL scheme.
	ErrUnsupportedPlatform = errors.New("platform cannot be launched")
)

// Supported platforms.
const (
	PlatformSteam = "steam"
	PlatformGOG   = "gog"
)

var schemes = map[string]string{
	PlatformSteam: "steam://rungameid/%s",
	PlatformGOG:   "goggalaxy://openGameView/%s",
}

// Target is a resolved launch URL.
type Target struct {
	GameID   string `json:"gameId"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// URL returns the launch URL for g. Platform names are case-insensitive and
// an empty platform is treated as Steam.
func URL(g *recommend.Game) (Target, error) {
	platform := strings.ToLower(strings.TrimSpace(g.Platform))
	if platform == "" {
		platform = PlatformSteam
	}
	scheme, ok := schemes[platform]
	if !ok {
		return Target{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, g.Platform)
	}

	appID := strings.TrimSpace(g.AppID)
	if appID == "" {
		return Target{}, fmt.Errorf("%w: %s", ErrMissingAppID, g.Title)
	}
	if !isDigits(appID) {
		return Target{}, fmt.Errorf("%w: %q is not numeric", ErrMissingAppID, appID)
	}

	return Target{GameID: g.ID, Platform: platform, URL: fmt.Sprintf(scheme, appID)}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
