// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package library

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamepilot/internal/recommend"
)

// PlatformSteam is the platform value for games imported from Steam.
const PlatformSteam = "steam"

const steamHeaderURL = "https://cdn.cloudflare.steamstatic.com/steam/apps/%d/header.jpg"

// steamOwnedGames mirrors the IPlayerService/GetOwnedGames response.
type steamOwnedGames struct {
	Response struct {
		GameCount int         `json:"game_count"`
		Games     []steamGame `json:"games"`
	} `json:"response"`
}

type steamGame struct {
	AppID           int64  `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int64  `json:"playtime_forever"` // minutes
	RTimeLastPlayed int64  `json:"rtime_last_played"`
}

// SteamGameID is the library ID given to a Steam app.
func SteamGameID(appID int64) string {
	return "steam-" + strconv.FormatInt(appID, 10)
}

// ImportSteamOwnedGames converts a Steam GetOwnedGames payload into library
// games. Entries without an app ID are skipped. Games with playtime are
// marked as playing, the rest as backlog. Steam does not report genres or
// moods, so those are left empty for the user to fill in.
func ImportSteamOwnedGames(r io.Reader, now time.Time) ([]recommend.Game, error) {
	var payload steamOwnedGames
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode steam owned games: %w", err)
	}

	games := make([]recommend.Game, 0, len(payload.Response.Games))
	for _, sg := range payload.Response.Games {
		if sg.AppID <= 0 {
			continue
		}
		g := recommend.Game{
			ID:          SteamGameID(sg.AppID),
			Title:       sg.Name,
			HoursPlayed: float64(sg.PlaytimeForever) / 60,
			AddedAt:     now.UTC(),
			CoverImage:  fmt.Sprintf(steamHeaderURL, sg.AppID),
			PlayStatus:  recommend.StatusBacklog,
			Platform:    PlatformSteam,
			AppID:       strconv.FormatInt(sg.AppID, 10),
		}
		if g.Title == "" {
			g.Title = "Steam app " + g.AppID
		}
		if sg.PlaytimeForever > 0 {
			g.PlayStatus = recommend.StatusPlaying
		}
		if sg.RTimeLastPlayed > 0 {
			lp := time.Unix(sg.RTimeLastPlayed, 0).UTC()
			g.LastPlayed = &lp
		}
		games = append(games, g)
	}
	return games, nil
}

// ImportResult summarizes an import into a store.
type ImportResult struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
}

// MergeImport writes imported games into s. Games already in the library keep
// their genres, moods, tags and AddedAt; only playtime, last played, title and
// cover are refreshed. A backlog game with new playtime becomes playing.
func MergeImport(ctx context.Context, s Store, imported []recommend.Game) (ImportResult, error) {
	var res ImportResult
	merged := make([]recommend.Game, 0, len(imported))
	for i := range imported {
		in := imported[i]
		prev, err := s.GetGame(ctx, in.ID)
		switch {
		case errors.Is(err, ErrGameNotFound):
			res.Added++
			merged = append(merged, in)
		case err != nil:
			return ImportResult{}, fmt.Errorf("lookup %s: %w", in.ID, err)
		default:
			res.Updated++
			prev.Title = in.Title
			prev.HoursPlayed = in.HoursPlayed
			prev.LastPlayed = in.LastPlayed
			if in.CoverImage != "" {
				prev.CoverImage = in.CoverImage
			}
			if prev.PlayStatus == recommend.StatusBacklog && in.HoursPlayed > 0 {
				prev.PlayStatus = recommend.StatusPlaying
			}
			merged = append(merged, prev)
		}
	}

	if _, err := s.PutGames(ctx, merged); err != nil {
		return ImportResult{}, fmt.Errorf("store imported games: %w", err)
	}
	return res, nil
}
