// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package library

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamepilot/internal/recommend"
)

// DecodeGames reads a library export: either a JSON array of games or an
// object with a "games" array. Genres may be plain names or {id, name}
// objects. Games without an ID are skipped and counted in skipped.
func DecodeGames(r io.Reader) (games []recommend.Game, skipped int, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("read library: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []recommend.Game{}, 0, nil
	}

	var raw []recommend.Game
	if data[0] == '{' {
		var wrapped struct {
			Games []recommend.Game `json:"games"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, 0, fmt.Errorf("decode library: %w", err)
		}
		raw = wrapped.Games
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decode library: %w", err)
	}

	games = make([]recommend.Game, 0, len(raw))
	for i := range raw {
		if raw[i].ID == "" {
			skipped++
			continue
		}
		raw[i].Normalize()
		games = append(games, raw[i])
	}
	return games, skipped, nil
}
