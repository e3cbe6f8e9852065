// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package launch

import (
	"errors"
	"testing"

	"github.com/tomtom215/gamepilot/internal/recommend"
)

func TestURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		game    recommend.Game
		wantURL string
		wantErr error
	}{
		{"steam", recommend.Game{ID: "a", Platform: "steam", AppID: "620"}, "steam://rungameid/620", nil},
		{"empty platform is steam", recommend.Game{ID: "a", AppID: "620"}, "steam://rungameid/620", nil},
		{"gog any case", recommend.Game{ID: "a", Platform: "GOG", AppID: "1207658924"}, "goggalaxy://openGameView/1207658924", nil},
		{"missing app id", recommend.Game{ID: "a", Platform: "steam"}, "", ErrMissingAppID},
		{"non numeric app id", recommend.Game{ID: "a", Platform: "steam", AppID: "620;rm"}, "", ErrMissingAppID},
		{"unsupported platform", recommend.Game{ID: "a", Platform: "epic", AppID: "1"}, "", ErrUnsupportedPlatform},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := URL(&tt.game)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("URL() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("URL() error = %v", err)
			}
			if got.URL != tt.wantURL || got.GameID != "a" {
				t.Errorf("URL() = %+v, want %s", got, tt.wantURL)
			}
		})
	}
}
