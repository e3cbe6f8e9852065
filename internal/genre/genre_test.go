// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package genre

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Action", "action"},
		{"Action RPG", "action-rpg"},
		{"  Hack & Slash ", "hack-slash"},
		{"Énigme", "enigme"},
		{"Sci-Fi/Fantasy", "sci-fi-fantasy"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewCanonicalizesAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		wantID string
	}{
		{"RPG", "role-playing"},
		{"Rogue-lite", "roguelike"},
		{"FPS", "shooter"},
		{"Puzzle", "puzzle"},
	}
	for _, tt := range tests {
		g := New(tt.name)
		if g.ID != tt.wantID {
			t.Errorf("New(%q).ID = %q, want %q", tt.name, g.ID, tt.wantID)
		}
		if g.Name != tt.name {
			t.Errorf("New(%q).Name = %q, want the original label", tt.name, g.Name)
		}
	}
	if !New("   ").IsZero() {
		t.Error("blank name should produce the zero genre")
	}
}

func TestUnmarshalAcceptsStringAndObject(t *testing.T) {
	t.Parallel()

	var got []Genre
	input := `["Puzzle", {"id": "sim", "name": "Simulation"}, {"name": "Strategy"}, {"id": "rpg"}, null]`
	if err := json.Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := []Genre{
		{ID: "puzzle", Name: "Puzzle"},
		{ID: "simulation", Name: "Simulation"},
		{ID: "strategy", Name: "Strategy"},
		{ID: "role-playing", Name: "rpg"},
		{},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d genres, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("genre[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	t.Parallel()

	var g Genre
	if err := json.Unmarshal([]byte(`42`), &g); err == nil {
		t.Error("expected an error for a numeric genre")
	}
}

func TestNormalizeDropsBlanksAndDuplicates(t *testing.T) {
	t.Parallel()

	got := Normalize([]Genre{New("RPG"), {}, New("Role-Playing"), New("Puzzle")})
	ids := IDs(got)
	if len(ids) != 2 || ids[0] != "role-playing" || ids[1] != "puzzle" {
		t.Errorf("Normalize ids = %v, want [role-playing puzzle]", ids)
	}

	if got := FromNames("Casual", "casual", ""); len(got) != 1 {
		t.Errorf("FromNames = %v, want one genre", got)
	}
}
