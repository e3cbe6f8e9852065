// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

// Package genre normalizes game genres at the data boundary.
//
// Library sources disagree on shape: Steam exports plain strings, other
// importers emit {"id", "name"} objects. Both decode into Genre, whose ID is
// always a canonical slug, so scoring code compares genres by ID only.
package genre

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/goccy/go-json"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	multipleHyphens = regexp.MustCompile(`-+`)
)

// Slugify converts a genre label to its slug form.
// "Action RPG" -> "action-rpg", "Rogue-lite" -> "rogue-lite", "Énigme" -> "enigme".
func Slugify(s string) string {
	s = norm.NFKD.String(s)
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)
	s = strings.ToLower(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Canonical maps a slug through the alias table.
func Canonical(slug string) string {
	if c, ok := aliases[slug]; ok {
		return c
	}
	return slug
}

// Genre is a normalized genre reference.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// New builds a Genre from a display name. The zero Genre is returned for blank input.
func New(name string) Genre {
	name = strings.TrimSpace(name)
	if name == "" {
		return Genre{}
	}
	return Genre{ID: Canonical(Slugify(name)), Name: name}
}

// IsZero reports whether g carries no usable id.
func (g Genre) IsZero() bool { return g.ID == "" }

// UnmarshalJSON accepts either "Name" or {"id": "...", "name": "..."}.
func (g *Genre) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*g = Genre{}
		return nil
	}

	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return fmt.Errorf("genre: %w", err)
		}
		*g = New(name)
		return nil
	}

	var obj struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("genre: %w", err)
	}

	switch {
	case obj.Name == "" && obj.ID == "":
		*g = Genre{}
	case obj.Name == "":
		*g = Genre{ID: Canonical(Slugify(obj.ID)), Name: obj.ID}
	default:
		*g = New(obj.Name)
		if obj.ID != "" {
			g.ID = Canonical(Slugify(obj.ID))
		}
	}
	return nil
}

// Normalize drops blank genres and duplicate ids, keeping first occurrence order.
func Normalize(in []Genre) []Genre {
	out := make([]Genre, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, g := range in {
		if g.IsZero() {
			continue
		}
		if _, dup := seen[g.ID]; dup {
			continue
		}
		seen[g.ID] = struct{}{}
		out = append(out, g)
	}
	return out
}

// FromNames builds normalized genres from display names.
func FromNames(names ...string) []Genre {
	out := make([]Genre, 0, len(names))
	for _, n := range names {
		out = append(out, New(n))
	}
	return Normalize(out)
}

// IDs returns the slugs of gs in order.
func IDs(gs []Genre) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.ID
	}
	return out
}
