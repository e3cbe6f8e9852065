// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package recommend

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode"

	"github.com/tomtom215/gamepilot/internal/mood"
)

// maxScore is the upper bound of every score in this package.
const maxScore = 100.0

// Inflections accepted after a keyword. Keywords shorter than
// minInflectedKeyword only accept a plural "s", so "cat" matches "cats" but
// never "catch".
var keywordInflections = []string{"s", "es", "ing", "ed", "er", "ers"}

const minInflectedKeyword = 4

// GetMoodRecommendation scores g against one mood. It returns nil when the
// game shows no signal for the mood at all.
func GetMoodRecommendation(g *Game, id mood.ID, cfg *Config) *MoodMatch {
	info, ok := mood.Lookup(id)
	if !ok {
		return nil
	}

	tagged := mood.Contains(g.Moods, id)
	genres := matchingGenres(g, info.Genres)
	keywords := matchingKeywords(g, info.Keywords)
	if !tagged && len(genres) == 0 && len(keywords) == 0 {
		return nil
	}

	sc := cfg.MoodScore
	score := sc.GenreScore*float64(len(genres)) + sc.KeywordScore*float64(len(keywords))
	if tagged {
		score += sc.TagScore
	}

	return &MoodMatch{
		Score:  clampScore(score),
		Reason: moodReason(info, tagged, genres),
	}
}

// GetMoodRecommendationWithSecondary scores g against a primary mood and an
// optional secondary. The primary must produce a signal. A matching secondary
// adds a bonus of its score times MoodScore.SecondaryWeight, capped at 100.
func GetMoodRecommendationWithSecondary(g *Game, primary mood.ID, secondary *mood.ID, cfg *Config) *MoodMatch {
	p := GetMoodRecommendation(g, primary, cfg)
	if p == nil || secondary == nil || *secondary == primary {
		return p
	}
	s := GetMoodRecommendation(g, *secondary, cfg)
	if s == nil {
		return p
	}
	return &MoodMatch{
		Score:  clampScore(p.Score + s.Score*cfg.MoodScore.SecondaryWeight),
		Reason: p.Reason + "; " + s.Reason,
	}
}

// FilterGamesByMood returns the games scoring above MoodScore.MinScore for
// the mood, best first, at most limit of them. Ties keep input order.
func FilterGamesByMood(games []Game, id mood.ID, limit int, cfg *Config) []ScoredGame {
	if limit <= 0 {
		return []ScoredGame{}
	}

	out := make([]ScoredGame, 0, len(games))
	for i := range games {
		m := GetMoodRecommendation(&games[i], id, cfg)
		if m == nil || m.Score <= cfg.MoodScore.MinScore {
			continue
		}
		out = append(out, ScoredGame{Game: games[i], MoodMatch: *m})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MoodMatch.Score > out[j].MoodMatch.Score
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func matchingGenres(g *Game, moodGenres []string) []string {
	var names []string
	for _, gg := range g.Genres {
		for _, mg := range moodGenres {
			if gg.ID == mg {
				names = append(names, gg.Name)
				break
			}
		}
	}
	return names
}

func matchingKeywords(g *Game, keywords []string) []string {
	words := tokenize(g.Title)
	for _, t := range g.Tags {
		words = append(words, tokenize(t)...)
	}

	var hits []string
	for _, kw := range keywords {
		for _, w := range words {
			if keywordMatches(w, kw) {
				hits = append(hits, kw)
				break
			}
		}
	}
	return hits
}

func keywordMatches(word, kw string) bool {
	if word == kw {
		return true
	}
	suffix, ok := strings.CutPrefix(word, kw)
	if !ok {
		return false
	}
	if len(kw) < minInflectedKeyword {
		return suffix == "s"
	}
	return slices.Contains(keywordInflections, suffix)
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func moodReason(info mood.Info, tagged bool, genres []string) string {
	switch {
	case tagged:
		return fmt.Sprintf("Great for a %s mood", strings.ToLower(info.Label))
	case len(genres) > 0:
		return fmt.Sprintf("%s suits a %s mood", joinNames(genres), strings.ToLower(info.Label))
	default:
		return fmt.Sprintf("Has a %s feel", strings.ToLower(info.Label))
	}
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

func clampScore(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > maxScore:
		return maxScore
	default:
		return v
	}
}
