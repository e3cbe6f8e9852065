// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/gamepilot/internal/mood"
)

// ReasonSimilarToLibrary is attached when no specific reason applies.
const ReasonSimilarToLibrary = "Similar to games you own"

// Recommend scores and ranks games for the given persona and filters.
//
// Games without an ID and excluded IDs are dropped, the rest pass through
// Match, and each survivor is scored as
//
//	final = base*(1-w) + persona*w + timeFit + recency
//
// clamped to [0, 100]. Results are sorted by score with input order breaking
// ties. An empty candidate set yields an empty, non-nil slice.
//
//nolint:gocritic // hugeParam: filters and persona passed by value for immutability
func Recommend(games []Game, persona PersonaContext, filters Filters, opts Options, cfg *Config) []Recommendation {
	limit := opts.Limit
	if limit <= 0 {
		limit = cfg.Limits.DefaultLimit
	}
	w := clampUnit(opts.PersonaWeight)

	candidates := Match(eligible(games, filters.ExcludeIDs), filters, 0, cfg)
	out := make([]Recommendation, 0, len(candidates))
	for i := range candidates {
		g := &candidates[i]
		tags := Tag(g, cfg)

		base, moodReason := baseScore(g, filters.SelectedMoods, cfg)
		score := base*(1-w) + personaScore(g, tags, persona, cfg)*w
		if filters.TimeOfDay != nil && containsTime(tags.RecommendedTimes, *filters.TimeOfDay) {
			score += cfg.Weights.TimeFitBonus
		}
		score += recencyBonus(g, opts, cfg)

		out = append(out, Recommendation{
			Game:    g.Clone(),
			Score:   clampScore(score),
			Reasons: reasons(g, tags, moodReason, persona, filters, cfg),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Fallback returns the first n eligible games with a flat score and a generic
// reason. It backs the degraded path when Recommend finds nothing.
func Fallback(games []Game, excludeIDs []string, n int, cfg *Config) []Recommendation {
	if n <= 0 {
		n = cfg.Limits.DefaultLimit
	}
	pool := eligible(games, excludeIDs)
	if len(pool) > n {
		pool = pool[:n]
	}
	out := make([]Recommendation, len(pool))
	for i := range pool {
		out[i] = Recommendation{
			Game:    pool[i].Clone(),
			Score:   cfg.Fallback.Score,
			Reasons: []string{cfg.Fallback.Reason},
		}
	}
	return out
}

// eligible drops games without an ID and excluded games.
func eligible(games []Game, excludeIDs []string) []Game {
	exclude := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		exclude[id] = struct{}{}
	}
	out := make([]Game, 0, len(games))
	for i := range games {
		if games[i].ID == "" {
			continue
		}
		if _, skip := exclude[games[i].ID]; skip {
			continue
		}
		out = append(out, games[i])
	}
	return out
}

// baseScore is the mood alignment of g with the selection. The first
// selected mood is primary and the second, if any, secondary. When the
// primary has no signal the best single selected mood is used instead.
func baseScore(g *Game, selected []mood.ID, cfg *Config) (float64, string) {
	if len(selected) == 0 {
		return cfg.Weights.NeutralBase, ""
	}

	var secondary *mood.ID
	if len(selected) > 1 {
		secondary = &selected[1]
	}
	if m := GetMoodRecommendationWithSecondary(g, selected[0], secondary, cfg); m != nil {
		return m.Score, m.Reason
	}

	var best *MoodMatch
	for _, id := range selected[1:] {
		if m := GetMoodRecommendation(g, id, cfg); m != nil && (best == nil || m.Score > best.Score) {
			best = m
		}
	}
	if best == nil {
		return 0, ""
	}
	return best.Score, best.Reason
}

// personaScore measures affinity between g and the persona on a 0-100 scale.
func personaScore(g *Game, tags Tags, p PersonaContext, cfg *Config) float64 {
	w := cfg.Weights
	var score float64
	if n := len(p.DominantMoods); n > 0 {
		score += w.PersonaMood * float64(len(sharedMoods(g.Moods, p.DominantMoods))) / float64(n)
	}
	if p.PreferredSessionLength != "" && tags.SessionLength == p.PreferredSessionLength {
		score += w.PersonaSession
	}
	if anyTimeIn(tags.RecommendedTimes, p.PreferredTimesOfDay) {
		score += w.PersonaTime
	}
	return score
}

// recencyBonus decays linearly from RecencyBonus to 0 across RecencyWindow.
func recencyBonus(g *Game, opts Options, cfg *Config) float64 {
	w := cfg.Weights
	if opts.Now.IsZero() || g.LastPlayed == nil || w.RecencyBonus <= 0 || w.RecencyWindow <= 0 {
		return 0
	}
	age := opts.Now.Sub(*g.LastPlayed)
	if age < 0 {
		age = 0
	}
	if age >= w.RecencyWindow {
		return 0
	}
	return w.RecencyBonus * (1 - float64(age)/float64(w.RecencyWindow))
}

// reasons lists why g was picked, in fixed priority order: selected mood,
// dominant moods, session length, time of day. The generic reason is used
// only when nothing else applies.
//
//nolint:gocritic // hugeParam: persona and filters passed by value for immutability
func reasons(g *Game, tags Tags, moodReason string, p PersonaContext, f Filters, cfg *Config) []string {
	out := make([]string, 0, cfg.Limits.MaxReasons)
	add := func(r string) {
		if r != "" && len(out) < cfg.Limits.MaxReasons {
			out = append(out, r)
		}
	}

	add(moodReason)
	if shared := sharedMoods(g.Moods, p.DominantMoods); len(shared) > 0 {
		add(fmt.Sprintf("Matches your favourite %s moods", joinMoodLabels(shared)))
	}
	if f.SelectedSessionLength != nil && tags.SessionLength == *f.SelectedSessionLength {
		add(fmt.Sprintf("Fits a %s session", tags.SessionLength))
	} else if p.PreferredSessionLength != "" && tags.SessionLength == p.PreferredSessionLength {
		add(fmt.Sprintf("Matches your usual %s sessions", tags.SessionLength))
	}
	if f.TimeOfDay != nil && containsTime(tags.RecommendedTimes, *f.TimeOfDay) {
		add(fmt.Sprintf("Good for the %s", timeLabel(*f.TimeOfDay)))
	}

	if len(out) == 0 {
		out = append(out, ReasonSimilarToLibrary)
	}
	return out
}

// sharedMoods returns the moods of a that appear in b, in b's order.
func sharedMoods(a, b []mood.ID) []mood.ID {
	var out []mood.ID
	for _, m := range b {
		if mood.Contains(a, m) {
			out = append(out, m)
		}
	}
	return out
}

func anyTimeIn(ts, preferred []TimeOfDay) bool {
	for _, t := range ts {
		if containsTime(preferred, t) {
			return true
		}
	}
	return false
}

func joinMoodLabels(ids []mood.ID) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if info, ok := mood.Lookup(id); ok {
			labels = append(labels, strings.ToLower(info.Label))
		}
	}
	return joinNames(labels)
}

func timeLabel(t TimeOfDay) string {
	if t == LateNight {
		return "late night"
	}
	return string(t)
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
