// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package recommend

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Config holds every tunable of the scoring pipeline.
type Config struct {
	// Session controls how hours played map onto session lengths.
	Session SessionConfig `json:"session"`

	// MoodScore controls per-mood scoring.
	MoodScore MoodScoreConfig `json:"mood_score"`

	// Persona controls persona derivation.
	Persona PersonaConfig `json:"persona"`

	// Weights controls the final blend.
	Weights ScoreWeights `json:"weights"`

	// Limits contains result size limits.
	Limits LimitsConfig `json:"limits"`

	// Fallback controls the degraded path used when nothing matches.
	Fallback FallbackConfig `json:"fallback"`

	// Diversity controls optional MMR reranking.
	Diversity DiversityConfig `json:"diversity"`

	// Cache controls the engine response cache.
	Cache CacheConfig `json:"cache"`

	// MatchMode is the mood match mode used when a request does not set one.
	// Default: any.
	MatchMode MoodMatchMode `json:"match_mode"`
}

// SessionConfig holds session length thresholds in hours.
type SessionConfig struct {
	// ShortBelowHours: games with fewer hours are short.
	// Default: 1.0.
	ShortBelowHours float64 `json:"short_below_hours"`

	// MediumUpToHours: games up to and including this many hours are medium.
	// Default: 5.0.
	MediumUpToHours float64 `json:"medium_up_to_hours"`
}

// MoodScoreConfig holds the per-signal mood scores.
type MoodScoreConfig struct {
	// TagScore is awarded when the game is explicitly tagged with the mood.
	// Default: 60.
	TagScore float64 `json:"tag_score"`

	// GenreScore is awarded per game genre the mood lists.
	// Default: 15.
	GenreScore float64 `json:"genre_score"`

	// KeywordScore is awarded per mood keyword found in the title or tags.
	// Default: 10.
	KeywordScore float64 `json:"keyword_score"`

	// SecondaryWeight scales the secondary mood score into a bonus.
	// Default: 0.15.
	SecondaryWeight float64 `json:"secondary_weight"`

	// MinScore is the exclusive threshold for FilterGamesByMood.
	// Default: 20.
	MinScore float64 `json:"min_score"`
}

// PersonaConfig sizes the persona summary.
type PersonaConfig struct {
	// DominantMoodCount is the number of dominant moods kept.
	// Default: 3.
	DominantMoodCount int `json:"dominant_mood_count"`

	// TopPlayedCount is how many most-played games feed preferred times.
	// Default: 5.
	TopPlayedCount int `json:"top_played_count"`

	// MaxPreferredTimes caps the preferred times of day.
	// Default: 2.
	MaxPreferredTimes int `json:"max_preferred_times"`
}

// ScoreWeights holds the constants of the final score blend.
type ScoreWeights struct {
	// NeutralBase is the base score when no mood is selected.
	// Default: 50.
	NeutralBase float64 `json:"neutral_base"`

	// PersonaMood is the persona score share for dominant mood overlap.
	// Default: 60.
	PersonaMood float64 `json:"persona_mood"`

	// PersonaSession is awarded when session length matches the persona.
	// Default: 25.
	PersonaSession float64 `json:"persona_session"`

	// PersonaTime is awarded when a recommended time is preferred.
	// Default: 15.
	PersonaTime float64 `json:"persona_time"`

	// DefaultPersonaWeight is used when a request does not set one.
	// Default: 0.3.
	DefaultPersonaWeight float64 `json:"default_persona_weight"`

	// TimeFitBonus is added when the requested time of day fits the game.
	// Default: 5.
	TimeFitBonus float64 `json:"time_fit_bonus"`

	// RecencyBonus is the maximum bonus for a game played just now.
	// Default: 10.
	RecencyBonus float64 `json:"recency_bonus"`

	// RecencyWindow is how long the recency bonus takes to decay to zero.
	// Default: 14 days.
	RecencyWindow time.Duration `json:"recency_window"`
}

// LimitsConfig bounds result sizes.
type LimitsConfig struct {
	// DefaultLimit applies when a request has no limit.
	// Default: 10.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit is the largest allowed limit.
	// Default: 50.
	MaxLimit int `json:"max_limit"`

	// MaxReasons caps the reasons per recommendation.
	// Default: 4.
	MaxReasons int `json:"max_reasons"`
}

// FallbackConfig controls the degraded recommendation path.
type FallbackConfig struct {
	// Enabled turns on the fallback when scoring returns nothing.
	// Default: true.
	Enabled bool `json:"enabled"`

	// Score is the flat score of fallback items.
	// Default: 25.
	Score float64 `json:"score"`

	// Reason is the single reason attached to fallback items.
	Reason string `json:"reason"`
}

// DiversityConfig controls MMR reranking.
type DiversityConfig struct {
	// Enabled registers the MMR reranker.
	// Default: false.
	Enabled bool `json:"enabled"`

	// MMRLambda balances relevance (1.0) against genre diversity (0.0).
	// Default: 0.7.
	MMRLambda float64 `json:"mmr_lambda"`
}

// CacheConfig controls the engine response cache.
type CacheConfig struct {
	// Enabled turns on caching.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the entry time-to-live.
	// Default: 2m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries bounds the cache.
	// Default: 1000.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			ShortBelowHours: 1.0,
			MediumUpToHours: 5.0,
		},
		MoodScore: MoodScoreConfig{
			TagScore:        60,
			GenreScore:      15,
			KeywordScore:    10,
			SecondaryWeight: 0.15,
			MinScore:        20,
		},
		Persona: PersonaConfig{
			DominantMoodCount: 3,
			TopPlayedCount:    5,
			MaxPreferredTimes: 2,
		},
		Weights: ScoreWeights{
			NeutralBase:          50,
			PersonaMood:          60,
			PersonaSession:       25,
			PersonaTime:          15,
			DefaultPersonaWeight: 0.3,
			TimeFitBonus:         5,
			RecencyBonus:         10,
			RecencyWindow:        14 * 24 * time.Hour,
		},
		Limits: LimitsConfig{
			DefaultLimit: 10,
			MaxLimit:     50,
			MaxReasons:   4,
		},
		Fallback: FallbackConfig{
			Enabled: true,
			Score:   25,
			Reason:  "Something from your library to revisit",
		},
		Diversity: DiversityConfig{
			Enabled:   false,
			MMRLambda: 0.7,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        2 * time.Minute,
			MaxEntries: 1000,
		},
		MatchMode: MatchAny,
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	if c.Session.ShortBelowHours < 0 {
		return fmt.Errorf("session.short_below_hours must be non-negative, got %f", c.Session.ShortBelowHours)
	}
	if c.Session.MediumUpToHours < c.Session.ShortBelowHours {
		return fmt.Errorf("session.medium_up_to_hours must be >= session.short_below_hours, got %f < %f",
			c.Session.MediumUpToHours, c.Session.ShortBelowHours)
	}

	if c.MoodScore.TagScore < 0 || c.MoodScore.GenreScore < 0 || c.MoodScore.KeywordScore < 0 {
		return fmt.Errorf("mood_score signal scores must be non-negative")
	}
	if c.MoodScore.SecondaryWeight < 0 || c.MoodScore.SecondaryWeight > 1 {
		return fmt.Errorf("mood_score.secondary_weight must be in [0, 1], got %f", c.MoodScore.SecondaryWeight)
	}
	if c.MoodScore.MinScore < 0 || c.MoodScore.MinScore >= 100 {
		return fmt.Errorf("mood_score.min_score must be in [0, 100), got %f", c.MoodScore.MinScore)
	}

	if c.Persona.DominantMoodCount < 1 {
		return fmt.Errorf("persona.dominant_mood_count must be positive, got %d", c.Persona.DominantMoodCount)
	}
	if c.Persona.TopPlayedCount < 1 {
		return fmt.Errorf("persona.top_played_count must be positive, got %d", c.Persona.TopPlayedCount)
	}
	if c.Persona.MaxPreferredTimes < 1 {
		return fmt.Errorf("persona.max_preferred_times must be positive, got %d", c.Persona.MaxPreferredTimes)
	}

	w := c.Weights
	if w.NeutralBase < 0 || w.NeutralBase > 100 {
		return fmt.Errorf("weights.neutral_base must be in [0, 100], got %f", w.NeutralBase)
	}
	if w.PersonaMood < 0 || w.PersonaSession < 0 || w.PersonaTime < 0 {
		return fmt.Errorf("weights persona components must be non-negative")
	}
	if sum := w.PersonaMood + w.PersonaSession + w.PersonaTime; sum > 100 {
		return fmt.Errorf("weights persona components must sum to at most 100, got %f", sum)
	}
	if w.DefaultPersonaWeight < 0 || w.DefaultPersonaWeight > 1 {
		return fmt.Errorf("weights.default_persona_weight must be in [0, 1], got %f", w.DefaultPersonaWeight)
	}
	if w.TimeFitBonus < 0 || w.RecencyBonus < 0 {
		return fmt.Errorf("weights bonuses must be non-negative")
	}
	if w.RecencyBonus > 0 && w.RecencyWindow <= 0 {
		return fmt.Errorf("weights.recency_window must be positive when recency_bonus is set, got %v", w.RecencyWindow)
	}

	if c.Limits.DefaultLimit < 1 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit must be >= limits.default_limit, got %d < %d", c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}
	if c.Limits.MaxReasons < 1 {
		return fmt.Errorf("limits.max_reasons must be positive, got %d", c.Limits.MaxReasons)
	}

	if c.Fallback.Score < 0 || c.Fallback.Score > 100 {
		return fmt.Errorf("fallback.score must be in [0, 100], got %f", c.Fallback.Score)
	}
	if c.Diversity.MMRLambda < 0 || c.Diversity.MMRLambda > 1 {
		return fmt.Errorf("diversity.mmr_lambda must be in [0, 1], got %f", c.Diversity.MMRLambda)
	}
	if c.Cache.Enabled && (c.Cache.TTL <= 0 || c.Cache.MaxEntries < 1) {
		return fmt.Errorf("cache.ttl and cache.max_entries must be positive when caching is enabled")
	}

	switch c.MatchMode {
	case MatchAny, MatchAll:
	default:
		return fmt.Errorf("match_mode must be %q or %q, got %q", MatchAny, MatchAll, c.MatchMode)
	}

	return nil
}

// Clone returns a copy. All nested structs hold value types only.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// MarshalJSON renders durations as strings.
func (c *Config) MarshalJSON() ([]byte, error) {
	type alias Config
	type weights struct {
		ScoreWeights
		RecencyWindow string `json:"recency_window"`
	}
	type cache struct {
		CacheConfig
		TTL string `json:"ttl"`
	}
	return json.Marshal(&struct {
		*alias
		Weights weights `json:"weights"`
		Cache   cache   `json:"cache"`
	}{
		alias:   (*alias)(c),
		Weights: weights{ScoreWeights: c.Weights, RecencyWindow: c.Weights.RecencyWindow.String()},
		Cache:   cache{CacheConfig: c.Cache, TTL: c.Cache.TTL.String()},
	})
}
