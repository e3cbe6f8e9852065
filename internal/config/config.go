// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package config

import (
	"time"

	"github.com/tomtom215/gamepilot/internal/moodservice"
	"github.com/tomtom215/gamepilot/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Logging     LoggingConfig     `koanf:"logging"`
	Library     LibraryConfig     `koanf:"library"`
	MoodService MoodServiceConfig `koanf:"mood_service"`
	Recommend   RecommendConfig   `koanf:"recommend"`
	Security    SecurityConfig    `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development or production
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"`
}

// LibraryConfig selects the game library backend.
type LibraryConfig struct {
	Store string `koanf:"store"` // badger or memory
	Path  string `koanf:"path"`  // BadgerDB directory

	// SeedFile is a JSON library export loaded at startup when set.
	SeedFile string `koanf:"seed_file"`

	// StatsInterval is how often library gauges are refreshed.
	StatsInterval time.Duration `koanf:"stats_interval"`
}

// MoodServiceConfig configures the optional external mood service.
type MoodServiceConfig struct {
	URL               string        `koanf:"url"` // empty disables remote calls
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	FailureThreshold  uint32        `koanf:"failure_threshold"`
	OpenTimeout       time.Duration `koanf:"open_timeout"`
}

// RecommendConfig holds the tunable parts of the recommendation engine.
// Everything not listed here keeps its recommend.DefaultConfig value.
type RecommendConfig struct {
	PersonaWeight      float64       `koanf:"persona_weight"`
	MatchMode          string        `koanf:"match_mode"` // any or all
	DefaultLimit       int           `koanf:"default_limit"`
	MaxLimit           int           `koanf:"max_limit"`
	ShortSessionHours  float64       `koanf:"short_session_hours"`
	MediumSessionHours float64       `koanf:"medium_session_hours"`
	RecencyWindow      time.Duration `koanf:"recency_window"`
	FallbackEnabled    bool          `koanf:"fallback_enabled"`
	DiversityEnabled   bool          `koanf:"diversity_enabled"`
	DiversityLambda    float64       `koanf:"diversity_lambda"`
	CacheEnabled       bool          `koanf:"cache_enabled"`
	CacheTTL           time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries    int           `koanf:"cache_max_entries"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// EngineConfig builds the recommendation engine configuration.
func (c *Config) EngineConfig() *recommend.Config {
	rc := c.Recommend
	cfg := recommend.DefaultConfig()
	cfg.Weights.DefaultPersonaWeight = rc.PersonaWeight
	cfg.MatchMode = recommend.MoodMatchMode(rc.MatchMode)
	cfg.Limits.DefaultLimit = rc.DefaultLimit
	cfg.Limits.MaxLimit = rc.MaxLimit
	cfg.Session.ShortBelowHours = rc.ShortSessionHours
	cfg.Session.MediumUpToHours = rc.MediumSessionHours
	cfg.Weights.RecencyWindow = rc.RecencyWindow
	cfg.Fallback.Enabled = rc.FallbackEnabled
	cfg.Diversity.Enabled = rc.DiversityEnabled
	cfg.Diversity.MMRLambda = rc.DiversityLambda
	cfg.Cache.Enabled = rc.CacheEnabled
	cfg.Cache.TTL = rc.CacheTTL
	cfg.Cache.MaxEntries = rc.CacheMaxEntries
	return cfg
}

// MoodServiceClientConfig converts the mood service section into client settings.
func (c *Config) MoodServiceClientConfig() moodservice.Config {
	ms := c.MoodService
	return moodservice.Config{
		BaseURL:           ms.URL,
		Timeout:           ms.Timeout,
		RequestsPerSecond: ms.RequestsPerSecond,
		Burst:             ms.Burst,
		FailureThreshold:  ms.FailureThreshold,
		OpenTimeout:       ms.OpenTimeout,
	}
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
