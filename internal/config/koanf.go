// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/gamepilot/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/gamepilot/config.yaml",
	"/etc/gamepilot/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// Recommendation defaults are taken from recommend.DefaultConfig.
func defaultConfig() *Config {
	rd := recommend.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Library: LibraryConfig{
			Store:         "badger",
			Path:          "/data/library",
			SeedFile:      "",
			StatsInterval: time.Minute,
		},
		MoodService: MoodServiceConfig{
			URL:               "", // Optional - fallback payloads are served when unset
			Timeout:           3 * time.Second,
			RequestsPerSecond: 5,
			Burst:             10,
			FailureThreshold:  5,
			OpenTimeout:       time.Minute,
		},
		Recommend: RecommendConfig{
			PersonaWeight:      rd.Weights.DefaultPersonaWeight,
			MatchMode:          string(rd.MatchMode),
			DefaultLimit:       rd.Limits.DefaultLimit,
			MaxLimit:           rd.Limits.MaxLimit,
			ShortSessionHours:  rd.Session.ShortBelowHours,
			MediumSessionHours: rd.Session.MediumUpToHours,
			RecencyWindow:      rd.Weights.RecencyWindow,
			FallbackEnabled:    rd.Fallback.Enabled,
			DiversityEnabled:   rd.Diversity.Enabled,
			DiversityLambda:    rd.Diversity.MMRLambda,
			CacheEnabled:       rd.Cache.Enabled,
			CacheTTL:           rd.Cache.TTL,
			CacheMaxEntries:    rd.Cache.MaxEntries,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in defaults
//  2. Config File: optional YAML config file (if exists)
//  3. Environment Variables: override any mapped setting
func Load() (*Config, error) {
	return load(findConfigFile())
}

// LoadFile loads configuration like Load but from an explicit YAML path.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH if it exists, else the first default
// path that exists, else "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated env values to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower case) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Library
	"library_store":          "library.store",
	"library_path":           "library.path",
	"library_seed_file":      "library.seed_file",
	"library_stats_interval": "library.stats_interval",

	// Mood service
	"mood_service_url":               "mood_service.url",
	"mood_service_timeout":           "mood_service.timeout",
	"mood_service_rps":               "mood_service.requests_per_second",
	"mood_service_burst":             "mood_service.burst",
	"mood_service_failure_threshold": "mood_service.failure_threshold",
	"mood_service_open_timeout":      "mood_service.open_timeout",

	// Recommendation engine
	"recommend_persona_weight":       "recommend.persona_weight",
	"recommend_match_mode":           "recommend.match_mode",
	"recommend_default_limit":        "recommend.default_limit",
	"recommend_max_limit":            "recommend.max_limit",
	"recommend_short_session_hours":  "recommend.short_session_hours",
	"recommend_medium_session_hours": "recommend.medium_session_hours",
	"recommend_recency_window":       "recommend.recency_window",
	"recommend_fallback_enabled":     "recommend.fallback_enabled",
	"recommend_diversity_enabled":    "recommend.diversity_enabled",
	"recommend_diversity_lambda":     "recommend.diversity_lambda",
	"recommend_cache_enabled":        "recommend.cache_enabled",
	"recommend_cache_ttl":            "recommend.cache_ttl",
	"recommend_cache_max_entries":    "recommend.cache_max_entries",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
}

// envTransformFunc maps an environment variable name to a koanf path.
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
