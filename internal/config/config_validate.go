// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package config

import (
	"fmt"
	"net/url"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateLibrary,
		c.validateMoodService,
		c.validateSecurity,
		c.validateRecommend,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP read and write timeouts must be positive")
	}
	switch c.Server.Environment {
	case "development", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Server.Environment)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}

func (c *Config) validateLibrary() error {
	switch c.Library.Store {
	case "memory":
	case "badger":
		if c.Library.Path == "" {
			return fmt.Errorf("LIBRARY_PATH is required for the badger store")
		}
	default:
		return fmt.Errorf("LIBRARY_STORE must be badger or memory, got %q", c.Library.Store)
	}
	if c.Library.StatsInterval <= 0 {
		return fmt.Errorf("LIBRARY_STATS_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) validateMoodService() error {
	ms := c.MoodService
	if ms.URL != "" {
		u, err := url.Parse(ms.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("MOOD_SERVICE_URL must be an http(s) URL, got %q", ms.URL)
		}
	}
	if ms.Timeout <= 0 {
		return fmt.Errorf("MOOD_SERVICE_TIMEOUT must be positive")
	}
	if ms.RequestsPerSecond <= 0 || ms.Burst < 1 {
		return fmt.Errorf("mood service rate limit must allow at least one request")
	}
	if ms.FailureThreshold == 0 {
		return fmt.Errorf("MOOD_SERVICE_FAILURE_THRESHOLD must be at least 1")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	if c.IsProduction() && c.hasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS must not contain * in production")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow < 1e9 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, o := range c.Security.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// validateRecommend delegates to the engine's own validation so both agree.
func (c *Config) validateRecommend() error {
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}
