// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

// Package moodservice is a client for the external mood service.
//
// The mood service is optional. Every call goes through a token-bucket limiter
// and a circuit breaker, and any failure is logged and answered with a
// hard-coded fallback payload marked Fallback=true. Callers never see an
// error and there is no retry.
package moodservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/gamepilot/internal/metrics"
	"github.com/tomtom215/gamepilot/internal/mood"
)

const (
	breakerName  = "mood-service"
	maxBodyBytes = 1 << 20

	endpointForecast        = "forecast"
	endpointResonance       = "resonance"
	endpointRecommendations = "recommendations"
)

// errDisabled marks calls made without a configured base URL.
var errDisabled = errors.New("mood service not configured")

// Config configures the client.
type Config struct {
	// BaseURL of the service. Empty disables remote calls.
	BaseURL string `koanf:"base_url"`

	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`

	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32        `koanf:"failure_threshold"`
	OpenTimeout      time.Duration `koanf:"open_timeout"`
}

// DefaultConfig returns conservative client settings with remote calls disabled.
func DefaultConfig() Config {
	return Config{
		Timeout:           3 * time.Second,
		RequestsPerSecond: 5,
		Burst:             10,
		FailureThreshold:  5,
		OpenTimeout:       time.Minute,
	}
}

// Client calls the mood service.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[[]byte]
	logger  zerolog.Logger
}

// New creates a client. Zero values in cfg take DefaultConfig values.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg Config, logger zerolog.Logger) *Client {
	def := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = def.RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = def.Burst
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = def.OpenTimeout
	}

	logger = logger.With().Str("component", "moodservice").Logger()

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	threshold := cfg.FailureThreshold
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A caller giving up is not a service failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logger.Info().Str("from", fromStr).Str("to", toStr).Msg("circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		cb:      cb,
		logger:  logger,
	}
}

// Enabled reports whether a base URL is configured.
func (c *Client) Enabled() bool { return c.baseURL != "" }

// State returns the breaker state as "closed", "half-open" or "open".
func (c *Client) State() string { return stateToString(c.cb.State()) }

// Forecast fetches the player's mood forecast.
func (c *Client) Forecast(ctx context.Context) Forecast {
	var out Forecast
	if err := c.fetch(ctx, endpointForecast, nil, &out); err != nil {
		c.warn(endpointForecast, err)
		return fallbackForecast()
	}
	out.Moods = cleanOutlook(out.Moods)
	out.Fallback = false
	return out
}

// Resonance fetches how well gameID fits the player's recent moods.
func (c *Client) Resonance(ctx context.Context, gameID string) Resonance {
	var out Resonance
	if err := c.fetch(ctx, endpointResonance, url.Values{"gameId": {gameID}}, &out); err != nil {
		c.warn(endpointResonance, err)
		return fallbackResonance(gameID)
	}
	if out.GameID == "" {
		out.GameID = gameID
	}
	out.TopMoods = mood.Clean(out.TopMoods)
	out.Fallback = false
	return out
}

// Recommendations fetches the service's suggestions for a mood.
func (c *Client) Recommendations(ctx context.Context, id mood.ID) Suggestions {
	var out Suggestions
	if err := c.fetch(ctx, endpointRecommendations, url.Values{"mood": {string(id)}}, &out); err != nil {
		c.warn(endpointRecommendations, err)
		return fallbackSuggestions(id)
	}
	if out.Mood == "" {
		out.Mood = id
	}
	if out.Items == nil {
		out.Items = []Suggestion{}
	}
	out.Fallback = false
	return out
}

func (c *Client) warn(endpoint string, err error) {
	if errors.Is(err, errDisabled) {
		c.logger.Debug().Str("endpoint", endpoint).Msg("mood service disabled, serving fallback")
		return
	}
	c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("mood service unavailable, serving fallback")
}

// fetch performs a rate-limited, breaker-protected GET and decodes the body into out.
func (c *Client) fetch(ctx context.Context, endpoint string, query url.Values, out any) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordMoodServiceCall(endpoint, time.Since(start), err != nil)
	}()

	if !c.Enabled() {
		return errDisabled
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	reqURL := c.baseURL + "/" + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	body, err := c.execute(func() ([]byte, error) {
		return c.get(ctx, reqURL)
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return body, nil
}

// execute wraps a call with circuit breaker protection and records breaker metrics.
func (c *Client) execute(fn func() ([]byte, error)) ([]byte, error) {
	result, err := c.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
			counts := c.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)
	return result, nil
}

// cleanOutlook drops unknown moods.
func cleanOutlook(in []MoodOutlook) []MoodOutlook {
	out := make([]MoodOutlook, 0, len(in))
	for _, o := range in {
		if o.Mood.Valid() {
			out = append(out, o)
		}
	}
	return out
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
