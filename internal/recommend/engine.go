// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/gamepilot/internal/cache"
	"github.com/tomtom215/gamepilot/internal/mood"
)

// ErrNoLibrary is returned when the engine has no library provider.
var ErrNoLibrary = errors.New("recommend: library provider not set")

// LibraryProvider supplies the game snapshot the engine scores.
// It is implemented by the library store.
type LibraryProvider interface {
	// ListGames returns every game in the library.
	ListGames(ctx context.Context) ([]Game, error)

	// Version changes whenever the library content changes.
	Version() uint64
}

// Request is a recommendation request against the whole library.
type Request struct {
	RequestID string
	Filters   Filters

	// PersonaWeight overrides Weights.DefaultPersonaWeight when set.
	PersonaWeight *float64

	// Limit is clamped to Limits.MaxLimit. Zero means Limits.DefaultLimit.
	Limit int

	// Now enables the recency bonus. Truncated to the minute.
	Now time.Time
}

// Response carries ranked recommendations and how they were produced.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	Persona         PersonaContext   `json:"persona"`
	Fallback        bool             `json:"fallback"`
	Metadata        ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes a recommendation pass.
type ResponseMetadata struct {
	RequestID      string    `json:"request_id"`
	LibrarySize    int       `json:"library_size"`
	Returned       int       `json:"returned"`
	LibraryVersion uint64    `json:"library_version"`
	Rerankers      []string  `json:"rerankers,omitempty"`
	CacheHit       bool      `json:"cache_hit"`
	LatencyMS      int64     `json:"latency_ms"`
	Timestamp      time.Time `json:"timestamp"`
}

// Metrics holds engine counters.
type Metrics struct {
	RequestCount  int64 `json:"request_count"`
	CacheHits     int64 `json:"cache_hits"`
	CacheMisses   int64 `json:"cache_misses"`
	ErrorCount    int64 `json:"error_count"`
	FallbackCount int64 `json:"fallback_count"`
}

// Engine serves recommendations over a library provider. Safe for concurrent use.
type Engine struct {
	cfgMu  sync.RWMutex
	config *Config
	logger zerolog.Logger

	rerankers []Reranker
	rrMu      sync.RWMutex

	library LibraryProvider
	cache   *cache.LRU[*Response]

	requestCount  atomic.Int64
	cacheHits     atomic.Int64
	cacheMisses   atomic.Int64
	errorCount    atomic.Int64
	fallbackCount atomic.Int64
}

// NewEngine validates cfg and creates an engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
		cache:  cache.NewLRU[*Response](cfg.Cache.MaxEntries, cfg.Cache.TTL),
	}, nil
}

// SetLibrary sets the game source.
func (e *Engine) SetLibrary(p LibraryProvider) {
	e.library = p
}

// RegisterReranker appends a reranker to the post-processing chain.
func (e *Engine) RegisterReranker(rr Reranker) {
	e.rrMu.Lock()
	defer e.rrMu.Unlock()

	e.rerankers = append(e.rerankers, rr)
	e.logger.Info().Str("reranker", rr.Name()).Msg("registered reranker")
}

// Recommend runs the full pipeline: snapshot, persona, scoring, rerank and
// fallback. Responses are cached per request and library version.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)
	cfg := e.GetConfig()
	req = prepareRequest(req, cfg)

	logger := e.logger.With().Str("request_id", req.RequestID).Logger()

	if e.library == nil {
		e.errorCount.Add(1)
		return nil, ErrNoLibrary
	}

	version := e.library.Version()
	key := cacheKey(req, version)
	if cfg.Cache.Enabled {
		if cached, ok := e.cache.Get(key); ok {
			e.cacheHits.Add(1)
			resp := copyResponse(cached)
			resp.Metadata.RequestID = req.RequestID
			resp.Metadata.CacheHit = true
			resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
			logger.Debug().Msg("cache hit")
			return resp, nil
		}
		e.cacheMisses.Add(1)
	}

	games, err := e.library.ListGames(ctx)
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("load library: %w", err)
	}

	persona := BuildPersonaContext(games, cfg)
	opts := Options{PersonaWeight: *req.PersonaWeight, Limit: req.Limit, Now: req.Now}
	recs := Recommend(games, persona, req.Filters, opts, cfg)

	fallback := false
	if len(recs) == 0 && cfg.Fallback.Enabled && len(games) > 0 {
		recs = Fallback(games, req.Filters.ExcludeIDs, req.Limit, cfg)
		fallback = len(recs) > 0
		if fallback {
			e.fallbackCount.Add(1)
			logger.Info().
				Int("library_size", len(games)).
				Msg("no contextual match, serving fallback recommendations")
		}
	}

	rerankers := e.applyRerankers(ctx, &recs, req.Limit, fallback)

	resp := &Response{
		Recommendations: recs,
		Persona:         persona,
		Fallback:        fallback,
		Metadata: ResponseMetadata{
			RequestID:      req.RequestID,
			LibrarySize:    len(games),
			Returned:       len(recs),
			LibraryVersion: version,
			Rerankers:      rerankers,
			LatencyMS:      time.Since(start).Milliseconds(),
			Timestamp:      time.Now().UTC(),
		},
	}
	if cfg.Cache.Enabled {
		e.cache.Add(key, copyResponse(resp))
	}

	logger.Debug().
		Int("library_size", len(games)).
		Int("returned", len(recs)).
		Bool("fallback", fallback).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// MoodGames lists library games that fit a mood, best first.
func (e *Engine) MoodGames(ctx context.Context, id mood.ID, limit int) ([]ScoredGame, error) {
	if e.library == nil {
		return nil, ErrNoLibrary
	}
	cfg := e.GetConfig()
	if limit <= 0 {
		limit = cfg.Limits.DefaultLimit
	}
	if limit > cfg.Limits.MaxLimit {
		limit = cfg.Limits.MaxLimit
	}

	games, err := e.library.ListGames(ctx)
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("load library: %w", err)
	}
	return FilterGamesByMood(games, id, limit, cfg), nil
}

// Persona builds the persona for the current library.
func (e *Engine) Persona(ctx context.Context) (PersonaContext, error) {
	if e.library == nil {
		return PersonaContext{}, ErrNoLibrary
	}
	games, err := e.library.ListGames(ctx)
	if err != nil {
		e.errorCount.Add(1)
		return PersonaContext{}, fmt.Errorf("load library: %w", err)
	}
	return BuildPersonaContext(games, e.GetConfig()), nil
}

// GetMetrics returns a snapshot of the engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount:  e.requestCount.Load(),
		CacheHits:     e.cacheHits.Load(),
		CacheMisses:   e.cacheMisses.Load(),
		ErrorCount:    e.errorCount.Load(),
		FallbackCount: e.fallbackCount.Load(),
	}
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	e.cfgMu.RLock()
	defer e.cfgMu.RUnlock()
	return e.config.Clone()
}

// UpdateConfig validates and swaps the configuration, then clears the cache.
func (e *Engine) UpdateConfig(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	e.cfgMu.Lock()
	e.config = cfg.Clone()
	e.cfgMu.Unlock()

	e.cache.Clear()
	e.logger.Info().Msg("configuration updated")
	return nil
}

// InvalidateCache drops every cached response.
func (e *Engine) InvalidateCache() {
	e.cache.Clear()
}

// CleanupCache removes expired cache entries.
func (e *Engine) CleanupCache() int {
	return e.cache.CleanupExpired()
}

// applyRerankers runs registered rerankers over recs in place and returns
// their names. Fallback lists are left as they are.
func (e *Engine) applyRerankers(ctx context.Context, recs *[]Recommendation, k int, fallback bool) []string {
	if fallback || len(*recs) == 0 {
		return nil
	}
	e.rrMu.RLock()
	defer e.rrMu.RUnlock()

	names := make([]string, 0, len(e.rerankers))
	for _, rr := range e.rerankers {
		*recs = rr.Rerank(ctx, *recs, k)
		names = append(names, rr.Name())
	}
	return names
}

// prepareRequest applies defaults and limits.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func prepareRequest(req Request, cfg *Config) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.Limit <= 0 {
		req.Limit = cfg.Limits.DefaultLimit
	}
	if req.Limit > cfg.Limits.MaxLimit {
		req.Limit = cfg.Limits.MaxLimit
	}
	w := cfg.Weights.DefaultPersonaWeight
	if req.PersonaWeight != nil {
		w = clampUnit(*req.PersonaWeight)
	}
	req.PersonaWeight = &w
	if !req.Now.IsZero() {
		req.Now = req.Now.Truncate(time.Minute)
	}
	return req
}

//nolint:gocritic // hugeParam: req passed by value for simplicity
func cacheKey(req Request, version uint64) string {
	f := req.Filters
	var b strings.Builder
	fmt.Fprintf(&b, "v%d|moods=", version)
	for _, m := range f.SelectedMoods {
		b.WriteString(string(m))
		b.WriteByte(',')
	}
	if f.SelectedSessionLength != nil {
		fmt.Fprintf(&b, "|session=%s", *f.SelectedSessionLength)
	}
	if f.TimeOfDay != nil {
		fmt.Fprintf(&b, "|time=%s|req=%t", *f.TimeOfDay, f.RequireTimeOfDay)
	}
	fmt.Fprintf(&b, "|mode=%s|exclude=", f.MatchMode)
	// IDs are free text, so each one is quoted to keep the list unambiguous.
	for _, id := range f.ExcludeIDs {
		fmt.Fprintf(&b, "%q,", id)
	}
	fmt.Fprintf(&b, "|w=%.4f|k=%d|now=%d", *req.PersonaWeight, req.Limit, req.Now.Unix())
	return b.String()
}

func copyResponse(r *Response) *Response {
	cp := *r
	cp.Recommendations = make([]Recommendation, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		rec.Reasons = append([]string(nil), rec.Reasons...)
		cp.Recommendations[i] = rec
	}
	cp.Persona.DominantMoods = append([]mood.ID(nil), r.Persona.DominantMoods...)
	cp.Persona.PreferredTimesOfDay = append([]TimeOfDay(nil), r.Persona.PreferredTimesOfDay...)
	cp.Metadata.Rerankers = append([]string(nil), r.Metadata.Rerankers...)
	return &cp
}
