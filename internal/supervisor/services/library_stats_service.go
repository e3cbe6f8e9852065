// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamepilot/internal/library"
	"github.com/tomtom215/gamepilot/internal/metrics"
	"github.com/tomtom215/gamepilot/internal/recommend"
)

// GameLister is the read side of a library store.
type GameLister interface {
	ListGames(ctx context.Context) ([]recommend.Game, error)
	Version() uint64
}

// CacheCleaner drops expired recommendation cache entries.
type CacheCleaner interface {
	CleanupCache() int
}

// LibraryStatsService periodically publishes library gauges and sweeps the
// recommendation cache.
type LibraryStatsService struct {
	games    GameLister
	cache    CacheCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewLibraryStatsService creates the refresher. cache may be nil. A
// non-positive interval becomes one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLibraryStatsService(games GameLister, cache CacheCleaner, interval time.Duration, logger zerolog.Logger) *LibraryStatsService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &LibraryStatsService{
		games:    games,
		cache:    cache,
		interval: interval,
		logger:   logger.With().Str("service", "library-stats").Logger(),
		name:     "library-stats",
	}
}

// Serve implements suture.Service. It refreshes once on start and then on
// every tick until ctx is canceled. A failed refresh is logged and retried
// on the next tick rather than restarting the service.
func (s *LibraryStatsService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("library stats service starting")

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("initial library stats refresh failed")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("library stats service shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("library stats refresh failed")
			}
		}
	}
}

// Refresh publishes per-status game counts and the library version, then
// removes expired cache entries.
func (s *LibraryStatsService) Refresh(ctx context.Context) error {
	games, err := s.games.ListGames(ctx)
	if err != nil {
		return fmt.Errorf("list games: %w", err)
	}

	counts := library.CountByStatus(games)
	byStatus := make(map[string]int, len(counts))
	for st, n := range counts {
		byStatus[string(st)] = n
	}
	metrics.SetLibraryGames(byStatus, s.games.Version())

	removed := 0
	if s.cache != nil {
		removed = s.cache.CleanupCache()
	}
	s.logger.Debug().
		Int("games", len(games)).
		Int("cache_expired", removed).
		Msg("library stats refreshed")
	return nil
}

// String names the service in supervisor logs.
func (s *LibraryStatsService) String() string {
	return s.name
}
