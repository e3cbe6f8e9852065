// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

// Package library stores the user's game library and converts external
// library payloads into recommendation games.
//
// Two backends are provided: a BadgerDB store for persistence across restarts
// and an in-memory store for tests and the offline CLI. Both satisfy
// recommend.LibraryProvider, so the engine can score either directly.
package library

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/gamepilot/internal/recommend"
)

var (
	// ErrGameNotFound is returned when a game ID is not in the library.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidGame is returned for games that cannot be stored.
	ErrInvalidGame = errors.New("invalid game")
)

// Store is a game library backend.
type Store interface {
	ListGames(ctx context.Context) ([]recommend.Game, error)
	GetGame(ctx context.Context, id string) (recommend.Game, error)
	PutGame(ctx context.Context, g recommend.Game) (recommend.Game, error)
	PutGames(ctx context.Context, games []recommend.Game) (int, error)
	DeleteGame(ctx context.Context, id string) error
	Version() uint64
	Close() error
}

// StoreType selects a backend.
type StoreType string

const (
	// StoreMemory keeps the library in memory only.
	StoreMemory StoreType = "memory"

	// StoreBadger persists the library in BadgerDB.
	StoreBadger StoreType = "badger"
)

// Open creates a store of the given type. path is the BadgerDB directory and
// is ignored for the memory store.
func Open(storeType StoreType, path string) (Store, error) {
	switch storeType {
	case StoreBadger:
		opts := badger.DefaultOptions(path)
		opts.Logger = nil // Suppress BadgerDB logs

		db, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("open badger db for library: %w", err)
		}
		return NewBadgerStore(db, true), nil
	case StoreMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown library store type %q", storeType)
	}
}

// CountByStatus tallies games per play status. Every known status is present.
func CountByStatus(games []recommend.Game) map[recommend.PlayStatus]int {
	counts := make(map[recommend.PlayStatus]int, len(recommend.AllStatuses()))
	for _, s := range recommend.AllStatuses() {
		counts[s] = 0
	}
	for i := range games {
		counts[games[i].PlayStatus]++
	}
	return counts
}

// prepare validates and normalizes g before it is written.
//
//nolint:gocritic // hugeParam: g is copied so the caller's value is untouched
func prepare(g recommend.Game, now func() time.Time) (recommend.Game, error) {
	if g.ID == "" {
		return recommend.Game{}, fmt.Errorf("%w: missing id", ErrInvalidGame)
	}
	if g.Title == "" {
		return recommend.Game{}, fmt.Errorf("%w: game %s has no title", ErrInvalidGame, g.ID)
	}
	g = g.Clone()
	g.Normalize()
	if g.AddedAt.IsZero() {
		g.AddedAt = now().UTC()
	}
	return g, nil
}

// sortGames orders games by the time they were added, then by ID, so every
// backend presents the library in the same order.
func sortGames(games []recommend.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		if !games[i].AddedAt.Equal(games[j].AddedAt) {
			return games[i].AddedAt.Before(games[j].AddedAt)
		}
		return games[i].ID < games[j].ID
	})
}
