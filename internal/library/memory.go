// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package library

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/gamepilot/internal/recommend"
)

// MemoryStore implements Store in memory. Contents are lost on exit.
type MemoryStore struct {
	mu      sync.RWMutex
	games   map[string]recommend.Game
	version atomic.Uint64
	now     func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{games: make(map[string]recommend.Game), now: time.Now}
	s.version.Store(1)
	return s
}

// ListGames returns deep copies of every game ordered by AddedAt, then ID.
func (s *MemoryStore) ListGames(ctx context.Context) ([]recommend.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	games := make([]recommend.Game, 0, len(s.games))
	for id := range s.games {
		g := s.games[id]
		games = append(games, g.Clone())
	}
	s.mu.RUnlock()

	sortGames(games)
	return games, nil
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(_ context.Context, id string) (recommend.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return recommend.Game{}, ErrGameNotFound
	}
	return g.Clone(), nil
}

// PutGame creates or replaces a game.
//
//nolint:gocritic // hugeParam: Game passed by value to match Store
func (s *MemoryStore) PutGame(ctx context.Context, g recommend.Game) (recommend.Game, error) {
	stored, err := s.put(ctx, []recommend.Game{g})
	if err != nil {
		return recommend.Game{}, err
	}
	return stored[0], nil
}

// PutGames writes all games or none.
func (s *MemoryStore) PutGames(ctx context.Context, games []recommend.Game) (int, error) {
	stored, err := s.put(ctx, games)
	return len(stored), err
}

func (s *MemoryStore) put(ctx context.Context, games []recommend.Game) ([]recommend.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prepared := make([]recommend.Game, 0, len(games))
	for i := range games {
		g, err := prepare(games[i], s.now)
		if err != nil {
			return nil, err
		}
		prepared = append(prepared, g)
	}
	if len(prepared) == 0 {
		return prepared, nil
	}

	s.mu.Lock()
	for i := range prepared {
		if prev, ok := s.games[prepared[i].ID]; ok && games[i].AddedAt.IsZero() {
			prepared[i].AddedAt = prev.AddedAt
		}
		s.games[prepared[i].ID] = prepared[i].Clone()
	}
	s.mu.Unlock()

	s.version.Add(1)
	return prepared, nil
}

// DeleteGame removes a game.
func (s *MemoryStore) DeleteGame(_ context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.games[id]
	delete(s.games, id)
	s.mu.Unlock()

	if !ok {
		return ErrGameNotFound
	}
	s.version.Add(1)
	return nil
}

// Version changes after every successful write.
func (s *MemoryStore) Version() uint64 {
	return s.version.Load()
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
