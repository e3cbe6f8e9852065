// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package library

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/gamepilot/internal/recommend"
)

// Key prefix for BadgerDB storage
const gameKeyPrefix = "game:"

// BadgerStore implements Store using BadgerDB for durable storage.
type BadgerStore struct {
	db      *badger.DB
	ownsDB  bool
	version atomic.Uint64
	now     func() time.Time
}

var (
	_ Store                     = (*BadgerStore)(nil)
	_ recommend.LibraryProvider = (*BadgerStore)(nil)
)

// NewBadgerStore creates a BadgerDB-backed library store. When ownsDB is true,
// Close also closes db.
func NewBadgerStore(db *badger.DB, ownsDB bool) *BadgerStore {
	s := &BadgerStore{db: db, ownsDB: ownsDB, now: time.Now}
	s.version.Store(1)
	return s
}

func gameKey(id string) []byte {
	return []byte(gameKeyPrefix + id)
}

// ListGames returns every stored game ordered by AddedAt, then ID.
func (s *BadgerStore) ListGames(ctx context.Context) ([]recommend.Game, error) {
	var games []recommend.Game

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var g recommend.Game
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &g)
			})
			if err != nil {
				return fmt.Errorf("decode game %s: %w", it.Item().Key(), err)
			}
			games = append(games, g)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	sortGames(games)
	return games, nil
}

// GetGame retrieves a game by ID.
func (s *BadgerStore) GetGame(ctx context.Context, id string) (recommend.Game, error) {
	var g recommend.Game

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrGameNotFound
		}
		if err != nil {
			return fmt.Errorf("get game: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &g)
		})
	})
	if err != nil {
		return recommend.Game{}, err
	}
	return g, nil
}

// PutGame creates or replaces a game and returns the stored value.
// An existing game keeps its original AddedAt unless g sets one.
//
//nolint:gocritic // hugeParam: Game passed by value to match Store
func (s *BadgerStore) PutGame(ctx context.Context, g recommend.Game) (recommend.Game, error) {
	stored, err := s.put(ctx, []recommend.Game{g})
	if err != nil {
		return recommend.Game{}, err
	}
	return stored[0], nil
}

// PutGames writes games in a single transaction. Nothing is written if any
// game is invalid.
func (s *BadgerStore) PutGames(ctx context.Context, games []recommend.Game) (int, error) {
	stored, err := s.put(ctx, games)
	return len(stored), err
}

func (s *BadgerStore) put(ctx context.Context, games []recommend.Game) ([]recommend.Game, error) {
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

	err := s.db.Update(func(txn *badger.Txn) error {
		for i := range prepared {
			key := gameKey(prepared[i].ID)
			if games[i].AddedAt.IsZero() {
				if added, ok := existingAddedAt(txn, key); ok {
					prepared[i].AddedAt = added
				}
			}
			data, err := json.Marshal(prepared[i])
			if err != nil {
				return fmt.Errorf("marshal game %s: %w", prepared[i].ID, err)
			}
			if err := txn.Set(key, data); err != nil {
				return fmt.Errorf("set game %s: %w", prepared[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.version.Add(1)
	return prepared, nil
}

func existingAddedAt(txn *badger.Txn, key []byte) (time.Time, bool) {
	item, err := txn.Get(key)
	if err != nil {
		return time.Time{}, false
	}
	var prev recommend.Game
	if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &prev) }); err != nil {
		return time.Time{}, false
	}
	return prev.AddedAt, !prev.AddedAt.IsZero()
}

// DeleteGame removes a game. Deleting a missing game returns ErrGameNotFound.
func (s *BadgerStore) DeleteGame(ctx context.Context, id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		key := gameKey(id)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrGameNotFound
			}
			return fmt.Errorf("get game: %w", err)
		}
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete game: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.version.Add(1)
	return nil
}

// Version changes after every successful write.
func (s *BadgerStore) Version() uint64 {
	return s.version.Load()
}

// Close closes the database if the store owns it.
func (s *BadgerStore) Close() error {
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}
