// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamepilot/internal/config"
	"github.com/tomtom215/gamepilot/internal/library"
)

// initLibrary opens the configured store and loads the seed file, if any.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initLibrary(ctx context.Context, cfg *config.LibraryConfig, logger zerolog.Logger) (library.Store, error) {
	store, err := library.Open(library.StoreType(cfg.Store), cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	logger.Info().Str("store", cfg.Store).Str("path", cfg.Path).Msg("library opened")

	if cfg.SeedFile == "" {
		return store, nil
	}
	if err := seedLibrary(ctx, store, cfg.SeedFile, logger); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// seedLibrary imports a JSON game export into store. Existing games with the
// same IDs are overwritten.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func seedLibrary(ctx context.Context, store library.Store, path string, logger zerolog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	games, skipped, err := library.DecodeGames(f)
	if err != nil {
		return fmt.Errorf("decode seed file %s: %w", path, err)
	}
	n, err := store.PutGames(ctx, games)
	if err != nil {
		return fmt.Errorf("store seed games: %w", err)
	}

	evt := logger.Info()
	if skipped > 0 {
		evt = logger.Warn()
	}
	evt.Str("file", path).Int("loaded", n).Int("skipped", skipped).Msg("library seeded")
	return nil
}
