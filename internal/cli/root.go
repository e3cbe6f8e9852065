// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

// Package cli provides the gamepilot command-line interface. It scores a
// JSON library export offline with the same engine the server uses.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomtom215/gamepilot/internal/config"
	"github.com/tomtom215/gamepilot/internal/library"
	"github.com/tomtom215/gamepilot/internal/recommend"
	"github.com/tomtom215/gamepilot/internal/recommend/reranking"
)

// Version is set at build time.
var Version = "0.1.0"

// options holds the global flags.
type options struct {
	libraryPath string
	configPath  string
	jsonOutput  bool
	verbose     bool
}

// NewRootCmd builds the gamepilot command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "gamepilot",
		Short: "Mood-based game recommendations from your library",
		Long: `GamePilot picks what to play from your own game library based on
how you feel, how long you have and what time it is.

The library is a JSON export: either an array of games or {"games": [...]}.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.libraryPath, "library", "l", "games.json", "library export to read")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: search config.yaml)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print JSON instead of text")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newRecommendCmd(opts))
	root.AddCommand(newMoodsCmd(opts))
	root.AddCommand(newPersonaCmd(opts))
	root.AddCommand(newTagCmd(opts))
	root.AddCommand(newLaunchCmd(opts))

	return root
}

// Execute runs the command tree and reports errors on stderr.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// loadConfig reads the explicit config file, or searches the default paths.
func (o *options) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFile(o.configPath)
	}
	return config.Load()
}

// loadGames decodes the library export.
func (o *options) loadGames(cmd *cobra.Command) ([]recommend.Game, error) {
	f, err := os.Open(o.libraryPath)
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	defer f.Close()

	games, skipped, err := library.DecodeGames(f)
	if err != nil {
		return nil, err
	}
	if skipped > 0 && o.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipped %d games without an id\n", skipped)
	}
	return games, nil
}

// newEngine loads config and library into an in-memory engine.
func (o *options) newEngine(cmd *cobra.Command) (*recommend.Engine, []recommend.Game, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	games, err := o.loadGames(cmd)
	if err != nil {
		return nil, nil, err
	}

	ctx := ctxOrBackground(cmd)
	store := library.NewMemoryStore()
	if _, err := store.PutGames(ctx, games); err != nil {
		return nil, nil, fmt.Errorf("load library: %w", err)
	}

	logger := zerolog.Nop()
	if o.verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
	}
	engineCfg := cfg.EngineConfig()
	engine, err := recommend.NewEngine(engineCfg, logger)
	if err != nil {
		return nil, nil, err
	}
	engine.SetLibrary(store)
	if engineCfg.Diversity.Enabled {
		engine.RegisterReranker(reranking.NewMMR(engineCfg.Diversity.MMRLambda))
	}

	stored, err := store.ListGames(ctx)
	if err != nil {
		return nil, nil, err
	}
	return engine, stored, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// findGame returns the game with id.
func findGame(games []recommend.Game, id string) (recommend.Game, error) {
	for i := range games {
		if games[i].ID == id {
			return games[i], nil
		}
	}
	return recommend.Game{}, fmt.Errorf("game %q not found in library", id)
}

// ctxOrBackground keeps commands usable when run without ExecuteContext.
func ctxOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
