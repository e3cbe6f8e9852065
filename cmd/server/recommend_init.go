// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamepilot/internal/config"
	"github.com/tomtom215/gamepilot/internal/recommend"
	"github.com/tomtom215/gamepilot/internal/recommend/reranking"
)

// initRecommend creates the recommendation engine, binds it to lib and
// registers the configured rerankers.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, lib recommend.LibraryProvider, logger zerolog.Logger) (*recommend.Engine, error) {
	engineCfg := cfg.EngineConfig()

	logger.Info().
		Str("match_mode", string(engineCfg.MatchMode)).
		Float64("persona_weight", engineCfg.Weights.DefaultPersonaWeight).
		Bool("fallback", engineCfg.Fallback.Enabled).
		Bool("cache", engineCfg.Cache.Enabled).
		Msg("initializing recommendation engine")

	engine, err := recommend.NewEngine(engineCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}
	engine.SetLibrary(lib)
	registerRerankers(engine, engineCfg, logger)
	return engine, nil
}

// registerRerankers registers post-processing rerankers.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func registerRerankers(engine *recommend.Engine, cfg *recommend.Config, logger zerolog.Logger) {
	if !cfg.Diversity.Enabled {
		return
	}
	engine.RegisterReranker(reranking.NewMMR(cfg.Diversity.MMRLambda))
	logger.Debug().Float64("lambda", cfg.Diversity.MMRLambda).Msg("registered MMR diversity reranker")
}
