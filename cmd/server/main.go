// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/gamepilot/internal/api"
	"github.com/tomtom215/gamepilot/internal/config"
	"github.com/tomtom215/gamepilot/internal/logging"
	"github.com/tomtom215/gamepilot/internal/moodservice"
	"github.com/tomtom215/gamepilot/internal/supervisor"
	"github.com/tomtom215/gamepilot/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("library_store", cfg.Library.Store).
		Bool("mood_service", cfg.MoodService.URL != "").
		Msg("Starting GamePilot with supervisor tree")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		logging.Fatal().Err(err).Msg("GamePilot stopped with an error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run wires the components and blocks until ctx is canceled.
func run(ctx context.Context, cfg *config.Config) error {
	store, err := initLibrary(ctx, &cfg.Library, logging.WithComponent("library"))
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing library store")
		}
	}()

	engine, err := initRecommend(cfg, store, logging.WithComponent("recommend"))
	if err != nil {
		return err
	}

	moods := moodservice.New(cfg.MoodServiceClientConfig(), logging.WithComponent("moodservice"))
	if !moods.Enabled() {
		logging.Info().Msg("Mood service URL not set, serving fallback mood data")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	handler := api.NewHandler(store, engine, moods)
	middleware := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, middleware)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewLibraryStatsService(
		store, engine, cfg.Library.StatsInterval, logging.WithComponent("supervisor")))
	tree.AddAPIService(services.NewHTTPServerService(server, services.HTTPServiceConfig{
		Addr:            server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logging.WithComponent("supervisor")))

	treeErr := waitForTree(ctx, tree.ServeBackground(ctx))

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return treeErr
}

// waitForTree blocks until the supervisor tree exits. A tree stopped by
// cancellation is a clean shutdown; anything else is returned wrapped.
func waitForTree(ctx context.Context, errCh <-chan error) error {
	var err error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		err = <-errCh
	case err = <-errCh:
	}
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	logging.Error().Err(err).Msg("Supervisor tree error")
	return fmt.Errorf("supervisor tree: %w", err)
}
