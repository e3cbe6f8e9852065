// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// HTTPServer is the lifecycle subset of *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServiceConfig describes the API listener.
type HTTPServiceConfig struct {
	// Addr is the listen address, used for logs and errors.
	Addr string

	// ShutdownTimeout bounds the drain of in-flight requests. Default: 10s.
	ShutdownTimeout time.Duration
}

// HTTPServerService runs the recommendation API listener under the
// supervisor. Every Serve call is counted so restarts show up in the logs
// with their attempt number.
type HTTPServerService struct {
	server          HTTPServer
	addr            string
	shutdownTimeout time.Duration
	logger          zerolog.Logger
	starts          atomic.Int32
}

// NewHTTPServerService wraps server.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHTTPServerService(server HTTPServer, cfg HTTPServiceConfig, logger zerolog.Logger) *HTTPServerService {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		addr:            cfg.Addr,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger.With().Str("service", "http-server").Str("addr", cfg.Addr).Logger(),
	}
}

// Serve implements suture.Service. A listener closed by Shutdown is a clean
// exit; a listen failure is returned so the supervisor restarts the service.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	attempt := h.starts.Add(1)
	if attempt > 1 {
		h.logger.Warn().Int32("attempt", attempt).Msg("Restarting API listener")
	} else {
		h.logger.Info().Msg("API listener starting")
	}

	listenErr := make(chan error, 1)
	go func() { listenErr <- h.server.ListenAndServe() }()

	select {
	case err := <-listenErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", h.addr, err)
	case <-ctx.Done():
		return h.drain(ctx, listenErr)
	}
}

func (h *HTTPServerService) drain(ctx context.Context, listenErr <-chan error) error {
	began := time.Now()
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("drain API listener on %s: %w", h.addr, err)
	}
	<-listenErr
	h.logger.Info().Dur("drained_in", time.Since(began)).Msg("API listener stopped")
	return ctx.Err()
}

// Starts reports how many times Serve has been entered.
func (h *HTTPServerService) Starts() int {
	return int(h.starts.Load())
}

// String names the service in supervisor logs.
func (h *HTTPServerService) String() string {
	return "http-server"
}
