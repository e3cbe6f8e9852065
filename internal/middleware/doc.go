// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

// Package middleware provides HTTP middleware for request ID tracking and
// Prometheus instrumentation. Both are plain http.HandlerFunc wrappers; the
// API router adapts them for chi.
package middleware
