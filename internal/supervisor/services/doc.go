// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

/*
Package services adapts GamePilot components to suture's Serve(ctx) pattern.

  - HTTPServerService runs the API listener, counts restarts and drains
    connections on shutdown.
  - LibraryStatsService refreshes the library gauges on an interval and
    sweeps expired recommendation cache entries.

Each wrapper returns ctx.Err() on cancellation and a wrapped error on
failure so the supervisor can decide whether to restart it.
*/
package services
