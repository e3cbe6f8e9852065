// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

/*
Package supervisor runs GamePilot's long-lived services under a suture v4
supervision tree.

The tree is rooted at "gamepilot" with two child supervisors:

	gamepilot
	├── data-layer   library stats refresher, cache janitor
	└── api-layer    HTTP server

Each layer restarts its own services with exponential backoff. Supervisor
events are logged through sutureslog into the application's zerolog logger
(see logging.NewSlogLogger).

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewLibraryStatsService(store, engine, time.Minute, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, services.HTTPServiceConfig{Addr: server.Addr}, logger))
	return tree.Serve(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
