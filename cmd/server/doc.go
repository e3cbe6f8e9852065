// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

/*
Command server runs the GamePilot HTTP API.

GamePilot recommends games from a personal library based on the player's
current mood, the session length they have available and the time of day,
blended with a persona derived from their play history.

# Application Architecture

	RootSupervisor ("gamepilot")
	├── DataSupervisor ("data-layer")
	│   └── Library stats refresher and cache janitor
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON or console output
 3. Library: BadgerDB or in-memory store, optional JSON seed file
 4. Recommendation engine with optional MMR diversity reranking
 5. Mood service client (circuit breaker and rate limiter)
 6. Chi router with CORS, rate limiting and Prometheus metrics
 7. Supervisor tree (suture v4)

# Configuration

Common environment variables:

	HTTP_PORT=8080
	LOG_LEVEL=info
	LOG_FORMAT=json
	LIBRARY_STORE=badger
	LIBRARY_PATH=/data/library
	LIBRARY_SEED_FILE=/data/games.json
	MOOD_SERVICE_URL=https://moods.example.com
	RECOMMEND_PERSONA_WEIGHT=0.3
	CORS_ORIGINS=https://app.example.com

CONFIG_PATH points at an explicit YAML file.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for HTTP_SHUTDOWN_TIMEOUT before the process exits.
*/
package main
