// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

/*
Package config loads GamePilot configuration with Koanf v2.

Sources are layered, later ones winning:

 1. Built-in defaults (recommendation defaults come from recommend.DefaultConfig)
 2. A YAML file: CONFIG_PATH, else config.yaml, config.yml or /etc/gamepilot/
 3. Mapped environment variables

Example config.yaml:

	server:
	  port: 8080
	library:
	  store: badger
	  path: /data/library
	mood_service:
	  url: http://moods:9000
	recommend:
	  persona_weight: 0.4
	  match_mode: all

Common environment variables: HTTP_PORT, LOG_LEVEL, LOG_FORMAT, LIBRARY_STORE,
LIBRARY_PATH, LIBRARY_SEED_FILE, MOOD_SERVICE_URL, RECOMMEND_PERSONA_WEIGHT,
RECOMMEND_MATCH_MODE, CORS_ORIGINS (comma separated), RATE_LIMIT_REQUESTS.
*/
package config
