// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package config loads Wayfinder configuration with koanf.

Values are layered, later layers winning:

 1. Struct defaults (defaultConfig)
 2. YAML file: $CONFIG_PATH, else config.yaml, config.yml,
    /etc/wayfinder/config.yaml, /etc/wayfinder/config.yml
 3. Environment variables, mapped explicitly by envTransformFunc

Unmapped environment variables are ignored.

# Environment Variables

Server:
  - HTTP_HOST (default: 0.0.0.0)
  - HTTP_PORT (default: 4444)
  - HTTP_TIMEOUT (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT (default: 10s)
  - ENVIRONMENT (default: development)

Security:
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS (default: 100)
  - RATE_LIMIT_WINDOW (default: 1m)
  - DISABLE_RATE_LIMIT (default: false)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Realtime:
  - REALTIME_ENABLED (default: true)

NATS event publishing:
  - NATS_ENABLED (default: false)
  - NATS_URL (default: nats://127.0.0.1:4222)
  - NATS_SUBJECT_PREFIX (default: wayfinder)
  - NATS_JETSTREAM (default: false, core NATS publish)
  - NATS_MAX_RECONNECTS, NATS_RECONNECT_WAIT
  - NATS_BREAKER_FAILURES, NATS_BREAKER_TIMEOUT

The landmark catalog is only configurable from YAML:

	catalog:
	  landmarks:
	    - name: Arbetters Hot Dogs
	      lat: 25.733552302746368
	      lng: -80.33680016181258

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	store, err := state.NewStore(cfg.Catalog.Seeds())
*/
package config
