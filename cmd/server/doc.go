// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package main is the entry point for the Wayfinder server.

Wayfinder is a landmark check-in service: users register, check in at
landmarks from a fixed catalog, earn points and compete on a leaderboard.
All state lives in memory and is lost on restart.

# Startup

 1. Configuration: koanf v2 (defaults, optional YAML, environment)
 2. Logging: zerolog with the configured level and format
 3. State store seeded with the landmark catalog
 4. WebSocket hub (REALTIME_ENABLED)
 5. Event publisher to NATS (NATS_ENABLED)
 6. chi router and HTTP server
 7. suture supervisor tree running the hub and the server

# Shutdown

SIGINT or SIGTERM cancels the tree. The HTTP server drains connections,
the hub closes its clients, in-flight events are flushed and the NATS
connection is closed.

# Quick Start

	go run ./cmd/server
	curl -X POST localhost:4444/register -d '{"username":"alice"}'
	curl -X POST localhost:4444/checkin -d '{"username":"alice","landmark":"Arbetters Hot Dogs"}'
	curl localhost:4444/leaderboard

See internal/config for every setting.
*/
package main
