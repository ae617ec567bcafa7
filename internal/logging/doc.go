// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package logging is the zerolog-based structured logging layer for Wayfinder.
//
// Every package logs through the global logger configured here, so a single
// Init call at startup controls level, format and caller info for the whole
// process.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Error().Err(err).Msg("event publish failed")
//
// # Request Context
//
// The API router stores a request ID and a correlation ID in each request
// context. Ctx(ctx) returns a logger that adds both fields:
//
//	logging.Ctx(r.Context()).Info().Str("username", u).Msg("user registered")
//	// {"level":"info","request_id":"...","correlation_id":"...","username":"alice",...}
//
// # slog Bridge
//
// The supervisor tree (suture + sutureslog) and the watermill publisher take
// an *slog.Logger. NewSlogLogger returns one that writes through zerolog, so
// their output shares format and level with the rest of the service.
//
// # Configuration
//
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include file:line (default: false)
//
// Always terminate an event chain with Msg or Send, otherwise nothing is
// written.
package logging
