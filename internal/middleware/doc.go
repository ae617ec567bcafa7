// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package middleware holds the HTTP middleware shared by every Wayfinder
// route: request IDs, access logging and Prometheus instrumentation.
//
// All middleware uses the func(http.Handler) http.Handler shape so it can be
// mounted with chi's r.Use. Order matters; the router installs:
//
//	r.Use(middleware.RequestID)        // X-Request-ID + logging context
//	r.Use(chimiddleware.RealIP)
//	r.Use(middleware.AccessLog)        // one line per request
//	r.Use(middleware.PrometheusMetrics)
//	r.Use(chimiddleware.Recoverer)
//
// Response writers are wrapped with chi's WrapResponseWriter so websocket
// upgrades (http.Hijacker) keep working through the stack.
package middleware
