// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package api is the HTTP transport for Wayfinder.

It translates wire requests into state.Store operations and serializes their
results. Routing uses chi with the production middleware from the chi
ecosystem (RealIP, Recoverer, go-chi/cors, go-chi/httprate).

Routes:

	POST /register                   register a user
	POST /checkin                    check a user in at a landmark
	GET  /leaderboard                ranked users
	GET  /metrics                    Prometheus

	GET  /api/v1/health              health with store stats
	GET  /api/v1/health/live         liveness probe
	GET  /api/v1/health/ready        readiness probe
	POST /api/v1/register            same as /register
	POST /api/v1/checkin             same as /checkin
	GET  /api/v1/leaderboard         same as /leaderboard
	GET  /api/v1/landmarks           catalog with visit counts
	GET  /api/v1/users/{username}    user profile with history
	GET  /api/v1/ws                  live check-in feed (WebSocket)

Errors are written as {"error", "code", "request_id"}; validation errors
add "details" naming the offending field:

	400 BAD_REQUEST          body is not a single valid JSON object
	400 VALIDATION_ERROR     missing or malformed fields
	404 USER_NOT_FOUND       unknown username
	404 LANDMARK_NOT_FOUND   landmark not in the catalog
	409 USER_EXISTS          username already registered
	429 RATE_LIMITED         per-IP limit exceeded
	500 INTERNAL_ERROR       anything else

After a successful write the handler broadcasts on the WebSocket hub and
publishes a domain event. Both happen after the store has committed and
neither can fail the request. Leaderboard snapshots carry the store
revision they were read at, so the hub never ends on an older one.
*/
package api
