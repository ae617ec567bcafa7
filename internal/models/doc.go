// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package models defines the JSON request and response shapes of the
// Wayfinder HTTP API.
//
// Response bodies for the three core operations are flat objects kept
// compatible with existing clients:
//
//	POST /register   -> {"message": "Registered!", "username": "alice"}
//	POST /checkin    -> {"message": "alice checked in at Arbetters Hot Dogs!", "points": 10, "landmark_visits": 1}
//	GET /leaderboard -> [{"username": "alice", "points": 10}]
//
// Errors use ErrorResponse:
//
//	{"error": "User not found", "code": "USER_NOT_FOUND", "request_id": "..."}
//
// Validation failures add the offending field:
//
//	{"error": "username is required", "code": "VALIDATION_ERROR", "request_id": "...", "details": {"field": "username", "tag": "required"}}
package models
