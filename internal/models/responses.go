// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package models

import "time"

// RegisterResponse is returned with 201 Created.
type RegisterResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// CheckinResponse is returned after a successful check-in.
type CheckinResponse struct {
	Message        string `json:"message"`
	Points         int    `json:"points"`
	LandmarkVisits int    `json:"landmark_visits"`
}

// LeaderboardEntry is one row of GET /leaderboard.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
}

// Landmark is one catalog entry with its visit count.
type Landmark struct {
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Visits int     `json:"visits"`
}

// CheckinRecord is one entry of a user's check-in history.
type CheckinRecord struct {
	Landmark string `json:"landmark"`
	Seq      int    `json:"seq"`
}

// UserProfile is returned by GET /api/v1/users/{username}.
type UserProfile struct {
	Username string          `json:"username"`
	Points   int             `json:"points"`
	Checkins []CheckinRecord `json:"checkins"`
}

// ErrorResponse is the body of every non-2xx response written by handlers.
type ErrorResponse struct {
	Error     string                 `json:"error"`
	Code      string                 `json:"code"`
	RequestID string                 `json:"request_id,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"` // validation failures only
}

// HealthStatus is returned by GET /api/v1/health.
type HealthStatus struct {
	Status          string       `json:"status"`
	Version         string       `json:"version"`
	Uptime          float64      `json:"uptime_seconds"`
	Users           int          `json:"users"`
	Landmarks       int          `json:"landmarks"`
	Checkins        int          `json:"checkins"`
	Realtime        bool         `json:"realtime"`
	RealtimeClients int          `json:"realtime_clients"`
	Events          EventsHealth `json:"events"`
	Timestamp       time.Time    `json:"timestamp"`
}

// EventsHealth describes the event publisher.
type EventsHealth struct {
	Enabled      bool   `json:"enabled"`
	BreakerState string `json:"breaker_state,omitempty"`
}

// ProbeStatus is returned by the liveness and readiness probes.
type ProbeStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}
