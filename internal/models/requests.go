// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package models

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64,trimmed"`
}

// CheckinRequest is the body of POST /checkin.
type CheckinRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64,trimmed"`
	Landmark string `json:"landmark" validate:"required,min=1,max=256"`
}
