// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package state

import "errors"

// Store errors. All of them are caller errors: the operation that returned one
// left the store unchanged. Returned errors wrap these sentinels, so test with
// errors.Is.
var (
	// ErrAlreadyExists indicates a registration for a username that is taken.
	ErrAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound indicates the username was never registered.
	ErrUserNotFound = errors.New("user not found")

	// ErrLandmarkNotFound indicates the landmark is not part of the catalog.
	ErrLandmarkNotFound = errors.New("landmark not found")

	// ErrInvalidInput indicates a missing or malformed argument.
	ErrInvalidInput = errors.New("invalid input")
)
