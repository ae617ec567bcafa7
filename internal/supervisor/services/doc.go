// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package services adapts Wayfinder components to suture.Service.
//
// HTTPServerService turns http.Server's ListenAndServe/Shutdown pair into a
// context-aware Serve. WebSocketHubService delegates to the hub's
// RunWithContext. Both implement fmt.Stringer so supervisor logs name them.
package services
