// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package websocket pushes live check-in and leaderboard updates to connected
clients over gorilla/websocket.

A single Hub goroutine owns the client set. Each Client runs a read pump and
a write pump:

	        ┌──────────┐
	        │   Hub    │  BroadcastCheckin / BroadcastLeaderboard
	        └────┬─────┘
	   ┌─────────┼─────────┐
	 Client1  Client2  Client3

Messages are JSON objects with a type and a data payload:

	{"type": "checkin", "data": {"username": "alice", "landmark": "Arbetters Hot Dogs", "points": 10, "landmark_visits": 1, "timestamp": "..."}}
	{"type": "leaderboard", "data": [{"username": "alice", "points": 10}]}

Clients may send {"type": "ping"} and receive {"type": "pong"}.

Broadcasts never block the caller. A client whose send buffer is full is
dropped rather than slowing the hub down.

The hub is run by the supervisor through RunWithContext; cancelling the
context closes every client.
*/
package websocket
