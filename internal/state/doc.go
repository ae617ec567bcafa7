// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package state holds the in-memory state of the Wayfinder service.
//
// A Store owns three related mappings:
//
//   - users: username -> accumulated points
//   - landmarks: landmark name -> coordinates and visit counter
//   - check-ins: username -> append-only history of check-in records
//
// All mutations go through Register and CheckIn, and all reads return copies,
// so no caller ever holds a writable reference into the store.
//
// # Invariants
//
// After any sequence of operations the following hold:
//
//   - points == PointsPerCheckin * len(history) for every user
//   - visits == number of records referencing the landmark, across all users
//   - every record references a landmark of the catalog
//
// # Thread Safety
//
// A single sync.RWMutex guards the whole store. Register and CheckIn take the
// write lock for the full transaction, so a reader never observes a visit
// counter without the matching record and point increment. Leaderboard and the
// other read operations take the read lock and return a consistent snapshot.
// The critical sections are map lookups and integer increments, which keeps a
// coarse lock cheap.
//
// # Example
//
//	store, err := state.NewStore(state.DefaultCatalog())
//	if err != nil {
//	    return err
//	}
//	if _, err := store.Register("alice"); err != nil {
//	    return err
//	}
//	outcome, err := store.CheckIn("alice", "Arbetters Hot Dogs")
//	// outcome.Points == 10, outcome.LandmarkVisits == 1
package state
