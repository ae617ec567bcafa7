// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package state

import (
	"fmt"
	"sort"
	"sync"
)

// PointsPerCheckin is the number of points a user earns for one check-in.
const PointsPerCheckin = 10

// Landmark is a read-only view of a catalog entry.
type Landmark struct {
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Visits int     `json:"visits"`
}

// User is a read-only view of a registered user.
type User struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
}

// CheckinRecord is one entry of a user's history. Seq is the 1-based
// position of the record in that history.
type CheckinRecord struct {
	Landmark string `json:"landmark"`
	Seq      int    `json:"seq"`
}

// CheckInOutcome is the result of a successful CheckIn. Points and
// LandmarkVisits are the totals right after the transaction.
type CheckInOutcome struct {
	Username       string `json:"username"`
	Landmark       string `json:"landmark"`
	Points         int    `json:"points"`
	LandmarkVisits int    `json:"landmark_visits"`
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
}

// UserProfile is a snapshot of a user with the full check-in history.
type UserProfile struct {
	Username string          `json:"username"`
	Points   int             `json:"points"`
	Checkins []CheckinRecord `json:"checkins"`
}

// Stats summarizes the size of the store.
type Stats struct {
	Users     int `json:"users"`
	Landmarks int `json:"landmarks"`
	Checkins  int `json:"checkins"`
}

type landmarkEntry struct {
	lat    float64
	lng    float64
	visits int
}

// Store is the in-memory state of the service. The zero value is not usable;
// construct one with NewStore.
type Store struct {
	mu sync.RWMutex

	points   map[string]int
	checkins map[string][]CheckinRecord
	// users holds usernames in registration order; the leaderboard tie-break
	// depends on it.
	users []string

	landmarks map[string]*landmarkEntry
	catalog   []string

	totalCheckins int
	// revision counts successful writes.
	revision uint64
}

// NewStore creates a store seeded with the given landmark catalog.
// The catalog is fixed for the lifetime of the store.
func NewStore(seeds []LandmarkSeed) (*Store, error) {
	if err := ValidateCatalog(seeds); err != nil {
		return nil, err
	}

	s := &Store{
		points:    make(map[string]int),
		checkins:  make(map[string][]CheckinRecord),
		landmarks: make(map[string]*landmarkEntry, len(seeds)),
		catalog:   make([]string, 0, len(seeds)),
	}
	for _, seed := range seeds {
		s.landmarks[seed.Name] = &landmarkEntry{lat: seed.Lat, lng: seed.Lng}
		s.catalog = append(s.catalog, seed.Name)
	}
	return s, nil
}

// Register creates a user with zero points and an empty history.
func (s *Store) Register(username string) (User, error) {
	if username == "" {
		return User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.points[username]; exists {
		return User{}, fmt.Errorf("%w: %q", ErrAlreadyExists, username)
	}

	s.points[username] = 0
	s.checkins[username] = []CheckinRecord{}
	s.users = append(s.users, username)
	s.revision++

	return User{Username: username, Points: 0}, nil
}

// CheckIn records a visit of username at landmarkName. The record append, the
// visit increment and the point increment are applied under one lock, so they
// become visible together or not at all.
func (s *Store) CheckIn(username, landmarkName string) (CheckInOutcome, error) {
	if username == "" {
		return CheckInOutcome{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if landmarkName == "" {
		return CheckInOutcome{}, fmt.Errorf("%w: landmark is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	points, ok := s.points[username]
	if !ok {
		return CheckInOutcome{}, fmt.Errorf("%w: %q", ErrUserNotFound, username)
	}
	landmark, ok := s.landmarks[landmarkName]
	if !ok {
		return CheckInOutcome{}, fmt.Errorf("%w: %q", ErrLandmarkNotFound, landmarkName)
	}

	history := s.checkins[username]
	s.checkins[username] = append(history, CheckinRecord{
		Landmark: landmarkName,
		Seq:      len(history) + 1,
	})
	landmark.visits++
	points += PointsPerCheckin
	s.points[username] = points
	s.totalCheckins++
	s.revision++

	return CheckInOutcome{
		Username:       username,
		Landmark:       landmarkName,
		Points:         points,
		LandmarkVisits: landmark.visits,
	}, nil
}

// Leaderboard returns all users sorted by points, highest first. Users with
// equal points keep their registration order. The result is never nil.
func (s *Store) Leaderboard() []LeaderboardEntry {
	entries, _ := s.LeaderboardSnapshot()
	return entries
}

// LeaderboardSnapshot returns the leaderboard together with the store
// revision it was read at. A higher revision is a newer snapshot.
func (s *Store) LeaderboardSnapshot() ([]LeaderboardEntry, uint64) {
	s.mu.RLock()
	entries := make([]LeaderboardEntry, len(s.users))
	for i, username := range s.users {
		entries[i] = LeaderboardEntry{Username: username, Points: s.points[username]}
	}
	revision := s.revision
	s.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	return entries, revision
}

// Landmarks returns the catalog in seeding order with current visit counts.
func (s *Store) Landmarks() []Landmark {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Landmark, len(s.catalog))
	for i, name := range s.catalog {
		entry := s.landmarks[name]
		out[i] = Landmark{Name: name, Lat: entry.lat, Lng: entry.lng, Visits: entry.visits}
	}
	return out
}

// Landmark returns a single catalog entry.
func (s *Store) Landmark(name string) (Landmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.landmarks[name]
	if !ok {
		return Landmark{}, fmt.Errorf("%w: %q", ErrLandmarkNotFound, name)
	}
	return Landmark{Name: name, Lat: entry.lat, Lng: entry.lng, Visits: entry.visits}, nil
}

// User returns a snapshot of a user and their check-in history.
func (s *Store) User(username string) (UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	points, ok := s.points[username]
	if !ok {
		return UserProfile{}, fmt.Errorf("%w: %q", ErrUserNotFound, username)
	}

	history := s.checkins[username]
	records := make([]CheckinRecord, len(history))
	copy(records, history)

	return UserProfile{Username: username, Points: points, Checkins: records}, nil
}

// Stats returns the number of users, landmarks and check-ins.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Users:     len(s.users),
		Landmarks: len(s.catalog),
		Checkins:  s.totalCheckins,
	}
}
