// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package state

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

const (
	hotDogs = "Arbetters Hot Dogs"
	pit     = "Florida International University Graham Center Pit"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(DefaultCatalog())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return s
}

// assertInvariants checks the point and visit invariants against the histories.
func assertInvariants(t *testing.T, s *Store) {
	t.Helper()

	visits := make(map[string]int)
	total := 0
	for _, entry := range s.Leaderboard() {
		profile, err := s.User(entry.Username)
		if err != nil {
			t.Fatalf("User(%q) error = %v", entry.Username, err)
		}
		if profile.Points != PointsPerCheckin*len(profile.Checkins) {
			t.Errorf("user %q: points = %d, want %d", entry.Username, profile.Points, PointsPerCheckin*len(profile.Checkins))
		}
		for i, rec := range profile.Checkins {
			if rec.Seq != i+1 {
				t.Errorf("user %q: record %d has seq %d", entry.Username, i, rec.Seq)
			}
			visits[rec.Landmark]++
			total++
		}
	}

	for _, lm := range s.Landmarks() {
		if lm.Visits != visits[lm.Name] {
			t.Errorf("landmark %q: visits = %d, want %d", lm.Name, lm.Visits, visits[lm.Name])
		}
		delete(visits, lm.Name)
	}
	if len(visits) != 0 {
		t.Errorf("records reference unknown landmarks: %v", visits)
	}
	if got := s.Stats().Checkins; got != total {
		t.Errorf("Stats().Checkins = %d, want %d", got, total)
	}
}

func TestNewStore_InvalidCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		seeds []LandmarkSeed
	}{
		{"empty", nil},
		{"missing name", []LandmarkSeed{{Name: "", Lat: 1, Lng: 1}}},
		{"duplicate", []LandmarkSeed{{Name: "a"}, {Name: "a"}}},
		{"latitude", []LandmarkSeed{{Name: "a", Lat: 91}}},
		{"longitude", []LandmarkSeed{{Name: "a", Lng: -181}}},
		{"NaN latitude", []LandmarkSeed{{Name: "a", Lat: math.NaN()}}},
		{"NaN longitude", []LandmarkSeed{{Name: "a", Lng: math.NaN()}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewStore(tt.seeds)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("NewStore() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestDefaultCatalog_FreshCopy(t *testing.T) {
	t.Parallel()

	a := DefaultCatalog()
	a[0].Name = "mutated"
	if DefaultCatalog()[0].Name == "mutated" {
		t.Error("DefaultCatalog() shares its backing array")
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	user, err := s.Register("alice")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user != (User{Username: "alice", Points: 0}) {
		t.Errorf("Register() = %+v", user)
	}

	profile, err := s.User("alice")
	if err != nil {
		t.Fatalf("User() error = %v", err)
	}
	if profile.Points != 0 || len(profile.Checkins) != 0 {
		t.Errorf("new profile = %+v, want zero points and empty history", profile)
	}
	if profile.Checkins == nil {
		t.Error("new profile history is nil, want empty slice")
	}
}

func TestRegister_EmptyUsername(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if _, err := s.Register(""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Register(\"\") error = %v, want ErrInvalidInput", err)
	}
	if s.Stats().Users != 0 {
		t.Error("failed registration changed the user count")
	}
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if _, err := s.Register("alice"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := s.CheckIn("alice", hotDogs); err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}

	before := s.Leaderboard()
	_, err := s.Register("alice")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("second Register() error = %v, want ErrAlreadyExists", err)
	}

	if after := s.Leaderboard(); !reflect.DeepEqual(before, after) {
		t.Errorf("failed registration changed state: before %v, after %v", before, after)
	}
	profile, _ := s.User("alice")
	if profile.Points != 10 || len(profile.Checkins) != 1 {
		t.Errorf("failed registration reset the user: %+v", profile)
	}
}

func TestCheckIn_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		landmark string
		want     error
	}{
		{"unknown user", "nobody", hotDogs, ErrUserNotFound},
		{"unknown landmark", "alice", "Nowhere", ErrLandmarkNotFound},
		{"unknown both", "nobody", "Nowhere", ErrUserNotFound},
		{"empty username", "", hotDogs, ErrInvalidInput},
		{"empty landmark", "alice", "", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestStore(t)
			if _, err := s.Register("alice"); err != nil {
				t.Fatalf("Register() error = %v", err)
			}

			_, err := s.CheckIn(tt.username, tt.landmark)
			if !errors.Is(err, tt.want) {
				t.Fatalf("CheckIn() error = %v, want %v", err, tt.want)
			}

			profile, _ := s.User("alice")
			if profile.Points != 0 || len(profile.Checkins) != 0 {
				t.Errorf("failed check-in changed the user: %+v", profile)
			}
			for _, lm := range s.Landmarks() {
				if lm.Visits != 0 {
					t.Errorf("failed check-in changed %q visits to %d", lm.Name, lm.Visits)
				}
			}
			if s.Stats().Checkins != 0 {
				t.Error("failed check-in changed the check-in count")
			}
		})
	}
}

func TestEndToEndExample(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	user, err := s.Register("alice")
	if err != nil || user.Points != 0 {
		t.Fatalf("Register(alice) = %+v, %v", user, err)
	}

	steps := []struct {
		username   string
		wantPoints int
		wantVisits int
	}{
		{"alice", 10, 1},
		{"alice", 20, 2},
	}
	for _, step := range steps {
		got, err := s.CheckIn(step.username, hotDogs)
		if err != nil {
			t.Fatalf("CheckIn(%s) error = %v", step.username, err)
		}
		want := CheckInOutcome{Username: step.username, Landmark: hotDogs, Points: step.wantPoints, LandmarkVisits: step.wantVisits}
		if got != want {
			t.Errorf("CheckIn(%s) = %+v, want %+v", step.username, got, want)
		}
	}

	if _, err := s.Register("bob"); err != nil {
		t.Fatalf("Register(bob) error = %v", err)
	}
	got, err := s.CheckIn("bob", hotDogs)
	if err != nil {
		t.Fatalf("CheckIn(bob) error = %v", err)
	}
	if got.Points != 10 || got.LandmarkVisits != 3 {
		t.Errorf("CheckIn(bob) = %+v, want points 10 visits 3", got)
	}

	want := []LeaderboardEntry{{"alice", 20}, {"bob", 10}}
	if board := s.Leaderboard(); !reflect.DeepEqual(board, want) {
		t.Errorf("Leaderboard() = %v, want %v", board, want)
	}

	assertInvariants(t, s)
}

func TestLeaderboard_StableTieBreak(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for _, name := range []string{"carol", "alice", "bob", "dave"} {
		if _, err := s.Register(name); err != nil {
			t.Fatalf("Register(%s) error = %v", name, err)
		}
	}
	// bob and dave tie at 20, carol and alice tie at 0.
	for _, name := range []string{"dave", "bob", "dave", "bob"} {
		if _, err := s.CheckIn(name, pit); err != nil {
			t.Fatalf("CheckIn(%s) error = %v", name, err)
		}
	}

	want := []LeaderboardEntry{{"bob", 20}, {"dave", 20}, {"carol", 0}, {"alice", 0}}
	if got := s.Leaderboard(); !reflect.DeepEqual(got, want) {
		t.Errorf("Leaderboard() = %v, want %v", got, want)
	}
}

func TestLeaderboard_EmptyAndIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	board := s.Leaderboard()
	if board == nil || len(board) != 0 {
		t.Errorf("empty Leaderboard() = %#v, want empty non-nil slice", board)
	}

	_, _ = s.Register("alice")
	_, _ = s.Register("bob")
	_, _ = s.CheckIn("bob", hotDogs)

	first := s.Leaderboard()
	second := s.Leaderboard()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Leaderboard() not idempotent: %v vs %v", first, second)
	}

	// Mutating a returned snapshot must not leak into the store.
	first[0].Points = 1000
	if s.Leaderboard()[0].Points != 10 {
		t.Error("Leaderboard() returned a view into store state")
	}
}

func TestUser_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	_, _ = s.Register("alice")
	_, _ = s.CheckIn("alice", hotDogs)
	_, _ = s.CheckIn("alice", pit)

	profile, err := s.User("alice")
	if err != nil {
		t.Fatalf("User() error = %v", err)
	}
	want := []CheckinRecord{{Landmark: hotDogs, Seq: 1}, {Landmark: pit, Seq: 2}}
	if !reflect.DeepEqual(profile.Checkins, want) {
		t.Errorf("Checkins = %v, want %v", profile.Checkins, want)
	}

	profile.Checkins[0].Landmark = "tampered"
	again, _ := s.User("alice")
	if again.Checkins[0].Landmark != hotDogs {
		t.Error("User() returned a view into store history")
	}

	if _, err := s.User("nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("User(nobody) error = %v, want ErrUserNotFound", err)
	}
}

func TestLandmarks(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	_, _ = s.Register("alice")
	_, _ = s.CheckIn("alice", hotDogs)

	landmarks := s.Landmarks()
	if len(landmarks) != 2 {
		t.Fatalf("len(Landmarks()) = %d, want 2", len(landmarks))
	}
	if landmarks[0].Name != pit || landmarks[1].Name != hotDogs {
		t.Errorf("Landmarks() order = %q, %q; want seeding order", landmarks[0].Name, landmarks[1].Name)
	}
	if landmarks[1].Visits != 1 {
		t.Errorf("hot dogs visits = %d, want 1", landmarks[1].Visits)
	}
	if landmarks[1].Lat != 25.733552302746368 || landmarks[1].Lng != -80.33680016181258 {
		t.Errorf("hot dogs coordinates = %v,%v", landmarks[1].Lat, landmarks[1].Lng)
	}

	lm, err := s.Landmark(hotDogs)
	if err != nil || lm.Visits != 1 {
		t.Errorf("Landmark() = %+v, %v", lm, err)
	}
	if _, err := s.Landmark("Nowhere"); !errors.Is(err, ErrLandmarkNotFound) {
		t.Errorf("Landmark(Nowhere) error = %v, want ErrLandmarkNotFound", err)
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	_, _ = s.Register("alice")
	_, _ = s.Register("bob")
	_, _ = s.CheckIn("alice", hotDogs)
	_, _ = s.CheckIn("bob", pit)
	_, _ = s.CheckIn("bob", pit)

	want := Stats{Users: 2, Landmarks: 2, Checkins: 3}
	if got := s.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestRevision(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if _, rev := s.LeaderboardSnapshot(); rev != 0 {
		t.Fatalf("fresh store revision = %d, want 0", rev)
	}

	_, _ = s.Register("alice")
	_, afterRegister := s.LeaderboardSnapshot()
	_, _ = s.CheckIn("alice", hotDogs)
	board, afterCheckin := s.LeaderboardSnapshot()
	if afterRegister == 0 || afterCheckin <= afterRegister {
		t.Errorf("revisions = %d then %d, want strictly increasing from 1", afterRegister, afterCheckin)
	}
	if len(board) != 1 || board[0].Points != PointsPerCheckin {
		t.Errorf("LeaderboardSnapshot() entries = %+v", board)
	}

	// Failed writes leave the revision alone.
	_, _ = s.Register("alice")
	_, _ = s.CheckIn("nobody", hotDogs)
	_, _ = s.CheckIn("alice", "Nowhere")
	if _, rev := s.LeaderboardSnapshot(); rev != afterCheckin {
		t.Errorf("revision after failed writes = %d, want %d", rev, afterCheckin)
	}
}
