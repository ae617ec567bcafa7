// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"net/http"
	"reflect"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/wayfinder/internal/metrics"
	"github.com/tomtom215/wayfinder/internal/middleware"
	"github.com/tomtom215/wayfinder/internal/models"
)

const hotDogs = "Arbetters Hot Dogs"

func TestEndToEndExample(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{"", "/api/v1"} {
		t.Run("prefix="+prefix, func(t *testing.T) {
			t.Parallel()
			_, h := setupTestRouter(t, nil)

			rec := doJSON(t, h, http.MethodPost, prefix+"/register", models.RegisterRequest{Username: "alice"})
			if rec.Code != http.StatusCreated {
				t.Fatalf("register alice: status = %d", rec.Code)
			}
			var reg models.RegisterResponse
			decodeBody(t, rec, &reg)
			if reg.Message != "Registered!" || reg.Username != "alice" {
				t.Errorf("register response = %+v", reg)
			}

			steps := []struct {
				username      string
				registerFirst bool
				wantPoints    int
				wantVisits    int
			}{
				{"alice", false, 10, 1},
				{"alice", false, 20, 2},
				{"bob", true, 10, 3},
			}
			for i, step := range steps {
				if step.registerFirst {
					register(t, h, step.username)
				}
				rec := doJSON(t, h, http.MethodPost, prefix+"/checkin",
					models.CheckinRequest{Username: step.username, Landmark: hotDogs})
				if rec.Code != http.StatusOK {
					t.Fatalf("step %d: status = %d, body = %s", i, rec.Code, rec.Body.String())
				}
				var got models.CheckinResponse
				decodeBody(t, rec, &got)
				if got.Points != step.wantPoints || got.LandmarkVisits != step.wantVisits {
					t.Errorf("step %d: points/visits = %d/%d, want %d/%d",
						i, got.Points, got.LandmarkVisits, step.wantPoints, step.wantVisits)
				}
				if want := step.username + " checked in at " + hotDogs + "!"; got.Message != want {
					t.Errorf("step %d: message = %q, want %q", i, got.Message, want)
				}
			}

			rec = doJSON(t, h, http.MethodGet, prefix+"/leaderboard", nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("leaderboard: status = %d", rec.Code)
			}
			var board []models.LeaderboardEntry
			decodeBody(t, rec, &board)
			want := []models.LeaderboardEntry{{Username: "alice", Points: 20}, {Username: "bob", Points: 10}}
			if !reflect.DeepEqual(board, want) {
				t.Errorf("leaderboard = %+v, want %+v", board, want)
			}
		})
	}
}

func TestLeaderboard_EmptyIsArray(t *testing.T) {
	t.Parallel()
	_, h := setupTestRouter(t, nil)

	rec := doJSON(t, h, http.MethodGet, "/leaderboard", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Body.String(); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestLeaderboard_TiesKeepRegistrationOrder(t *testing.T) {
	t.Parallel()
	_, h := setupTestRouter(t, nil)

	for _, u := range []string{"carol", "alice", "bob"} {
		register(t, h, u)
	}
	checkin(t, h, "bob", hotDogs)
	checkin(t, h, "carol", hotDogs)

	rec := doJSON(t, h, http.MethodGet, "/leaderboard", nil)
	var board []models.LeaderboardEntry
	decodeBody(t, rec, &board)

	want := []models.LeaderboardEntry{
		{Username: "carol", Points: 10},
		{Username: "bob", Points: 10},
		{Username: "alice", Points: 0},
	}
	if !reflect.DeepEqual(board, want) {
		t.Errorf("leaderboard = %+v, want %+v", board, want)
	}
}

func TestErrorResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		wantStatus int
		wantCode   string
		wantError  string
		wantField  string
	}{
		{
			name:   "duplicate registration",
			method: http.MethodPost, path: "/register",
			body:       models.RegisterRequest{Username: "alice"},
			wantStatus: http.StatusConflict, wantCode: "USER_EXISTS", wantError: "User exists",
		},
		{
			name:   "unknown landmark",
			method: http.MethodPost, path: "/checkin",
			body:       models.CheckinRequest{Username: "alice", Landmark: "Nowhere"},
			wantStatus: http.StatusNotFound, wantCode: "LANDMARK_NOT_FOUND", wantError: "Landmark not found",
		},
		{
			name:   "unknown user",
			method: http.MethodPost, path: "/checkin",
			body:       models.CheckinRequest{Username: "mallory", Landmark: hotDogs},
			wantStatus: http.StatusNotFound, wantCode: "USER_NOT_FOUND", wantError: "User not found",
		},
		{
			name:   "unknown user and landmark reports user",
			method: http.MethodPost, path: "/checkin",
			body:       models.CheckinRequest{Username: "mallory", Landmark: "Nowhere"},
			wantStatus: http.StatusNotFound, wantCode: "USER_NOT_FOUND",
		},
		{
			name:   "missing username",
			method: http.MethodPost, path: "/register",
			body:       `{}`,
			wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR",
			wantError: "username is required", wantField: "username",
		},
		{
			name:   "padded username",
			method: http.MethodPost, path: "/register",
			body:       models.RegisterRequest{Username: " alice "},
			wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR",
			wantField: "username",
		},
		{
			name:   "missing landmark",
			method: http.MethodPost, path: "/checkin",
			body:       `{"username":"alice"}`,
			wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR",
			wantField: "landmark",
		},
		{
			name:   "malformed json",
			method: http.MethodPost, path: "/checkin",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST",
		},
		{
			name:   "trailing garbage",
			method: http.MethodPost, path: "/register",
			body:       `{"username":"bob"}xyz`,
			wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST", wantError: "Invalid JSON body",
		},
		{
			name:   "second object",
			method: http.MethodPost, path: "/checkin",
			body:       `{"username":"alice","landmark":"Arbetters Hot Dogs"}{}`,
			wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST",
		},
		{
			name:   "wrong field type",
			method: http.MethodPost, path: "/register",
			body:       `{"username":42}`,
			wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST",
		},
		{
			name:   "empty body",
			method: http.MethodPost, path: "/register",
			body:       "",
			wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST",
		},
		{
			name:   "unknown user profile",
			method: http.MethodGet, path: "/api/v1/users/mallory",
			wantStatus: http.StatusNotFound, wantCode: "USER_NOT_FOUND",
		},
		{
			name:   "unknown route",
			method: http.MethodGet, path: "/nope",
			wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND",
		},
		{
			name:   "wrong method",
			method: http.MethodGet, path: "/register",
			wantStatus: http.StatusMethodNotAllowed, wantCode: "METHOD_NOT_ALLOWED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, h := setupTestRouter(t, nil)
			register(t, h, "alice")

			rec := doJSON(t, h, tt.method, tt.path, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			var resp models.ErrorResponse
			decodeBody(t, rec, &resp)
			if resp.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Code, tt.wantCode)
			}
			if tt.wantError != "" && resp.Error != tt.wantError {
				t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
			}
			if tt.wantField != "" && resp.Details["field"] != tt.wantField {
				t.Errorf("details = %v, want field %q", resp.Details, tt.wantField)
			}
			if tt.wantField == "" && resp.Details != nil {
				t.Errorf("details = %v, want none", resp.Details)
			}
			if resp.RequestID == "" {
				t.Error("request_id is empty")
			}
			if resp.RequestID != rec.Header().Get(middleware.RequestIDHeader) {
				t.Errorf("request_id %q does not match header %q", resp.RequestID, rec.Header().Get(middleware.RequestIDHeader))
			}
		})
	}
}

func TestFailedOperationsLeaveStateUnchanged(t *testing.T) {
	t.Parallel()
	handler, h := setupTestRouter(t, nil)

	register(t, h, "alice")
	checkin(t, h, "alice", hotDogs)
	before := handler.store.Stats()

	doJSON(t, h, http.MethodPost, "/register", models.RegisterRequest{Username: "alice"})
	doJSON(t, h, http.MethodPost, "/checkin", models.CheckinRequest{Username: "alice", Landmark: "Nowhere"})
	doJSON(t, h, http.MethodPost, "/checkin", models.CheckinRequest{Username: "ghost", Landmark: hotDogs})

	if after := handler.store.Stats(); after != before {
		t.Errorf("stats changed: before %+v, after %+v", before, after)
	}

	profile, err := handler.store.User("alice")
	if err != nil {
		t.Fatal(err)
	}
	if profile.Points != 10 || len(profile.Checkins) != 1 {
		t.Errorf("alice = %+v, want 10 points and one check-in", profile)
	}
}

func TestStoreErrorMetrics(t *testing.T) {
	t.Parallel()
	_, h := setupTestRouter(t, nil)

	counter := metrics.StoreErrorsTotal.WithLabelValues("checkin", "landmark_not_found")
	before := testutil.ToFloat64(counter)

	register(t, h, "alice")
	doJSON(t, h, http.MethodPost, "/checkin", models.CheckinRequest{Username: "alice", Landmark: "Atlantis"})

	if delta := testutil.ToFloat64(counter) - before; delta < 1 {
		t.Errorf("store error counter delta = %v, want >= 1", delta)
	}
}

func TestConcurrentCheckinsOverHTTP(t *testing.T) {
	t.Parallel()
	handler, h := setupTestRouter(t, nil)
	register(t, h, "alice")

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := doJSON(t, h, http.MethodPost, "/checkin", models.CheckinRequest{Username: "alice", Landmark: hotDogs})
			if rec.Code != http.StatusOK {
				errs <- rec.Code
			}
		}()
	}
	wg.Wait()
	close(errs)
	for code := range errs {
		t.Errorf("concurrent check-in status = %d", code)
	}

	landmark, err := handler.store.Landmark(hotDogs)
	if err != nil {
		t.Fatal(err)
	}
	if landmark.Visits != n {
		t.Errorf("visits = %d, want %d", landmark.Visits, n)
	}
	profile, err := handler.store.User("alice")
	if err != nil {
		t.Fatal(err)
	}
	if profile.Points != 10*n {
		t.Errorf("points = %d, want %d", profile.Points, 10*n)
	}
}
