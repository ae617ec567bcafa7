// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/checkin", "200"))

	RecordAPIRequest("POST", "/checkin", "200", 3*time.Millisecond)
	RecordAPIRequest("POST", "/checkin", "200", 4*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/checkin", "200"))
	if after-before != 2 {
		t.Errorf("api_requests_total delta = %v, want 2", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("api_active_requests = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("api_active_requests = %v, want %v", got, before)
	}
}

func TestRecordRegistration(t *testing.T) {
	before := testutil.ToFloat64(RegistrationsTotal)

	RecordRegistration(7)

	if got := testutil.ToFloat64(RegistrationsTotal); got != before+1 {
		t.Errorf("wayfinder_registrations_total = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(RegisteredUsers); got != 7 {
		t.Errorf("wayfinder_registered_users = %v, want 7", got)
	}
}

func TestRecordCheckinAndErrors(t *testing.T) {
	landmark := "Arbetters Hot Dogs"
	before := testutil.ToFloat64(CheckinsTotal.WithLabelValues(landmark))
	errBefore := testutil.ToFloat64(StoreErrorsTotal.WithLabelValues("checkin", "landmark_not_found"))

	RecordCheckin(landmark)
	RecordStoreError("checkin", "landmark_not_found")

	if got := testutil.ToFloat64(CheckinsTotal.WithLabelValues(landmark)); got != before+1 {
		t.Errorf("wayfinder_checkins_total = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(StoreErrorsTotal.WithLabelValues("checkin", "landmark_not_found")); got != errBefore+1 {
		t.Errorf("wayfinder_store_errors_total = %v, want %v", got, errBefore+1)
	}
}

func TestRecordEvents(t *testing.T) {
	pubBefore := testutil.ToFloat64(EventsPublished.WithLabelValues("checkin"))
	failBefore := testutil.ToFloat64(EventsFailed.WithLabelValues("checkin", "breaker_open"))

	RecordEventPublished("checkin")
	RecordEventFailed("checkin", "breaker_open")

	if got := testutil.ToFloat64(EventsPublished.WithLabelValues("checkin")); got != pubBefore+1 {
		t.Errorf("events_published = %v, want %v", got, pubBefore+1)
	}
	if got := testutil.ToFloat64(EventsFailed.WithLabelValues("checkin", "breaker_open")); got != failBefore+1 {
		t.Errorf("events_failed = %v, want %v", got, failBefore+1)
	}
}

func TestRecordCircuitBreakerTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     float64
	}{
		{"closed", "open", 2},
		{"open", "half-open", 1},
		{"half-open", "closed", 0},
	}

	for _, tt := range tests {
		RecordCircuitBreakerTransition("metrics-test", tt.from, tt.to)
		if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("metrics-test")); got != tt.want {
			t.Errorf("after %s->%s circuit_breaker_state = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}

	if got := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues("metrics-test", "closed", "open")); got != 1 {
		t.Errorf("transitions closed->open = %v, want 1", got)
	}
}

func TestRecordWebSocket(t *testing.T) {
	before := testutil.ToFloat64(WSMessagesSent.WithLabelValues("leaderboard"))
	errBefore := testutil.ToFloat64(WSErrors.WithLabelValues("write"))

	RecordWSMessage("leaderboard")
	RecordWSError("write")

	if got := testutil.ToFloat64(WSMessagesSent.WithLabelValues("leaderboard")); got != before+1 {
		t.Errorf("websocket_messages_sent_total = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(WSErrors.WithLabelValues("write")); got != errBefore+1 {
		t.Errorf("websocket_errors_total = %v, want %v", got, errBefore+1)
	}
}

func TestRecordRateLimited(t *testing.T) {
	before := testutil.ToFloat64(APIRateLimited.WithLabelValues("write"))
	RecordRateLimited("write")
	if got := testutil.ToFloat64(APIRateLimited.WithLabelValues("write")); got != before+1 {
		t.Errorf("api_rate_limited_total = %v, want %v", got, before+1)
	}
}
