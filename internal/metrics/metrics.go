// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"scope"},
	)

	// Store
	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wayfinder_registrations_total",
			Help: "Total number of successful user registrations",
		},
	)

	CheckinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_checkins_total",
			Help: "Total number of successful check-ins per landmark",
		},
		[]string{"landmark"},
	)

	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_store_errors_total",
			Help: "Total number of rejected store operations",
		},
		[]string{"operation", "kind"},
	)

	RegisteredUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wayfinder_registered_users",
			Help: "Current number of registered users",
		},
	)

	// WebSocket
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages broadcast",
		},
		[]string{"type"},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// Events
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_events_published_total",
			Help: "Total number of domain events published",
		},
		[]string{"event_type"},
	)

	EventsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_events_failed_total",
			Help: "Total number of domain events that could not be published",
		},
		[]string{"event_type", "reason"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records one finished request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimited counts a request rejected by a limiter scope ("api", "write").
func RecordRateLimited(scope string) {
	APIRateLimited.WithLabelValues(scope).Inc()
}

// RecordRegistration counts a registration and updates the users gauge.
func RecordRegistration(totalUsers int) {
	RegistrationsTotal.Inc()
	RegisteredUsers.Set(float64(totalUsers))
}

// RecordCheckin counts a check-in at landmark. Only catalog landmarks reach
// this, so the label set is bounded.
func RecordCheckin(landmark string) {
	CheckinsTotal.WithLabelValues(landmark).Inc()
}

// RecordStoreError counts a rejected store operation.
// kind is one of invalid_input, already_exists, user_not_found, landmark_not_found, internal.
func RecordStoreError(operation, kind string) {
	StoreErrorsTotal.WithLabelValues(operation, kind).Inc()
}

// RecordWSMessage counts a broadcast message by type.
func RecordWSMessage(msgType string) {
	WSMessagesSent.WithLabelValues(msgType).Inc()
}

// RecordWSError counts a websocket failure.
func RecordWSError(errorType string) {
	WSErrors.WithLabelValues(errorType).Inc()
}

// RecordEventPublished counts a successfully published event.
func RecordEventPublished(eventType string) {
	EventsPublished.WithLabelValues(eventType).Inc()
}

// RecordEventFailed counts an event that was dropped.
// reason is "breaker_open", "publish_error" or "encode_error".
func RecordEventFailed(eventType, reason string) {
	EventsFailed.WithLabelValues(eventType, reason).Inc()
}

// RecordCircuitBreakerTransition records a breaker state change.
// States use the gobreaker names: closed, half-open, open.
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
}

func breakerStateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}
