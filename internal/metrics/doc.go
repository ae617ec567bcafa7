// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package metrics defines the Prometheus collectors exported at /metrics.

Collectors are registered with the default registry through promauto at
package init, and helpers wrap the label handling so call sites stay short:

	metrics.RecordCheckin(outcome.Landmark)
	metrics.RecordStoreError("checkin", "user_not_found")

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limited_total{scope}

Store:
  - wayfinder_registrations_total
  - wayfinder_checkins_total{landmark}
  - wayfinder_store_errors_total{operation, kind}
  - wayfinder_registered_users

Live feed:
  - websocket_connections
  - websocket_messages_sent_total{type}
  - websocket_errors_total{error_type}

Events:
  - wayfinder_events_published_total{event_type}
  - wayfinder_events_failed_total{event_type, reason}
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

The endpoint label is the chi route pattern (for example
/api/v1/users/{username}), never the raw path.
*/
package metrics
