// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package events publishes Wayfinder domain events to a message bus.

Two events exist:

  - CheckinEvent, after a successful check-in, on <prefix>.checkins
  - RegistrationEvent, after a successful registration, on <prefix>.registrations

Events are encoded as JSON and sent through a watermill message.Publisher
guarded by a gobreaker circuit breaker. In production the publisher is
watermill-nats (NewNATSPublisher); tests use watermill's gochannel.

The store is the source of truth. Publishing happens after the store has
committed, so a failed publish is logged and counted but never changes the
API response.

	pub, err := events.NewNATSPublisher(cfg.NATS, events.NewWatermillLogger())
	publisher := events.NewPublisher(pub, events.PublisherConfig{
	    SubjectPrefix:    "wayfinder",
	    FailureThreshold: 5,
	    BreakerTimeout:   30 * time.Second,
	})
	defer publisher.Close()

	err = publisher.Publish(ctx, events.NewCheckinEvent("alice", "Arbetters Hot Dogs", 10, 1))
*/
package events
