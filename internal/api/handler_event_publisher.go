// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"context"
	"time"

	"github.com/tomtom215/wayfinder/internal/events"
	"github.com/tomtom215/wayfinder/internal/logging"
)

const publishTimeout = 5 * time.Second

// EventPublisher sends domain events to the message bus.
// *events.Publisher satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
	BreakerState() string
}

// SetEventPublisher enables event publishing. Passing nil disables it.
// Call once during startup.
func (h *Handler) SetEventPublisher(publisher EventPublisher) {
	h.eventPublisher = publisher
}

// publishEvent sends event in the background so the bus never delays or
// fails a response. The request context is detached from cancellation but
// keeps its logging values.
func (h *Handler) publishEvent(ctx context.Context, event events.Event) {
	if h.eventPublisher == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	h.publishes.Add(1)
	go func() {
		defer h.publishes.Done()

		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()

		if err := h.eventPublisher.Publish(ctx, event); err != nil {
			logging.Ctx(ctx).Warn().
				Err(err).
				Str("event_type", event.Type()).
				Str("event_id", event.ID()).
				Msg("failed to publish event")
		}
	}()
}

// WaitForEvents blocks until in-flight publishes finish or ctx is done.
// Call it after the HTTP server has stopped and before closing the publisher.
func (h *Handler) WaitForEvents(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.publishes.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
