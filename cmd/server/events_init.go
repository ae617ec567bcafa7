// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/wayfinder/internal/api"
	"github.com/tomtom215/wayfinder/internal/config"
	"github.com/tomtom215/wayfinder/internal/events"
	"github.com/tomtom215/wayfinder/internal/logging"
)

// initEvents connects the event publisher when NATS is enabled and attaches
// it to the handler. It returns nil when publishing is disabled.
func initEvents(cfg *config.Config, handler *api.Handler) (*events.Publisher, error) {
	if !cfg.NATS.Enabled {
		logging.Info().Msg("Event publishing disabled (NATS_ENABLED=false)")
		return nil, nil
	}

	natsPub, err := events.NewNATSPublisher(cfg.NATS, events.NewWatermillLogger())
	if err != nil {
		return nil, fmt.Errorf("connect event publisher: %w", err)
	}

	publisher := events.NewPublisher(natsPub, events.PublisherConfigFromNATS(cfg.NATS))
	handler.SetEventPublisher(publisher)

	logging.Info().
		Str("url", cfg.NATS.URL).
		Str("subject_prefix", cfg.NATS.SubjectPrefix).
		Bool("jetstream", cfg.NATS.JetStream).
		Msg("Event publishing enabled")
	return publisher, nil
}

// shutdownEvents flushes in-flight publishes and closes the NATS connection.
// It runs after the HTTP server has stopped so no new events can start.
func shutdownEvents(handler *api.Handler, publisher *events.Publisher, timeout time.Duration) {
	if publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := handler.WaitForEvents(ctx); err != nil {
		logging.Warn().Err(err).Msg("Gave up waiting for in-flight events")
	}
	if err := publisher.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing event publisher")
	}
}
