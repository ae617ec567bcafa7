// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wayfinder/internal/models"
)

// Health handles GET /api/v1/health.
//
// Status is "degraded" while the event publisher's circuit breaker is open
// or the realtime hub has stopped; the store itself is always available.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	stats := h.store.Stats()

	health := models.HealthStatus{
		Status:    "healthy",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Users:     stats.Users,
		Landmarks: stats.Landmarks,
		Checkins:  stats.Checkins,
		Timestamp: time.Now().UTC(),
	}

	if h.wsHub != nil {
		health.Realtime = true
		health.RealtimeClients = h.wsHub.GetClientCount()
		if h.hubStopped() {
			health.Status = "degraded"
		}
	}

	if h.eventPublisher != nil {
		health.Events.Enabled = true
		health.Events.BreakerState = h.eventPublisher.BreakerState()
		if health.Events.BreakerState == "open" {
			health.Status = "degraded"
		}
	}

	respondJSON(w, http.StatusOK, health)
}

// HealthLive handles the liveness probe. It only reports that the process serves HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, models.ProbeStatus{Status: "alive"})
}

// HealthReady handles the readiness probe.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	switch {
	case h.store == nil:
		respondJSON(w, http.StatusServiceUnavailable, models.ProbeStatus{Status: "not_ready", Reason: "store not initialized"})
	case h.wsHub != nil && h.hubStopped():
		respondJSON(w, http.StatusServiceUnavailable, models.ProbeStatus{Status: "not_ready", Reason: "realtime hub stopped"})
	default:
		respondJSON(w, http.StatusOK, models.ProbeStatus{Status: "ready"})
	}
}

func (h *Handler) hubStopped() bool {
	select {
	case <-h.wsHub.Done():
		return true
	default:
		return false
	}
}
