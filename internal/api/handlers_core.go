// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/wayfinder/internal/events"
	"github.com/tomtom215/wayfinder/internal/logging"
	"github.com/tomtom215/wayfinder/internal/metrics"
	"github.com/tomtom215/wayfinder/internal/models"
)

// Register handles POST /register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.store.Register(req.Username)
	if err != nil {
		respondStoreError(w, r, "register", err)
		return
	}

	metrics.RecordRegistration(h.store.Stats().Users)
	logging.Ctx(r.Context()).Info().
		Str("username", sanitizeLogValue(user.Username)).
		Msg("user registered")

	h.broadcastLeaderboard()
	h.publishEvent(r.Context(), events.NewRegistrationEvent(user.Username))

	respondJSON(w, http.StatusCreated, models.RegisterResponse{
		Message:  "Registered!",
		Username: user.Username,
	})
}

// Checkin handles POST /checkin.
func (h *Handler) Checkin(w http.ResponseWriter, r *http.Request) {
	var req models.CheckinRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	outcome, err := h.store.CheckIn(req.Username, req.Landmark)
	if err != nil {
		respondStoreError(w, r, "checkin", err)
		return
	}

	metrics.RecordCheckin(outcome.Landmark)
	logging.Ctx(r.Context()).Info().
		Str("username", sanitizeLogValue(outcome.Username)).
		Str("landmark", sanitizeLogValue(outcome.Landmark)).
		Int("points", outcome.Points).
		Int("landmark_visits", outcome.LandmarkVisits).
		Msg("check-in recorded")

	if h.wsHub != nil {
		h.wsHub.BroadcastCheckin(outcome.Username, outcome.Landmark, outcome.Points, outcome.LandmarkVisits)
	}
	h.broadcastLeaderboard()
	h.publishEvent(r.Context(), events.NewCheckinEvent(
		outcome.Username, outcome.Landmark, outcome.Points, outcome.LandmarkVisits,
	))

	respondJSON(w, http.StatusOK, models.CheckinResponse{
		Message:        fmt.Sprintf("%s checked in at %s!", outcome.Username, outcome.Landmark),
		Points:         outcome.Points,
		LandmarkVisits: outcome.LandmarkVisits,
	})
}

// Leaderboard handles GET /leaderboard. The body is always a JSON array.
func (h *Handler) Leaderboard(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, toLeaderboardModels(h.store.Leaderboard()))
}

// WebSocket upgrades the connection and attaches it to the hub.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		respondError(w, r, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "WebSocket service unavailable", nil)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		metrics.RecordWSError("upgrade")
		logging.Ctx(r.Context()).Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	h.wsHub.Accept(conn)
}
