// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/wayfinder/internal/config"
	"github.com/tomtom215/wayfinder/internal/logging"
	"github.com/tomtom215/wayfinder/internal/models"
	"github.com/tomtom215/wayfinder/internal/state"
	ws "github.com/tomtom215/wayfinder/internal/websocket"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_core.go: register, check-in, leaderboard, WebSocket
//   - handlers_catalog.go: landmarks and user profiles
//   - handlers_health.go: health and probes
//   - handler_event_publisher.go: event publishing
type Handler struct {
	store          *state.Store
	config         *config.Config
	wsHub          *ws.Hub
	eventPublisher EventPublisher
	startTime      time.Time
	version        string

	// publishes tracks in-flight asynchronous event publishes.
	publishes sync.WaitGroup
}

// NewHandler creates a handler around store. wsHub may be nil when the
// realtime feed is disabled.
//
//	handler := api.NewHandler(store, cfg, hub)
//	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security)))
//	srv := &http.Server{Addr: ":4444", Handler: router.SetupChi()}
func NewHandler(store *state.Store, cfg *config.Config, wsHub *ws.Hub) *Handler {
	return &Handler{
		store:     store,
		config:    cfg,
		wsHub:     wsHub,
		startTime: time.Now(),
		version:   "dev",
	}
}

// SetVersion sets the version reported by the health endpoint.
func (h *Handler) SetVersion(version string) {
	if version != "" {
		h.version = version
	}
}

// broadcastLeaderboard pushes a fresh leaderboard to WebSocket clients.
func (h *Handler) broadcastLeaderboard() {
	if h.wsHub == nil {
		return
	}
	entries, revision := h.store.LeaderboardSnapshot()
	h.wsHub.BroadcastLeaderboard(toLeaderboardModels(entries), revision)
}

func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin accepts origins allowed by the CORS configuration.
// Browsers always send Origin on WebSocket handshakes, so a missing header is rejected.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}

	if h.config == nil {
		return true
	}

	for _, allowed := range h.config.Security.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}

func toLeaderboardModels(entries []state.LeaderboardEntry) []models.LeaderboardEntry {
	out := make([]models.LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = models.LeaderboardEntry{Username: e.Username, Points: e.Points}
	}
	return out
}
