// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfinder/internal/config"
	"github.com/tomtom215/wayfinder/internal/models"
	"github.com/tomtom215/wayfinder/internal/state"
	ws "github.com/tomtom215/wayfinder/internal/websocket"
)

// testConfig returns a config with rate limiting off so tests can send
// many requests from one address.
func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
	}
}

func newTestStore(t *testing.T) *state.Store {
	t.Helper()
	store, err := state.NewStore(state.DefaultCatalog())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}

// setupTestRouter builds a handler and the full chi router. hub may be nil.
func setupTestRouter(t *testing.T, hub *ws.Hub) (*Handler, http.Handler) {
	t.Helper()

	cfg := testConfig()
	handler := NewHandler(newTestStore(t), cfg, hub)
	router := NewRouter(handler, NewChiMiddleware(NewChiMiddlewareConfig(cfg.Security)))
	return handler, router.SetupChi()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func register(t *testing.T, h http.Handler, username string) {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/register", models.RegisterRequest{Username: username})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %q: status = %d, body = %s", username, rec.Code, rec.Body.String())
	}
}

func checkin(t *testing.T, h http.Handler, username, landmark string) models.CheckinResponse {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/checkin", models.CheckinRequest{Username: username, Landmark: landmark})
	if rec.Code != http.StatusOK {
		t.Fatalf("checkin %q at %q: status = %d, body = %s", username, landmark, rec.Code, rec.Body.String())
	}
	var resp models.CheckinResponse
	decodeBody(t, rec, &resp)
	return resp
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
