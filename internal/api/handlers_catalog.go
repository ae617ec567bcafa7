// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wayfinder/internal/models"
)

// Landmarks handles GET /api/v1/landmarks in catalog order.
func (h *Handler) Landmarks(w http.ResponseWriter, _ *http.Request) {
	landmarks := h.store.Landmarks()
	out := make([]models.Landmark, len(landmarks))
	for i, l := range landmarks {
		out[i] = models.Landmark{Name: l.Name, Lat: l.Lat, Lng: l.Lng, Visits: l.Visits}
	}
	respondJSON(w, http.StatusOK, out)
}

// UserProfile handles GET /api/v1/users/{username}.
func (h *Handler) UserProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.store.User(chi.URLParam(r, "username"))
	if err != nil {
		respondStoreError(w, r, "user", err)
		return
	}

	checkins := make([]models.CheckinRecord, len(profile.Checkins))
	for i, c := range profile.Checkins {
		checkins[i] = models.CheckinRecord{Landmark: c.Landmark, Seq: c.Seq}
	}
	respondJSON(w, http.StatusOK, models.UserProfile{
		Username: profile.Username,
		Points:   profile.Points,
		Checkins: checkins,
	})
}
