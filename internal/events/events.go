// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package events

import (
	"time"

	"github.com/google/uuid"
)

// Event types, also used as the last subject token.
const (
	EventTypeCheckin      = "checkin"
	EventTypeRegistration = "registration"
)

// Event is anything the Publisher can send.
type Event interface {
	// ID is unique per event and doubles as the Nats-Msg-Id for deduplication.
	ID() string
	Type() string
	// Subject is the topic below the configured prefix.
	Subject() string
}

// CheckinEvent records one accepted check-in with the totals it produced.
type CheckinEvent struct {
	EventID        string    `json:"event_id"`
	Username       string    `json:"username"`
	Landmark       string    `json:"landmark"`
	Points         int       `json:"points"`
	LandmarkVisits int       `json:"landmark_visits"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// NewCheckinEvent stamps a check-in with a fresh ID and the current time.
func NewCheckinEvent(username, landmark string, points, landmarkVisits int) *CheckinEvent {
	return &CheckinEvent{
		EventID:        uuid.New().String(),
		Username:       username,
		Landmark:       landmark,
		Points:         points,
		LandmarkVisits: landmarkVisits,
		OccurredAt:     time.Now().UTC(),
	}
}

func (e *CheckinEvent) ID() string      { return e.EventID }
func (e *CheckinEvent) Type() string    { return EventTypeCheckin }
func (e *CheckinEvent) Subject() string { return "checkins" }

// RegistrationEvent records a new user.
type RegistrationEvent struct {
	EventID    string    `json:"event_id"`
	Username   string    `json:"username"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewRegistrationEvent stamps a registration with a fresh ID and the current time.
func NewRegistrationEvent(username string) *RegistrationEvent {
	return &RegistrationEvent{
		EventID:    uuid.New().String(),
		Username:   username,
		OccurredAt: time.Now().UTC(),
	}
}

func (e *RegistrationEvent) ID() string      { return e.EventID }
func (e *RegistrationEvent) Type() string    { return EventTypeRegistration }
func (e *RegistrationEvent) Subject() string { return "registrations" }

// Topic joins the subject prefix and the event subject.
func Topic(prefix string, e Event) string {
	if prefix == "" {
		return e.Subject()
	}
	return prefix + "." + e.Subject()
}
