// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	natsgo "github.com/nats-io/nats.go"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wayfinder/internal/logging"
	"github.com/tomtom215/wayfinder/internal/metrics"
)

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// PublisherConfig configures the publisher and its circuit breaker.
type PublisherConfig struct {
	SubjectPrefix string

	// BreakerName labels breaker metrics.
	BreakerName string

	// FailureThreshold consecutive failures open the breaker.
	FailureThreshold uint32

	// BreakerTimeout is how long the breaker stays open before probing.
	BreakerTimeout time.Duration

	// MaxRequests allowed through while half-open.
	MaxRequests uint32
}

// DefaultPublisherConfig returns the settings used when NATS config leaves them unset.
func DefaultPublisherConfig() PublisherConfig {
	return PublisherConfig{
		SubjectPrefix:    "wayfinder",
		BreakerName:      "event-publisher",
		FailureThreshold: 5,
		BreakerTimeout:   30 * time.Second,
		MaxRequests:      1,
	}
}

// Publisher encodes events and sends them through a watermill publisher.
type Publisher struct {
	publisher message.Publisher
	breaker   *gobreaker.CircuitBreaker[interface{}]
	prefix    string

	mu     sync.RWMutex
	closed bool
}

// NewPublisher wraps pub. The Publisher owns pub and closes it on Close.
func NewPublisher(pub message.Publisher, cfg PublisherConfig) *Publisher {
	defaults := DefaultPublisherConfig()
	if cfg.BreakerName == "" {
		cfg.BreakerName = defaults.BreakerName
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = defaults.BreakerTimeout
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = defaults.MaxRequests
	}

	return &Publisher{
		publisher: pub,
		breaker:   NewCircuitBreaker(cfg),
		prefix:    cfg.SubjectPrefix,
	}
}

// NewCircuitBreaker builds the breaker guarding publishes. State changes are
// logged and exported as metrics.
func NewCircuitBreaker(cfg PublisherConfig) *gobreaker.CircuitBreaker[interface{}] {
	return gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cfg.BreakerName,
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("event publisher circuit breaker state changed")
		},
	})
}

// Publish encodes e and sends it to its topic. Failures are counted by reason.
func (p *Publisher) Publish(ctx context.Context, e Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	payload, err := json.Marshal(e)
	if err != nil {
		metrics.RecordEventFailed(e.Type(), "encode_error")
		return fmt.Errorf("encode %s event: %w", e.Type(), err)
	}

	msg := message.NewMessage(e.ID(), payload)
	msg.Metadata.Set("event_type", e.Type())
	msg.Metadata.Set(natsgo.MsgIdHdr, e.ID())
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		msg.Metadata.Set("request_id", requestID)
	}
	msg.SetContext(ctx)

	topic := Topic(p.prefix, e)
	_, err = p.breaker.Execute(func() (interface{}, error) {
		return nil, p.publisher.Publish(topic, msg)
	})
	if err != nil {
		reason := "publish_error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			reason = "breaker_open"
		}
		metrics.RecordEventFailed(e.Type(), reason)
		return fmt.Errorf("publish %s event to %s: %w", e.Type(), topic, err)
	}

	metrics.RecordEventPublished(e.Type())
	return nil
}

// BreakerState returns closed, half-open or open.
func (p *Publisher) BreakerState() string {
	return p.breaker.State().String()
}

// Close closes the underlying publisher. Further publishes fail.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.publisher.Close()
}
