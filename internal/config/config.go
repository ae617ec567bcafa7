// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package config

import (
	"time"

	"github.com/tomtom215/wayfinder/internal/state"
)

// Config is the complete service configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Realtime RealtimeConfig `koanf:"realtime"`
	NATS     NATSConfig     `koanf:"nats"`
	Catalog  CatalogConfig  `koanf:"catalog"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// RealtimeConfig toggles the websocket live feed.
type RealtimeConfig struct {
	Enabled bool `koanf:"enabled"`
}

// NATSConfig configures optional event publishing to NATS JetStream.
type NATSConfig struct {
	Enabled         bool          `koanf:"enabled"`
	URL             string        `koanf:"url"`
	SubjectPrefix   string        `koanf:"subject_prefix"`
	JetStream       bool          `koanf:"jetstream"` // publish through JetStream; the stream covering <prefix>.> must exist
	MaxReconnects   int           `koanf:"max_reconnects"`
	ReconnectWait   time.Duration `koanf:"reconnect_wait"`
	BreakerFailures uint32        `koanf:"breaker_failures"` // consecutive failures before the breaker opens
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`  // open -> half-open delay
}

// CatalogConfig is the fixed landmark catalog.
type CatalogConfig struct {
	Landmarks []LandmarkConfig `koanf:"landmarks"`
}

// LandmarkConfig is one catalog entry.
type LandmarkConfig struct {
	Name string  `koanf:"name"`
	Lat  float64 `koanf:"lat"`
	Lng  float64 `koanf:"lng"`
}

// Seeds converts the catalog into store seeds, preserving order.
func (c CatalogConfig) Seeds() []state.LandmarkSeed {
	seeds := make([]state.LandmarkSeed, len(c.Landmarks))
	for i, l := range c.Landmarks {
		seeds[i] = state.LandmarkSeed{Name: l.Name, Lat: l.Lat, Lng: l.Lng}
	}
	return seeds
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// HasWildcardCORS reports whether any allowed origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
