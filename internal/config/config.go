// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// fave-tweets application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, log level and the
	// session token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the favorites source client settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the limits of the favorites synchronisation loop.
	Sync Sync `envPrefix:"SYNC_"`

	// Lock selects and configures the per-user sync lock.
	Lock Lock `envPrefix:"LOCK_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// SessionSignKey is the secret used to sign session tokens.
	// Must be kept confidential.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim embedded in every session token.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration specifies how long a session stays valid.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SessionCookie is the name of the cookie carrying the session token.
	// Env: APP_SESSION_COOKIE
	SessionCookie string `env:"SESSION_COOKIE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a "postgres://" or "postgresql://" URL opens
	// PostgreSQL through pgx, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings of the favorites source HTTP client.
type Adapter struct {
	// BaseURL is the root of the favorites API (e.g. "https://api.twitter.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ConsumerKey and ConsumerSecret are the application credential pair
	// exchanged for an app-only bearer token.
	// Env: ADAPTER_CONSUMER_KEY, ADAPTER_CONSUMER_SECRET
	ConsumerKey    string `env:"CONSUMER_KEY"`
	ConsumerSecret string `env:"CONSUMER_SECRET"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of outbound requests per second allowed.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size of the outbound limiter.
	// Env: ADAPTER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Sync holds the limits of the favorites synchronisation loop.
type Sync struct {
	// PageSize is the count requested per favorites page (1..200).
	// Env: SYNC_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// MaxIterations caps the number of fetch passes of a single run.
	// Env: SYNC_MAX_ITERATIONS
	MaxIterations int `env:"MAX_ITERATIONS"`

	// Timeout is the wall-clock budget of a single run.
	// Env: SYNC_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Lock configures the per-user sync lock. When RedisAddress is empty an
// in-process lock is used.
type Lock struct {
	// RedisAddress is the "host:port" of the Redis server.
	// Env: LOCK_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// RedisPassword enables AUTH (and TLS) when non-empty.
	// Env: LOCK_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// TTL is the expiry of a held lock, guarding against crashed holders.
	// Env: LOCK_TTL
	TTL time.Duration `env:"TTL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ResyncInterval enables the periodic resync of every known user when
	// greater than zero.
	// Env: WORKERS_RESYNC_INTERVAL
	ResyncInterval time.Duration `env:"RESYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to every field left empty by all sources.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// LoadConfig loads the configuration from environment variables and the
// JSON file at jsonPath (skipped when empty). It is used by tools that
// parse their own command line.
func LoadConfig(jsonPath string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSONPath(jsonPath).
		withJSON().
		build()
}
