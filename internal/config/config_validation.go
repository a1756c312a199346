// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults used for every field that no configuration source has set.
const (
	DefaultVersion         = "dev"
	DefaultSessionIssuer   = "fave-tweets"
	DefaultSessionDuration = 24 * time.Hour
	DefaultSessionCookie   = "fave_session"

	DefaultDSN = "development.db"

	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = time.Minute

	DefaultAdapterBaseURL = "https://api.twitter.com"
	DefaultAdapterTimeout = 15 * time.Second
	DefaultRateLimit      = 1.0
	DefaultRateBurst      = 5

	DefaultPageSize      = 200
	MaxPageSize          = 200
	DefaultMaxIterations = 50
	DefaultSyncTimeout   = 30 * time.Second

	DefaultLockTTL = time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.Version, DefaultVersion)
	setDefault(&cfg.App.SessionIssuer, DefaultSessionIssuer)
	setDefault(&cfg.App.SessionDuration, DefaultSessionDuration)
	setDefault(&cfg.App.SessionCookie, DefaultSessionCookie)

	setDefault(&cfg.Storage.DB.DSN, DefaultDSN)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)

	setDefault(&cfg.Adapter.BaseURL, DefaultAdapterBaseURL)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultAdapterTimeout)
	setDefault(&cfg.Adapter.RateLimit, DefaultRateLimit)
	setDefault(&cfg.Adapter.RateBurst, DefaultRateBurst)

	setDefault(&cfg.Sync.PageSize, DefaultPageSize)
	setDefault(&cfg.Sync.MaxIterations, DefaultMaxIterations)
	setDefault(&cfg.Sync.Timeout, DefaultSyncTimeout)

	setDefault(&cfg.Lock.TTL, DefaultLockTTL)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// validate checks that the final merged [StructuredConfig] is usable.
// Secrets are not required here; see [StructuredConfig.RequireCredentials].
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionDuration < 0 {
		return fmt.Errorf("%w: negative session duration", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.RateLimit < 0 || cfg.Adapter.RateBurst < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative rate limit, burst or timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Sync.PageSize < 1 || cfg.Sync.PageSize > MaxPageSize {
		return fmt.Errorf("%w: page size must be within 1..%d, got %d", ErrInvalidSyncConfigs, MaxPageSize, cfg.Sync.PageSize)
	}

	if cfg.Sync.MaxIterations < 1 || cfg.Sync.Timeout < 0 {
		return fmt.Errorf("%w: max iterations must be positive", ErrInvalidSyncConfigs)
	}

	if cfg.Workers.ResyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// RequireCredentials reports whether the secrets needed to serve users are
// present: the session sign key and the favorites consumer credentials.
func (cfg *StructuredConfig) RequireCredentials() error {
	if cfg.App.SessionSignKey == "" {
		return fmt.Errorf("%w: session sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.ConsumerKey == "" || cfg.Adapter.ConsumerSecret == "" {
		return fmt.Errorf("%w: consumer key and secret are required", ErrInvalidAdapterConfigs)
	}

	return nil
}
