// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidEnv wraps every environment variable that failed to parse.
	ErrInvalidEnv = errors.New("invalid environment variable")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing session sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid favorites client settings
	// (for example, missing consumer credentials or an unusable rate limit).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSyncConfigs indicates sync limits outside their valid range.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidWorkerConfigs indicates a negative resync interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
