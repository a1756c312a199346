// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation of request
// payloads before they reach the service layer.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldErrors: per-field failure reasons keyed by JSON name, so the
//     transport layer can echo them back to the client.
//
// The default implementation is backed by go-playground/validator and reads
// rules from `validate` struct tags.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific struct fields.
	Validate(context.Context, any, ...string) error
}
