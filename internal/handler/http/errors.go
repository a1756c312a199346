// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrMalformedRequest is returned when a request body is not valid JSON
	// for the expected shape, or when a path parameter cannot be parsed.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrNoSession is returned by the session middleware when the request
	// carries no session cookie.
	ErrNoSession = errors.New("no session cookie")

	// ErrNoUserInContext is returned when a handler that requires a resolved
	// user runs outside of the withUser middleware.
	ErrNoUserInContext = errors.New("no user in request context")
)
