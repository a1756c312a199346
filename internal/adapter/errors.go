// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrUnauthorized is returned for 401 responses: the consumer
	// credentials or the bearer token were rejected.
	ErrUnauthorized = errors.New("favorites source: unauthorized")
	// ErrRateLimited is returned for 429 responses.
	ErrRateLimited = errors.New("favorites source: rate limited")
	// ErrUnexpectedStatus is returned for any other non-2xx response.
	ErrUnexpectedStatus = errors.New("favorites source: unexpected status")
	// ErrMalformedResponse is returned when a body cannot be decoded or a
	// post lacks its id.
	ErrMalformedResponse = errors.New("favorites source: malformed response")
	// ErrTransport is returned when the request could not be performed.
	ErrTransport = errors.New("favorites source: transport error")
)
