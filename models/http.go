// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TweetUpdateRequest is the body of PUT /tweets/{id}. Both fields are
// required; a missing field is a validation error rather than "unchanged".
type TweetUpdateRequest struct {
	// Archived is the new value of the archived flag.
	Archived *bool `json:"archived" validate:"required"`

	// TagList is a comma-separated list of tag names that replaces the
	// tweet's current tags. An empty string removes all tags.
	TagList *string `json:"tag_list" validate:"required,max=1024"`
}

// TweetResponse is the JSON shape of a tweet served to the front end.
type TweetResponse struct {
	Tweet

	// IDStr is the source id as a string.
	IDStr string `json:"id_str"`

	// Tags are the tag entities of the tweet in insertion order.
	Tags []Tag `json:"tags"`

	// TagList is Tags joined by ", ".
	TagList string `json:"tag_list"`
}

// CatalogResponse is returned by GET /catalog after synchronisation.
type CatalogResponse struct {
	User   User       `json:"user"`
	Report SyncReport `json:"report"`
}

// HealthResponse is returned by GET /.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`

	// Fields maps a request field to its validation failure.
	Fields map[string]string `json:"fields,omitempty"`
}
