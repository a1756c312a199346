// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncReport summarises one run of the favorites synchronisation for a user.
type SyncReport struct {
	// UserID is the internal id of the synchronised user.
	UserID int64 `json:"user_id"`

	// Iterations is the number of fetch passes performed.
	Iterations int `json:"iterations"`

	// Requests is the number of favorites pages requested from the source.
	Requests int `json:"requests"`

	// Fetched is the number of posts returned by the source over all passes.
	Fetched int `json:"fetched"`

	// Inserted is the number of new tweets stored for the user.
	Inserted int64 `json:"inserted"`

	// AlreadyStored counts fetched posts that were not inserted because their
	// tweet id is already stored, possibly for another user: tweet ids are
	// unique across the store.
	AlreadyStored int64 `json:"already_stored"`

	// Total is the number of tweets the user owns after the run.
	Total int64 `json:"total"`

	// Complete is true when the run stopped because a pass added nothing.
	// It is false when the iteration cap stopped the loop first.
	Complete bool `json:"complete"`

	// Duration is the wall-clock time spent in the run.
	Duration time.Duration `json:"duration"`
}
