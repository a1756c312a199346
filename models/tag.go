// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Tag is a user-defined label attached to tweets. Tags are scoped per user:
// a (UserID, Name) pair resolves to exactly one Tag.
type Tag struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`

	// Slug is derived from Name when the tag is created and stored as is.
	// Renaming a tag does not recompute it.
	Slug string `json:"slug"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}
