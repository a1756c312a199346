// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the local account of a person who signed in through the social
// identity provider. It owns the favorited tweets and the tags created for
// them.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// UID is the account id assigned by the identity provider.
	// At most one User exists per UID (unique index on users.uid).
	UID int64 `json:"uid"`

	// CreatedAt is the timestamp when the account row was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
