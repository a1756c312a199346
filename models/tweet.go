// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// Tweet is a favorited post imported from the favorites source and stored
// locally for one user.
type Tweet struct {
	// ID is the internal identifier of the stored row.
	ID int64 `json:"id"`

	// TweetID is the identifier assigned by the source platform. It is the
	// idempotency key of the sync upsert and is unique across the store.
	TweetID int64 `json:"tweet_id"`

	// UserID references the owning [User].
	UserID int64 `json:"user_id"`

	// Text is the body of the post.
	Text string `json:"text"`

	// AuthorName is the display name of the post author.
	AuthorName string `json:"author_name"`

	// AuthorScreenName is the handle of the post author.
	AuthorScreenName string `json:"author_screen_name"`

	// PostedAt is the creation time reported by the source.
	PostedAt time.Time `json:"posted_at"`

	// Archived is toggled by the user through the update endpoint.
	Archived bool `json:"archived"`

	// CreatedAt is the time the row was inserted by the sync engine.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Tweet model.
func (t Tweet) TableName() string {
	return "tweets"
}

// IDStr returns the source identifier as a decimal string. JavaScript
// clients lose precision on 64-bit numbers, so the API exposes both forms.
func (t Tweet) IDStr() string {
	return strconv.FormatInt(t.TweetID, 10)
}

// TweetStats describes the range of source identifiers stored for a user.
// MinTweetID and MaxTweetID are zero when Count is zero.
type TweetStats struct {
	Count      int64
	MinTweetID int64
	MaxTweetID int64
}
