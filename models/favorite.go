// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// SourceTimeLayout is the timestamp format used by the favorites source in
// the created_at field.
const SourceTimeLayout = time.RubyDate

// Favorite is a single post as returned by the favorites source.
type Favorite struct {
	ID        int64        `json:"id"`
	IDStr     string       `json:"id_str"`
	Text      string       `json:"text"`
	CreatedAt SourceTime   `json:"created_at"`
	Author    FavoriteUser `json:"user"`
}

// FavoriteUser is the author block embedded in a [Favorite].
type FavoriteUser struct {
	Name       string `json:"name"`
	ScreenName string `json:"screen_name"`
}

// ToTweet converts the favorite into a [Tweet] owned by userID.
func (f Favorite) ToTweet(userID int64) Tweet {
	return Tweet{
		TweetID:          f.ID,
		UserID:           userID,
		Text:             f.Text,
		AuthorName:       f.Author.Name,
		AuthorScreenName: f.Author.ScreenName,
		PostedAt:         time.Time(f.CreatedAt),
	}
}

// FavoritesQuery holds the paging parameters of a favorites request.
// Zero MaxID or SinceID means the cursor is not sent.
type FavoritesQuery struct {
	// Count is the page size requested from the source.
	Count int

	// MaxID returns only posts with an id less than or equal to it.
	MaxID int64

	// SinceID returns only posts with an id strictly greater than it.
	SinceID int64
}

// SourceTime decodes the source's created_at strings
// ("Mon Jan 02 15:04:05 -0700 2006").
type SourceTime time.Time

// UnmarshalJSON implements [json.Unmarshaler].
func (s *SourceTime) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("created_at is not a string: %w", err)
	}
	if raw == "" {
		*s = SourceTime{}
		return nil
	}

	parsed, err := time.Parse(SourceTimeLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid created_at %q: %w", raw, err)
	}
	*s = SourceTime(parsed.UTC())
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (s SourceTime) MarshalJSON() ([]byte, error) {
	t := time.Time(s)
	if t.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.Format(SourceTimeLayout))
}
