// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/fave-tweets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists [models.User] rows keyed by the external uid.
type UserRepository interface {
	// FindOrCreate returns the user with uid, inserting it first when
	// missing. Concurrent calls for one uid yield the same row.
	FindOrCreate(ctx context.Context, uid int64) (models.User, error)
	// FindByUID returns [ErrUserNotFound] when no row matches.
	FindByUID(ctx context.Context, uid int64) (models.User, error)
	// List returns every user ordered by id.
	List(ctx context.Context) ([]models.User, error)
}

// TweetRepository persists favorited tweets.
type TweetRepository interface {
	// Stats returns the count and id range of the user's tweets.
	Stats(ctx context.Context, userID int64) (models.TweetStats, error)
	// InsertPage stores a page of tweets in one transaction, skipping
	// tweet ids already present, and returns the number of new rows.
	InsertPage(ctx context.Context, tweets []models.Tweet) (int64, error)
	// ListByUser returns the user's tweets ordered by tweet id descending.
	ListByUser(ctx context.Context, userID int64) ([]models.Tweet, error)
	// Get returns [ErrTweetNotFound] when id is absent or owned by another user.
	Get(ctx context.Context, userID, id int64) (models.Tweet, error)
	// Update stores tweet.Archived and replaces the tweet's tags in one
	// transaction. It returns [ErrTweetNotFound] when the tweet is absent
	// or owned by another user than tweet.UserID.
	Update(ctx context.Context, tweet models.Tweet, tags []models.Tag) ([]models.Tag, error)
}

// TagRepository persists tags and their association with tweets.
type TagRepository interface {
	// ReplaceTweetTags finds or creates every tag of tags for the tweet's
	// owner and makes them, in order, the exact tag set of the tweet.
	// Tags that lose their last tweet are kept.
	ReplaceTweetTags(ctx context.Context, tweet models.Tweet, tags []models.Tag) ([]models.Tag, error)
	// TweetTags returns the tags of one tweet in insertion order.
	TweetTags(ctx context.Context, tweetID int64) ([]models.Tag, error)
	// TagsByTweet returns the tags of every listed tweet keyed by tweet id.
	TagsByTweet(ctx context.Context, tweetIDs []int64) (map[int64][]models.Tag, error)
	// UserTags returns every tag of the user ordered by name.
	UserTags(ctx context.Context, userID int64) ([]models.Tag, error)
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
