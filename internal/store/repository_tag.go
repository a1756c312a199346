// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/models"
)

type tagRepository struct {
	*DB
	logger *logger.Logger
}

// NewTagRepository constructs a [TagRepository] backed by db.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	return &tagRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceTweetTags resolves every requested tag for the tweet's owner,
// creating the missing ones with the given slug, then rewrites the tweet's
// join rows so that they hold exactly these tags in order. The whole
// operation is one transaction.
func (r *tagRepository) ReplaceTweetTags(ctx context.Context, tweet models.Tweet, tags []models.Tag) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	var saved []models.Tag
	err := r.inTx(ctx, "tagRepository.ReplaceTweetTags", func(tx *sql.Tx) error {
		var err error
		saved, err = r.replaceTweetTags(ctx, tx, tweet, tags)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.ReplaceTweetTags").
			Int64("tweet_id", tweet.ID).
			Int("tags_count", len(tags)).
			Msg("failed to replace tweet tags")
		return nil, err
	}

	return saved, nil
}

// replaceTweetTags is the body of ReplaceTweetTags, shared with
// tweetRepository.Update so both writes can share one transaction.
func (db *DB) replaceTweetTags(ctx context.Context, tx *sql.Tx, tweet models.Tweet, tags []models.Tag) ([]models.Tag, error) {
	saved := make([]models.Tag, 0, len(tags))
	for _, tag := range tags {
		tag.UserID = tweet.UserID
		found, err := db.findOrCreateTag(ctx, tx, tag)
		if err != nil {
			return nil, err
		}
		saved = append(saved, found)
	}

	query, args, err := db.buildDeleteTweetTagsQuery(tweet.ID)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(saved) == 0 {
		return saved, nil
	}

	query, args, err = db.buildInsertTweetTagsQuery(tweet.ID, saved)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

func (db *DB) findOrCreateTag(ctx context.Context, tx *sql.Tx, tag models.Tag) (models.Tag, error) {
	query, args, err := db.buildInsertTagQuery(tag)
	if err != nil {
		return models.Tag{}, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = db.buildSelectTagByNameQuery(tag.UserID, tag.Name)
	if err != nil {
		return models.Tag{}, err
	}

	found, err := scanTag(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tag{}, fmt.Errorf("%w: %q", ErrTagNotSaved, tag.Name)
	}
	if err != nil {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// TweetTags returns the tags attached to one tweet, in insertion order.
func (r *tagRepository) TweetTags(ctx context.Context, tweetID int64) ([]models.Tag, error) {
	byTweet, err := r.TagsByTweet(ctx, []int64{tweetID})
	if err != nil {
		return nil, err
	}

	tags := byTweet[tweetID]
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

// tagLookupBatch caps the tweet ids placed in one IN list. SQLite
// rejects statements with more than 32766 parameters.
const tagLookupBatch = 500

// TagsByTweet loads the tags of many tweets, tagLookupBatch ids per query.
func (r *tagRepository) TagsByTweet(ctx context.Context, tweetIDs []int64) (map[int64][]models.Tag, error) {
	result := make(map[int64][]models.Tag, len(tweetIDs))

	for start := 0; start < len(tweetIDs); start += tagLookupBatch {
		end := min(start+tagLookupBatch, len(tweetIDs))
		if err := r.loadTweetTags(ctx, tweetIDs[start:end], result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (r *tagRepository) loadTweetTags(ctx context.Context, tweetIDs []int64, result map[int64][]models.Tag) error {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectTweetTagsQuery(tweetIDs...)
	if err != nil {
		return err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.TagsByTweet").
			Int("tweets_count", len(tweetIDs)).
			Msg("failed to query tweet tags")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			tweetID int64
			tag     models.Tag
		)
		if err := rows.Scan(&tweetID, &tag.ID, &tag.UserID, &tag.Name, &tag.Slug, &tag.CreatedAt); err != nil {
			log.Err(err).Str("func", "tagRepository.TagsByTweet").Msg("failed to scan tag row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result[tweetID] = append(result[tweetID], tag)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "tagRepository.TagsByTweet").Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

// UserTags returns every tag owned by userID, ordered by name.
func (r *tagRepository) UserTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectUserTagsQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.UserTags").
			Int64("user_id", userID).
			Msg("failed to query user tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

func scanTag(row rowScanner) (models.Tag, error) {
	var tag models.Tag
	err := row.Scan(&tag.ID, &tag.UserID, &tag.Name, &tag.Slug, &tag.CreatedAt)
	return tag, err
}
