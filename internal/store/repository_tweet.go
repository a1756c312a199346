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

// tweetRepository is the SQL implementation of [TweetRepository] over the
// "tweets" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database failures are traced with the
// request's trace id.
type tweetRepository struct {
	*DB
	logger *logger.Logger
}

// NewTweetRepository constructs a [TweetRepository] backed by db.
func NewTweetRepository(db *DB, logger *logger.Logger) TweetRepository {
	return &tweetRepository{
		DB:     db,
		logger: logger,
	}
}

// Stats returns how many tweets the user owns and the lowest and highest
// source ids among them. Both ids are zero for a user without tweets.
func (r *tweetRepository) Stats(ctx context.Context, userID int64) (models.TweetStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildTweetStatsQuery(userID)
	if err != nil {
		return models.TweetStats{}, err
	}

	var stats models.TweetStats
	if err := r.QueryRowContext(ctx, query, args...).Scan(&stats.Count, &stats.MinTweetID, &stats.MaxTweetID); err != nil {
		log.Err(err).
			Str("func", "tweetRepository.Stats").
			Int64("user_id", userID).
			Msg("failed to read tweet stats")
		return models.TweetStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}

// InsertPage inserts a page of tweets in a single transaction. A tweet whose
// tweet_id is already stored is left untouched, so replaying a page inserts
// nothing. Either the whole page is written or none of it.
func (r *tweetRepository) InsertPage(ctx context.Context, tweets []models.Tweet) (int64, error) {
	log := logger.FromContext(ctx)

	if len(tweets) == 0 {
		return 0, nil
	}

	query, args, err := r.buildInsertTweetsQuery(tweets)
	if err != nil {
		return 0, err
	}

	var inserted int64
	err = r.inTx(ctx, "tweetRepository.InsertPage", func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		affected, affErr := result.RowsAffected()
		if affErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
		}
		inserted = affected
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "tweetRepository.InsertPage").
			Int("page_size", len(tweets)).
			Msg("failed to insert tweets page")
		return 0, err
	}

	log.Debug().
		Str("func", "tweetRepository.InsertPage").
		Int("page_size", len(tweets)).
		Int64("inserted", inserted).
		Msg("tweets page stored")

	return inserted, nil
}

// ListByUser returns the tweets of userID, newest source id first.
func (r *tweetRepository) ListByUser(ctx context.Context, userID int64) ([]models.Tweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectUserTweetsQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "tweetRepository.ListByUser").
			Int64("user_id", userID).
			Msg("failed to query tweets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tweets := make([]models.Tweet, 0, 50)
	for rows.Next() {
		tweet, scanErr := scanTweet(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "tweetRepository.ListByUser").
				Int64("user_id", userID).
				Msg("failed to scan tweet row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tweets = append(tweets, tweet)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "tweetRepository.ListByUser").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tweets, nil
}

// Get returns the tweet with internal id owned by userID.
func (r *tweetRepository) Get(ctx context.Context, userID, id int64) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectTweetQuery(userID, id)
	if err != nil {
		return models.Tweet{}, err
	}

	tweet, err := scanTweet(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tweet{}, ErrTweetNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "tweetRepository.Get").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to scan tweet")
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tweet, nil
}

// Update writes tweet.Archived and replaces the tweet's tags in one
// transaction, so a failed tag write leaves the archived flag untouched.
// It returns the saved tags in order.
func (r *tweetRepository) Update(ctx context.Context, tweet models.Tweet, tags []models.Tag) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildUpdateArchivedQuery(tweet.UserID, tweet.ID, tweet.Archived)
	if err != nil {
		return nil, err
	}

	var saved []models.Tag
	err = r.inTx(ctx, "tweetRepository.Update", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrTweetNotFound
		}

		saved, err = r.replaceTweetTags(ctx, tx, tweet, tags)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrTweetNotFound) {
			log.Err(err).
				Str("func", "tweetRepository.Update").
				Int64("id", tweet.ID).
				Int("tags_count", len(tags)).
				Msg("failed to update tweet")
		}
		return nil, err
	}

	return saved, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTweet(row rowScanner) (models.Tweet, error) {
	var (
		tweet    models.Tweet
		postedAt sql.NullTime
	)

	err := row.Scan(
		&tweet.ID,
		&tweet.TweetID,
		&tweet.UserID,
		&tweet.Text,
		&tweet.AuthorName,
		&tweet.AuthorScreenName,
		&postedAt,
		&tweet.Archived,
		&tweet.CreatedAt,
	)
	if err != nil {
		return models.Tweet{}, err
	}

	if postedAt.Valid {
		tweet.PostedAt = postedAt.Time
	}

	return tweet, nil
}
