// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fave-tweets/models"
)

var (
	userColumns  = []string{"id", "uid", "created_at"}
	tweetColumns = []string{
		"id", "tweet_id", "user_id", "text", "author_name",
		"author_screen_name", "posted_at", "archived", "created_at",
	}
	tagColumns = []string{"tags.id", "tags.user_id", "tags.name", "tags.slug", "tags.created_at"}
)

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// users

func (db *DB) buildInsertUserQuery(uid int64) (string, []any, error) {
	return toSQL(db.builder.
		Insert("users").
		Columns("uid").
		Values(uid).
		Suffix("ON CONFLICT (uid) DO NOTHING"))
}

func (db *DB) buildSelectUserByUIDQuery(uid int64) (string, []any, error) {
	return toSQL(db.builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"uid": uid}))
}

func (db *DB) buildSelectUsersQuery() (string, []any, error) {
	return toSQL(db.builder.
		Select(userColumns...).
		From("users").
		OrderBy("id"))
}

// tweets

func (db *DB) buildTweetStatsQuery(userID int64) (string, []any, error) {
	return toSQL(db.builder.
		Select("COUNT(*)", "COALESCE(MIN(tweet_id), 0)", "COALESCE(MAX(tweet_id), 0)").
		From("tweets").
		Where(sq.Eq{"user_id": userID}))
}

// buildInsertTweetsQuery builds one multi-row INSERT for a page. Rows whose
// tweet_id already exists are skipped, so RowsAffected counts new tweets.
func (db *DB) buildInsertTweetsQuery(tweets []models.Tweet) (string, []any, error) {
	insert := db.builder.
		Insert("tweets").
		Columns("tweet_id", "user_id", "text", "author_name", "author_screen_name", "posted_at")

	for _, t := range tweets {
		var postedAt any
		if !t.PostedAt.IsZero() {
			postedAt = t.PostedAt
		}
		insert = insert.Values(t.TweetID, t.UserID, t.Text, t.AuthorName, t.AuthorScreenName, postedAt)
	}

	return toSQL(insert.Suffix("ON CONFLICT (tweet_id) DO NOTHING"))
}

func (db *DB) buildSelectUserTweetsQuery(userID int64) (string, []any, error) {
	return toSQL(db.builder.
		Select(tweetColumns...).
		From("tweets").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("tweet_id DESC"))
}

func (db *DB) buildSelectTweetQuery(userID, id int64) (string, []any, error) {
	return toSQL(db.builder.
		Select(tweetColumns...).
		From("tweets").
		Where(sq.Eq{"id": id, "user_id": userID}))
}

func (db *DB) buildUpdateArchivedQuery(userID, id int64, archived bool) (string, []any, error) {
	return toSQL(db.builder.
		Update("tweets").
		Set("archived", archived).
		Where(sq.Eq{"id": id, "user_id": userID}))
}

// tags

func (db *DB) buildInsertTagQuery(tag models.Tag) (string, []any, error) {
	return toSQL(db.builder.
		Insert("tags").
		Columns("user_id", "name", "slug").
		Values(tag.UserID, tag.Name, tag.Slug).
		Suffix("ON CONFLICT (user_id, name) DO NOTHING"))
}

func (db *DB) buildSelectTagByNameQuery(userID int64, name string) (string, []any, error) {
	return toSQL(db.builder.
		Select(tagColumns...).
		From("tags").
		Where(sq.Eq{"user_id": userID, "name": name}))
}

func (db *DB) buildDeleteTweetTagsQuery(tweetID int64) (string, []any, error) {
	return toSQL(db.builder.
		Delete("tweet_tags").
		Where(sq.Eq{"tweet_id": tweetID}))
}

func (db *DB) buildInsertTweetTagsQuery(tweetID int64, tags []models.Tag) (string, []any, error) {
	insert := db.builder.
		Insert("tweet_tags").
		Columns("tweet_id", "tag_id", "position")

	for position, tag := range tags {
		insert = insert.Values(tweetID, tag.ID, position)
	}

	return toSQL(insert)
}

func (db *DB) buildSelectTweetTagsQuery(tweetIDs ...int64) (string, []any, error) {
	return toSQL(db.builder.
		Select(append([]string{"tweet_tags.tweet_id"}, tagColumns...)...).
		From("tags").
		Join("tweet_tags ON tweet_tags.tag_id = tags.id").
		Where(sq.Eq{"tweet_tags.tweet_id": tweetIDs}).
		OrderBy("tweet_tags.tweet_id", "tweet_tags.position"))
}

func (db *DB) buildSelectUserTagsQuery(userID int64) (string, []any, error) {
	return toSQL(db.builder.
		Select(tagColumns...).
		From("tags").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name"))
}
