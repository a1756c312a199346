package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/store"
	"github.com/MKhiriev/fave-tweets/models"
)

type tagService struct {
	tagRepository store.TagRepository

	logger *logger.Logger
}

func NewTagService(tagRepository store.TagRepository, logger *logger.Logger) TagService {
	return &tagService{
		tagRepository: tagRepository,
		logger:        logger,
	}
}

// GetTagList returns the tweet's tag names joined by ", " in the order they
// were attached.
func (t *tagService) GetTagList(ctx context.Context, tweet models.Tweet) (string, error) {
	tags, err := t.GetTags(ctx, tweet)
	if err != nil {
		return "", err
	}

	return JoinTagNames(tags), nil
}

// SetTagList replaces the tags of tweet with the names parsed from text.
// Missing tags are created for the tweet owner with a derived slug; tags
// that end up attached to no tweet are kept.
func (t *tagService) SetTagList(ctx context.Context, tweet models.Tweet, text string) error {
	log := logger.FromContext(ctx)

	tags := buildTags(tweet.UserID, text)
	if _, err := t.tagRepository.ReplaceTweetTags(ctx, tweet, tags); err != nil {
		log.Err(err).Int64("tweet_id", tweet.ID).Int("tags", len(tags)).Msg("replacing tweet tags failed")
		return fmt.Errorf("replacing tweet tags failed: %w", err)
	}

	log.Debug().Int64("tweet_id", tweet.ID).Int("tags", len(tags)).Msg("tweet tags replaced")
	return nil
}

func (t *tagService) GetTags(ctx context.Context, tweet models.Tweet) ([]models.Tag, error) {
	tags, err := t.tagRepository.TweetTags(ctx, tweet.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("tweet_id", tweet.ID).Msg("loading tweet tags failed")
		return nil, fmt.Errorf("loading tweet tags failed: %w", err)
	}

	return tags, nil
}

// TagsForTweets loads the tags of many tweets in one query, keyed by the
// internal tweet id.
func (t *tagService) TagsForTweets(ctx context.Context, tweets []models.Tweet) (map[int64][]models.Tag, error) {
	if len(tweets) == 0 {
		return map[int64][]models.Tag{}, nil
	}

	ids := make([]int64, len(tweets))
	for i, tweet := range tweets {
		ids[i] = tweet.ID
	}

	tags, err := t.tagRepository.TagsByTweet(ctx, ids)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("tweets", len(ids)).Msg("loading tags of tweets failed")
		return nil, fmt.Errorf("loading tags of tweets failed: %w", err)
	}

	return tags, nil
}

// ListUserTags returns every tag the user has created, ordered by name.
func (t *tagService) ListUserTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	tags, err := t.tagRepository.UserTags(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing user tags failed")
		return nil, fmt.Errorf("listing user tags failed: %w", err)
	}

	return tags, nil
}
