package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/store"
	"github.com/MKhiriev/fave-tweets/models"
)

type tweetService struct {
	tweetRepository store.TweetRepository
	tagService      TagService

	logger *logger.Logger
}

func NewTweetService(tweetRepository store.TweetRepository, tagService TagService, logger *logger.Logger) TweetService {
	return &tweetService{
		tweetRepository: tweetRepository,
		tagService:      tagService,
		logger:          logger,
	}
}

// ListTweets returns the user's tweets, newest source id first, each with
// its tags attached.
func (s *tweetService) ListTweets(ctx context.Context, userID int64) ([]models.TweetResponse, error) {
	log := logger.FromContext(ctx)

	tweets, err := s.tweetRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing tweets failed")
		return nil, fmt.Errorf("listing tweets failed: %w", err)
	}

	tagsByTweet, err := s.tagService.TagsForTweets(ctx, tweets)
	if err != nil {
		return nil, err
	}

	responses := make([]models.TweetResponse, len(tweets))
	for i, tweet := range tweets {
		responses[i] = annotate(tweet, tagsByTweet[tweet.ID])
	}

	return responses, nil
}

// GetTweet returns store.ErrTweetNotFound when the tweet does not exist or
// belongs to another user.
func (s *tweetService) GetTweet(ctx context.Context, userID, id int64) (models.TweetResponse, error) {
	tweet, err := s.tweetRepository.Get(ctx, userID, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int64("id", id).Msg("loading tweet failed")
		return models.TweetResponse{}, fmt.Errorf("loading tweet failed: %w", err)
	}

	tags, err := s.tagService.GetTags(ctx, tweet)
	if err != nil {
		return models.TweetResponse{}, err
	}

	return annotate(tweet, tags), nil
}

// UpdateTweet sets the archived flag and replaces the tag list in one
// store transaction: on failure neither change is kept. The request is
// expected to be validated by the wrapping validation service.
func (s *tweetService) UpdateTweet(ctx context.Context, userID, id int64, req models.TweetUpdateRequest) (models.TweetResponse, error) {
	log := logger.FromContext(ctx)

	if req.Archived == nil || req.TagList == nil {
		return models.TweetResponse{}, fmt.Errorf("%w: archived and tag_list are required", ErrValidation)
	}

	tweet, err := s.tweetRepository.Get(ctx, userID, id)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("id", id).Msg("loading tweet for update failed")
		return models.TweetResponse{}, fmt.Errorf("loading tweet for update failed: %w", err)
	}

	tweet.Archived = *req.Archived
	tags, err := s.tweetRepository.Update(ctx, tweet, buildTags(tweet.UserID, *req.TagList))
	if err != nil {
		log.Err(err).Int64("id", id).Bool("archived", tweet.Archived).Msg("updating tweet failed")
		return models.TweetResponse{}, fmt.Errorf("updating tweet failed: %w", err)
	}

	log.Info().Int64("id", id).Bool("archived", tweet.Archived).Int("tags", len(tags)).Msg("tweet updated")
	return annotate(tweet, tags), nil
}

func annotate(tweet models.Tweet, tags []models.Tag) models.TweetResponse {
	if tags == nil {
		tags = []models.Tag{}
	}
	return models.TweetResponse{
		Tweet:   tweet,
		IDStr:   tweet.IDStr(),
		Tags:    tags,
		TagList: JoinTagNames(tags),
	}
}
