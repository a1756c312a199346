package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/validators"
	"github.com/MKhiriev/fave-tweets/models"
)

// TweetValidationService checks request payloads before handing them to
// the wrapped TweetService.
type TweetValidationService struct {
	inner     TweetService
	validator validators.Validator
}

func NewTweetValidationService(validator validators.Validator) TweetServiceWrapper {
	return &TweetValidationService{
		validator: validator,
	}
}

func (v *TweetValidationService) ListTweets(ctx context.Context, userID int64) ([]models.TweetResponse, error) {
	return v.inner.ListTweets(ctx, userID)
}

func (v *TweetValidationService) GetTweet(ctx context.Context, userID, id int64) (models.TweetResponse, error) {
	return v.inner.GetTweet(ctx, userID, id)
}

func (v *TweetValidationService) UpdateTweet(ctx context.Context, userID, id int64, req models.TweetUpdateRequest) (models.TweetResponse, error) {
	if err := v.validator.Validate(ctx, &req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("id", id).Msg("tweet update rejected")
		return models.TweetResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UpdateTweet(ctx, userID, id, req)
}

func (v *TweetValidationService) Wrap(wrapped TweetService) TweetService {
	v.inner = wrapped
	return v
}
