package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/store"
	"github.com/MKhiriev/fave-tweets/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// FindOrCreateByExternalID returns the local account of the external id,
// creating it on first sign-in. Uniqueness under concurrent calls is
// guaranteed by the users.uid unique index.
func (u *userService) FindOrCreateByExternalID(ctx context.Context, uid int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if uid <= 0 {
		log.Error().Int64("uid", uid).Msg("invalid external account id")
		return models.User{}, fmt.Errorf("%w: external account id must be positive, got %d", ErrValidation, uid)
	}

	user, err := u.userRepository.FindOrCreate(ctx, uid)
	if err != nil {
		log.Err(err).Int64("uid", uid).Msg("user lookup ended with error")
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	return user, nil
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}
