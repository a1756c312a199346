// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/fave-tweets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService imports a user's favorites from the favorites source.
type SyncService interface {
	// Synchronize fetches pages forward and backward from the stored id range
	// until a pass adds nothing. The report is returned even on error and
	// describes the work committed before the failure.
	Synchronize(ctx context.Context, user models.User) (models.SyncReport, error)
}

// TagService manages the free-text tag list of tweets.
type TagService interface {
	GetTagList(ctx context.Context, tweet models.Tweet) (string, error)
	SetTagList(ctx context.Context, tweet models.Tweet, text string) error
	GetTags(ctx context.Context, tweet models.Tweet) ([]models.Tag, error)
	TagsForTweets(ctx context.Context, tweets []models.Tweet) (map[int64][]models.Tag, error)
	ListUserTags(ctx context.Context, userID int64) ([]models.Tag, error)
}

type UserService interface {
	FindOrCreateByExternalID(ctx context.Context, uid int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// TweetService serves the stored tweets of a user annotated with their tags.
type TweetService interface {
	ListTweets(ctx context.Context, userID int64) ([]models.TweetResponse, error)
	GetTweet(ctx context.Context, userID, id int64) (models.TweetResponse, error)
	UpdateTweet(ctx context.Context, userID, id int64, req models.TweetUpdateRequest) (models.TweetResponse, error)
}

type AuthService interface {
	CreateSession(ctx context.Context, uid int64) (models.Session, error)
	ParseSession(ctx context.Context, tokenString string) (models.Session, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// SyncObserver receives the outcome of every synchronisation run.
type SyncObserver interface {
	ObserveSync(outcome string, report models.SyncReport)
}
