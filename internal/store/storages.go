// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/fave-tweets/internal/logger"

// Storages groups the repositories built over one [DB].
type Storages struct {
	UserRepository  UserRepository
	TweetRepository TweetRepository
	TagRepository   TagRepository
}

// NewStorages builds every repository over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		TweetRepository: NewTweetRepository(db, log),
		TagRepository:   NewTagRepository(db, log),
	}
}
