// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the external favorites source.
//
// The primary abstraction is [FavoritesSource], which decouples the sync
// engine from the source's HTTP API. [NewHTTPFavoritesSource] is the REST
// implementation: it obtains an app-only bearer token, throttles outbound
// calls with a token-bucket limiter and maps HTTP statuses to the sentinel
// errors in errors.go so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/fave-tweets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/favorites_source_mock.go -package=mock

// FavoritesSource returns pages of posts favorited by an external account.
type FavoritesSource interface {
	// Favorites returns at most q.Count posts favorited by accountID,
	// newest first. A non-zero q.MaxID limits the page to ids <= MaxID and a
	// non-zero q.SinceID to ids > SinceID. An empty slice means there is
	// nothing more in that direction.
	Favorites(ctx context.Context, accountID int64, q models.FavoritesQuery) ([]models.Favorite, error)
}
