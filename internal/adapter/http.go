// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/utils"
	"github.com/MKhiriev/fave-tweets/models"
)

const (
	tokenPath     = "/oauth2/token"
	favoritesPath = "/1.1/favorites/list.json"
)

type httpFavoritesSource struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter

	consumerKey    string
	consumerSecret string

	mu    sync.Mutex
	token string

	logger *logger.Logger
}

type tokenResponse struct {
	TokenType   string `json:"token_type"`
	AccessToken string `json:"access_token"`
}

// NewHTTPFavoritesSource constructs the REST implementation of
// [FavoritesSource]. Requests go to cfg.BaseURL, time out after
// cfg.RequestTimeout and are throttled to cfg.RateLimit requests per second
// with bursts of cfg.RateBurst. A zero RateLimit disables throttling.
//
// Returns an error if cfg.BaseURL cannot be parsed as a valid URL.
func NewHTTPFavoritesSource(cfg config.Adapter, logger *logger.Logger) (FavoritesSource, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	return &httpFavoritesSource{
		client:         client,
		limiter:        rate.NewLimiter(limit, burst),
		consumerKey:    cfg.ConsumerKey,
		consumerSecret: cfg.ConsumerSecret,
		logger:         logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Favorites implements [FavoritesSource]. It calls
// GET /1.1/favorites/list.json with the app-only bearer token. A 401 drops
// the cached token so that the next call requests a fresh one.
func (h *httpFavoritesSource) Favorites(ctx context.Context, accountID int64, q models.FavoritesQuery) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	token, err := h.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Accept", "application/json").
		SetQueryParam("user_id", strconv.FormatInt(accountID, 10)).
		SetQueryParam("count", strconv.Itoa(q.Count))
	if q.MaxID > 0 {
		req.SetQueryParam("max_id", strconv.FormatInt(q.MaxID, 10))
	}
	if q.SinceID > 0 {
		req.SetQueryParam("since_id", strconv.FormatInt(q.SinceID, 10))
	}

	resp, err := req.Get(favoritesPath)
	if err != nil {
		log.Err(err).Str("func", "httpFavoritesSource.Favorites").Msg("favorites request failed")
		return nil, fmt.Errorf("%w: favorites request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			h.resetToken()
		}
		log.Warn().Err(err).
			Str("func", "httpFavoritesSource.Favorites").
			Int("status", resp.StatusCode()).
			Msg("favorites source returned an error status")
		return nil, err
	}

	var favorites []models.Favorite
	if err = json.Unmarshal(resp.Body(), &favorites); err != nil {
		return nil, fmt.Errorf("%w: decode favorites: %w", ErrMalformedResponse, err)
	}

	for i, f := range favorites {
		if f.ID <= 0 {
			return nil, fmt.Errorf("%w: post at index %d has no id", ErrMalformedResponse, i)
		}
	}

	log.Debug().
		Str("func", "httpFavoritesSource.Favorites").
		Int64("account_id", accountID).
		Int64("max_id", q.MaxID).
		Int64("since_id", q.SinceID).
		Int("received", len(favorites)).
		Msg("favorites page received")

	return favorites, nil
}

// bearerToken returns the cached app-only token, requesting one with the
// client_credentials grant when none is held.
func (h *httpFavoritesSource) bearerToken(ctx context.Context) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token != "" {
		return h.token, nil
	}

	if err := h.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}

	var result tokenResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth(url.QueryEscape(h.consumerKey), url.QueryEscape(h.consumerSecret)).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		Post(tokenPath)
	if err != nil {
		return "", fmt.Errorf("%w: token request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("%w: decode token: %w", ErrMalformedResponse, err)
	}
	if !strings.EqualFold(result.TokenType, "bearer") || result.AccessToken == "" {
		return "", fmt.Errorf("%w: unexpected token type %q", ErrMalformedResponse, result.TokenType)
	}

	h.token = result.AccessToken
	return h.token, nil
}

func (h *httpFavoritesSource) resetToken() {
	h.mu.Lock()
	h.token = ""
	h.mu.Unlock()
}
