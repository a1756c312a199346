package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/utils"
	"github.com/MKhiriev/fave-tweets/models"
)

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tags, err := h.services.TagService.ListUserTags(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, tags, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write tags")
	}
}

func (h *Handler) listTweets(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tweets, err := h.services.TweetService.ListTweets(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, tweets, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write tweets")
	}
}

func (h *Handler) getTweet(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := tweetIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tweet, err := h.services.TweetService.GetTweet(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, tweet, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write tweet")
	}
}

// updateTweet replaces the archived flag and the tags of a tweet and answers
// 201 with the stored result.
func (h *Handler) updateTweet(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := tweetIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.TweetUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedRequest, err))
		return
	}

	tweet, err := h.services.TweetService.UpdateTweet(r.Context(), userID, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, tweet, http.StatusCreated); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write updated tweet")
	}
}

func tweetIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid tweet id %q", ErrMalformedRequest, raw)
	}
	return id, nil
}
