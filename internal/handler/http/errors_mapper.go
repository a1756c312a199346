package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/service"
	"github.com/MKhiriev/fave-tweets/internal/store"
	"github.com/MKhiriev/fave-tweets/internal/utils"
	"github.com/MKhiriev/fave-tweets/internal/validators"
	"github.com/MKhiriev/fave-tweets/models"
)

var errorStatusMap = map[error]int{
	ErrMalformedRequest: http.StatusBadRequest,
	ErrNoSession:        http.StatusUnauthorized,
	ErrNoUserInContext:  http.StatusUnauthorized,

	service.ErrValidation:            http.StatusBadRequest,
	service.ErrSessionInvalid:        http.StatusUnauthorized,
	service.ErrSessionCreationFailed: http.StatusInternalServerError,
	service.ErrUpstreamFetch:         http.StatusBadGateway,
	service.ErrSyncAborted:           http.StatusGatewayTimeout,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrUserNotFound:  http.StatusNotFound,
	store.ErrTweetNotFound: http.StatusNotFound,
	store.ErrTagNotSaved:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Server-side
// failures never leak their message to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	body := models.ErrorResponse{Error: http.StatusText(status)}
	if status < http.StatusInternalServerError {
		body.Error = err.Error()
	}

	var fieldErrors validators.FieldErrors
	if errors.As(err, &fieldErrors) {
		body.Fields = fieldErrors
	}

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Msg("failed to write error response")
	}
}
