package http

import (
	"cmp"
	"net/http"

	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/metrics"
	"github.com/MKhiriev/fave-tweets/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	sessionCookie string

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. m may be nil, in which case request
// metrics are not collected and /metrics is not served.
func NewHandler(services *service.Services, cfg config.App, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		metrics:       m,
		sessionCookie: cmp.Or(cfg.SessionCookie, config.DefaultSessionCookie),
		logger:        logger,
	}
}

// writeText answers with a plain-text body and logs a failed write.
func writeText(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("failed to write response")
	}
}
