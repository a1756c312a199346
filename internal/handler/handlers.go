package handler

import (
	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/handler/http"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/metrics"
	"github.com/MKhiriev/fave-tweets/internal/service"
)

// Handlers groups the transport handlers built over the services.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds a handler for every transport that has an address
// configured. m may be nil.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, m, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoListenAddress
	}

	return handlers, nil
}
