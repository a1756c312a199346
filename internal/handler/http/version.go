package http

import (
	"net/http"

	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/utils"
	"github.com/MKhiriev/fave-tweets/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	writeText(w, r, http.StatusOK, serverVersion)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write health response")
	}
}
