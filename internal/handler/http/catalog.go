// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/service"
	"github.com/MKhiriev/fave-tweets/internal/utils"
	"github.com/MKhiriev/fave-tweets/models"
)

// catalog finds or creates the account of the session and synchronises its
// favorites. Hitting the iteration cap is not a failure: the partial report
// is returned with complete=false.
func (h *Handler) catalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	uid, ok := utils.GetUIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	user, err := h.services.UserService.FindOrCreateByExternalID(ctx, uid)
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.services.SyncService.Synchronize(ctx, user)
	if err != nil && !errors.Is(err, service.ErrSyncIterationLimit) {
		writeError(w, r, err)
		return
	}
	if err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("sync stopped before completion")
	}

	if _, err := utils.WriteJSON(w, models.CatalogResponse{User: user, Report: report}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write catalog response")
	}
}
