package http

import (
	"net/http"

	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/utils"
)

const loggedOutMessage = "You are now logged out"

// logout expires the session cookie. It succeeds with or without a session.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeText(w, r, http.StatusOK, loggedOutMessage)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, users, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write users")
	}
}
