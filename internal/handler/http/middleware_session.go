// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/utils"
)

// withSession rejects requests without a valid session cookie with 401.
// On success the external account id is stored under [utils.UIDCtxKey] and
// the request logger gains a uid field.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.sessionCookie)
		if err != nil || cookie.Value == "" {
			writeError(w, r, ErrNoSession)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ParseSession(ctx, cookie.Value)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UIDCtxKey, session.UID)
		ctx = logger.FromContext(ctx).WithUID(session.UID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withUser resolves the local account of the session and stores its id
// under [utils.UserIDCtxKey]. It must run after withSession.
func (h *Handler) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

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

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromRequest returns the id stored by withUser.
func userIDFromRequest(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrNoUserInContext
	}
	return userID, nil
}
