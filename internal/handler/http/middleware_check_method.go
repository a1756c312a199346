// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// chi answers 405 when a path matches but the method does not. The API
// answers 404 instead so that the set of supported methods is not exposed.
// Requests whose method does match after all are handed back to router.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			notFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// notFound answers unknown routes.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeText(w, r, http.StatusNotFound, "URL not found.")
}
