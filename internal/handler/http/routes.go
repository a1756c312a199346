package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	// routes without session
	router.Group(func(r chi.Router) {
		r.Get("/", h.health)
		r.Get("/version", h.getServerVersion)
		r.Get("/logout", h.logout)
		r.Get("/users", h.listUsers)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}
	})

	// routes with session
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)
		r.Get("/catalog", h.catalog)

		r.Group(func(r chi.Router) {
			r.Use(h.withUser)
			r.Get("/tags", h.listTags)
			r.Get("/tweets", h.listTweets)
			r.Get("/tweets/{id}", h.getTweet)
			r.Put("/tweets/{id}", h.updateTweet)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
