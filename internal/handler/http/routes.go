package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Init builds the chi router with the full middleware pipeline.
//
// Middleware registered first wraps everything registered after it, so the
// order below is the execution order on the way in: trace-ID, error
// boundary, authentication, logging, metrics, route handler. Responses
// travel back out through the same stages in reverse.
//
// The /metrics and /api/version/ endpoints sit outside the authenticated
// group so that scrapers and health tooling do not need a token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)

	router.Group(func(r chi.Router) {
		r.Use(h.withErrorHandling)
		r.Use(h.withAuth)
		r.Use(h.withLogging)
		r.Use(h.withMetrics)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{name}", h.getUser)
			r.Put("/{name}", h.updateUser)
			r.Delete("/{name}", h.deleteUser)
		})
	})

	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}
	})

	return router
}
