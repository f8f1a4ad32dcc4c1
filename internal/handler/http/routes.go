package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/health", h.health)
	router.Get("/version", h.version)

	router.Group(func(r chi.Router) {
		r.Use(h.auth, withAccountID)
		r.Post("/hooks/status/{accountID}", h.publishStatus)
		r.Delete("/hooks/status/{accountID}", h.clearStatus)
		r.Get("/hooks/status/{accountID}", h.currentStatus)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
