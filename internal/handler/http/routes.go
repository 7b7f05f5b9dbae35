package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// every blob route requires an operation-scoped token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/blob", h.pullBlob)
		r.Put("/api/blob", h.pushBlob)
		r.Delete("/api/blob", h.resetBlob)
	})

	return router
}
