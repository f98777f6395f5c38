package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter registers the API routes.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/games/{date}", handler.GamesByDate)
	})
	return r
}
