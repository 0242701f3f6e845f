package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/webmasterhq/webmaster-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux, h *handlers.Handler) {
	// Static pages
	r.Get("/", h.Index)
	r.Get("/admin", h.Admin)

	// Form submission API
	r.Post("/api/submit-form", h.SubmitForm)
	r.Get("/api/users", h.GetUsers)

	// Health check and metrics
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())
}
