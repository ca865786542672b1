package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers, health *HealthChecker) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	// CORS - the intake form is served from a separate origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://intake.caseflow.io", "http://localhost:5173"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check (no auth required)
	r.Get("/health", health.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/email/validate", h.HandleValidateEmail)

		r.Route("/cases", func(r chi.Router) {
			r.Post("/", h.HandleSubmitCase)
			r.Get("/", h.HandleListCases)
			r.Get("/{id}", h.HandleGetCase)
			r.Patch("/{id}/status", h.HandleUpdateCaseStatus)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", h.HandleRegisterAccount)
			r.Get("/{id}", h.HandleGetAccount)
		})
	})

	return r
}
