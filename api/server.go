/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the calculator frontend

ROUTE GROUPS:
  /api/settlements     Settlement calculation
  /api/rates/*         Minimum wage and rate-table configs
  /api/ledger/*        FGTS ledger helpers
  /api/scenarios       Demo scenarios

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/settlements", func(r chi.Router) {
			r.Post("/", h.CalculateSettlement)
		})

		r.Route("/rates", func(r chi.Router) {
			r.Get("/minimum-wage", h.GetMinimumWage)
			r.Get("/minimum-wage/history", h.MinimumWageHistory)
			r.Post("/config", h.UploadRateConfig)
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Get("/template", h.LedgerTemplate)
		})

		r.Get("/scenarios", h.ListScenarios)
	})

	return r
}
