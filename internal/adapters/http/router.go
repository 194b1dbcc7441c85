// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/deal-pipeline/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	dealHandler *handlers.DealHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/deals", func(r chi.Router) {
		r.Get("/", dealHandler.ListDeals)
		r.Post("/", dealHandler.CreateDeal)

		// Fixed segments are matched ahead of the {id} parameter.
		r.Get("/summary", dealHandler.Summary)
		r.Post("/reorder", dealHandler.ReorderDeals)
		r.Post("/bulk", dealHandler.BulkImport)

		r.Get("/{id}", dealHandler.GetDeal)
		r.Put("/{id}", dealHandler.UpdateDeal)
		r.Delete("/{id}", dealHandler.DeleteDeal)
	})

	return r
}
