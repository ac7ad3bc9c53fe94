// Package server exposes the application core over REST. Handlers decode
// and validate request shapes, delegate to the service layer, and map the
// domain error taxonomy to HTTP status codes; no business logic lives here.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"splittab/internal/service"
)

// Server wires the service layer to the chi router.
type Server struct {
	svc *service.Service
}

// New creates a Server over the given service.
func New(svc *service.Service) *Server {
	return &Server{svc: svc}
}

// Router builds the HTTP handler: API routes plus health and metrics
// endpoints, wrapped in request logging and metrics middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(corsMiddleware)
	r.Use(metricsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", s.handleListUsers)
		r.Get("/transactions", s.handleListTransactions)

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", s.handleListExpenses)
			r.Post("/", s.handleCreateExpense)
			r.Get("/{id}", s.handleGetExpenseDetail)
		})

		r.Route("/transfers", func(r chi.Router) {
			r.Get("/", s.handleListTransfers)
			r.Post("/", s.handleCreateTransfer)
			r.Get("/{id}", s.handleGetTransfer)
		})
	})

	return r
}
