/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the dashboard frontend

ROUTE GROUPS:
  /api/employees/*      Employee registry
  /api/viewer           Active viewer
  /api/requests/*       Request ledger and decisions
  /api/balances         Balance derivation
  /api/team-leave       Team-leave index
  /api/calendar         Month grid
  /api/notifications    Activity log
  /api/gcal/*           Mock calendar auth

SECURITY NOTE:
  No authentication middleware; authn is out of scope for this system and
  all endpoints are public.

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
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Employee routes
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Get("/{id}", h.GetEmployee)
		})

		// Viewer routes
		r.Route("/viewer", func(r chi.Router) {
			r.Get("/", h.GetViewer)
			r.Put("/", h.SetViewer)
		})

		// Request routes
		r.Route("/requests", func(r chi.Router) {
			r.Get("/", h.ListRequests)
			r.Post("/", h.SubmitRequest)
			r.Post("/{id}/approve", h.ApproveRequest)
			r.Post("/{id}/reject", h.RejectRequest)
			r.Post("/{id}/sync", h.SyncRequest)
		})

		// Derivation routes
		r.Get("/balances", h.GetBalances)
		r.Get("/team-leave", h.GetTeamLeave)
		r.Get("/calendar", h.GetCalendar)

		// Notification routes
		r.Get("/notifications", h.ListNotifications)

		// Mock calendar auth routes
		r.Route("/gcal", func(r chi.Router) {
			r.Get("/", h.GetCalendarAuth)
			r.Post("/signin", h.CalendarSignIn)
			r.Post("/signout", h.CalendarSignOut)
		})
	})

	return r
}
