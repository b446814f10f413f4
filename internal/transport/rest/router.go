package rest

import "net/http"

// Handlers groups all REST handlers for router construction.
type Handlers struct {
	Auth      *AuthHandler
	Journal   *JournalHandler
	Tags      *TagHandler
	Analytics *AnalyticsHandler
	Health    *HealthHandler
}

// NewRouter registers all routes on a fresh ServeMux. Middleware is applied
// by the caller around the returned handler.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/journal", h.Journal.List)
	mux.HandleFunc("POST /api/journal", h.Journal.Create)
	mux.HandleFunc("GET /api/journal/stats", h.Journal.Stats)
	mux.HandleFunc("GET /api/journal/{id}", h.Journal.Get)
	mux.HandleFunc("PUT /api/journal/{id}", h.Journal.Update)
	mux.HandleFunc("DELETE /api/journal/{id}", h.Journal.Delete)

	mux.HandleFunc("GET /api/tags", h.Tags.List)
	mux.HandleFunc("GET /api/analytics", h.Analytics.Report)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	return mux
}
