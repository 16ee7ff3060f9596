/* router.go
 * Contains the route table and middleware stack of the HTTP server
 * Authors: Zachary Bower
 */

package web

import (
	"net/http"

	"fpl-insights/api/api"
	"fpl-insights/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the handler for the given API. Middleware runs outermost first
func NewRouter(a *api.API) http.Handler {
	s := &Server{api: a}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.HealthzHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/top", s.TopPlayersHandler)
			r.Get("/search", s.SearchPlayersHandler)
			r.Get("/{id}", s.PlayerHandler)
		})
		r.Get("/fixtures/live", s.LiveFixturesHandler)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not found", r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed", r.Method)
	})

	return r
}
