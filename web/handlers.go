/* handlers.go
 * Contains the HTTP handlers for the player and fixture endpoints, and the helpers used to write JSON responses
 * Authors: Zachary Bower
 */

package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"fpl-insights/api/api"
	"fpl-insights/api/external"
	"fpl-insights/api/logic"
	"fpl-insights/logger"

	"github.com/go-chi/chi/v5"
)

const maxSearchLimit = 25

// HealthzHandler reports that the process is up. It does not call the FPL api
func (s *Server) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// TopPlayersHandler responds with the ranked top list and the budget and premium suggestions
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Writes shared.TopPlayers as JSON, or an ErrorResponse if the FPL data could not be fetched
func (s *Server) TopPlayersHandler(w http.ResponseWriter, r *http.Request) {
	top, err := s.api.GetTopPlayers(r.Context())
	if err != nil {
		s.respondServiceError(w, r, "Failed to fetch FPL data", err)
		return
	}
	respondJSON(w, http.StatusOK, top)
}

// PlayerHandler responds with the prediction for the player id in the path
func (s *Server) PlayerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid player id", "id must be a positive integer")
		return
	}

	prediction, err := s.api.GetPlayer(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, r, "Failed to fetch player", err)
		return
	}
	respondJSON(w, http.StatusOK, prediction)
}

// SearchPlayersHandler responds with predictions for the players whose name best matches q
// Preconditions: Receives a request with a non empty q parameter and an optional limit between 1 and 25
// Postconditions: Writes a JSON array of predictions (empty when nothing matches), or an ErrorResponse
func (s *Server) SearchPlayersHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondError(w, http.StatusBadRequest, "Missing search query", "q is required")
		return
	}

	limit := logic.DefaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxSearchLimit {
			respondError(w, http.StatusBadRequest, "Invalid limit", "limit must be between 1 and 25")
			return
		}
		limit = parsed
	}

	predictions, err := s.api.SearchPlayers(r.Context(), query, limit)
	if err != nil {
		s.respondServiceError(w, r, "Failed to search players", err)
		return
	}
	respondJSON(w, http.StatusOK, predictions)
}

// LiveFixturesHandler responds with the current gameweek's fixtures grouped by day
func (s *Server) LiveFixturesHandler(w http.ResponseWriter, r *http.Request) {
	live, err := s.api.GetLiveFixtures(r.Context())
	if err != nil {
		s.respondServiceError(w, r, "Failed to fetch live fixtures", err)
		return
	}
	respondJSON(w, http.StatusOK, live)
}

// respondServiceError logs err against the request and writes it with the status from statusForError
func (s *Server) respondServiceError(w http.ResponseWriter, r *http.Request, message string, err error) {
	status := statusForError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(message, "error", err, "status", status)
	} else {
		log.Warn(message, "error", err, "status", status)
	}
	respondError(w, status, message, err.Error())
}

// statusForError maps api and upstream errors onto HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, external.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, api.ErrPlayerNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, details string) {
	respondJSON(w, status, ErrorResponse{Error: message, Details: details})
}
