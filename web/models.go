/* models.go
 * Contains the config, server and response types used by the web package
 * Authors: Zachary Bower
 */

package web

import (
	"fpl-insights/api/api"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that serves predictions and fixtures
type Server struct {
	api *api.API
}

// ErrorResponse is the body of every non 2xx response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is the body of /healthz
type HealthResponse struct {
	Status string `json:"status"`
}
