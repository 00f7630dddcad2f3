// Package handlers holds the response policies applied to every request.
package handlers

import (
	"net/http"

	"github.com/rs/cors"
)

var corsHandler = cors.New(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodHead},
})

// CorsHandler allows cross-origin GET and HEAD requests to handler unless
// disabled
func CorsHandler(disabled bool, handler http.Handler) http.Handler {
	if disabled {
		return handler
	}

	return corsHandler.Handler(handler)
}
