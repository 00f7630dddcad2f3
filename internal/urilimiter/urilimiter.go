// Package urilimiter rejects requests whose URI is longer than a limit.
package urilimiter

import (
	"net/http"

	"gitlab.com/ilovewordsearch/site/internal/httperrors"
	"gitlab.com/ilovewordsearch/site/internal/logging"
)

// NewMiddleware serves the 414 page for requests whose raw request URI is
// longer than limit bytes. A zero limit disables the check.
func NewMiddleware(handler http.Handler, limit int) http.Handler {
	if limit <= 0 {
		return handler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.RequestURI) > limit {
			logging.LogRequest(r).
				WithField("uri_length", len(r.RequestURI)).
				WithField("max_uri_length", limit).
				Debug("request URI too long")

			httperrors.Serve414(w)
			return
		}

		handler.ServeHTTP(w, r)
	})
}
