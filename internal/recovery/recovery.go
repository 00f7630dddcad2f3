// Package recovery turns panics in request handlers into the 500 page.
package recovery

import (
	"net/http"
	"runtime/debug"

	"gitlab.com/ilovewordsearch/site/internal/httperrors"
)

// NewMiddleware serves the 500 page when handler panics. A panic with
// http.ErrAbortHandler is re-raised so net/http can abort the response.
func NewMiddleware(handler http.Handler, pages *httperrors.Pages) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}

			pages.ServePanic(w, r, recovered, debug.Stack())
		}()

		handler.ServeHTTP(w, r)
	})
}
