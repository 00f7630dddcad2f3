package healthcheck

import (
	"net/http"
)

// NewMiddleware answers requests for statusPath itself and passes every
// other request to handler. An empty statusPath disables the check.
func NewMiddleware(handler http.Handler, statusPath string) http.Handler {
	if statusPath == "" {
		return handler
	}

	status := Handler()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == statusPath {
			status.ServeHTTP(w, r)
			return
		}

		handler.ServeHTTP(w, r)
	})
}
