package canonical

import (
	"net/http"
	"strings"

	"gitlab.com/ilovewordsearch/site/internal/logging"
	"gitlab.com/ilovewordsearch/site/metrics"
)

// NewMiddleware returns middleware which permanently redirects requests for
// non-canonical URLs and passes every other request to handler.
func NewMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target, ok := Target(r.URL)
		if !ok {
			handler.ServeHTTP(w, r)
			return
		}

		target = singleLeadingSlash(target)

		logging.LogRequest(r).WithField("location", target).Trace("redirecting to canonical URL")
		metrics.CanonicalRedirects.Inc()

		// Location is written verbatim, http.Redirect would clean the path
		w.Header().Set("Location", target)
		w.WriteHeader(http.StatusMovedPermanently)
	})
}

// singleLeadingSlash collapses a leading run of slashes so that the location
// is never read as a protocol-relative URL pointing at another host.
func singleLeadingSlash(target string) string {
	if !strings.HasPrefix(target, "//") {
		return target
	}

	return "/" + strings.TrimLeft(target, "/")
}
