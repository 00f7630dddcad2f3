package ratelimiter

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"gitlab.com/ilovewordsearch/site/internal/httperrors"
	"gitlab.com/ilovewordsearch/site/internal/logging"
	"gitlab.com/ilovewordsearch/site/internal/request"
)

const (
	headerXForwardedFor   = "X-Forwarded-For"
	headerXForwardedProto = "X-Forwarded-Proto"
)

// SourceIPLimiter returns middleware serving the 429 page to clients over
// their rate. The source IP is the request's RemoteAddr, so behind a proxy
// wrap it with handlers.ProxyHeaders.
func (rl *RateLimiter) SourceIPLimiter(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sourceIP := request.GetRemoteAddrWithoutPort(r)
		if !rl.SourceIPAllowed(sourceIP) {
			rl.logSourceIP(r, sourceIP)
			rl.sourceIPBlockedCount.WithLabelValues("true").Inc()

			httperrors.Serve429(w)
			return
		}

		handler.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) logSourceIP(r *http.Request, sourceIP string) {
	logging.LogRequest(r).WithFields(logrus.Fields{
		"handler":                       "source_ip_rate_limiter",
		"remote_addr":                   r.RemoteAddr,
		"source_ip":                     sourceIP,
		"x_forwarded_proto":             r.Header.Get(headerXForwardedProto),
		"x_forwarded_for":               r.Header.Get(headerXForwardedFor),
		"rate_limiter_limit_per_second": rl.sourceIPLimitPerSecond,
		"rate_limiter_burst_size":       rl.sourceIPBurstSize,
	}).Info("source IP hit rate limit")
}
