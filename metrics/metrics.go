package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ilovewordsearch"

var (
	// CanonicalRedirects counts the permanent redirects issued to strip trailing slashes
	CanonicalRedirects = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "canonical_redirects_total",
		Help:      "The total number of requests redirected to their canonical URL",
	})

	// PagesRendered counts the pages rendered successfully, by page path
	PagesRendered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pages_rendered_total",
		Help:      "The total number of pages rendered",
	}, []string{"page"})

	// PageRenderFailures counts the pages that failed to render, by page path
	PageRenderFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_render_failures_total",
		Help:      "The total number of page renders that ended in an unexpected error",
	}, []string{"page"})

	// RenderCacheRequests is the number of render cache hits and misses
	RenderCacheRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "render_cache_requests_total",
		Help:      "The number of render cache requests",
	}, []string{"op", "cache"})

	// ConnectionsLimit is the maximum number of connections open at once
	ConnectionsLimit = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "limit_listener_max_conns",
		Help:      "The maximum number of connections allowed to be open at once",
	})

	// ConnectionsOpen is the number of connections holding a slot
	ConnectionsOpen = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "limit_listener_concurrent_conns",
		Help:      "The number of connections currently open",
	})

	// ConnectionsWaiting is the number of connections waiting for a slot
	ConnectionsWaiting = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "limit_listener_waiting_conns",
		Help:      "The number of connections waiting for a free slot",
	})

	// RateLimitSourceIPBlockedCount is the number of requests blocked by the
	// source IP rate limiter, labelled by whether the request was dropped
	RateLimitSourceIPBlockedCount = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rate_limit_source_ip_blocked_count",
		Help:      "The number of requests that have been blocked by the source IP rate limiter",
	}, []string{"enforced"})

	// RateLimitCachedEntries is the number of entries in the rate limiter caches
	RateLimitCachedEntries = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rate_limit_cached_entries",
		Help:      "The number of entries in the rate limiter caches",
	}, []string{"op"})

	// RateLimitCacheRequests is the number of rate limiter cache hits, misses and errors
	RateLimitCacheRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_cache_requests",
		Help:      "The number of rate limiter cache requests",
	}, []string{"op", "cache"})
)

// MustRegister collectors with the Prometheus client
func MustRegister() {
	prometheus.MustRegister(
		CanonicalRedirects,
		PagesRendered,
		PageRenderFailures,
		RenderCacheRequests,
		ConnectionsLimit,
		ConnectionsOpen,
		ConnectionsWaiting,
		RateLimitSourceIPBlockedCount,
		RateLimitCachedEntries,
		RateLimitCacheRequests,
	)
}
