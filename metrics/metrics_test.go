package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsVectorsCanBeScraped(t *testing.T) {
	reg := prometheus.NewRegistry()

	// vectors will only be available in /metrics after a label has been set/incremented
	reg.MustRegister(
		CanonicalRedirects,
		PagesRendered,
		PageRenderFailures,
		RenderCacheRequests,
	)

	handler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	testServer := httptest.NewServer(handler)
	defer testServer.Close()

	CanonicalRedirects.Inc()
	require.Equal(t, float64(1), testutil.ToFloat64(CanonicalRedirects))

	PagesRendered.WithLabelValues("/").Inc()
	PageRenderFailures.WithLabelValues("/").Inc()
	RenderCacheRequests.WithLabelValues("render", "hit").Inc()

	c, err := PagesRendered.GetMetricWithLabelValues("/")
	require.NoError(t, err)
	require.Equal(t, float64(1), testutil.ToFloat64(c))

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, metricFamilies, 4)

	res, err := http.Get(testServer.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	require.Contains(t, string(body), `ilovewordsearch_canonical_redirects_total 1`)
	require.Contains(t, string(body), `ilovewordsearch_pages_rendered_total{page="/"} 1`)
	require.Contains(t, string(body), `ilovewordsearch_page_render_failures_total{page="/"} 1`)
	require.Contains(t, string(body), `ilovewordsearch_render_cache_requests_total{cache="hit",op="render"} 1`)
}
