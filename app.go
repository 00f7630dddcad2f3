package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	ghandlers "github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/labkit/correlation"
	labmetrics "gitlab.com/gitlab-org/labkit/metrics"
	"golang.org/x/sync/errgroup"

	"gitlab.com/ilovewordsearch/site/internal/canonical"
	cfg "gitlab.com/ilovewordsearch/site/internal/config"
	"gitlab.com/ilovewordsearch/site/internal/customheaders"
	"gitlab.com/ilovewordsearch/site/internal/handlers"
	"gitlab.com/ilovewordsearch/site/internal/healthcheck"
	"gitlab.com/ilovewordsearch/site/internal/httperrors"
	"gitlab.com/ilovewordsearch/site/internal/logging"
	"gitlab.com/ilovewordsearch/site/internal/netutil"
	"gitlab.com/ilovewordsearch/site/internal/ratelimiter"
	"gitlab.com/ilovewordsearch/site/internal/recovery"
	"gitlab.com/ilovewordsearch/site/internal/render"
	"gitlab.com/ilovewordsearch/site/internal/request"
	"gitlab.com/ilovewordsearch/site/internal/router"
	"gitlab.com/ilovewordsearch/site/internal/site"
	"gitlab.com/ilovewordsearch/site/internal/static"
	"gitlab.com/ilovewordsearch/site/internal/urilimiter"
	"gitlab.com/ilovewordsearch/site/metrics"
)

const metricsNamespace = "ilovewordsearch"

type theApp struct {
	config      *cfg.Config
	pages       *httperrors.Pages
	router      http.Handler
	rateLimiter *ratelimiter.RateLimiter
	tlsConfig   *tls.Config

	// instrument registers its collectors once, so every listener shares it
	instrument labmetrics.HandlerFactory
}

func newApp(config *cfg.Config, instrument labmetrics.HandlerFactory) (*theApp, error) {
	a := &theApp{
		config:     config,
		pages:      httperrors.New(config.General.DevMode),
		instrument: instrument,
	}

	s := site.Default(config.General.SiteURL)

	renderer, err := render.New(s, render.WithCache(config.General.RenderCacheExpiry))
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	assets, err := static.New()
	if err != nil {
		return nil, err
	}

	a.router, err = router.New(s, renderer, assets, a.pages)
	if err != nil {
		return nil, fmt.Errorf("building router: %w", err)
	}

	if config.RateLimit.SourceIPLimitPerSecond > 0 {
		a.rateLimiter = ratelimiter.New(
			config.RateLimit.SourceIPLimitPerSecond,
			ratelimiter.WithSourceIPBurstSize(config.RateLimit.SourceIPBurst),
		)
	}

	if config.HasTLSListeners() {
		a.tlsConfig, err = newTLSConfig(config.General.RootCertificate, config.General.RootKey)
		if err != nil {
			return nil, err
		}
	}

	return a, nil
}

// buildHandler returns the request chain of one listener, outermost first:
// correlation, proxy headers, HTTPS flag, recovery, access log, metrics,
// status check, URI limit, rate limit, custom headers, canonical redirect,
// CORS, compression and the router
func (a *theApp) buildHandler(l listenerConfig) (http.Handler, error) {
	handler := ghandlers.CompressHandler(a.router)
	handler = handlers.CorsHandler(a.config.General.DisableCrossOriginRequests, handler)
	// preflight requests for non-canonical URLs are redirected too
	handler = canonical.NewMiddleware(handler)
	handler = customheaders.NewMiddleware(handler, a.config.General.CustomHeaders)

	if a.rateLimiter != nil {
		handler = a.rateLimiter.SourceIPLimiter(handler)
	}

	handler = urilimiter.NewMiddleware(handler, a.config.General.MaxURILength)
	handler = healthcheck.NewMiddleware(handler, a.config.General.StatusPath)

	handler = a.instrument(handler)

	handler, err := logging.BasicAccessLogger(handler, a.config.Log.Format)
	if err != nil {
		return nil, err
	}

	handler = recovery.NewMiddleware(handler, a.pages)
	handler = httpsFlag(handler, l)

	if l.proxied {
		handler = ghandlers.ProxyHeaders(handler)
	}

	return correlation.InjectCorrelationID(handler, correlation.WithPropagation()), nil
}

// httpsFlag marks requests accepted by a TLS listener, or forwarded as
// HTTPS by a trusted proxy
func httpsFlag(handler http.Handler, l listenerConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		https := l.tls || (l.proxied && r.URL.Scheme == request.SchemeHTTPS)

		handler.ServeHTTP(w, request.WithHTTPSFlag(r, https))
	})
}

func (a *theApp) metricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	if a.config.General.StatusPath != "" {
		mux.Handle(a.config.General.StatusPath, healthcheck.Handler())
	}

	return mux
}

// Run serves every listener until ctx is done, SIGINT or SIGTERM is
// received, or a listener fails
func (a *theApp) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.rateLimiter != nil {
		defer a.rateLimiter.Stop()
	}

	var limiter *netutil.Limiter
	if a.config.General.MaxConns > 0 {
		limiter = netutil.NewLimiter(
			a.config.General.MaxConns,
			metrics.ConnectionsLimit,
			metrics.ConnectionsOpen,
			metrics.ConnectionsWaiting,
		)
	}

	g, gctx := errgroup.WithContext(ctx)

	start := func(l listenerConfig) error {
		srv, ln, err := a.listen(l)
		if err != nil {
			return err
		}

		g.Go(func() error {
			return a.serve(gctx, srv, ln, l.kind)
		})

		return nil
	}

	// a listener that fails to start stops the ones already serving
	fail := func(err error) error {
		stop()
		g.Wait()

		return err
	}

	for _, l := range a.listenerConfigs(limiter) {
		handler, err := a.buildHandler(l)
		if err != nil {
			return fail(err)
		}

		l.handler = handler

		if err := start(l); err != nil {
			return fail(err)
		}
	}

	if a.config.General.MetricsAddress != "" {
		err := start(listenerConfig{
			kind:    "metrics",
			addr:    a.config.General.MetricsAddress,
			handler: a.metricsHandler(),
		})
		if err != nil {
			return fail(err)
		}
	}

	log.Info("Site daemon started")

	return g.Wait()
}

func (a *theApp) listenerConfigs(limiter *netutil.Limiter) []listenerConfig {
	var listeners []listenerConfig

	add := func(kind string, addrs []string, l listenerConfig) {
		for _, addr := range addrs {
			l.kind, l.addr, l.limiter = kind, addr, limiter
			listeners = append(listeners, l)
		}
	}

	add("http", a.config.ListenHTTPStrings.Split(), listenerConfig{})
	add("https", a.config.ListenHTTPSStrings.Split(), listenerConfig{tls: true})
	add("proxy", a.config.ListenProxyStrings.Split(), listenerConfig{proxied: true})
	add("proxyv2", a.config.ListenProxyv2Strings.Split(), listenerConfig{tls: true, proxyv2: true})

	return listeners
}
