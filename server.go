package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	proxyproto "github.com/pires/go-proxyproto"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/http2"

	"gitlab.com/ilovewordsearch/site/internal/netutil"
)

type keepAliveListener struct {
	net.Listener
	period time.Duration
}

type keepAliveSetter interface {
	SetKeepAlive(bool) error
	SetKeepAlivePeriod(time.Duration) error
}

type listenerConfig struct {
	kind    string
	addr    string
	tls     bool
	proxied bool
	proxyv2 bool
	limiter *netutil.Limiter
	handler http.Handler
}

// Accept enables keep-alives with the configured period. A negative period
// disables them, zero keeps the system default.
func (ln *keepAliveListener) Accept() (net.Conn, error) {
	conn, err := ln.Listener.Accept()
	if err != nil {
		return nil, err
	}

	kc, ok := conn.(keepAliveSetter)
	if !ok {
		return conn, nil
	}

	switch {
	case ln.period < 0:
		kc.SetKeepAlive(false)
	case ln.period > 0:
		kc.SetKeepAlive(true)
		kc.SetKeepAlivePeriod(ln.period)
	}

	return conn, nil
}

func newTLSConfig(cert, key []byte) (*tls.Config, error) {
	certificate, err := tls.X509KeyPair(cert, key)
	if err != nil {
		return nil, fmt.Errorf("loading root certificate: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{certificate},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

func (a *theApp) newServer(l listenerConfig) (*http.Server, error) {
	server := &http.Server{
		Handler:           l.handler,
		ReadTimeout:       a.config.Server.ReadTimeout,
		ReadHeaderTimeout: a.config.Server.ReadHeaderTimeout,
		WriteTimeout:      a.config.Server.WriteTimeout,
	}

	if l.tls {
		server.TLSConfig = a.tlsConfig.Clone()

		if err := http2.ConfigureServer(server, &http2.Server{}); err != nil {
			return nil, err
		}
	}

	return server, nil
}

// listen opens the listener of l with its wrappers, innermost first:
// connection limit, keep-alive, PROXYv2 header and TLS
func (a *theApp) listen(l listenerConfig) (*http.Server, net.Listener, error) {
	server, err := a.newServer(l)
	if err != nil {
		return nil, nil, err
	}

	ln, err := net.Listen("tcp", l.addr)
	if err != nil {
		return nil, nil, fmt.Errorf("listening on %s for %s requests: %w", l.addr, l.kind, err)
	}

	if l.limiter != nil {
		ln = netutil.LimitListener(ln, l.limiter)
	}

	ln = &keepAliveListener{Listener: ln, period: a.config.Server.ListenKeepAlive}

	if l.proxyv2 {
		ln = &proxyproto.Listener{
			Listener: ln,
			Policy: func(upstream net.Addr) (proxyproto.Policy, error) {
				return proxyproto.REQUIRE, nil
			},
		}
	}

	if server.TLSConfig != nil {
		ln = tls.NewListener(ln, server.TLSConfig)
	}

	log.WithFields(log.Fields{
		"listener": l.addr,
		"kind":     l.kind,
	}).Info("Listening for requests")

	return server, ln, nil
}

// serve runs server on ln until ctx is done, then shuts it down gracefully
func (a *theApp) serve(ctx context.Context, server *http.Server, ln net.Listener, kind string) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serving %s requests: %w", kind, err)
	case <-ctx.Done():
	}

	log.WithField("kind", kind).Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down %s server: %w", kind, err)
	}

	return nil
}
