package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"

	"gitlab.com/ilovewordsearch/site/internal/customheaders"
)

// Config stores all the config options of the site daemon.
type Config struct {
	General   General
	Log       Log
	RateLimit RateLimit
	Sentry    Sentry
	Server    Server

	// These fields contain the raw strings passed for the listen-http,
	// listen-https, listen-proxy and listen-proxyv2 settings. The daemon
	// opens a listener for each address.
	ListenHTTPStrings    MultiStringFlag
	ListenHTTPSStrings   MultiStringFlag
	ListenProxyStrings   MultiStringFlag
	ListenProxyv2Strings MultiStringFlag
}

// General groups settings that are general to the site and can not
// be categorized under other head.
type General struct {
	SiteURL        string
	StatusPath     string
	MetricsAddress string
	DevMode        bool
	MaxConns       int
	MaxURILength   int

	// RenderCacheExpiry is how long a rendered page is reused, 0 disables the cache
	RenderCacheExpiry time.Duration

	RootCertificate []byte
	RootKey         []byte

	DisableCrossOriginRequests bool
	CustomHeaders              http.Header

	ShowVersion bool
}

// Log groups settings related to configuring logging
type Log struct {
	Format  string
	Verbose bool
}

// RateLimit groups settings of the per source IP request rate limit
type RateLimit struct {
	SourceIPLimitPerSecond float64
	SourceIPBurst          int
}

// Sentry groups settings related to configuring Sentry
type Sentry struct {
	DSN         string
	Environment string
}

// Server groups the timeouts of the HTTP servers
type Server struct {
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ListenKeepAlive   time.Duration
	ShutdownTimeout   time.Duration
}

// HasTLSListeners reports whether any listener terminates TLS
func (c *Config) HasTLSListeners() bool {
	return c.ListenHTTPSStrings.Len() > 0 || c.ListenProxyv2Strings.Len() > 0
}

func loadConfig() (*Config, error) {
	config := &Config{
		General: General{
			SiteURL:                    *siteURL,
			StatusPath:                 *pagesStatus,
			MetricsAddress:             *metricsAddress,
			DevMode:                    *devMode,
			MaxConns:                   *maxConns,
			MaxURILength:               *maxURILength,
			RenderCacheExpiry:          *renderCacheExpiry,
			DisableCrossOriginRequests: *disableCrossOriginRequests,
			ShowVersion:                *showVersion,
		},
		Log: Log{
			Format:  *logFormat,
			Verbose: *logVerbose,
		},
		RateLimit: RateLimit{
			SourceIPLimitPerSecond: *rateLimitSourceIP,
			SourceIPBurst:          *rateLimitSourceIPBurst,
		},
		Sentry: Sentry{
			DSN:         *sentryDSN,
			Environment: *sentryEnvironment,
		},
		Server: Server{
			ReadTimeout:       *serverReadTimeout,
			ReadHeaderTimeout: *serverReadHeaderTimeout,
			WriteTimeout:      *serverWriteTimeout,
			ListenKeepAlive:   *serverKeepAlive,
			ShutdownTimeout:   *serverShutdownTimeout,
		},

		ListenHTTPStrings:    listenHTTP,
		ListenHTTPSStrings:   listenHTTPS,
		ListenProxyStrings:   listenProxy,
		ListenProxyv2Strings: listenProxyv2,
	}

	var result *multierror.Error

	for _, file := range []struct {
		contents *[]byte
		path     string
	}{
		{&config.General.RootCertificate, *rootCert},
		{&config.General.RootKey, *rootKey},
	} {
		if file.path == "" {
			continue
		}

		contents, err := os.ReadFile(file.path)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("reading %s: %w", file.path, err))
			continue
		}

		*file.contents = contents
	}

	headers, err := customheaders.ParseHeaderString(header.Split())
	if err != nil {
		result = multierror.Append(result, err)
	}
	config.General.CustomHeaders = headers

	// -version only prints the version, it needs no listener
	if !config.General.ShowVersion {
		if err := Validate(config); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return config, nil
}

// LogConfig logs the effective configuration at debug level
func LogConfig(config *Config) {
	log.WithFields(log.Fields{
		"default-config-filename":       flag.DefaultConfigFlagname,
		"dev-mode":                      config.General.DevMode,
		"disable-cross-origin-requests": config.General.DisableCrossOriginRequests,
		"header":                        header.Split(),
		"listen-http":                   config.ListenHTTPStrings.Split(),
		"listen-https":                  config.ListenHTTPSStrings.Split(),
		"listen-proxy":                  config.ListenProxyStrings.Split(),
		"listen-proxyv2":                config.ListenProxyv2Strings.Split(),
		"log-format":                    config.Log.Format,
		"log-verbose":                   config.Log.Verbose,
		"max-conns":                     config.General.MaxConns,
		"max-uri-length":                config.General.MaxURILength,
		"metrics-address":               config.General.MetricsAddress,
		"pages-status":                  config.General.StatusPath,
		"rate-limit-source-ip":          config.RateLimit.SourceIPLimitPerSecond,
		"rate-limit-source-ip-burst":    config.RateLimit.SourceIPBurst,
		"render-cache-expiry":           config.General.RenderCacheExpiry,
		"root-cert":                     *rootCert,
		"root-key":                      *rootKey,
		"sentry-environment":            config.Sentry.Environment,
		"server-read-timeout":           config.Server.ReadTimeout,
		"server-read-header-timeout":    config.Server.ReadHeaderTimeout,
		"server-write-timeout":          config.Server.WriteTimeout,
		"server-keep-alive":             config.Server.ListenKeepAlive,
		"server-shutdown-timeout":       config.Server.ShutdownTimeout,
		"site-url":                      config.General.SiteURL,
	}).Debug("Start daemon with configuration")
}

// LoadConfig parses configuration settings passed as command line arguments,
// environment variables or via config file, and populates a Config object
// with those values
func LoadConfig() (*Config, error) {
	initFlags()

	return loadConfig()
}
