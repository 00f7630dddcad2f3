package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrNoListener               = errors.New("no listener defined, please specify at least one --listen-* flag")
	ErrTLSNoCertificate         = errors.New("root-cert and root-key must be defined to listen for HTTPS or PROXYv2 requests")
	ErrCertificateWithoutKey    = errors.New("root-cert is defined but root-key is not")
	ErrKeyWithoutCertificate    = errors.New("root-key is defined but root-cert is not")
	ErrInvalidSiteURL           = errors.New("site-url must be an absolute http:// or https:// URL without a path")
	ErrInvalidStatusPath        = errors.New("pages-status must be an absolute path")
	ErrNegativeMaxConns         = errors.New("max-conns must not be negative")
	ErrNegativeMaxURILength     = errors.New("max-uri-length must not be negative")
	ErrNegativeRateLimit        = errors.New("rate-limit-source-ip must not be negative")
	ErrInvalidRateLimitBurst    = errors.New("rate-limit-source-ip-burst must be greater than 0 when rate limiting is enabled")
	ErrNegativeRenderCacheTimer = errors.New("render-cache-expiry must not be negative")
)

// Validate returns every problem found in config
func Validate(config *Config) error {
	var result *multierror.Error

	result = multierror.Append(result, validateListeners(config)...)
	result = multierror.Append(result, validateGeneral(config)...)
	result = multierror.Append(result, validateRateLimit(config)...)

	return result.ErrorOrNil()
}

func validateListeners(config *Config) []error {
	var errs []error

	if config.ListenHTTPStrings.Len() == 0 && config.ListenProxyStrings.Len() == 0 && !config.HasTLSListeners() {
		errs = append(errs, ErrNoListener)
	}

	hasCert, hasKey := len(config.General.RootCertificate) > 0, len(config.General.RootKey) > 0
	switch {
	case hasCert && !hasKey:
		errs = append(errs, ErrCertificateWithoutKey)
	case hasKey && !hasCert:
		errs = append(errs, ErrKeyWithoutCertificate)
	case !hasCert && config.HasTLSListeners():
		errs = append(errs, ErrTLSNoCertificate)
	}

	return errs
}

func validateGeneral(config *Config) []error {
	var errs []error

	if err := validateSiteURL(config.General.SiteURL); err != nil {
		errs = append(errs, err)
	}

	if config.General.StatusPath != "" && !strings.HasPrefix(config.General.StatusPath, "/") {
		errs = append(errs, ErrInvalidStatusPath)
	}

	if config.General.MaxConns < 0 {
		errs = append(errs, ErrNegativeMaxConns)
	}

	if config.General.MaxURILength < 0 {
		errs = append(errs, ErrNegativeMaxURILength)
	}

	if config.General.RenderCacheExpiry < 0 {
		errs = append(errs, ErrNegativeRenderCacheTimer)
	}

	return errs
}

func validateSiteURL(siteURL string) error {
	u, err := url.Parse(siteURL)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSiteURL, err)
	}

	// url.Parse ensures that the Scheme attribute is always lower case.
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidSiteURL
	}

	if strings.Trim(u.Path, "/") != "" || u.RawQuery != "" || u.Fragment != "" {
		return ErrInvalidSiteURL
	}

	return nil
}

func validateRateLimit(config *Config) []error {
	var errs []error

	if config.RateLimit.SourceIPLimitPerSecond < 0 {
		errs = append(errs, ErrNegativeRateLimit)
	}

	if config.RateLimit.SourceIPLimitPerSecond > 0 && config.RateLimit.SourceIPBurst <= 0 {
		errs = append(errs, ErrInvalidRateLimitBurst)
	}

	return errs
}
