package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	labmetrics "gitlab.com/gitlab-org/labkit/metrics"

	cfg "gitlab.com/ilovewordsearch/site/internal/config"
	"gitlab.com/ilovewordsearch/site/internal/errortracking"
	"gitlab.com/ilovewordsearch/site/internal/logging"
	"gitlab.com/ilovewordsearch/site/metrics"
)

// VERSION stores the information about the semantic version of application
var VERSION = "dev"

// REVISION stores the information about the git revision of application
var REVISION = "HEAD"

func main() {
	config, err := cfg.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	if config.General.ShowVersion {
		fmt.Fprintf(os.Stdout, "%s-%s\n", VERSION, REVISION)
		os.Exit(0)
	}

	if err := logging.ConfigureLogging(config.Log.Format, config.Log.Verbose); err != nil {
		log.WithError(err).Fatal("Failed to initialize logging")
	}

	log.WithFields(log.Fields{
		"version":  VERSION,
		"revision": REVISION,
	}).Print("I Love Word Search site daemon")

	cfg.LogConfig(config)

	if err := errortracking.Initialize(config.Sentry.DSN, config.Sentry.Environment, VERSION+"-"+REVISION); err != nil {
		log.WithError(err).Fatal("Failed to initialize error tracking")
	}

	metrics.MustRegister()

	app, err := newApp(config, labmetrics.NewHandlerFactory(labmetrics.WithNamespace(metricsNamespace)))
	if err != nil {
		errortracking.CaptureErrWithStackTrace(err)
		log.WithError(err).Fatal("Failed to build the site")
	}

	if err := app.Run(context.Background()); err != nil {
		errortracking.CaptureErrWithStackTrace(err)
		log.WithError(err).Fatal("Site daemon stopped")
	}
}
