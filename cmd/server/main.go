// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/bestseller-analytics/internal/api"
	"github.com/tomtom215/bestseller-analytics/internal/config"
	"github.com/tomtom215/bestseller-analytics/internal/dataset"
	"github.com/tomtom215/bestseller-analytics/internal/logging"
	"github.com/tomtom215/bestseller-analytics/internal/metrics"
	"github.com/tomtom215/bestseller-analytics/internal/supervisor"
	"github.com/tomtom215/bestseller-analytics/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("dataset", cfg.Dataset.URL).
		Msg("Starting bestseller-analytics")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is disabled")
	}

	source, err := dataset.NewSource(cfg.Dataset.URL, cfg.Dataset.FetchTimeout, cfg.Dataset.MaxBytes)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid dataset source")
	}
	guarded := dataset.NewBreakerSource("dataset-source", source, dataset.DefaultBreakerSettings())
	throttled := dataset.NewThrottledSource(guarded, 5*time.Second, 3)
	cache := dataset.NewCache(dataset.NewLoader(throttled))

	handler, err := api.NewHandler(cache, cfg, version)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize handlers")
	}
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// chart rendering and the first dataset load happen inside a request
		WriteTimeout: cfg.Server.Timeout + cfg.Dataset.FetchTimeout,
		IdleTimeout:  60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddDataService(services.NewDatasetWarmupService(cache, cfg.Dataset.FetchTimeout))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}
