// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomtom215/rigcheck/internal/api"
	"github.com/tomtom215/rigcheck/internal/app"
	"github.com/tomtom215/rigcheck/internal/cache"
	"github.com/tomtom215/rigcheck/internal/config"
	"github.com/tomtom215/rigcheck/internal/logging"
	"github.com/tomtom215/rigcheck/internal/metrics"
	"github.com/tomtom215/rigcheck/internal/supervisor"
	"github.com/tomtom215/rigcheck/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env file is normal outside development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Caller:     cfg.Logging.Caller,
		Timestamp:  true,
		Output:     os.Stderr,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	defer func() {
		if err := logging.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close log file:", err)
		}
	}()

	if err := run(cfg); err != nil {
		logging.Error().Err(err).Msg("Server stopped with error")
		_ = logging.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	start := time.Now()
	logging.Info().Str("version", version).Str("environment", cfg.Server.Environment).Msg("Starting Rigcheck with supervisor tree")

	metrics.SetAppInfo(version)
	stopUptime := make(chan struct{})
	defer close(stopUptime)
	go metrics.TrackUptime(start, 15*time.Second, stopUptime)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	components, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := components.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing components")
		}
	}()

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (RATE_LIMIT_DISABLED=true)")
	}
	for _, origin := range cfg.Security.CORSOrigins {
		if origin == "*" && cfg.Server.Environment == "production" {
			logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins in production")
			break
		}
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if syncer, ok := components.Store.(cache.Syncer); ok {
		tree.AddDataService(services.NewCacheMaintenanceService(syncer, services.DefaultFlushInterval))
		logging.Info().Msg("Cache maintenance service added to supervisor tree")
	}

	backfillService := services.NewBackfillService(components.Job, cfg.Backfill)
	tree.AddJobService(backfillService)

	handler := api.NewHandler(cfg, api.Dependencies{
		Catalog:  components.Catalog,
		Resolver: components.Resolver,
		Backfill: backfillService,
		Progress: components.Job,
		Checks: map[string]api.ReadinessCheck{
			"catalog": components.ReadyCatalog,
			"cache":   components.ReadyCache,
		},
	})
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// Compat requests may resolve many games upstream.
		WriteTimeout: 2 * cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, services.DefaultShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			serveErr = fmt.Errorf("supervisor tree: %w", err)
		}
		cancel()
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Dur("uptime", time.Since(start)).Msg("Application stopped gracefully")
	return serveErr
}
