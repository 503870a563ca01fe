// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

// Package app assembles the rigcheck components shared by the HTTP server
// and the CLI: the requirement cache, the catalog, the source adapters, the
// resolver and the batch fill job.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/rigcheck/internal/backfill"
	"github.com/tomtom215/rigcheck/internal/cache"
	"github.com/tomtom215/rigcheck/internal/catalog"
	"github.com/tomtom215/rigcheck/internal/config"
	"github.com/tomtom215/rigcheck/internal/logging"
	"github.com/tomtom215/rigcheck/internal/resolver"
	"github.com/tomtom215/rigcheck/internal/sources"
)

// readinessKey is read by the cache readiness check. A miss is healthy.
const readinessKey = "health:probe"

// App holds the wired components. Close releases them in reverse order.
type App struct {
	Config   *config.Config
	Store    cache.Store
	Cache    *cache.RequirementCache
	Catalog  catalog.Catalog
	Fallback *sources.FallbackTable
	Resolver *resolver.Resolver
	Job      *backfill.Job
}

// New opens every backend cfg selects. On error, everything opened so far
// is closed again.
func New(ctx context.Context, cfg *config.Config) (a *App, err error) {
	a = &App{Config: cfg}
	defer func() {
		if err != nil {
			if closeErr := a.Close(); closeErr != nil {
				logging.Warn().Err(closeErr).Msg("Cleanup after failed startup")
			}
			a = nil
		}
	}()

	a.Store, err = cache.Open(ctx, cfg.Cache)
	if err != nil {
		return a, fmt.Errorf("open cache store: %w", err)
	}
	a.Cache, err = cache.NewRequirementCache(a.Store,
		cache.WithTTL(cfg.Cache.TTL),
		cache.WithFrontSize(cfg.Cache.FrontSize),
	)
	if err != nil {
		return a, fmt.Errorf("create requirement cache: %w", err)
	}

	a.Catalog, err = openCatalog(ctx, cfg.Catalog)
	if err != nil {
		return a, fmt.Errorf("open catalog: %w", err)
	}

	a.Fallback, err = sources.LoadFallback(ctx, cfg.Fallback)
	if err != nil {
		return a, fmt.Errorf("load fallback table: %w", err)
	}

	a.Resolver = resolver.New(cfg.Resolver, a.Cache, a.adapters()...)
	a.Job = backfill.NewJob(a.Catalog, a.Resolver, a.Cache, a.Store, cfg.Backfill)

	logging.Info().
		Str("cache_backend", cfg.Cache.Backend).
		Str("catalog_backend", cfg.Catalog.Backend).
		Bool("steam", cfg.Steam.Enabled).
		Bool("other", cfg.RAWG.Enabled).
		Int("fallback_entries", a.Fallback.Len()).
		Msg("Components initialized")
	return a, nil
}

func openCatalog(ctx context.Context, cfg config.CatalogConfig) (catalog.Catalog, error) {
	switch cfg.Backend {
	case "mongo":
		return catalog.NewMongoCatalog(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
	case "file", "":
		return catalog.NewFileCatalog(cfg.Dir)
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.Backend)
	}
}

// adapters builds the enabled sources. HTTP sources sit behind a circuit
// breaker; the in-memory fallback table does not need one.
func (a *App) adapters() []sources.Adapter {
	cfg := a.Config
	breaker := sources.BreakerSettings{
		MaxRequests:  cfg.Breaker.MaxRequests,
		Interval:     cfg.Breaker.Interval,
		Timeout:      cfg.Breaker.Timeout,
		MinRequests:  cfg.Breaker.MinRequests,
		FailureRatio: cfg.Breaker.FailureRatio,
	}

	var out []sources.Adapter
	if cfg.Steam.Enabled {
		out = append(out, sources.WithCircuitBreaker(sources.NewSteamAdapter(sources.NewSteamClient(cfg.Steam)), breaker))
	}
	if cfg.RAWG.Enabled && cfg.RAWG.APIKey != "" {
		out = append(out, sources.WithCircuitBreaker(sources.NewRAWGAdapter(sources.NewRAWGClient(cfg.RAWG)), breaker))
	} else if cfg.RAWG.Enabled {
		logging.Warn().Msg("Third-party catalog enabled without an API key; source disabled")
	}
	out = append(out, a.Fallback)
	return out
}

// ReadyCatalog checks that the catalog answers.
func (a *App) ReadyCatalog(ctx context.Context) error {
	_, err := a.Catalog.Categories(ctx)
	return err
}

// ReadyCache checks that the cache store answers. A miss is healthy.
func (a *App) ReadyCache(ctx context.Context) error {
	_, err := a.Store.Get(ctx, readinessKey)
	if err == nil || errors.Is(err, cache.ErrNotFound) {
		return nil
	}
	return err
}

// Close flushes and closes the cache store and the catalog.
func (a *App) Close() error {
	var errs []error
	if a.Store != nil {
		if err := cache.Sync(a.Store); err != nil {
			errs = append(errs, fmt.Errorf("sync cache: %w", err))
		}
		if err := a.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cache: %w", err))
		}
	}
	if a.Catalog != nil {
		if err := a.Catalog.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close catalog: %w", err))
		}
	}
	return errors.Join(errs...)
}
