// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/rigcheck/internal/cache"
	"github.com/tomtom215/rigcheck/internal/catalog"
	"github.com/tomtom215/rigcheck/internal/config"
)

const fallbackJSON = `{"DOOM": {"cpu": "Intel Core i5-2500K", "ram": "8 GB"}}`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	catalogDir := filepath.Join(dir, "catalog")
	require.NoError(t, os.MkdirAll(catalogDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, "action.json"),
		[]byte(`[{"id":"doom","name":"DOOM"},{"id":"nameless","name":""}]`), 0o600))

	fallbackPath := filepath.Join(dir, "fallback.json")
	require.NoError(t, os.WriteFile(fallbackPath, []byte(fallbackJSON), 0o600))

	return &config.Config{
		Catalog:  config.CatalogConfig{Backend: "file", Dir: catalogDir},
		Cache:    config.CacheConfig{Backend: "memory", TTL: time.Hour, FrontSize: 16},
		Fallback: config.FallbackConfig{Source: "file", Path: fallbackPath},
		Resolver: config.ResolverConfig{AdapterTimeout: time.Second},
		Backfill: config.BackfillConfig{BatchSize: 2},
	}
}

func TestNew_ResolvesFromFallback(t *testing.T) {
	a, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, a.Close()) })

	ctx := context.Background()
	game, err := a.Catalog.Get(ctx, "doom")
	require.NoError(t, err)

	entry, err := a.Resolver.Resolve(ctx, game, false)
	require.NoError(t, err)
	assert.Equal(t, cache.SourceFallback, entry.Source)
	require.NotNil(t, entry.Requirements)
	require.NotNil(t, entry.Requirements.Minimum.RAMGB)
	assert.Equal(t, 8.0, *entry.Requirements.Minimum.RAMGB)

	assert.NoError(t, a.ReadyCatalog(ctx))
	assert.NoError(t, a.ReadyCache(ctx))
}

func TestNew_BackfillJobWired(t *testing.T) {
	a, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	p, err := a.Job.Run(context.Background(), "action")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Total)
	assert.Equal(t, 1, p.Resolved)
	assert.Equal(t, 1, p.Failed)
}

func TestNew_UnknownBackends(t *testing.T) {
	cfg := testConfig(t)
	cfg.Catalog.Backend = "sqlite"
	_, err := New(context.Background(), cfg)
	assert.ErrorContains(t, err, "unknown catalog backend")

	cfg = testConfig(t)
	cfg.Cache.Backend = "etcd"
	_, err = New(context.Background(), cfg)
	assert.ErrorContains(t, err, "unknown cache backend")
}

func TestNew_MissingCatalogDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.Catalog.Dir = filepath.Join(t.TempDir(), "absent")

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
	assert.NotErrorIs(t, err, catalog.ErrGameNotFound)
}
