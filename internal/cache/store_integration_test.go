// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/rigcheck/internal/requirements"
	"github.com/tomtom215/rigcheck/internal/testinfra"
)

// exerciseStore runs the Store contract against a live backend.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "game:doom", []byte(`{"v":1}`)))
	require.NoError(t, store.Put(ctx, "game:doom", []byte(`{"v":2}`)))
	got, err := store.Get(ctx, "game:doom")
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(got))

	rc, err := NewRequirementCache(store, WithTTL(time.Hour), WithFrontSize(0))
	require.NoError(t, err)
	var rec requirements.Record
	rec.SetRAM("8 GB")
	reqs := requirements.NewGameRequirements(rec, requirements.Record{})
	require.NoError(t, rc.Put(ctx, "quake", Entry{Source: SourceSteam, Requirements: &reqs, FetchedAt: time.Now()}))

	entry, ok, err := rc.Get(ctx, "quake")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, SourceSteam, entry.Source)
	require.NotNil(t, entry.Requirements.Minimum.RAMGB)
	assert.Equal(t, 8.0, *entry.Requirements.Minimum.RAMGB)
}

func TestRedisStore_Integration(t *testing.T) {
	testinfra.SkipIfNoDocker(t)
	ctx := context.Background()

	redis, err := testinfra.StartRedis(ctx)
	require.NoError(t, err)
	defer testinfra.CleanupContainer(t, ctx, redis)

	store, err := NewRedisStore(ctx, redis.URL, "rigcheck-test:")
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestMongoStore_Integration(t *testing.T) {
	testinfra.SkipIfNoDocker(t)
	ctx := context.Background()

	mongo, err := testinfra.StartMongo(ctx)
	require.NoError(t, err)
	defer testinfra.CleanupContainer(t, ctx, mongo)

	store, err := NewMongoStore(ctx, mongo.URI, "rigcheck", "requirement_cache")
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}
