// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package backfill

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/rigcheck/internal/cache"
	"github.com/tomtom215/rigcheck/internal/catalog"
	"github.com/tomtom215/rigcheck/internal/config"
	"github.com/tomtom215/rigcheck/internal/requirements"
	"github.com/tomtom215/rigcheck/internal/resolver"
	"github.com/tomtom215/rigcheck/internal/sources"
)

type memCatalog struct {
	games map[string][]catalog.Game
}

func (c *memCatalog) Categories(context.Context) ([]string, error) {
	out := make([]string, 0, len(c.games))
	for k := range c.games {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

func (c *memCatalog) List(_ context.Context, category string) ([]catalog.Game, error) {
	return append([]catalog.Game(nil), c.games[category]...), nil
}

func (c *memCatalog) Get(_ context.Context, id string) (catalog.Game, error) {
	for _, games := range c.games {
		for _, g := range games {
			if g.ID == id {
				return g, nil
			}
		}
	}
	return catalog.Game{}, catalog.ErrGameNotFound
}

func (c *memCatalog) Close() error { return nil }

// steamStub answers every game except those listed in empty.
type steamStub struct {
	empty map[string]bool
	block chan struct{}
	calls atomic.Int32
}

func (s *steamStub) Name() string { return sources.NameSteam }

func (s *steamStub) Lookup(ctx context.Context, q sources.Query) (*requirements.GameRequirements, error) {
	s.calls.Add(1)
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.empty[q.ID] {
		return nil, nil
	}
	var rec requirements.Record
	rec.SetRAM("8 GB")
	reqs := requirements.NewGameRequirements(rec, requirements.Record{})
	return &reqs, nil
}

// syncingStore counts Sync calls.
type syncingStore struct {
	*cache.MemoryStore
	syncs atomic.Int32
}

func (s *syncingStore) Sync() error {
	s.syncs.Add(1)
	return nil
}

type sleepLog struct {
	mu    sync.Mutex
	calls []time.Duration
}

func (l *sleepLog) sleep(_ context.Context, d time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, d)
	return nil
}

func (l *sleepLog) Calls() []time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]time.Duration(nil), l.calls...)
}

const (
	itemDelay  = time.Second
	batchDelay = 5 * time.Second
)

type fixture struct {
	job   *Job
	store *syncingStore
	steam *steamStub
	cache *cache.RequirementCache
	sleep *sleepLog
}

func newFixture(t *testing.T, games map[string][]catalog.Game, opts ...Option) *fixture {
	t.Helper()
	store := &syncingStore{MemoryStore: cache.NewMemoryStore()}
	rc, err := cache.NewRequirementCache(store, cache.WithFrontSize(0))
	require.NoError(t, err)

	steam := &steamStub{empty: map[string]bool{}}
	res := resolver.New(config.ResolverConfig{AdapterTimeout: time.Second}, rc, steam)

	sl := &sleepLog{}
	cfg := config.BackfillConfig{BatchSize: 2, ItemDelay: itemDelay, BatchDelay: batchDelay}
	opts = append([]Option{WithSleep(sl.sleep)}, opts...)
	return &fixture{
		job:   NewJob(&memCatalog{games: games}, res, rc, store, cfg, opts...),
		store: store,
		steam: steam,
		cache: rc,
		sleep: sl,
	}
}

func fiveGames() map[string][]catalog.Game {
	return map[string][]catalog.Game{
		"action": {
			{ID: "a1", Name: "Alpha"},
			{ID: "a2", Name: "Bravo"},
			{ID: "a3", Name: "Charlie"},
			{ID: "a4", Name: "Delta"},
			{ID: "a5", Name: "Echo"},
		},
	}
}

func TestRun_ResolvesInBatchesAndPersists(t *testing.T) {
	f := newFixture(t, fiveGames())
	f.steam.empty["a3"] = true
	ctx := context.Background()

	p, err := f.job.Run(ctx, "action")
	require.NoError(t, err)

	assert.Equal(t, 5, p.Total)
	assert.Equal(t, 5, p.Processed)
	assert.Equal(t, 4, p.Resolved)
	assert.Equal(t, 1, p.Empty)
	assert.True(t, p.Done)
	assert.Empty(t, p.Error)

	// batches [a1 a2] [a3 a4] [a5]
	assert.Equal(t, []time.Duration{itemDelay, batchDelay, itemDelay, batchDelay}, f.sleep.Calls())
	assert.Equal(t, int32(3), f.store.syncs.Load(), "one sync per batch")

	stored, ok, err := f.job.Progress(ctx, "action")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p.Resolved, stored.Resolved)
	assert.True(t, stored.Done)

	entry, ok, err := f.cache.Get(ctx, "a1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sources.NameSteam, entry.Source)
}

func TestRun_ResumeSkipsFreshData(t *testing.T) {
	f := newFixture(t, fiveGames())
	f.steam.empty["a3"] = true
	ctx := context.Background()

	_, err := f.job.Run(ctx, "action")
	require.NoError(t, err)
	callsAfterFirst := f.steam.calls.Load()
	sleepsAfterFirst := len(f.sleep.Calls())

	p, err := f.job.Run(ctx, "action")
	require.NoError(t, err)

	assert.Equal(t, 4, p.Skipped)
	assert.Equal(t, 1, p.Empty, "fresh empty entry comes back from the cache")
	assert.Equal(t, callsAfterFirst, f.steam.calls.Load(), "no upstream calls on a resumed run")
	assert.Len(t, f.sleep.Calls(), sleepsAfterFirst, "no politeness delay without upstream traffic")
}

func TestRun_ForcesUnknownRequirements(t *testing.T) {
	games := map[string][]catalog.Game{
		"online": {{ID: "v1", Name: "Valorant", RequirementsUnknown: true}},
	}
	f := newFixture(t, games)
	ctx := context.Background()

	_, err := f.job.Run(ctx, "online")
	require.NoError(t, err)
	p, err := f.job.Run(ctx, "online")
	require.NoError(t, err)

	assert.Equal(t, 1, p.Resolved)
	assert.Zero(t, p.Skipped)
	assert.Equal(t, int32(2), f.steam.calls.Load())
}

func TestRun_CountsInvalidEntriesAsFailed(t *testing.T) {
	games := map[string][]catalog.Game{
		"misc": {{ID: "x1"}, {ID: "x2", Name: "Named"}},
	}
	f := newFixture(t, games)

	p, err := f.job.Run(context.Background(), "misc")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Failed)
	assert.Equal(t, 1, p.Resolved)
	assert.True(t, p.Done)
}

func TestRun_CancelPersistsPartialProgress(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cancelOnBatch := func(ctx context.Context, d time.Duration) error {
		if d == batchDelay {
			cancel()
			return ctx.Err()
		}
		return nil
	}
	f := newFixture(t, fiveGames(), WithSleep(cancelOnBatch))

	p, err := f.job.Run(ctx, "action")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, p.Processed)
	assert.False(t, p.Done)

	stored, ok, err := f.job.Progress(context.Background(), "action")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, stored.Processed)
	assert.False(t, stored.Done)
	assert.NotEmpty(t, stored.Error)
	assert.False(t, f.job.Running("action"))
}

func TestRun_RejectsConcurrentRunOfSameCategory(t *testing.T) {
	f := newFixture(t, fiveGames())
	f.steam.block = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := f.job.Run(context.Background(), "action")
		done <- err
	}()

	require.Eventually(t, func() bool { return f.steam.calls.Load() > 0 }, 2*time.Second, 5*time.Millisecond)
	assert.True(t, f.job.Running("action"))

	_, err := f.job.Run(context.Background(), "action")
	assert.True(t, errors.Is(err, ErrAlreadyRunning), "got %v", err)

	close(f.steam.block)
	require.NoError(t, <-done)
	assert.False(t, f.job.Running("action"))
}

func TestRun_InvalidCategory(t *testing.T) {
	f := newFixture(t, fiveGames())

	_, err := f.job.Run(context.Background(), "../etc")
	assert.ErrorIs(t, err, catalog.ErrInvalidCategory)

	_, _, err = f.job.Progress(context.Background(), "Bad Name")
	assert.ErrorIs(t, err, catalog.ErrInvalidCategory)
}

func TestProgress_NeverRun(t *testing.T) {
	f := newFixture(t, fiveGames())

	_, ok, err := f.job.Progress(context.Background(), "action")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRunAll_UsesCatalogCategories(t *testing.T) {
	games := fiveGames()
	games["puzzle"] = []catalog.Game{{ID: "p1", Name: "Portal"}}
	f := newFixture(t, games)
	ctx := context.Background()

	require.NoError(t, f.job.RunAll(ctx, nil))

	for _, category := range []string{"action", "puzzle"} {
		p, ok, err := f.job.Progress(ctx, category)
		require.NoError(t, err)
		require.True(t, ok, category)
		assert.True(t, p.Done, category)
	}
}

func TestNewJob_DefaultBatchSize(t *testing.T) {
	j := NewJob(&memCatalog{}, nil, nil, cache.NewMemoryStore(), config.BackfillConfig{})
	assert.Equal(t, DefaultBatchSize, j.batchSize)
}

func TestSleepCtx(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepCtx(ctx, time.Hour), context.Canceled)
	assert.NoError(t, sleepCtx(context.Background(), time.Millisecond))
}
