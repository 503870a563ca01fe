// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package backfill

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/rigcheck/internal/cache"
	"github.com/tomtom215/rigcheck/internal/catalog"
	"github.com/tomtom215/rigcheck/internal/config"
	"github.com/tomtom215/rigcheck/internal/logging"
	"github.com/tomtom215/rigcheck/internal/metrics"
)

// ErrAlreadyRunning is returned when a run for the category is in progress.
var ErrAlreadyRunning = errors.New("backfill already running for category")

const (
	resultResolved = metrics.BackfillResolved
	resultEmpty    = metrics.BackfillEmpty
	resultSkipped  = metrics.BackfillSkipped
	resultFailed   = metrics.BackfillFailed
)

// DefaultBatchSize is used when the configured batch size is not positive.
const DefaultBatchSize = 3

// Resolver resolves one catalog game. Satisfied by *resolver.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, game catalog.Game, force bool) (cache.Entry, error)
}

// EntryReader reads fresh cache entries. Satisfied by *cache.RequirementCache.
type EntryReader interface {
	Get(ctx context.Context, gameID string) (cache.Entry, bool, error)
}

// Job runs batch fills. One Job may run several categories concurrently but
// never the same category twice at once.
type Job struct {
	catalog  catalog.Catalog
	resolver Resolver
	entries  EntryReader
	store    cache.Store

	batchSize  int
	itemDelay  time.Duration
	batchDelay time.Duration

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	mu      sync.Mutex
	running map[string]bool
}

// Option configures a Job.
type Option func(*Job)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(j *Job) { j.now = now }
}

// WithSleep replaces the context-aware pause between items and batches.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(j *Job) { j.sleep = sleep }
}

// NewJob creates a batch fill job. Progress documents are written to store.
func NewJob(cat catalog.Catalog, res Resolver, entries EntryReader, store cache.Store, cfg config.BackfillConfig, opts ...Option) *Job {
	j := &Job{
		catalog:    cat,
		resolver:   res,
		entries:    entries,
		store:      store,
		batchSize:  cfg.BatchSize,
		itemDelay:  cfg.ItemDelay,
		batchDelay: cfg.BatchDelay,
		now:        time.Now,
		sleep:      sleepCtx,
		running:    make(map[string]bool),
	}
	if j.batchSize <= 0 {
		j.batchSize = DefaultBatchSize
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Running reports whether a run for category is in progress.
func (j *Job) Running(category string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running[category]
}

// Progress returns the last persisted progress for category.
func (j *Job) Progress(ctx context.Context, category string) (Progress, bool, error) {
	if err := catalog.ValidateCategory(category); err != nil {
		return Progress{}, false, err
	}
	return LoadProgress(ctx, j.store, category)
}

// Run fills every entry of category and returns the final progress. A
// canceled ctx stops the run between items; the progress of finished
// batches is already persisted.
func (j *Job) Run(ctx context.Context, category string) (Progress, error) {
	if err := catalog.ValidateCategory(category); err != nil {
		return Progress{}, err
	}
	if !j.acquire(category) {
		return Progress{}, fmt.Errorf("%w: %s", ErrAlreadyRunning, category)
	}
	defer j.release(category)

	if logging.CorrelationIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewCorrelationID(ctx)
	}
	logger := logging.Ctx(ctx).With().Str("category", category).Logger()

	start := time.Now()
	p, err := j.run(ctx, category)
	metrics.RecordBackfillRun(category, time.Since(start), err)

	event := logger.Info()
	if err != nil {
		event = logger.Warn().Err(err)
	}
	event.
		Int("total", p.Total).
		Int("resolved", p.Resolved).
		Int("empty", p.Empty).
		Int("skipped", p.Skipped).
		Int("failed", p.Failed).
		Dur("duration", time.Since(start)).
		Msg("Backfill run finished")
	return p, err
}

// RunAll runs the given categories in order, or every catalog category when
// none are given. Categories already running elsewhere are skipped.
func (j *Job) RunAll(ctx context.Context, categories []string) error {
	if len(categories) == 0 {
		var err error
		categories, err = j.catalog.Categories(ctx)
		if err != nil {
			return fmt.Errorf("list catalog categories: %w", err)
		}
	}

	var errs []error
	for _, category := range categories {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		_, err := j.Run(ctx, category)
		switch {
		case errors.Is(err, ErrAlreadyRunning):
			logging.CtxInfo(ctx).Str("category", category).Msg("Backfill already running, skipping category")
		case err != nil:
			errs = append(errs, fmt.Errorf("backfill %s: %w", category, err))
		}
	}
	return errors.Join(errs...)
}

func (j *Job) run(ctx context.Context, category string) (Progress, error) {
	games, err := j.catalog.List(ctx, category)
	if err != nil {
		return Progress{Category: category}, fmt.Errorf("list catalog: %w", err)
	}

	now := j.now()
	p := Progress{Category: category, Total: len(games), StartedAt: now, UpdatedAt: now}
	if err := j.persist(ctx, &p); err != nil {
		return p, err
	}

	// upstream tracks whether the previous item reached upstream; only those
	// earn a politeness delay.
	upstream := false
	for begin := 0; begin < len(games); begin += j.batchSize {
		end := min(begin+j.batchSize, len(games))

		if begin > 0 && upstream {
			if err := j.sleep(ctx, j.batchDelay); err != nil {
				return j.abort(ctx, &p, err)
			}
			upstream = false
		}

		for _, game := range games[begin:end] {
			if err := ctx.Err(); err != nil {
				return j.abort(ctx, &p, err)
			}
			if upstream {
				if err := j.sleep(ctx, j.itemDelay); err != nil {
					return j.abort(ctx, &p, err)
				}
			}
			result, reached, err := j.fill(ctx, game)
			if err != nil {
				return j.abort(ctx, &p, err)
			}
			upstream = reached
			p.tally(result)
			metrics.BackfillItems.WithLabelValues(category, result).Inc()
		}

		if err := cache.Sync(j.store); err != nil {
			logging.CtxWarn(ctx).Err(err).Str("category", category).Msg("Cache sync after backfill batch failed")
		}
		p.UpdatedAt = j.now()
		if err := j.persist(ctx, &p); err != nil {
			return p, err
		}
	}

	p.Done = true
	p.UpdatedAt = j.now()
	return p, j.persist(ctx, &p)
}

// fill handles one entry. reached reports whether the resolution went past
// the cache. A non-nil error aborts the run and only happens on cancellation.
func (j *Job) fill(ctx context.Context, game catalog.Game) (result string, reached bool, err error) {
	force := game.RequirementsUnknown
	if !force {
		entry, ok, err := j.entries.Get(ctx, game.ID)
		if err != nil {
			logging.CtxWarn(ctx).Err(err).Str("game_id", game.ID).Msg("Backfill cache read failed, resolving")
		} else if ok && entry.Requirements != nil && entry.Requirements.HasData() {
			return resultSkipped, false, nil
		}
	}

	entry, err := j.resolver.Resolve(ctx, game, force)
	if err != nil {
		if ctx.Err() != nil {
			return "", false, ctx.Err()
		}
		logging.CtxWarn(ctx).Err(err).Str("game_id", game.ID).Msg("Backfill could not resolve game")
		return resultFailed, false, nil
	}

	reached = entry.Source != cache.SourceCache
	if entry.Requirements == nil || !entry.Requirements.HasData() {
		return resultEmpty, reached, nil
	}
	return resultResolved, reached, nil
}

// abort persists the partial progress with the cause and returns it.
func (j *Job) abort(ctx context.Context, p *Progress, cause error) (Progress, error) {
	p.Error = cause.Error()
	p.UpdatedAt = j.now()
	// The run context is gone; the final write must still land.
	if err := j.persist(context.WithoutCancel(ctx), p); err != nil {
		logging.CtxWarn(ctx).Err(err).Str("category", p.Category).Msg("Could not persist interrupted backfill progress")
	}
	return *p, cause
}

func (j *Job) persist(ctx context.Context, p *Progress) error {
	return saveProgress(ctx, j.store, p)
}

func (j *Job) acquire(category string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.running[category] {
		return false
	}
	j.running[category] = true
	return true
}

func (j *Job) release(category string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.running, category)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
