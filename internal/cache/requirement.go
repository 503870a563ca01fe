// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tomtom215/rigcheck/internal/metrics"
	"github.com/tomtom215/rigcheck/internal/requirements"
)

// DefaultTTL is how long a resolved entry stays fresh.
const DefaultTTL = 24 * time.Hour

// DefaultFrontSize is the number of entries kept in the in-process LRU.
const DefaultFrontSize = 1024

const requirementKeyPrefix = "requirements:"

// Source names the origin of an entry.
const (
	SourceSteam    = "steam"
	SourceOther    = "other"
	SourceFallback = "fallback"
	SourceNone     = "none"
	// SourceCache marks an entry served from the cache. The original source
	// is kept in ResolvedFrom.
	SourceCache = "cache"
)

// Entry is one cached resolution result.
type Entry struct {
	Source       string                         `json:"source"`
	ResolvedFrom string                         `json:"resolvedFrom,omitempty"`
	Requirements *requirements.GameRequirements `json:"requirements"`
	FetchedAt    time.Time                      `json:"fetchedAt"`
}

// Fresh reports whether the entry is younger than ttl at now.
func (e Entry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.FetchedAt) < ttl
}

// Clone returns a deep copy so callers cannot mutate cached requirements.
func (e Entry) Clone() Entry {
	if e.Requirements != nil {
		reqs := e.Requirements.Clone()
		e.Requirements = &reqs
	}
	return e
}

// AsCacheHit returns the entry relabeled as served from cache.
func (e Entry) AsCacheHit() Entry {
	out := e.Clone()
	if out.Source != SourceCache {
		out.ResolvedFrom = out.Source
	}
	out.Source = SourceCache
	return out
}

// RequirementCache is the TTL cache of resolved requirements keyed by game id.
type RequirementCache struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
	front *lru.Cache[string, Entry]
	size  int
}

// Option configures a RequirementCache.
type Option func(*RequirementCache)

// WithTTL overrides DefaultTTL. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(c *RequirementCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *RequirementCache) {
		c.now = now
	}
}

// WithFrontSize sets the LRU front capacity. Zero disables the front.
func WithFrontSize(n int) Option {
	return func(c *RequirementCache) {
		c.size = n
	}
}

// NewRequirementCache wraps store with TTL semantics.
func NewRequirementCache(store Store, opts ...Option) (*RequirementCache, error) {
	c := &RequirementCache{
		store: store,
		ttl:   DefaultTTL,
		now:   time.Now,
		size:  DefaultFrontSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.size > 0 {
		front, err := lru.New[string, Entry](c.size)
		if err != nil {
			return nil, fmt.Errorf("create lru front: %w", err)
		}
		c.front = front
	}
	return c, nil
}

// TTL returns the configured freshness window.
func (c *RequirementCache) TTL() time.Duration {
	return c.ttl
}

// Now returns the cache clock's current time.
func (c *RequirementCache) Now() time.Time {
	return c.now()
}

// Get returns the fresh entry for gameID. ok is false when there is no entry
// or the entry is stale. A non-nil error means the store could not be read;
// callers should treat it as a miss.
func (c *RequirementCache) Get(ctx context.Context, gameID string) (Entry, bool, error) {
	now := c.now()

	if c.front != nil {
		if entry, found := c.front.Get(gameID); found {
			if entry.Fresh(now, c.ttl) {
				metrics.CacheLookups.WithLabelValues("hit").Inc()
				return entry.Clone(), true, nil
			}
			c.front.Remove(gameID)
		}
	}

	data, err := c.store.Get(ctx, requirementKeyPrefix+gameID)
	if errors.Is(err, ErrNotFound) {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return Entry{}, false, nil
	}
	if err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return Entry{}, false, fmt.Errorf("read cache entry: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return Entry{}, false, fmt.Errorf("decode cache entry: %w", err)
	}
	if !entry.Fresh(now, c.ttl) {
		metrics.CacheLookups.WithLabelValues("stale").Inc()
		return Entry{}, false, nil
	}

	if c.front != nil {
		c.front.Add(gameID, entry)
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return entry.Clone(), true, nil
}

// Put overwrites the entry for gameID. The in-process front is updated even
// when the store write fails, so a broken store still bounds repeat lookups
// within this process.
func (c *RequirementCache) Put(ctx context.Context, gameID string, entry Entry) error {
	entry = entry.Clone()
	if entry.FetchedAt.IsZero() {
		entry.FetchedAt = c.now()
	}
	if c.front != nil {
		c.front.Add(gameID, entry)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		metrics.CacheWriteFailures.Inc()
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := c.store.Put(ctx, requirementKeyPrefix+gameID, data); err != nil {
		metrics.CacheWriteFailures.Inc()
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}
