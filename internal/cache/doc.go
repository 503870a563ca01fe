// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

/*
Package cache holds resolved game requirements between lookups.

The package has two layers:

  - Store: a durable key-value backend (BadgerDB by default, with Redis,
    MongoDB and an in-memory map as alternatives). Stores know nothing about
    TTLs; they only read and overwrite raw bytes.
  - RequirementCache: the TTL-aware cache keyed by game identifier. It keeps a
    bounded LRU front in process memory and persists every entry to the Store
    so cached answers survive restarts and batch runs can resume.

# Entries

An Entry records the winning source, the requirements (nil when nothing was
found) and the time of resolution. An entry is fresh while
now - FetchedAt < TTL (24 hours by default). Stale entries are reported as
misses. Entries with Source "none" are cached like any other result so that
repeated failing lookups cost at most one adapter pass per TTL window.

# Usage

	store, err := cache.Open(ctx, cfg.Cache)
	if err != nil {
	    return err
	}
	defer store.Close()

	rc, err := cache.NewRequirementCache(store, cache.WithTTL(cfg.Cache.TTL))
	entry, ok, err := rc.Get(ctx, game.ID)

# Thread Safety

All stores and RequirementCache are safe for concurrent use. Concurrent
writers for the same game id resolve as last write wins; entries are
complete documents so a race never produces a mixed entry.
*/
package cache
