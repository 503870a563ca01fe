// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

// Package main is the entry point for the Rigcheck HTTP server.
//
// Rigcheck resolves the hardware requirements of catalog games from Steam,
// a third-party catalog and a curated fallback table, caches them, and
// scores user hardware against them.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: .env file, then Koanf v2 layers (defaults, config.yaml, environment)
//  2. Logging: zerolog with an optional rotated log file
//  3. Cache store: BadgerDB, Redis, MongoDB or memory, fronted by an LRU
//  4. Catalog: JSON files or MongoDB
//  5. Sources: Steam and the third-party catalog behind circuit breakers, plus the fallback table
//  6. Resolver and batch fill job
//  7. Supervisor tree: cache maintenance, backfill scheduler, HTTP server
//
// # Signal Handling
//
// SIGINT and SIGTERM stop the supervisor tree. The HTTP server drains
// in-flight requests, the backfill job persists its progress, and the cache
// store is flushed before exit.
//
// # Example Usage
//
//	export CACHE_BACKEND=badger CACHE_PATH=/var/lib/rigcheck/cache
//	export CATALOG_DIR=/srv/rigcheck/catalog
//	export RAWG_ENABLED=true RAWG_API_KEY=...
//	./rigcheck-server
package main
