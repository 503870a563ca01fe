// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

/*
Package config provides centralized configuration management for Rigcheck.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The result is validated once and is
read-only afterwards.

# Configuration Sources

  - Defaults: defaultConfig()
  - YAML file: CONFIG_PATH, or the first of config.yaml, config.yml,
    /etc/rigcheck/config.yaml, /etc/rigcheck/config.yml
  - Environment variables: an explicit allow-list (see envMappings); other
    variables are ignored
  - .env files are loaded by the binaries before Load is called

# Environment Variables

Server and API:
  - HTTP_HOST, HTTP_PORT (default: 8085), HTTP_TIMEOUT, ENVIRONMENT
  - COMPAT_CONCURRENCY (default: 4), MAX_COMPAT_GAMES (default: 200)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS

Catalog and cache:
  - CATALOG_BACKEND (file, mongo), CATALOG_DIR, CATALOG_MONGO_URI
  - CACHE_BACKEND (badger, redis, mongo, memory), CACHE_PATH, CACHE_TTL,
    CACHE_FRONT_SIZE, REDIS_URL, CACHE_MONGO_URI

Sources:
  - STEAM_ENABLED, STEAM_BASE_URL, STEAM_LANGUAGE, STEAM_COUNTRY, STEAM_RPS
  - RAWG_ENABLED, RAWG_API_KEY, RAWG_BASE_URL, RAWG_RPS
  - FALLBACK_SOURCE (file, objectstore, none), FALLBACK_PATH, FALLBACK_S3_*
  - BREAKER_* circuit breaker tuning

Resolution and batch fill:
  - RESOLVER_ADAPTER_TIMEOUT, RESOLVER_ONLINE_CATEGORIES,
    RESOLVER_FILL_DECLARED_SIZE, RESOLVER_MERGE_FALLBACK
  - BACKFILL_ENABLED, BACKFILL_CATEGORIES, BACKFILL_INTERVAL,
    BACKFILL_BATCH_SIZE (default: 3), BACKFILL_ITEM_DELAY, BACKFILL_BATCH_DELAY

Scoring:
  - SCORING_WEIGHT_CPU, SCORING_WEIGHT_GPU, SCORING_WEIGHT_RAM,
    SCORING_WEIGHT_STORAGE, SCORING_WEIGHT_OS

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER, LOG_FILE, LOG_MAX_SIZE_MB,
    LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	store, err := cache.Open(ctx, cfg.Cache)

Comma-separated values are accepted for slice fields
(CORS_ORIGINS, TRUSTED_PROXIES, RESOLVER_ONLINE_CATEGORIES,
BACKFILL_CATEGORIES).
*/
package config
