// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package config

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateAPI,
		c.validateSecurity,
		c.validateLogging,
		c.validateCatalog,
		c.validateCache,
		c.validateSources,
		c.validateFallback,
		c.validateBreaker,
		c.validateResolver,
		c.validateBackfill,
		c.validateScoring,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Server.Environment)
	}
}

func (c *Config) validateAPI() error {
	if c.API.CompatConcurrency < 1 {
		return fmt.Errorf("COMPAT_CONCURRENCY must be at least 1, got %d", c.API.CompatConcurrency)
	}
	if c.API.MaxCompatGames < 1 {
		return fmt.Errorf("MAX_COMPAT_GAMES must be at least 1, got %d", c.API.MaxCompatGames)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled", "":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console", "":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	if c.Logging.File != "" && c.Logging.MaxSizeMB < 1 {
		return fmt.Errorf("LOG_MAX_SIZE_MB must be at least 1 when LOG_FILE is set, got %d", c.Logging.MaxSizeMB)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Backend {
	case "file":
		if c.Catalog.Dir == "" {
			return fmt.Errorf("CATALOG_DIR is required when CATALOG_BACKEND=file")
		}
	case "mongo":
		if err := validateMongoURI(c.Catalog.MongoURI, "CATALOG_MONGO_URI"); err != nil {
			return err
		}
		if c.Catalog.MongoDatabase == "" || c.Catalog.MongoCollection == "" {
			return fmt.Errorf("CATALOG_MONGO_DATABASE and CATALOG_MONGO_COLLECTION are required when CATALOG_BACKEND=mongo")
		}
	default:
		return fmt.Errorf("CATALOG_BACKEND must be file or mongo, got %q", c.Catalog.Backend)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %v", c.Cache.TTL)
	}
	if c.Cache.FrontSize < 0 {
		return fmt.Errorf("CACHE_FRONT_SIZE must not be negative, got %d", c.Cache.FrontSize)
	}
	switch c.Cache.Backend {
	case "badger":
		if c.Cache.Path == "" && !c.Cache.InMemory {
			return fmt.Errorf("CACHE_PATH is required when CACHE_BACKEND=badger and CACHE_IN_MEMORY=false")
		}
	case "memory":
	case "redis":
		return validateRedisURL(c.Cache.RedisURL)
	case "mongo":
		if err := validateMongoURI(c.Cache.MongoURI, "CACHE_MONGO_URI"); err != nil {
			return err
		}
		if c.Cache.MongoDatabase == "" || c.Cache.MongoCollection == "" {
			return fmt.Errorf("CACHE_MONGO_DATABASE and CACHE_MONGO_COLLECTION are required when CACHE_BACKEND=mongo")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be badger, memory, redis or mongo, got %q", c.Cache.Backend)
	}
	return nil
}

func (c *Config) validateSources() error {
	if err := validateSource(c.Steam, "STEAM"); err != nil {
		return err
	}
	if err := validateSource(c.RAWG, "RAWG"); err != nil {
		return err
	}
	if c.RAWG.Enabled && c.RAWG.APIKey == "" {
		return fmt.Errorf("RAWG_API_KEY is required when RAWG_ENABLED=true")
	}
	return nil
}

func validateSource(s SourceConfig, prefix string) error {
	if !s.Enabled {
		return nil
	}
	if s.BaseURL != "" {
		if err := validateHTTPURL(s.BaseURL, prefix+"_BASE_URL"); err != nil {
			return err
		}
	}
	if s.Timeout < 0 {
		return fmt.Errorf("%s_TIMEOUT must not be negative, got %v", prefix, s.Timeout)
	}
	if s.RequestsPerSecond < 0 {
		return fmt.Errorf("%s_RPS must not be negative, got %v", prefix, s.RequestsPerSecond)
	}
	if s.MaxRetries < 0 || s.MaxRetries > 10 {
		return fmt.Errorf("%s_MAX_RETRIES must be between 0 and 10, got %d", prefix, s.MaxRetries)
	}
	return nil
}

func (c *Config) validateFallback() error {
	switch c.Fallback.Source {
	case "file", "none", "":
		return nil
	case "objectstore":
		store := c.Fallback.ObjectStore
		if err := validateEndpoint(store.Endpoint); err != nil {
			return err
		}
		if store.Bucket == "" || store.Object == "" {
			return fmt.Errorf("FALLBACK_S3_BUCKET and FALLBACK_S3_OBJECT are required when FALLBACK_SOURCE=objectstore")
		}
		return nil
	default:
		return fmt.Errorf("FALLBACK_SOURCE must be file, objectstore or none, got %q", c.Fallback.Source)
	}
}

func (c *Config) validateBreaker() error {
	if c.Breaker.FailureRatio < 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be between 0 and 1, got %v", c.Breaker.FailureRatio)
	}
	return nil
}

func (c *Config) validateResolver() error {
	if c.Resolver.AdapterTimeout <= 0 {
		return fmt.Errorf("RESOLVER_ADAPTER_TIMEOUT must be positive, got %v", c.Resolver.AdapterTimeout)
	}
	return nil
}

func (c *Config) validateBackfill() error {
	b := c.Backfill
	if b.BatchSize < 1 {
		return fmt.Errorf("BACKFILL_BATCH_SIZE must be at least 1, got %d", b.BatchSize)
	}
	if b.ItemDelay < 0 || b.BatchDelay < 0 {
		return fmt.Errorf("BACKFILL_ITEM_DELAY and BACKFILL_BATCH_DELAY must not be negative")
	}
	if b.Enabled && b.Interval <= 0 {
		return fmt.Errorf("BACKFILL_INTERVAL must be positive when BACKFILL_ENABLED=true, got %v", b.Interval)
	}
	return nil
}

func (c *Config) validateScoring() error {
	w := c.Scoring.Weights
	sum := 0.0
	for _, v := range []float64{w.CPU, w.GPU, w.RAM, w.Storage, w.OS} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("scoring weights must be non-negative numbers, got %+v", w)
		}
		sum += v
	}
	if sum <= 0 {
		return fmt.Errorf("scoring weights must sum to a positive value, got %+v", w)
	}
	return nil
}
