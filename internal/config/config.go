// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Data Sources:
//     - Steam: storefront search and appdetails
//     - RAWG: third-party game catalog (requires an API key)
//     - Fallback: curated requirement table (file or S3-compatible bucket)
//
//  2. Infrastructure:
//     - Catalog: read-only game catalog (JSON files or MongoDB)
//     - Cache: durable requirement cache (BadgerDB, Redis, MongoDB or memory)
//     - Resolver / Backfill: resolution policy and the batch fill job
//
//  3. API & Security:
//     - Server: HTTP listener
//     - Security: inbound rate limiting and CORS
//
//  4. Observability:
//     - Logging: level, format and optional rotated log file
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Cache    CacheConfig    `koanf:"cache"`
	Steam    SourceConfig   `koanf:"steam"`
	RAWG     SourceConfig   `koanf:"rawg"`
	Fallback FallbackConfig `koanf:"fallback"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Resolver ResolverConfig `koanf:"resolver"`
	Backfill BackfillConfig `koanf:"backfill"`
	Scoring  ScoringConfig  `koanf:"scoring"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// APIConfig bounds the work a single API request may trigger.
type APIConfig struct {
	// CompatConcurrency is the number of games resolved in parallel for one
	// compatibility request.
	CompatConcurrency int `koanf:"compat_concurrency"`
	// MaxCompatGames caps the games scored per compatibility request.
	MaxCompatGames int `koanf:"max_compat_games"`
}

// SecurityConfig holds inbound request controls
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
//   - LOG_FILE: optional path; when set logs are also written there with rotation
//   - LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS: rotation limits
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`

	// File enables an additional rotated log file.
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// CatalogConfig selects where game catalog entries are read from.
//
// Environment Variables:
//   - CATALOG_BACKEND: file or mongo (default: file)
//   - CATALOG_DIR: directory with <category>.json files (default: ./data/catalog)
//   - CATALOG_MONGO_URI, CATALOG_MONGO_DATABASE, CATALOG_MONGO_COLLECTION
type CatalogConfig struct {
	Backend         string `koanf:"backend"`
	Dir             string `koanf:"dir"`
	MongoURI        string `koanf:"mongo_uri"`
	MongoDatabase   string `koanf:"mongo_database"`
	MongoCollection string `koanf:"mongo_collection"`
}

// CacheConfig configures the durable requirement cache.
//
// Environment Variables:
//   - CACHE_BACKEND: badger, redis, mongo or memory (default: badger)
//   - CACHE_PATH: BadgerDB directory (default: ./data/cache)
//   - CACHE_IN_MEMORY: run BadgerDB without disk (default: false)
//   - CACHE_TTL: freshness window (default: 24h)
//   - CACHE_FRONT_SIZE: in-process LRU entries, 0 disables (default: 1024)
//   - REDIS_URL, REDIS_PREFIX: redis backend
//   - CACHE_MONGO_URI, CACHE_MONGO_DATABASE, CACHE_MONGO_COLLECTION: mongo backend
type CacheConfig struct {
	Backend         string        `koanf:"backend"`
	Path            string        `koanf:"path"`
	InMemory        bool          `koanf:"in_memory"`
	TTL             time.Duration `koanf:"ttl"`
	FrontSize       int           `koanf:"front_size"`
	RedisURL        string        `koanf:"redis_url"`
	RedisPrefix     string        `koanf:"redis_prefix"`
	MongoURI        string        `koanf:"mongo_uri"`
	MongoDatabase   string        `koanf:"mongo_database"`
	MongoCollection string        `koanf:"mongo_collection"`
}

// SourceConfig configures one upstream requirement source.
type SourceConfig struct {
	Enabled           bool          `koanf:"enabled"`
	BaseURL           string        `koanf:"base_url"`
	APIKey            string        `koanf:"api_key"`
	UserAgent         string        `koanf:"user_agent"`
	Language          string        `koanf:"language"`
	Country           string        `koanf:"country"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	MaxRetries        int           `koanf:"max_retries"`
}

// ObjectStoreConfig locates an object in S3-compatible storage.
type ObjectStoreConfig struct {
	Endpoint  string `koanf:"endpoint"`
	Region    string `koanf:"region"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Bucket    string `koanf:"bucket"`
	Object    string `koanf:"object"`
	UseSSL    bool   `koanf:"use_ssl"`
}

// FallbackConfig locates the curated fallback table.
//
// Environment Variables:
//   - FALLBACK_SOURCE: file, objectstore or none (default: file)
//   - FALLBACK_PATH: JSON file path for the file source
//   - FALLBACK_S3_ENDPOINT, FALLBACK_S3_BUCKET, FALLBACK_S3_OBJECT, ...: objectstore source
type FallbackConfig struct {
	Source      string            `koanf:"source"`
	Path        string            `koanf:"path"`
	ObjectStore ObjectStoreConfig `koanf:"objectstore"`
}

// BreakerConfig tunes the circuit breaker placed around each HTTP source.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// ResolverConfig holds the multi-source resolution policy.
type ResolverConfig struct {
	// AdapterTimeout bounds each adapter call.
	AdapterTimeout time.Duration `koanf:"adapter_timeout"`
	// OnlineCategories try the third-party catalog before Steam.
	OnlineCategories []string `koanf:"online_categories"`
	// FillDeclaredSize copies the catalog's declared install size into
	// storage when no source states it.
	FillDeclaredSize bool `koanf:"fill_declared_size"`
	// MergeFallback fills gaps in a winning record from the fallback table.
	MergeFallback bool `koanf:"merge_fallback"`
}

// BackfillConfig controls the batch requirement fill job.
type BackfillConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Categories []string      `koanf:"categories"` // empty means every catalog category
	Interval   time.Duration `koanf:"interval"`
	BatchSize  int           `koanf:"batch_size"`
	ItemDelay  time.Duration `koanf:"item_delay"`
	BatchDelay time.Duration `koanf:"batch_delay"`
}

// WeightsConfig holds per-axis scoring weights.
type WeightsConfig struct {
	CPU     float64 `koanf:"cpu"`
	GPU     float64 `koanf:"gpu"`
	RAM     float64 `koanf:"ram"`
	Storage float64 `koanf:"storage"`
	OS      float64 `koanf:"os"`
}

// ScoringConfig holds the default scoring weights used when a request does
// not supply its own.
type ScoringConfig struct {
	Weights WeightsConfig `koanf:"weights"`
}

// Load reads configuration from multiple sources with the following precedence
// (highest to lowest):
//  1. Environment variables
//  2. Config file (path from CONFIG_PATH, or the first of DefaultConfigPaths found)
//  3. Built-in defaults
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
