// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/rigcheck/config.yaml",
	"/etc/rigcheck/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8085,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		API: APIConfig{
			CompatConcurrency: 4,
			MaxCompatGames:    200,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
			TrustedProxies:    []string{},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Caller:     false,
			File:       "",
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 28,
			Compress:   true,
		},
		Catalog: CatalogConfig{
			Backend:         "file",
			Dir:             "./data/catalog",
			MongoDatabase:   "rigcheck",
			MongoCollection: "games",
		},
		Cache: CacheConfig{
			Backend:         "badger",
			Path:            "./data/cache",
			InMemory:        false,
			TTL:             24 * time.Hour,
			FrontSize:       1024,
			RedisPrefix:     "rigcheck:",
			MongoDatabase:   "rigcheck",
			MongoCollection: "requirement_cache",
		},
		Steam: SourceConfig{
			Enabled:           true,
			Language:          "english",
			Country:           "US",
			Timeout:           12 * time.Second,
			RequestsPerSecond: 1,
			Burst:             1,
			MaxRetries:        3,
		},
		RAWG: SourceConfig{
			Enabled:           false, // needs an API key
			Timeout:           12 * time.Second,
			RequestsPerSecond: 2,
			Burst:             2,
			MaxRetries:        3,
		},
		Fallback: FallbackConfig{
			Source: "file",
			Path:   "./data/fallback.json",
			ObjectStore: ObjectStoreConfig{
				Object: "fallback.json",
				UseSSL: true,
			},
		},
		Breaker: BreakerConfig{
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      2 * time.Minute,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
		Resolver: ResolverConfig{
			AdapterTimeout:   12 * time.Second,
			OnlineCategories: []string{"online", "multiplayer", "competitive", "mmo", "battle-royale"},
			FillDeclaredSize: true,
			MergeFallback:    false,
		},
		Backfill: BackfillConfig{
			Enabled:    false,
			Categories: []string{},
			Interval:   24 * time.Hour,
			BatchSize:  3,
			ItemDelay:  1 * time.Second,
			BatchDelay: 5 * time.Second,
		},
		Scoring: ScoringConfig{
			Weights: WeightsConfig{CPU: 0.30, GPU: 0.30, RAM: 0.15, Storage: 0.15, OS: 0.10},
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	return LoadFile(findConfigFile())
}

// LoadFile is LoadWithKoanf with an explicit config file path. An empty path
// skips the file layer.
func LoadFile(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// STEAM_BASE_URL -> steam.base_url
	// CACHE_TTL -> cache.ttl
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
	"resolver.online_categories",
	"backfill.categories",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// If it's already a slice (from YAML file), skip
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		if strVal, ok := val.(string); ok {
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":          "server.port",
	"http_host":          "server.host",
	"http_timeout":       "server.timeout",
	"environment":        "server.environment",
	"compat_concurrency": "api.compat_concurrency",
	"max_compat_games":   "api.max_compat_games",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"trusted_proxies":     "security.trusted_proxies",

	// Logging
	"log_level":        "logging.level",
	"log_format":       "logging.format",
	"log_caller":       "logging.caller",
	"log_file":         "logging.file",
	"log_max_size_mb":  "logging.max_size_mb",
	"log_max_backups":  "logging.max_backups",
	"log_max_age_days": "logging.max_age_days",
	"log_compress":     "logging.compress",

	// Catalog
	"catalog_backend":          "catalog.backend",
	"catalog_dir":              "catalog.dir",
	"catalog_mongo_uri":        "catalog.mongo_uri",
	"catalog_mongo_database":   "catalog.mongo_database",
	"catalog_mongo_collection": "catalog.mongo_collection",

	// Cache
	"cache_backend":          "cache.backend",
	"cache_path":             "cache.path",
	"cache_in_memory":        "cache.in_memory",
	"cache_ttl":              "cache.ttl",
	"cache_front_size":       "cache.front_size",
	"redis_url":              "cache.redis_url",
	"redis_prefix":           "cache.redis_prefix",
	"cache_mongo_uri":        "cache.mongo_uri",
	"cache_mongo_database":   "cache.mongo_database",
	"cache_mongo_collection": "cache.mongo_collection",

	// Steam
	"steam_enabled":     "steam.enabled",
	"steam_base_url":    "steam.base_url",
	"steam_user_agent":  "steam.user_agent",
	"steam_language":    "steam.language",
	"steam_country":     "steam.country",
	"steam_timeout":     "steam.timeout",
	"steam_rps":         "steam.requests_per_second",
	"steam_burst":       "steam.burst",
	"steam_max_retries": "steam.max_retries",

	// RAWG
	"rawg_enabled":     "rawg.enabled",
	"rawg_api_key":     "rawg.api_key",
	"rawg_base_url":    "rawg.base_url",
	"rawg_user_agent":  "rawg.user_agent",
	"rawg_timeout":     "rawg.timeout",
	"rawg_rps":         "rawg.requests_per_second",
	"rawg_burst":       "rawg.burst",
	"rawg_max_retries": "rawg.max_retries",

	// Fallback table
	"fallback_source":        "fallback.source",
	"fallback_path":          "fallback.path",
	"fallback_s3_endpoint":   "fallback.objectstore.endpoint",
	"fallback_s3_region":     "fallback.objectstore.region",
	"fallback_s3_access_key": "fallback.objectstore.access_key",
	"fallback_s3_secret_key": "fallback.objectstore.secret_key",
	"fallback_s3_bucket":     "fallback.objectstore.bucket",
	"fallback_s3_object":     "fallback.objectstore.object",
	"fallback_s3_use_ssl":    "fallback.objectstore.use_ssl",

	// Circuit breaker
	"breaker_max_requests":  "breaker.max_requests",
	"breaker_interval":      "breaker.interval",
	"breaker_timeout":       "breaker.timeout",
	"breaker_min_requests":  "breaker.min_requests",
	"breaker_failure_ratio": "breaker.failure_ratio",

	// Resolver
	"resolver_adapter_timeout":    "resolver.adapter_timeout",
	"resolver_online_categories":  "resolver.online_categories",
	"resolver_fill_declared_size": "resolver.fill_declared_size",
	"resolver_merge_fallback":     "resolver.merge_fallback",

	// Backfill
	"backfill_enabled":     "backfill.enabled",
	"backfill_categories":  "backfill.categories",
	"backfill_interval":    "backfill.interval",
	"backfill_batch_size":  "backfill.batch_size",
	"backfill_item_delay":  "backfill.item_delay",
	"backfill_batch_delay": "backfill.batch_delay",

	// Scoring weights
	"scoring_weight_cpu":     "scoring.weights.cpu",
	"scoring_weight_gpu":     "scoring.weights.gpu",
	"scoring_weight_ram":     "scoring.weights.ram",
	"scoring_weight_storage": "scoring.weights.storage",
	"scoring_weight_os":      "scoring.weights.os",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables are dropped so unrelated environment does not leak into
// the configuration.
//
// Examples:
//   - STEAM_BASE_URL -> steam.base_url
//   - RAWG_API_KEY -> rawg.api_key
//   - REDIS_URL -> cache.redis_url
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
