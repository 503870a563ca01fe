// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/rigcheck/internal/config"
)

// ErrNotFound is returned by Store.Get when the key does not exist.
var ErrNotFound = errors.New("cache: key not found")

// Store is a durable key-value backend. Put always overwrites.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Syncer is implemented by stores that buffer writes and can flush them.
type Syncer interface {
	Sync() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendBadger Backend = "badger"
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
	BackendMongo  Backend = "mongo"
)

// Open creates the Store selected by cfg.Backend.
func Open(ctx context.Context, cfg config.CacheConfig) (Store, error) {
	switch Backend(cfg.Backend) {
	case BackendBadger, "":
		return OpenBadgerStore(cfg.Path, cfg.InMemory)
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		return NewRedisStore(ctx, cfg.RedisURL, cfg.RedisPrefix)
	case BackendMongo:
		return NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Sync flushes s if it buffers writes. It is a no-op otherwise.
func Sync(s Store) error {
	if syncer, ok := s.(Syncer); ok {
		return syncer.Sync()
	}
	return nil
}
