// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/rigcheck/internal/logging"
)

// DefaultFlushInterval is used when no interval is configured.
const DefaultFlushInterval = time.Minute

// Flusher is satisfied by cache stores that buffer writes (cache.Syncer).
type Flusher interface {
	Sync() error
}

// CacheMaintenanceService flushes a cache store on an interval and once more
// on shutdown. A failed periodic flush is logged and retried on the next
// tick; a failed final flush is returned.
type CacheMaintenanceService struct {
	store    Flusher
	interval time.Duration
	name     string
}

// NewCacheMaintenanceService creates the service. A non-positive interval
// uses DefaultFlushInterval.
func NewCacheMaintenanceService(store Flusher, interval time.Duration) *CacheMaintenanceService {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	return &CacheMaintenanceService{store: store, interval: interval, name: "cache-maintenance"}
}

// Serve implements suture.Service.
func (c *CacheMaintenanceService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := c.store.Sync(); err != nil {
				return fmt.Errorf("final cache flush: %w", err)
			}
			return ctx.Err()
		case <-ticker.C:
			if err := c.store.Sync(); err != nil {
				logging.Warn().Err(err).Msg("Cache flush failed")
			}
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (c *CacheMaintenanceService) String() string {
	return c.name
}
