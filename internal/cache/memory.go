// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package cache

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store. It does not survive restarts and is
// meant for tests and one-shot CLI runs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
	stats   Stats
}

// Stats tracks store access counts.
type Stats struct {
	mu        sync.RWMutex
	Hits      int64
	Misses    int64
	Writes    int64
	TotalKeys int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

// Get returns a copy of the stored value.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	value, exists := m.entries[key]
	m.mu.RUnlock()

	if !exists {
		m.recordMiss()
		return nil, ErrNotFound
	}
	m.recordHit()
	return append([]byte(nil), value...), nil
}

// Put stores a copy of value, replacing any previous value.
func (m *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.entries[key] = append([]byte(nil), value...)
	total := int64(len(m.entries))
	m.mu.Unlock()

	m.stats.mu.Lock()
	m.stats.Writes++
	m.stats.TotalKeys = total
	m.stats.mu.Unlock()
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}

// GetStats returns a snapshot of the access counters.
func (m *MemoryStore) GetStats() Stats {
	m.stats.mu.RLock()
	defer m.stats.mu.RUnlock()

	return Stats{
		Hits:      m.stats.Hits,
		Misses:    m.stats.Misses,
		Writes:    m.stats.Writes,
		TotalKeys: m.stats.TotalKeys,
	}
}

// HitRate returns the hit rate as a percentage.
func (m *MemoryStore) HitRate() float64 {
	stats := m.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

func (m *MemoryStore) recordHit() {
	m.stats.mu.Lock()
	m.stats.Hits++
	m.stats.mu.Unlock()
}

func (m *MemoryStore) recordMiss() {
	m.stats.mu.Lock()
	m.stats.Misses++
	m.stats.mu.Unlock()
}
