// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStoreBasicOperations(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Put(ctx, "key1", []byte("value1")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	value, err := s.Get(ctx, "key1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(value) != "value1" {
		t.Errorf("Expected value1, got %s", value)
	}

	// Returned slices must not alias stored data
	value[0] = 'X'
	again, _ := s.Get(ctx, "key1")
	if string(again) != "value1" {
		t.Errorf("Stored value was mutated through returned slice: %s", again)
	}

	_, err = s.Get(ctx, "key2")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreStats(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.Put(ctx, "a", []byte("1"))
	_, _ = s.Get(ctx, "a")
	_, _ = s.Get(ctx, "a")
	_, _ = s.Get(ctx, "missing")

	stats := s.GetStats()
	if stats.Hits != 2 || stats.Misses != 1 || stats.Writes != 1 || stats.TotalKeys != 1 {
		t.Errorf("Unexpected stats: %+v", &stats)
	}
	if rate := s.HitRate(); rate < 66.6 || rate > 66.7 {
		t.Errorf("Expected hit rate ~66.67%%, got %.2f", rate)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", i%5)
			_ = s.Put(ctx, key, []byte(key))
			_, _ = s.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	if total := s.GetStats().TotalKeys; total != 5 {
		t.Errorf("Expected 5 keys, got %d", total)
	}
}
