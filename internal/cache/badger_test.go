// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package cache

import (
	"context"
	"errors"
	"testing"
)

func setupTestBadgerStore(t *testing.T) *BadgerStore {
	t.Helper()

	s, err := OpenBadgerStore("", true)
	if err != nil {
		t.Fatalf("Failed to open in-memory badger: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestBadgerStore_PutGetOverwrite(t *testing.T) {
	ctx := context.Background()
	s := setupTestBadgerStore(t)

	if _, err := s.Get(ctx, "game:1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound before write, got %v", err)
	}

	if err := s.Put(ctx, "game:1", []byte("first")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, "game:1", []byte("second")); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}

	got, err := s.Get(ctx, "game:1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Expected overwritten value 'second', got %q", got)
	}
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenBadgerStore(dir, false)
	if err != nil {
		t.Fatalf("OpenBadgerStore: %v", err)
	}
	if err := s.Put(ctx, "progress", []byte("batch-3")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := Sync(s); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenBadgerStore(dir, false)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, "progress")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if string(got) != "batch-3" {
		t.Errorf("Expected batch-3, got %q", got)
	}
}
