// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package backfill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rigcheck/internal/cache"
)

const progressKeyPrefix = "backfill:"

// Progress is the persisted state of one category run.
type Progress struct {
	Category  string    `json:"category"`
	Total     int       `json:"total"`
	Processed int       `json:"processed"`
	Resolved  int       `json:"resolved"`
	Empty     int       `json:"empty"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Done      bool      `json:"done"`
	// Error is set when the run stopped early.
	Error string `json:"error,omitempty"`
}

func (p *Progress) tally(result string) {
	p.Processed++
	switch result {
	case resultResolved:
		p.Resolved++
	case resultEmpty:
		p.Empty++
	case resultSkipped:
		p.Skipped++
	case resultFailed:
		p.Failed++
	}
}

func progressKey(category string) string {
	return progressKeyPrefix + category
}

func saveProgress(ctx context.Context, store cache.Store, p *Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode backfill progress: %w", err)
	}
	if err := store.Put(ctx, progressKey(p.Category), data); err != nil {
		return fmt.Errorf("write backfill progress: %w", err)
	}
	return nil
}

// LoadProgress reads the last persisted progress for category. ok is false
// when the category has never run.
func LoadProgress(ctx context.Context, store cache.Store, category string) (Progress, bool, error) {
	data, err := store.Get(ctx, progressKey(category))
	if errors.Is(err, cache.ErrNotFound) {
		return Progress{}, false, nil
	}
	if err != nil {
		return Progress{}, false, fmt.Errorf("read backfill progress: %w", err)
	}
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return Progress{}, false, fmt.Errorf("decode backfill progress: %w", err)
	}
	return p, true, nil
}
