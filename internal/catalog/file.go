// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rigcheck/internal/logging"
)

// FileCatalog reads <dir>/<category>.json files, each a JSON array of games.
// Files are read on every call so edits by the CRUD service are picked up
// without a restart.
type FileCatalog struct {
	dir string
}

// NewFileCatalog returns a catalog rooted at dir. The directory must exist.
func NewFileCatalog(dir string) (*FileCatalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog dir %s is not a directory", dir)
	}
	return &FileCatalog{dir: dir}, nil
}

// Categories returns the category names found in the directory, sorted.
func (c *FileCatalog) Categories(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		if ValidateCategory(name) != nil {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// List returns the games of one category. A missing category file yields an
// empty list.
func (c *FileCatalog) List(_ context.Context, category string) ([]Game, error) {
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(c.dir, category+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return []Game{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read category %s: %w", category, err)
	}

	var games []Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("decode category %s: %w", category, err)
	}

	out := make([]Game, 0, len(games))
	for _, g := range games {
		g = g.normalize(category)
		if g.ID == "" {
			logging.Warn().Str("category", category).Str("name", g.Name).Msg("Skipping catalog entry without id")
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// Get scans every category for id.
func (c *FileCatalog) Get(ctx context.Context, id string) (Game, error) {
	categories, err := c.Categories(ctx)
	if err != nil {
		return Game{}, err
	}
	for _, category := range categories {
		games, err := c.List(ctx, category)
		if err != nil {
			return Game{}, err
		}
		for _, g := range games {
			if g.ID == id {
				return g, nil
			}
		}
	}
	return Game{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
}

// Close is a no-op.
func (c *FileCatalog) Close() error {
	return nil
}
