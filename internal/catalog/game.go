// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrGameNotFound is returned when no catalog entry has the requested id.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidCategory is returned for category names that are not a
	// simple slug.
	ErrInvalidCategory = errors.New("invalid category")
)

var categoryPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// Game is one catalog entry as the resolver sees it.
type Game struct {
	ID             string  `json:"id" bson:"_id"`
	Name           string  `json:"name" bson:"name"`
	Category       string  `json:"category" bson:"category"`
	DeclaredSizeGB float64 `json:"declaredSizeGB,omitempty" bson:"declaredSizeGB,omitempty"`
	// PlatformID is a known Steam appid, when the catalog has one.
	PlatformID string `json:"platformId,omitempty" bson:"platformId,omitempty"`
	// RequirementsUnknown is set upstream when the stored requirements are
	// known to be wrong; such games are always re-fetched.
	RequirementsUnknown bool `json:"requirementsUnknown,omitempty" bson:"requirementsUnknown,omitempty"`
}

// Catalog lists and looks up games.
type Catalog interface {
	Categories(ctx context.Context) ([]string, error)
	List(ctx context.Context, category string) ([]Game, error)
	Get(ctx context.Context, id string) (Game, error)
	Close() error
}

// ValidateCategory checks that category is a slug safe to use as a file name
// and a storage key.
func ValidateCategory(category string) error {
	if !categoryPattern.MatchString(category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	return nil
}

// normalize trims identifying fields and defaults the category.
func (g Game) normalize(category string) Game {
	g.ID = strings.TrimSpace(g.ID)
	g.Name = strings.TrimSpace(g.Name)
	g.PlatformID = strings.TrimSpace(g.PlatformID)
	if g.Category == "" {
		g.Category = category
	}
	return g
}
