// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package models

import (
	"time"

	"github.com/tomtom215/rigcheck/internal/backfill"
	"github.com/tomtom215/rigcheck/internal/cache"
	"github.com/tomtom215/rigcheck/internal/catalog"
	"github.com/tomtom215/rigcheck/internal/compat"
	"github.com/tomtom215/rigcheck/internal/requirements"
)

// NoRequirementsNote is attached to compat results for games without any
// resolvable requirements.
const NoRequirementsNote = "no system requirements available"

// GameList is the catalog listing for one category.
type GameList struct {
	Category string         `json:"category"`
	Count    int            `json:"count"`
	Games    []catalog.Game `json:"games"`
}

// CategoryList names every catalog category.
type CategoryList struct {
	Categories []string `json:"categories"`
}

// GameRequirements is the resolution result for one game.
//
// Requirements is null when no source had data; Source is then "none".
// A cache hit reports source "cache" with the original winner in
// ResolvedFrom.
type GameRequirements struct {
	GameID       string                         `json:"gameId"`
	Name         string                         `json:"name"`
	Category     string                         `json:"category"`
	Source       string                         `json:"source"`
	ResolvedFrom string                         `json:"resolvedFrom,omitempty"`
	Requirements *requirements.GameRequirements `json:"requirements"`
	FetchedAt    time.Time                      `json:"fetchedAt"`
}

// NewGameRequirements builds the response for one resolved game.
func NewGameRequirements(game catalog.Game, entry cache.Entry) GameRequirements {
	return GameRequirements{
		GameID:       game.ID,
		Name:         game.Name,
		Category:     game.Category,
		Source:       entry.Source,
		ResolvedFrom: entry.ResolvedFrom,
		Requirements: entry.Requirements,
		FetchedAt:    entry.FetchedAt,
	}
}

// ParsedRequirements is the parse endpoint response. Record is the single
// record read from the text; Tiers is set when the text contained separate
// minimum and recommended sections.
type ParsedRequirements struct {
	Record requirements.Record            `json:"record"`
	Tiers  *requirements.GameRequirements `json:"tiers,omitempty"`
}

// CompatGame is the verdict for one game.
type CompatGame struct {
	GameID string         `json:"gameId"`
	Name   string         `json:"name"`
	Source string         `json:"source"`
	Result *compat.Result `json:"result,omitempty"`
	Note   string         `json:"note,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// CompatReport is the compat endpoint response. Results keep the order of
// the requested games.
type CompatReport struct {
	Profile   compat.Profile `json:"profile"`
	Weights   compat.Weights `json:"weights"`
	Results   []CompatGame   `json:"results"`
	Truncated bool           `json:"truncated,omitempty"`
}

// BackfillAccepted acknowledges a queued backfill.
type BackfillAccepted struct {
	Category string `json:"category,omitempty"`
	Queued   bool   `json:"queued"`
}

// BackfillStatus reports the persisted progress of a category.
type BackfillStatus struct {
	backfill.Progress
	Running bool `json:"running"`
}

// HealthStatus is the readiness probe payload.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
	Uptime float64           `json:"uptime_seconds"`
}
