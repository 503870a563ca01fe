// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package api

import (
	"context"
	"time"

	"github.com/tomtom215/rigcheck/internal/backfill"
	"github.com/tomtom215/rigcheck/internal/cache"
	"github.com/tomtom215/rigcheck/internal/catalog"
	"github.com/tomtom215/rigcheck/internal/compat"
	"github.com/tomtom215/rigcheck/internal/config"
)

// Resolver resolves the requirements of one catalog game. Satisfied by
// *resolver.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, game catalog.Game, force bool) (cache.Entry, error)
}

// BackfillTrigger queues batch fill runs. Satisfied by
// *services.BackfillService.
type BackfillTrigger interface {
	Trigger(category string) error
}

// BackfillProgress reads persisted batch fill progress. Satisfied by
// *backfill.Job.
type BackfillProgress interface {
	Progress(ctx context.Context, category string) (backfill.Progress, bool, error)
	Running(category string) bool
}

// ReadinessCheck reports whether one dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// Dependencies are the collaborators of the handlers. Catalog and Resolver
// are required; a nil Backfill or Progress disables those endpoints.
type Dependencies struct {
	Catalog  catalog.Catalog
	Resolver Resolver
	Backfill BackfillTrigger
	Progress BackfillProgress
	// Checks are run by the readiness probe, keyed by dependency name.
	Checks map[string]ReadinessCheck
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and readiness probes
//   - handlers_games.go: catalog listing and requirement resolution
//   - handlers_requirements.go: free-form text parsing
//   - handlers_compat.go: compatibility scoring
//   - handlers_backfill.go: batch fill trigger and progress
type Handler struct {
	deps              Dependencies
	weights           compat.Weights
	compatConcurrency int
	maxCompatGames    int
	checkTimeout      time.Duration
	startTime         time.Time
}

// NewHandler creates the API handler. Default scoring weights come from
// scoring.weights; an unusable set falls back to compat.DefaultWeights.
func NewHandler(cfg *config.Config, deps Dependencies) *Handler {
	h := &Handler{
		deps:              deps,
		weights:           compat.WeightsFromConfig(cfg.Scoring.Weights),
		compatConcurrency: cfg.API.CompatConcurrency,
		maxCompatGames:    cfg.API.MaxCompatGames,
		checkTimeout:      2 * time.Second,
		startTime:         time.Now(),
	}
	if h.compatConcurrency < 1 {
		h.compatConcurrency = 4
	}
	if h.maxCompatGames < 1 {
		h.maxCompatGames = 200
	}
	return h
}
