// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/rigcheck/internal/catalog"
	"github.com/tomtom215/rigcheck/internal/compat"
	"github.com/tomtom215/rigcheck/internal/logging"
	"github.com/tomtom215/rigcheck/internal/metrics"
	"github.com/tomtom215/rigcheck/internal/models"
)

// Compat scores a hardware profile against the requested games. Games are
// resolved concurrently, bounded by api.compat_concurrency; results keep
// request order. A game without requirements still gets a score, with a
// note saying so.
func (h *Handler) Compat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	var req CompatRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}
	if (len(req.GameIDs) == 0) == (req.Category == "") {
		respondError(w, r, http.StatusBadRequest, CodeValidation, "exactly one of gameIds or category is required", nil)
		return
	}
	if len(req.GameIDs) > h.maxCompatGames {
		respondError(w, r, http.StatusBadRequest, CodeValidation,
			fmt.Sprintf("gameIds must be at most %d items", h.maxCompatGames), nil)
		return
	}

	weights := h.weights
	if req.Weights != nil {
		if err := req.Weights.Validate(); err != nil {
			respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
			return
		}
		weights = *req.Weights
	}

	report := models.CompatReport{Profile: req.Profile, Weights: weights}

	var games []catalog.Game
	if req.Category != "" {
		listed, err := h.deps.Catalog.List(ctx, req.Category)
		if err != nil {
			respondError(w, r, http.StatusInternalServerError, CodeCatalogError, "Failed to list games", err)
			return
		}
		if len(listed) > h.maxCompatGames {
			listed = listed[:h.maxCompatGames]
			report.Truncated = true
		}
		games = listed
	}

	report.Results = make([]models.CompatGame, max(len(games), len(req.GameIDs)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.compatConcurrency)
	if req.Category != "" {
		for i, game := range games {
			g.Go(func() error {
				report.Results[i] = h.scoreGame(gctx, req.Profile, game, &weights)
				return nil
			})
		}
	} else {
		for i, id := range req.GameIDs {
			g.Go(func() error {
				game, err := h.deps.Catalog.Get(gctx, id)
				if err != nil {
					report.Results[i] = models.CompatGame{GameID: id, Error: lookupError(err)}
					if !errors.Is(err, catalog.ErrGameNotFound) {
						logging.CtxWarn(gctx).Err(err).Str("game_id", id).Msg("Catalog lookup failed during compat")
					}
					return nil
				}
				report.Results[i] = h.scoreGame(gctx, req.Profile, game, &weights)
				return nil
			})
		}
	}
	// Per-game failures are reported inline; the group never returns an error.
	_ = g.Wait()

	respondSuccess(w, http.StatusOK, report, start)
}

// scoreGame resolves and scores one game.
func (h *Handler) scoreGame(ctx context.Context, profile compat.Profile, game catalog.Game, weights *compat.Weights) models.CompatGame {
	out := models.CompatGame{GameID: game.ID, Name: game.Name}

	entry, err := h.deps.Resolver.Resolve(logging.ContextWithGameID(ctx, game.ID), game, false)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	out.Source = entry.Source

	result := compat.Score(profile, entry.Requirements, weights)
	out.Result = &result
	if entry.Requirements == nil || !entry.Requirements.HasData() {
		out.Note = models.NoRequirementsNote
	}
	metrics.CompatScores.WithLabelValues(string(result.Tier)).Inc()
	return out
}

func lookupError(err error) string {
	if errors.Is(err, catalog.ErrGameNotFound) {
		return "game not found"
	}
	return "catalog lookup failed"
}
