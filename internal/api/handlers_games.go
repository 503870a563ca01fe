// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/rigcheck/internal/cache"
	"github.com/tomtom215/rigcheck/internal/catalog"
	"github.com/tomtom215/rigcheck/internal/logging"
	"github.com/tomtom215/rigcheck/internal/models"
	"github.com/tomtom215/rigcheck/internal/resolver"
)

// Games lists catalog categories, or the games of one category when the
// category query parameter is set.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	category := r.URL.Query().Get("category")
	if category == "" {
		categories, err := h.deps.Catalog.Categories(ctx)
		if err != nil {
			respondError(w, r, http.StatusInternalServerError, CodeCatalogError, "Failed to list categories", err)
			return
		}
		respondSuccess(w, http.StatusOK, models.CategoryList{Categories: categories}, start)
		return
	}

	params := categoryParams{Category: category}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondErrorDetails(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	games, err := h.deps.Catalog.List(ctx, category)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, CodeCatalogError, "Failed to list games", err)
		return
	}
	respondSuccess(w, http.StatusOK, models.GameList{
		Category: category,
		Count:    len(games),
		Games:    games,
	}, start)
}

// GameRequirements resolves the requirements of one catalog game.
// ?force=true bypasses the cache and refreshes it.
func (h *Handler) GameRequirements(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params := gameParams{ID: chi.URLParam(r, "id")}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondErrorDetails(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	force, err := getBoolParam(r, "force", false)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	ctx := logging.ContextWithGameID(r.Context(), params.ID)
	game, err := h.deps.Catalog.Get(ctx, params.ID)
	switch {
	case errors.Is(err, catalog.ErrGameNotFound):
		logging.CtxDebug(ctx).Msg("Requested game not in catalog")
		respondError(w, r, http.StatusNotFound, CodeGameNotFound, "Game not found", nil)
		return
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, CodeCatalogError, "Failed to read catalog", err)
		return
	}

	entry, err := h.deps.Resolver.Resolve(ctx, game, force)
	if err != nil {
		if errors.Is(err, resolver.ErrInvalidGame) {
			logging.CtxInfo(ctx).Err(err).Msg("Catalog entry cannot be resolved")
			respondError(w, r, http.StatusUnprocessableEntity, CodeInvalidGame, "Catalog entry has no id or name", nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, CodeInternal, "Failed to resolve requirements", err)
		return
	}

	resp := models.NewSuccess(models.NewGameRequirements(game, entry), time.Since(start))
	resp.Metadata.Cached = entry.Source == cache.SourceCache
	respondJSON(w, http.StatusOK, resp)
}
