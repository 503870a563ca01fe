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

	"github.com/tomtom215/rigcheck/internal/backfill"
	"github.com/tomtom215/rigcheck/internal/catalog"
	"github.com/tomtom215/rigcheck/internal/logging"
	"github.com/tomtom215/rigcheck/internal/models"
	"github.com/tomtom215/rigcheck/internal/supervisor/services"
)

// TriggerBackfill queues a batch fill run and answers 202 without waiting
// for it.
func (h *Handler) TriggerBackfill(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.deps.Backfill == nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeBackfillDisabled, "Batch fill is not available", nil)
		return
	}

	var req BackfillRequest
	if !decodeAndValidate(w, r, &req, true) {
		return
	}

	err := h.deps.Backfill.Trigger(req.Category)
	switch {
	case errors.Is(err, backfill.ErrAlreadyRunning):
		respondError(w, r, http.StatusConflict, CodeBackfillRunning, "Batch fill already running for this category", nil)
		return
	case errors.Is(err, services.ErrTriggerQueueFull):
		respondError(w, r, http.StatusServiceUnavailable, CodeBackfillQueueFull, "Too many queued batch fill runs", err)
		return
	case errors.Is(err, catalog.ErrInvalidCategory):
		respondError(w, r, http.StatusBadRequest, CodeValidation, "category must be a lowercase category slug", nil)
		return
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, CodeInternal, "Failed to queue batch fill", err)
		return
	}

	logging.CtxInfo(r.Context()).Str("category", req.Category).Msg("Batch fill queued")
	respondSuccess(w, http.StatusAccepted, models.BackfillAccepted{Category: req.Category, Queued: true}, start)
}

// BackfillProgress returns the persisted progress of a category.
func (h *Handler) BackfillProgress(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.deps.Progress == nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeBackfillDisabled, "Batch fill is not available", nil)
		return
	}

	params := categoryParams{Category: chi.URLParam(r, "category")}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondErrorDetails(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	p, ok, err := h.deps.Progress.Progress(r.Context(), params.Category)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, CodeCacheError, "Failed to read batch fill progress", err)
		return
	}
	if !ok {
		respondError(w, r, http.StatusNotFound, CodeProgressNotFound, "No batch fill has run for this category", nil)
		return
	}
	respondSuccess(w, http.StatusOK, models.BackfillStatus{
		Progress: p,
		Running:  h.deps.Progress.Running(params.Category),
	}, start)
}
