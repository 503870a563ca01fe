// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/rigcheck/internal/models"
	"github.com/tomtom215/rigcheck/internal/requirements"
)

// ParseRequirements parses posted free-form text into a requirement record.
// Text with a recommended heading is also split into both tiers.
func (h *Handler) ParseRequirements(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ParseRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	out := models.ParsedRequirements{Record: requirements.ParseText(req.Text)}
	if minimum, recommended := requirements.SplitTiers(req.Text); recommended != "" {
		tiers := requirements.ParseBlocks(minimum, recommended)
		out.Tiers = &tiers
	}
	respondSuccess(w, http.StatusOK, out, start)
}
