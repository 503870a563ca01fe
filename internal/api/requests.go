// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package api

import (
	"github.com/tomtom215/rigcheck/internal/compat"
)

// CompatRequest scores one hardware profile against either explicit games or
// a whole category. Exactly one of GameIDs and Category must be set. The
// configured api.max_compat_games applies on top of the gameIds bound.
type CompatRequest struct {
	Profile  compat.Profile  `json:"profile"`
	GameIDs  []string        `json:"gameIds" validate:"omitempty,max=1000,dive,gameid"`
	Category string          `json:"category" validate:"omitempty,category"`
	Weights  *compat.Weights `json:"weights,omitempty"`
}

// ParseRequest carries free-form requirement text.
type ParseRequest struct {
	Text string `json:"text" validate:"notblank,max=65536"`
}

// BackfillRequest queues a batch fill. An empty category queues every
// configured category.
type BackfillRequest struct {
	Category string `json:"category" validate:"omitempty,category"`
}

// gameParams are the path and query inputs of the requirements endpoint.
type gameParams struct {
	ID string `json:"id" validate:"gameid"`
}

// categoryParams is a category taken from the path or query string.
type categoryParams struct {
	Category string `json:"category" validate:"category"`
}
