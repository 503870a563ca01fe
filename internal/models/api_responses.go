// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope returned by every HTTP endpoint.
//
//	{
//	  "status": "success",
//	  "data": {...},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 45}
//	}
//
// On failure Status is "error", Data is null and Error is set:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "GAME_NOT_FOUND", "message": "Game not found"},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
//
// QueryTimeMS is the time spent resolving or scoring. Cached is set when the
// payload came from the requirement cache without touching any source.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError carries a machine-readable code, a human message and optional
// details such as the failing field.
//
// Codes used by the API:
//   - VALIDATION_ERROR: invalid input parameters or body
//   - INVALID_GAME: catalog entry without id or name
//   - GAME_NOT_FOUND, CATEGORY_NOT_FOUND, PROGRESS_NOT_FOUND
//   - BACKFILL_RUNNING, BACKFILL_QUEUE_FULL
//   - CATALOG_ERROR, CACHE_ERROR, INTERNAL_ERROR
//   - RATE_LIMIT_EXCEEDED
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewSuccess wraps data in a success envelope stamped with now.
func NewSuccess(data interface{}, queryTime time.Duration) *APIResponse {
	return &APIResponse{
		Status: StatusSuccess,
		Data:   data,
		Metadata: Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: queryTime.Milliseconds(),
		},
	}
}
