// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package api

// Error codes returned in APIError.Code.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeInvalidGame       = "INVALID_GAME"
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeProgressNotFound  = "PROGRESS_NOT_FOUND"
	CodeBackfillRunning   = "BACKFILL_RUNNING"
	CodeBackfillQueueFull = "BACKFILL_QUEUE_FULL"
	CodeBackfillDisabled  = "BACKFILL_DISABLED"
	CodeCatalogError      = "CATALOG_ERROR"
	CodeCacheError        = "CACHE_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
	CodeRateLimited       = "RATE_LIMIT_EXCEEDED"
	CodeNotFound          = "NOT_FOUND"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
)
