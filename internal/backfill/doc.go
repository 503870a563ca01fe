// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

/*
Package backfill implements the batch requirement fill job.

A run walks every catalog entry of one category in fixed-size batches,
resolving entries that lack usable cached data. Upstream sources are
third-party services with their own rate limits, so the job pauses between
items and between batches that actually reached upstream.

Progress is written to the cache store after every batch under
"backfill:<category>". An interrupted run loses at most the batch in
flight; re-running the category skips entries whose cached data is still
fresh and meaningful, so runs are idempotent.

Entries flagged requirementsUnknown in the catalog are always re-fetched
with force.

Example:

	job := backfill.NewJob(cat, res, res.Cache(), store, cfg.Backfill)
	progress, err := job.Run(ctx, "action")
*/
package backfill
