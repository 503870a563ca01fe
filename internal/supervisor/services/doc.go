// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

/*
Package services provides suture.Service wrappers for Rigcheck components.

Each wrapper translates a component lifecycle into suture's context-aware
Serve pattern and implements fmt.Stringer so supervisor events name it.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the ListenAndServe pattern to Serve

Backfill Scheduler (BackfillService):
  - Runs the requirement backfill on an interval when scheduling is enabled
  - Accepts on-demand triggers from the API through Trigger
  - Runs are sequential; a trigger for a category that is already running
    is rejected with backfill.ErrAlreadyRunning

Cache Maintenance (CacheMaintenanceService):
  - Periodically flushes stores that buffer writes (BadgerDB)
  - Flushes once more on shutdown

# Error Handling

	nil         -> Service stopped cleanly, will not restart
	error       -> Service crashed, supervisor will restart
	ctx.Err()   -> Shutdown requested, normal termination

A failed backfill run is logged and does not crash BackfillService; the
next tick or trigger retries it.
*/
package services
