// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

/*
Package supervisor provides process supervision for Rigcheck using suture v4.

Every long-running component is a suture.Service placed in one of three
child supervisors:

	RootSupervisor ("rigcheck")
	├── DataSupervisor ("data-layer")
	│   └── CacheMaintenanceService (periodic flush of the durable cache)
	├── JobsSupervisor ("jobs-layer")
	│   └── BackfillService (interval schedule + API triggers)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures independently, so a backfill that keeps crashing
backs off without restarting the HTTP server.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewCacheMaintenanceService(store, time.Minute))
	tree.AddJobService(backfillSvc)
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	errCh := tree.ServeBackground(ctx)

# Configuration

TreeConfig zero values fall back to suture's defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Service Contract

  - Return nil: stopped cleanly, not restarted
  - Return error: crashed, restarted with backoff
  - Context canceled: shutdown requested, return promptly

Supervisor events (start, failure, backoff) are logged through sutureslog
into the zerolog-backed slog handler.

# Debugging Shutdown

	report, _ := tree.UnstoppedServiceReport()
	for _, svc := range report {
	    logging.Warn().Str("service", svc.Name).Msg("Service did not stop")
	}
*/
package supervisor
