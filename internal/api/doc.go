// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

/*
Package api provides the HTTP REST API layer for Rigcheck.

Endpoints:

	GET  /api/v1/health/live               liveness probe
	GET  /api/v1/health/ready              readiness probe (catalog and cache checks)
	GET  /api/v1/games                     catalog categories
	GET  /api/v1/games?category=<c>        games of one category
	GET  /api/v1/games/{id}/requirements   resolve requirements (?force=true bypasses the cache)
	POST /api/v1/requirements/parse        parse free-form requirement text
	POST /api/v1/compat                    score a hardware profile against games
	POST /api/v1/backfill                  queue a batch fill run
	GET  /api/v1/backfill/{category}       persisted batch fill progress
	GET  /metrics                          prometheus exposition

Every JSON response uses the models.APIResponse envelope. Errors carry a
stable machine-readable code (see errors.go).

Middleware stack, outermost first: request ID, real IP, access log, panic
recovery, prometheus, CORS, and on /api/v1 the per-IP rate limit, security
headers and gzip compression.

Usage Example:

	handler := api.NewHandler(cfg, api.Dependencies{
	    Catalog:  cat,
	    Resolver: res,
	    Backfill: backfillService,
	    Progress: job,
	})
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))
	srv := &http.Server{Addr: ":8080", Handler: router.SetupChi()}
*/
package api
