// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

/*
Package middleware provides infrastructure HTTP middleware for the API.

Every middleware has the chi signature func(http.Handler) http.Handler.

  - RequestID: request and correlation IDs for logging and tracing
  - AccessLog: one zerolog line per request
  - PrometheusMetrics: request count, latency and in-flight gauge, labeled by
    chi route pattern
  - Compression: gzip for clients that accept it

The router composes them as:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(cors, rateLimit)
	r.Use(middleware.Compression)
*/
package middleware
