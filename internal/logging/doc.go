// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

// Package logging provides centralized zerolog-based structured logging for Rigcheck.
//
// Every package logs through the global logger configured here: JSON on
// stderr by default, console output for development, and an optional
// rotated JSON log file (lumberjack) alongside either.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//	defer logging.Close()
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Adapter failed")
//
// # Context Fields
//
// Ctx adds request_id (HTTP requests), correlation_id (one backfill run or
// CLI invocation) and game_id (one resolution) to every line when the
// context carries them.
//
// # Secrets
//
// Upstream URLs carry API keys in their query string. Anything that logs or
// wraps such a URL passes it through RedactURL first.
//
// # slog Bridge
//
// SlogHandler adapts zerolog to log/slog for libraries that only accept a
// *slog.Logger, such as sutureslog.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
