// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

/*
Package models defines the HTTP response payloads.

Every endpoint answers with APIResponse; Data holds one of the payload types
declared here. Domain types (requirements.Record, compat.Result,
catalog.Game, backfill.Progress) are embedded directly so their JSON shape,
including null for absent requirement fields, is identical across the API,
the cache and the CLI.
*/
package models
