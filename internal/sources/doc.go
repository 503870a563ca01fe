// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

/*
Package sources provides the adapters that look up requirement data for a
named game.

Three adapters are provided:

  - Steam: resolves a name to an appid through the store search endpoint
    (skipped when the catalog already knows the appid), fetches appdetails
    and parses its pc_requirements HTML blocks.
  - RAWG ("other"): searches the RAWG catalog, fetches the game detail and
    parses the PC platform's requirement text.
  - Fallback: a curated name to requirements table, matched exactly and then
    by a normalized form of the name.

# Outcomes

Every adapter implements Adapter. Lookup returns:

  - (*GameRequirements, nil) when the source stated at least one field
  - (nil, nil) when the game is unknown or the source said nothing useful
  - (nil, error) on transport failures: network errors, timeouts, non-2xx
    responses other than 404, malformed payloads

Not-found is never an error. A detail fetch that parses to an all-null
record is reported as (nil, nil) so empty placeholders are not cached as real
answers.

# Resilience

HTTP adapters share a client that applies a token-bucket rate limit
(golang.org/x/time/rate), retries HTTP 429 with exponential backoff honoring
Retry-After, and bounds every request with a timeout. WithCircuitBreaker
wraps any adapter in a sony/gobreaker circuit breaker so a failing upstream
is skipped quickly instead of costing a timeout per game.
*/
package sources
