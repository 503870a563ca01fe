// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

/*
Package resolver decides which source supplies a game's requirements.

Resolve consults the requirement cache, then walks the configured adapters in
a category-dependent priority order and stops at the first adapter that returns
meaningful data. The fallback table always runs last. Whatever the outcome,
including "nothing found", the result is written back to the cache so a game
that no source knows costs at most one adapter pass per TTL window.

Priority:

	online categories:  other (RAWG), steam, fallback
	everything else:    steam, other (RAWG), fallback

Transport failures are logged per adapter and resolution continues. The only
error Resolve returns for a well-formed call is ErrInvalidGame; caller
cancellation is reported as the context error.

Concurrent resolutions of the same game id share one adapter pass.
*/
package resolver
