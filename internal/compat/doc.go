// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

// Package compat scores a user's hardware against a game's requirements.
//
// Scoring is a pure function: a weighted sum over five axes (CPU, GPU, RAM,
// storage, OS) clamped to [0,1] and mapped to a fixed tier. Every per-axis
// score and weighted contribution is returned in the Breakdown.
package compat
