// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

// Package requirements normalizes free-text PC hardware requirements into a
// canonical, null-preserving schema.
//
// Requirement text arrives from several untrusted sources (Steam HTML blocks,
// RAWG payloads, a curated fallback table). Every field of a Record is
// independently nullable: a nil field means "the source did not state this",
// never "zero requirement". A Record whose fields are all nil is "no data" and
// is treated exactly like a missing record.
//
// # Parsing
//
// ParseText strips markup, rejects boilerplate-only blocks and then runs an
// ordered list of named rules per field. Each rule is an independent function
// so the main failure mode, text from the next field bleeding into the current
// one, can be regression-tested rule by rule:
//
//	rec := requirements.ParseText(`<strong>Processor:</strong> Intel Core i5<br>`)
//	fmt.Println(*rec.CPU) // Intel Core i5
//
// # Sizes
//
// RAM and storage keep a display string with an explicit unit and a derived
// numeric gigabyte value. NormalizeSize implements the conversion rules:
// bare numbers are gigabytes, MB values of 1024 or more are shown in GB, TB is
// multiplied by 1024.
package requirements
