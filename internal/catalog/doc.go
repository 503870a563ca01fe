// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

/*
Package catalog provides read-only access to the game catalog.

The catalog is owned by the surrounding CRUD service. This package only reads
entries so the resolver and the batch fill job can build resolution requests.
Two backends are available:

  - FileCatalog reads one JSON array per category from a directory
    (<dir>/<category>.json).
  - MongoCatalog reads a MongoDB collection with one document per game.

Both implement Catalog and return ErrGameNotFound for unknown ids.
*/
package catalog
