// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package sources

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// fallbackTableSchema describes the curated fallback file: an object keyed by
// display name whose values hold partial requirement fields and an optional
// recommended override with the same fields.
const fallbackTableSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": { "$ref": "#/definitions/entry" },
  "definitions": {
    "field": { "type": ["string", "number", "null"] },
    "tier": {
      "type": "object",
      "properties": {
        "cpu": { "$ref": "#/definitions/field" },
        "gpu": { "$ref": "#/definitions/field" },
        "ram": { "$ref": "#/definitions/field" },
        "storage": { "$ref": "#/definitions/field" },
        "os": { "$ref": "#/definitions/field" }
      },
      "additionalProperties": false
    },
    "entry": {
      "type": "object",
      "properties": {
        "cpu": { "$ref": "#/definitions/field" },
        "gpu": { "$ref": "#/definitions/field" },
        "ram": { "$ref": "#/definitions/field" },
        "storage": { "$ref": "#/definitions/field" },
        "os": { "$ref": "#/definitions/field" },
        "recommended": { "$ref": "#/definitions/tier" }
      },
      "additionalProperties": false
    }
  }
}`

// maxSchemaErrors bounds the number of violations reported.
const maxSchemaErrors = 5

var fallbackSchemaLoader = gojsonschema.NewStringLoader(fallbackTableSchema)

// validateFallbackTable checks doc against fallbackTableSchema.
func validateFallbackTable(doc []byte) error {
	res, err := gojsonschema.Validate(fallbackSchemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("validate fallback table: %w", err)
	}
	if !res.Valid() {
		var msgs []string
		for i, e := range res.Errors() {
			if i >= maxSchemaErrors {
				break
			}
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("invalid fallback table: %s", strings.Join(msgs, "; "))
	}
	return nil
}
