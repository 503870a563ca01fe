// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide so struct metadata is
// cached once. Errors name fields by their JSON path and convert to the API
// error envelope with ToAPIError:
//
//	type compatRequest struct {
//	    Category string   `json:"category" validate:"omitempty,category"`
//	    GameIDs  []string `json:"gameIds" validate:"max=100,dive,gameid"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// A single failure produces
//
//	{"code": "VALIDATION_ERROR", "message": "profile.ramGB must be greater than or equal to 0",
//	 "details": {"field": "profile.ramGB", "tag": "gte", "value": -4}}
//
// and several failures are listed under details.fields.
package validation
