// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/rigcheck/internal/catalog"
)

// ErrorCode is the API error code for every validation failure.
const ErrorCode = "VALIDATION_ERROR"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed constraint. Field is the JSON path the client
// sent, e.g. "profile.ramGB" or "gameIds[2]".
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Value   interface{}
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

// Errors collects every failed constraint of one request.
type Errors []FieldError

// Error lists each failure as "field: message".
func (errs Errors) Error() string {
	if len(errs) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Field + ": " + e.Message
	}
	return strings.Join(messages, "; ")
}

// APIError mirrors models.APIError; models imports nothing from here.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts errs to the API error format. A single failure reports
// its field directly; several are listed under "fields".
func (errs Errors) ToAPIError() *APIError {
	switch len(errs) {
	case 0:
		return &APIError{Code: ErrorCode, Message: "Validation failed"}
	case 1:
		e := errs[0]
		return &APIError{
			Code:    ErrorCode,
			Message: e.Message,
			Details: map[string]interface{}{"field": e.Field, "tag": e.Tag, "value": e.Value},
		}
	}

	fields := make([]map[string]interface{}, len(errs))
	for i, e := range errs {
		fields[i] = map[string]interface{}{"field": e.Field, "tag": e.Tag, "message": e.Message}
	}
	return &APIError{
		Code:    ErrorCode,
		Message: errs.Error(),
		Details: map[string]interface{}{"fields": fields},
	}
}

// GetValidator returns the shared validator.
//
// Field names in errors are the JSON names clients send ("ramGB", not
// "RAMGB"). Custom tags:
//   - category: catalog category slug
//   - notblank: non-empty after trimming whitespace
//   - gameid: catalog game ID (printable, no slashes, at most 128 bytes)
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)

		mustRegister("category", func(fl validator.FieldLevel) bool {
			return catalog.ValidateCategory(fl.Field().String()) == nil
		})
		mustRegister("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		mustRegister("gameid", func(fl validator.FieldLevel) bool {
			return validGameID(fl.Field().String())
		})
	})
	return validate
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validator: %v", tag, err))
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func validGameID(id string) bool {
	if id == "" || len(id) > 128 || strings.TrimSpace(id) != id {
		return false
	}
	for _, r := range id {
		if r < 0x20 || r == 0x7f || r == '/' || r == '\\' {
			return false
		}
	}
	return true
}

// ValidateStruct validates s and returns nil or a non-empty Errors.
func ValidateStruct(s interface{}) Errors {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: s was not a struct.
		return Errors{{Field: "unknown", Tag: "unknown", Message: err.Error()}}
	}

	out := make(Errors, len(fieldErrs))
	for i, fe := range fieldErrs {
		path := fieldPath(fe)
		out[i] = FieldError{
			Field:   path,
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: message(fe, path),
		}
	}
	return out
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	_, path, ok := strings.Cut(fe.Namespace(), ".")
	if !ok || path == "" {
		return fe.Field()
	}
	return path
}

var messages = map[string]string{
	"required": "%s is required",
	"notblank": "%s must not be blank",
	"category": "%s must be a lowercase category slug",
	"gameid":   "%s must be a valid game id",
}

var messagesWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func message(fe validator.FieldError, path string) string {
	tag := fe.Tag()
	if tmpl, ok := messages[tag]; ok {
		return fmt.Sprintf(tmpl, path)
	}
	if tmpl, ok := messagesWithParam[tag]; ok {
		return fmt.Sprintf(tmpl, path, fe.Param())
	}

	var unit string
	switch fe.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice, reflect.Map, reflect.Array:
		unit = " items"
	}
	switch tag {
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", path, fe.Param(), unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", path, fe.Param(), unit)
	default:
		return fmt.Sprintf("%s failed %s validation", path, tag)
	}
}
