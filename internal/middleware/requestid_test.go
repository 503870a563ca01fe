// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/tomtom215/rigcheck/internal/logging"
)

func captureIDs(t *testing.T, header string) (responseID, contextID, chiID, correlationID string) {
	t.Helper()
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextID = GetRequestID(r.Context())
		chiID = chimiddleware.GetReqID(r.Context())
		correlationID = logging.CorrelationIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(HeaderRequestID, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Header().Get(HeaderRequestID), contextID, chiID, correlationID
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	responseID, contextID, chiID, correlationID := captureIDs(t, "")

	if _, err := uuid.Parse(responseID); err != nil {
		t.Fatalf("response X-Request-ID %q is not a UUID: %v", responseID, err)
	}
	if contextID != responseID || chiID != responseID {
		t.Errorf("context IDs (%q, %q) differ from header %q", contextID, chiID, responseID)
	}
	if correlationID == "" {
		t.Error("expected a correlation ID in context")
	}
}

func TestRequestID_UpstreamHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"proxy id", "edge-42.abc:7", true},
		{"uuid", "0b8f6a8e-4f0e-4f43-9f3e-2f1b0c6c1a11", true},
		{"spaces", "id with spaces", false},
		{"newline injection", "abc\r\nSet-Cookie: x", false},
		{"too long", strings.Repeat("a", maxRequestIDLen+1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responseID, contextID, _, _ := captureIDs(t, tt.header)
			if tt.keep && responseID != tt.header {
				t.Errorf("expected upstream id %q to be kept, got %q", tt.header, responseID)
			}
			if !tt.keep && responseID == tt.header {
				t.Errorf("expected upstream id %q to be replaced", tt.header)
			}
			if contextID != responseID {
				t.Errorf("context id %q != response id %q", contextID, responseID)
			}
		})
	}
}
