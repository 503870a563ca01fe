// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package api

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rigcheck/internal/config"
	"github.com/tomtom215/rigcheck/internal/middleware"
	"github.com/tomtom215/rigcheck/internal/models"
)

// =====================================================
// ChiMiddleware Configuration Tests
// =====================================================

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	m := NewChiMiddleware(nil)

	if m.config == nil {
		t.Fatal("config is nil")
	}
	// Default should be empty (secure by default - requires explicit configuration)
	if len(m.config.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want []", m.config.CORSAllowedOrigins)
	}
	if m.config.RateLimitRequests != 100 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 100/1m", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
}

func TestNewChiMiddlewareFromConfig(t *testing.T) {
	m := NewChiMiddlewareFromConfig(config.SecurityConfig{
		RateLimitReqs:   7,
		RateLimitWindow: time.Second,
		CORSOrigins:     []string{"https://example.com"},
		TrustedProxies:  []string{"10.0.0.0/8", "192.168.1.1", "not-an-ip"},
	})

	if m.config.RateLimitRequests != 7 || m.config.RateLimitWindow != time.Second {
		t.Errorf("rate limit = %d/%v", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
	if len(m.trusted) != 2 {
		t.Errorf("trusted = %v, want 2 valid entries", m.trusted)
	}
}

// =====================================================
// Rate limiting
// =====================================================

func TestRateLimit_RejectsWithEnvelope(t *testing.T) {
	m := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitRequests: 2, RateLimitWindow: time.Minute})
	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
		if i < 2 && last.Code != http.StatusNoContent {
			t.Fatalf("request %d status = %d, want 204", i, last.Code)
		}
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", last.Code)
	}
	var resp models.APIResponse
	if err := json.Unmarshal(last.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != CodeRateLimited {
		t.Errorf("error = %+v, want %s", resp.Error, CodeRateLimited)
	}

	// Another client has its own budget.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
	req.RemoteAddr = "198.51.100.1:4000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("other client status = %d, want 204", rec.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	m := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitRequests: 1, RateLimitWindow: time.Minute, RateLimitDisabled: true})
	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d status = %d, want 204", i, rec.Code)
		}
	}
}

// =====================================================
// Real IP
// =====================================================

func TestRealIP_OnlyFromTrustedProxies(t *testing.T) {
	tests := []struct {
		name    string
		trusted []string
		remote  string
		want    string
	}{
		{"no trusted proxies", nil, "10.1.2.3:5000", "10.1.2.3:5000"},
		{"trusted cidr", []string{"10.0.0.0/8"}, "10.1.2.3:5000", "198.51.100.7"},
		{"trusted address", []string{"10.1.2.3"}, "10.1.2.3:5000", "198.51.100.7"},
		{"untrusted peer", []string{"10.0.0.0/8"}, "203.0.113.5:5000", "203.0.113.5:5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewChiMiddleware(&ChiMiddlewareConfig{TrustedProxies: tt.trusted})
			var got string
			handler := m.RealIP()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			req.Header.Set("X-Forwarded-For", "198.51.100.7")
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("RemoteAddr = %q, want %q", got, tt.want)
			}
		})
	}
}

// =====================================================
// Security headers
// =====================================================

func TestAPISecurityHeaders(t *testing.T) {
	handler := APISecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS must not be sent over plain HTTP")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.TLS = &tls.ConnectionState{}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS missing over TLS")
	}
}

// =====================================================
// Router
// =====================================================

func TestRouter_GlobalBehaviour(t *testing.T) {
	env := newTestEnv(t)

	rec, e := env.do(t, http.MethodGet, "/api/v1/nowhere", "")
	expectError(t, rec, e, http.StatusNotFound, CodeNotFound)

	rec, e = env.do(t, http.MethodDelete, "/api/v1/compat", "")
	expectError(t, rec, e, http.StatusMethodNotAllowed, CodeMethodNotAllowed)

	rec, _ = env.do(t, http.MethodGet, "/api/v1/health/live", "")
	if rec.Header().Get(middleware.HeaderRequestID) == "" {
		t.Error("X-Request-ID not set")
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("ETag not set")
	}
}

func TestRouter_CompressesAPIResponses(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games?category=action", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Errorf("Content-Encoding = %q, want gzip", rec.Header().Get("Content-Encoding"))
	}
}

func TestRouter_Metrics(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/api/v1/health/live", "")

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `api_requests_total{endpoint="/api/v1/health/live"`) {
		t.Error("API request metric missing from exposition")
	}
}
