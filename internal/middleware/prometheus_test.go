// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/rigcheck/internal/metrics"
)

func newInstrumentedRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/api/v1/games/{id}/requirements", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("{}"))
	})
	return r
}

func TestPrometheusMetrics_LabelsByRoutePattern(t *testing.T) {
	const route = "/api/v1/games/{id}/requirements"
	router := newInstrumentedRouter()

	okBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, route, "200"))
	notFoundBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, route, "404"))

	for _, id := range []string{"g1", "g2", "missing"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/games/"+id+"/requirements", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, route, "200")) - okBefore; got != 2 {
		t.Errorf("expected 2 successful requests under the route pattern, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, route, "404")) - notFoundBefore; got != 1 {
		t.Errorf("expected 1 not-found request, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.APIActiveRequests); got != 0 {
		t.Errorf("active requests should return to 0, got %v", got)
	}
}

func TestPrometheusMetrics_UnmatchedRoute(t *testing.T) {
	router := newInstrumentedRouter()
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404"))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/123", nil))

	if got := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404")) - before; got != 1 {
		t.Errorf("expected unmatched request to be counted once, got %v", got)
	}
}

func TestRoutePattern_WithoutRouter(t *testing.T) {
	if got := RoutePattern(httptest.NewRequest(http.MethodGet, "/x", nil)); got != UnmatchedRoute {
		t.Errorf("RoutePattern() = %q, want %q", got, UnmatchedRoute)
	}
}
