// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values shared by callers.
const (
	BackfillResolved = "resolved"
	BackfillEmpty    = "empty"
	BackfillSkipped  = "skipped"
	BackfillFailed   = "failed"
)

var (
	// Requirement Cache Metrics
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rigcheck_requirement_cache_total",
			Help: "Requirement cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss", "stale", "error"
	)

	CacheWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rigcheck_cache_write_failures_total",
			Help: "Requirement cache writes that failed (the resolved value is still returned)",
		},
	)

	// Resolver Metrics
	Resolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rigcheck_resolutions_total",
			Help: "Requirement resolutions by winning source and outcome",
		},
		[]string{"source", "outcome"}, // outcome: "hit", "found", "empty", "failed"
	)

	ResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rigcheck_resolution_duration_seconds",
			Help:    "Duration of uncached requirement resolutions",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
		},
	)

	// Source Adapter Metrics
	AdapterRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rigcheck_adapter_requests_total",
			Help: "Requirement source calls by adapter and status",
		},
		[]string{"adapter", "status"}, // status: "found", "no_data", "failed"
	)

	AdapterDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rigcheck_adapter_duration_seconds",
			Help:    "Requirement source call duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 12},
		},
		[]string{"adapter"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Backfill Metrics
	BackfillItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rigcheck_backfill_items_total",
			Help: "Catalog entries handled by the batch fill job",
		},
		[]string{"category", "result"}, // result: "resolved", "empty", "skipped", "failed"
	)

	BackfillRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rigcheck_backfill_run_duration_seconds",
			Help:    "Duration of one batch fill run over a category",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800, 3600},
		},
		[]string{"category"},
	)

	BackfillLastSuccess = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rigcheck_backfill_last_success_timestamp",
			Help: "Unix timestamp of the last completed batch fill run",
		},
		[]string{"category"},
	)

	// Compatibility Scoring Metrics
	CompatScores = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rigcheck_compat_scores_total",
			Help: "Compatibility results by tier",
		},
		[]string{"tier"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordBackfillRun records the end of a batch fill run. Failed runs leave
// the last-success timestamp untouched.
func RecordBackfillRun(category string, duration time.Duration, err error) {
	BackfillRunDuration.WithLabelValues(category).Observe(duration.Seconds())
	if err == nil {
		BackfillLastSuccess.WithLabelValues(category).Set(float64(time.Now().Unix()))
	}
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// TrackUptime updates app_uptime_seconds every interval until stop is closed.
func TrackUptime(start time.Time, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		AppUptime.Set(time.Since(start).Seconds())
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}
