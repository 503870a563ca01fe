// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered on the default registry with promauto at package
init and exposed by the API at /metrics in Prometheus text format:

	curl http://localhost:8085/metrics

# Available Metrics

Resolution:
  - rigcheck_resolutions_total{source,outcome}: outcome is hit, found, empty or failed
  - rigcheck_resolution_duration_seconds: uncached resolutions only
  - rigcheck_adapter_requests_total{adapter,status}: status is found, no_data or failed
  - rigcheck_adapter_duration_seconds{adapter}

Cache:
  - rigcheck_requirement_cache_total{result}: hit, miss, stale, error
  - rigcheck_cache_write_failures_total

Circuit Breaker:
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Batch Fill:
  - rigcheck_backfill_items_total{category,result}
  - rigcheck_backfill_run_duration_seconds{category}
  - rigcheck_backfill_last_success_timestamp{category}

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}
  - rigcheck_compat_scores_total{tier}

System:
  - app_info{version,go_version}
  - app_uptime_seconds
*/
package metrics
