// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/rigcheck/internal/config"
	"github.com/tomtom215/rigcheck/internal/logging"
)

const (
	defaultTimeout   = 12 * time.Second
	defaultUserAgent = "rigcheck/1.0 (+https://github.com/tomtom215/rigcheck)"
	maxErrorBody     = 512
)

// httpClient is the HTTP plumbing shared by the Steam and RAWG clients.
type httpClient struct {
	name       string
	client     *http.Client
	limiter    *rate.Limiter
	userAgent  string
	maxRetries int
	baseDelay  time.Duration
}

func newHTTPClient(name string, cfg config.SourceConfig) *httpClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &httpClient{
		name:       name,
		client:     &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
		userAgent:  userAgent,
		maxRetries: cfg.MaxRetries,
		baseDelay:  time.Second,
	}
}

// getJSON issues a GET and decodes a 2xx JSON body into out. A 404 returns
// errNotFound; every other failure wraps ErrTransport.
func (c *httpClient) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %s rate limiter: %w", ErrTransport, c.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.doRequestWithRateLimit(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %s returned status %d: %s", ErrTransport, c.name, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", ErrTransport, c.name, err)
	}
	return nil
}

// doRequestWithRateLimit executes req, retrying HTTP 429 responses with
// exponential backoff (1s, 2s, 4s, ...) or the server's Retry-After delay.
func (c *httpClient) doRequestWithRateLimit(req *http.Request) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		resp, err := c.client.Do(req)
		if err != nil {
			var urlErr *url.Error
			if errors.As(err, &urlErr) {
				urlErr.URL = logging.RedactURL(urlErr.URL)
			}
			return nil, fmt.Errorf("%w: %s request: %w", ErrTransport, c.name, err)
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		resp.Body.Close()

		if attempt >= c.maxRetries {
			return nil, fmt.Errorf("%w: %s rate limit exceeded after %d retries", ErrTransport, c.name, c.maxRetries)
		}

		retryDelay := c.baseDelay * (1 << attempt)
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
				retryDelay = time.Duration(seconds) * time.Second
			}
		}

		logging.Warn().
			Str("adapter", c.name).
			Dur("retry_delay", retryDelay).
			Int("attempt", attempt+1).
			Int("max_retries", c.maxRetries).
			Msg("Source rate limited (HTTP 429), retrying")

		select {
		case <-req.Context().Done():
			return nil, fmt.Errorf("%w: %s: %w", ErrTransport, c.name, req.Context().Err())
		case <-time.After(retryDelay):
		}
	}
}
