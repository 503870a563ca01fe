// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package sources

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rigcheck/internal/config"
)

// DefaultSteamBaseURL is the public Steam storefront API host.
const DefaultSteamBaseURL = "https://store.steampowered.com"

// SteamClient talks to the unauthenticated Steam storefront API.
type SteamClient struct {
	http     *httpClient
	baseURL  string
	language string
	country  string
}

// steamSearchResponse is the storesearch payload.
type steamSearchResponse struct {
	Total int `json:"total"`
	Items []struct {
		Type string `json:"type"`
		Name string `json:"name"`
		ID   int64  `json:"id"`
	} `json:"items"`
}

// steamAppDetails is one entry of the appdetails payload, keyed by appid.
type steamAppDetails struct {
	Success bool `json:"success"`
	Data    *struct {
		Name string `json:"name"`
		// pc_requirements is an object with minimum/recommended HTML, or an
		// empty array when the store page has none.
		PCRequirements json.RawMessage `json:"pc_requirements"`
	} `json:"data"`
}

type steamRequirementBlocks struct {
	Minimum     string `json:"minimum"`
	Recommended string `json:"recommended"`
}

// NewSteamClient creates a client from cfg; an empty BaseURL uses the public API.
func NewSteamClient(cfg config.SourceConfig) *SteamClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultSteamBaseURL
	}
	language := cfg.Language
	if language == "" {
		language = "english"
	}
	country := cfg.Country
	if country == "" {
		country = "US"
	}
	return &SteamClient{
		http:     newHTTPClient(NameSteam, cfg),
		baseURL:  base,
		language: language,
		country:  country,
	}
}

// Search returns the first storesearch result for name.
func (c *SteamClient) Search(ctx context.Context, name string) (*SearchHit, error) {
	q := url.Values{}
	q.Set("term", name)
	q.Set("l", c.language)
	q.Set("cc", c.country)

	var resp steamSearchResponse
	err := c.http.getJSON(ctx, c.baseURL+"/api/storesearch/?"+q.Encode(), &resp)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 || resp.Items[0].ID == 0 {
		return nil, nil
	}
	first := resp.Items[0]
	return &SearchHit{PlatformID: strconv.FormatInt(first.ID, 10), DisplayName: first.Name}, nil
}

// FetchDetails returns the pc_requirements blocks for appID.
func (c *SteamClient) FetchDetails(ctx context.Context, appID string) (*Details, error) {
	q := url.Values{}
	q.Set("appids", appID)
	q.Set("l", c.language)

	var resp map[string]steamAppDetails
	err := c.http.getJSON(ctx, c.baseURL+"/api/appdetails?"+q.Encode(), &resp)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	app, ok := resp[appID]
	if !ok || !app.Success || app.Data == nil {
		return nil, nil
	}

	blocks, err := decodeSteamRequirements(app.Data.PCRequirements)
	if err != nil {
		return nil, fmt.Errorf("%w: steam pc_requirements for %s: %w", ErrTransport, appID, err)
	}
	if blocks.Minimum == "" && blocks.Recommended == "" {
		return nil, nil
	}
	return &Details{
		DisplayName: app.Data.Name,
		Minimum:     blocks.Minimum,
		Recommended: blocks.Recommended,
	}, nil
}

func decodeSteamRequirements(raw json.RawMessage) (steamRequirementBlocks, error) {
	var blocks steamRequirementBlocks
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		// [] or null
		return blocks, nil
	}
	err := json.Unmarshal(trimmed, &blocks)
	return blocks, err
}

// NewSteamAdapter builds the Steam adapter. A known Query.PlatformID is used
// as the appid directly.
func NewSteamAdapter(client *SteamClient) *TwoStepAdapter {
	return NewTwoStepAdapter(NameSteam, client, client, func(q Query) string {
		return strings.TrimSpace(q.PlatformID)
	})
}
