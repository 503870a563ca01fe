// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package sources

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/rigcheck/internal/config"
)

// DefaultRAWGBaseURL is the public RAWG API host.
const DefaultRAWGBaseURL = "https://api.rawg.io"

// RAWGClient talks to the RAWG video game database. It needs an API key.
type RAWGClient struct {
	http    *httpClient
	baseURL string
	apiKey  string
}

type rawgSearchResponse struct {
	Count   int `json:"count"`
	Results []struct {
		ID   int64  `json:"id"`
		Slug string `json:"slug"`
		Name string `json:"name"`
	} `json:"results"`
}

type rawgRequirementText struct {
	Minimum     string `json:"minimum"`
	Recommended string `json:"recommended"`
}

type rawgGameDetail struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Platforms []struct {
		Platform struct {
			Slug string `json:"slug"`
		} `json:"platform"`
		// The detail endpoint uses "requirements"; list payloads use the
		// localized "requirements_en".
		Requirements   *rawgRequirementText `json:"requirements"`
		RequirementsEN *rawgRequirementText `json:"requirements_en"`
	} `json:"platforms"`
}

// NewRAWGClient creates a client from cfg.
func NewRAWGClient(cfg config.SourceConfig) *RAWGClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultRAWGBaseURL
	}
	return &RAWGClient{
		http:    newHTTPClient(NameOther, cfg),
		baseURL: base,
		apiKey:  cfg.APIKey,
	}
}

// Search returns the best RAWG match for name.
func (c *RAWGClient) Search(ctx context.Context, name string) (*SearchHit, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("search", name)
	q.Set("page_size", "1")

	var resp rawgSearchResponse
	err := c.http.getJSON(ctx, c.baseURL+"/api/games?"+q.Encode(), &resp)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 || resp.Results[0].ID == 0 {
		return nil, nil
	}
	first := resp.Results[0]
	return &SearchHit{PlatformID: strconv.FormatInt(first.ID, 10), DisplayName: first.Name}, nil
}

// FetchDetails returns the PC requirement text for a RAWG game id.
func (c *RAWGClient) FetchDetails(ctx context.Context, id string) (*Details, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)

	var detail rawgGameDetail
	err := c.http.getJSON(ctx, c.baseURL+"/api/games/"+url.PathEscape(id)+"?"+q.Encode(), &detail)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	for _, p := range detail.Platforms {
		if p.Platform.Slug != "pc" {
			continue
		}
		text := p.Requirements
		if text == nil || (text.Minimum == "" && text.Recommended == "") {
			text = p.RequirementsEN
		}
		if text == nil || (text.Minimum == "" && text.Recommended == "") {
			return nil, nil
		}
		return &Details{DisplayName: detail.Name, Minimum: text.Minimum, Recommended: text.Recommended}, nil
	}
	return nil, nil
}

// NewRAWGAdapter builds the third-party catalog adapter.
func NewRAWGAdapter(client *RAWGClient) *TwoStepAdapter {
	return NewTwoStepAdapter(NameOther, client, client, nil)
}
