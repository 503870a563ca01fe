// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package sources

import (
	"context"
	"errors"

	"github.com/tomtom215/rigcheck/internal/requirements"
)

// Adapter names. They double as the CacheEntry source values.
const (
	NameSteam    = "steam"
	NameOther    = "other"
	NameFallback = "fallback"
)

// ErrTransport marks failures talking to an upstream source.
var ErrTransport = errors.New("source transport failure")

// errNotFound is used internally by HTTP helpers for 404 responses.
var errNotFound = errors.New("not found")

// Query identifies the game to look up.
type Query struct {
	ID   string
	Name string
	// PlatformID is a known Steam appid; when set the Steam adapter skips
	// the name search.
	PlatformID string
	Category   string
}

// Adapter is one provider of requirement data.
type Adapter interface {
	Name() string
	Lookup(ctx context.Context, q Query) (*requirements.GameRequirements, error)
}

// SearchHit is the result of a name search.
type SearchHit struct {
	PlatformID  string
	DisplayName string
}

// Searcher resolves a display name to a platform identifier. It returns
// (nil, nil) when nothing matches.
type Searcher interface {
	Search(ctx context.Context, name string) (*SearchHit, error)
}

// Details is the requirement payload for one platform identifier. Minimum and
// Recommended hold raw HTML or text blocks.
type Details struct {
	DisplayName string
	Minimum     string
	Recommended string
}

// DetailFetcher fetches detail data for a platform identifier. It returns
// (nil, nil) when the identifier is unknown.
type DetailFetcher interface {
	FetchDetails(ctx context.Context, platformID string) (*Details, error)
}

// TwoStepAdapter runs a name search followed by a detail fetch and parses the
// requirement blocks of the detail payload.
type TwoStepAdapter struct {
	name     string
	searcher Searcher
	fetcher  DetailFetcher
	// knownID returns an identifier that makes the search unnecessary.
	knownID func(Query) string
}

// NewTwoStepAdapter composes a Searcher and a DetailFetcher.
func NewTwoStepAdapter(name string, searcher Searcher, fetcher DetailFetcher, knownID func(Query) string) *TwoStepAdapter {
	return &TwoStepAdapter{name: name, searcher: searcher, fetcher: fetcher, knownID: knownID}
}

// Name returns the adapter name.
func (a *TwoStepAdapter) Name() string {
	return a.name
}

// Lookup implements Adapter.
func (a *TwoStepAdapter) Lookup(ctx context.Context, q Query) (*requirements.GameRequirements, error) {
	platformID := ""
	if a.knownID != nil {
		platformID = a.knownID(q)
	}
	if platformID == "" {
		hit, err := a.searcher.Search(ctx, q.Name)
		if err != nil {
			return nil, err
		}
		if hit == nil || hit.PlatformID == "" {
			return nil, nil
		}
		platformID = hit.PlatformID
	}

	details, err := a.fetcher.FetchDetails(ctx, platformID)
	if err != nil || details == nil {
		return nil, err
	}

	minimum, recommended := details.Minimum, details.Recommended
	if recommended == "" {
		minimum, recommended = requirements.SplitTiers(minimum)
	}
	reqs := requirements.ParseBlocks(minimum, recommended)
	if !reqs.HasData() {
		return nil, nil
	}
	return &reqs, nil
}

// Status classifies one adapter call.
type Status int

const (
	// StatusNoData means the source answered but had nothing usable.
	StatusNoData Status = iota
	// StatusFound means the source returned meaningful data.
	StatusFound
	// StatusFailed means the source could not be reached or answered garbage.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusFailed:
		return "failed"
	default:
		return "no_data"
	}
}

// Result is the tagged outcome of a lookup.
type Result struct {
	Adapter      string
	Status       Status
	Requirements *requirements.GameRequirements
	Err          error
}

// Run calls a.Lookup and folds its (value, error) pair into a Result. Data
// without a single non-null field is reported as StatusNoData.
func Run(ctx context.Context, a Adapter, q Query) Result {
	reqs, err := a.Lookup(ctx, q)
	switch {
	case err != nil:
		return Result{Adapter: a.Name(), Status: StatusFailed, Err: err}
	case reqs == nil || !reqs.HasData():
		return Result{Adapter: a.Name(), Status: StatusNoData}
	default:
		return Result{Adapter: a.Name(), Status: StatusFound, Requirements: reqs}
	}
}
