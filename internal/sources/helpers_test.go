// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package sources

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rigcheck/internal/requirements"
)

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func quoteJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// stubAdapter returns a fixed answer and counts calls.
type stubAdapter struct {
	name  string
	reqs  *requirements.GameRequirements
	err   error
	calls atomic.Int32
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) Lookup(_ context.Context, _ Query) (*requirements.GameRequirements, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	if s.reqs == nil {
		return nil, nil
	}
	out := s.reqs.Clone()
	return &out, nil
}

var errUpstreamDown = errors.New("upstream down")
