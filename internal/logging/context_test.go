// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateIDs(t *testing.T) {
	t.Parallel()

	c1, c2 := GenerateCorrelationID(), GenerateCorrelationID()
	if len(c1) != 8 || c1 == c2 {
		t.Errorf("correlation IDs %q, %q: want unique 8-character values", c1, c2)
	}

	r1, r2 := GenerateRequestID(), GenerateRequestID()
	if len(r1) != 36 || r1 == r2 {
		t.Errorf("request IDs %q, %q: want unique UUIDs", r1, r2)
	}
}

func TestContextValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if CorrelationIDFromContext(ctx) != "" || RequestIDFromContext(ctx) != "" || GameIDFromContext(ctx) != "" {
		t.Fatal("expected empty values on a bare context")
	}

	ctx = ContextWithCorrelationID(ctx, "run-1")
	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithGameID(ctx, "g42")

	if got := CorrelationIDFromContext(ctx); got != "run-1" {
		t.Errorf("CorrelationIDFromContext = %q, want run-1", got)
	}
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext = %q, want req-1", got)
	}
	if got := GameIDFromContext(ctx); got != "g42" {
		t.Errorf("GameIDFromContext = %q, want g42", got)
	}

	if got := CorrelationIDFromContext(ContextWithNewCorrelationID(context.Background())); len(got) != 8 {
		t.Errorf("ContextWithNewCorrelationID stored %q", got)
	}
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer Init(DefaultConfig())

	ctx := ContextWithRequestID(context.Background(), "req-7")
	ctx = ContextWithGameID(ctx, "g1")

	Ctx(ctx).Info().Msg("resolved")
	output := buf.String()
	for _, want := range []string{`"request_id":"req-7"`, `"game_id":"g1"`, "resolved"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
	if strings.Contains(output, "correlation_id") {
		t.Errorf("unexpected correlation_id in output: %s", output)
	}
}

func TestCtxShortcuts(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer Init(DefaultConfig())
	original := GetLevel()
	defer SetLevel(original)
	SetLevel(zerolog.DebugLevel)

	ctx := ContextWithCorrelationID(context.Background(), "abc")

	tests := []struct {
		name  string
		fn    func()
		level string
	}{
		{"CtxDebug", func() { CtxDebug(ctx).Msg("m") }, "debug"},
		{"CtxInfo", func() { CtxInfo(ctx).Msg("m") }, "info"},
		{"CtxWarn", func() { CtxWarn(ctx).Msg("m") }, "warn"},
		{"CtxErr", func() { CtxErr(ctx, errors.New("boom")).Msg("m") }, "error"},
	}
	for _, tt := range tests {
		buf.Reset()
		tt.fn()
		out := buf.String()
		if !strings.Contains(out, `"level":"`+tt.level+`"`) || !strings.Contains(out, `"correlation_id":"abc"`) {
			t.Errorf("%s: unexpected output %s", tt.name, out)
		}
	}
}
