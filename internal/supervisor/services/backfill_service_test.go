// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/rigcheck/internal/backfill"
	"github.com/tomtom215/rigcheck/internal/catalog"
	"github.com/tomtom215/rigcheck/internal/config"
)

var _ suture.Service = (*BackfillService)(nil)

type fakeRunner struct {
	mu      sync.Mutex
	runs    []string
	runAlls [][]string
	running map[string]bool
	err     error
	calls   chan struct{}
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{running: map[string]bool{}, calls: make(chan struct{}, 32)}
}

func (f *fakeRunner) Run(_ context.Context, category string) (backfill.Progress, error) {
	f.mu.Lock()
	f.runs = append(f.runs, category)
	err := f.err
	f.mu.Unlock()
	f.calls <- struct{}{}
	return backfill.Progress{Category: category, Done: err == nil}, err
}

func (f *fakeRunner) RunAll(_ context.Context, categories []string) error {
	f.mu.Lock()
	f.runAlls = append(f.runAlls, categories)
	err := f.err
	f.mu.Unlock()
	f.calls <- struct{}{}
	return err
}

func (f *fakeRunner) Running(category string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running[category]
}

func (f *fakeRunner) snapshot() ([]string, [][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.runs...), append([][]string(nil), f.runAlls...)
}

func (f *fakeRunner) waitCalls(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-f.calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for run %d of %d", i+1, n)
		}
	}
}

func serveInBackground(svc *BackfillService) (cancel func() error) {
	ctx, stop := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	return func() error {
		stop()
		return <-errCh
	}
}

func TestBackfillService_Trigger(t *testing.T) {
	runner := newFakeRunner()
	svc := NewBackfillService(runner, config.BackfillConfig{Categories: []string{"online"}})
	stop := serveInBackground(svc)

	if err := svc.Trigger("offline"); err != nil {
		t.Fatalf("Trigger(offline): %v", err)
	}
	if err := svc.Trigger(""); err != nil {
		t.Fatalf("Trigger(all): %v", err)
	}
	runner.waitCalls(t, 2)

	if err := stop(); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	runs, runAlls := runner.snapshot()
	if len(runs) != 1 || runs[0] != "offline" {
		t.Errorf("runs = %v, want [offline]", runs)
	}
	if len(runAlls) != 1 || len(runAlls[0]) != 1 || runAlls[0][0] != "online" {
		t.Errorf("runAlls = %v, want [[online]]", runAlls)
	}
}

func TestBackfillService_TriggerRejections(t *testing.T) {
	runner := newFakeRunner()
	runner.running["busy"] = true
	svc := NewBackfillService(runner, config.BackfillConfig{})

	if err := svc.Trigger("Not A Slug"); !errors.Is(err, catalog.ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
	if err := svc.Trigger("busy"); !errors.Is(err, backfill.ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}

	// Nothing drains the queue without Serve.
	for i := 0; i < triggerQueueSize; i++ {
		if err := svc.Trigger("action"); err != nil {
			t.Fatalf("Trigger %d: %v", i, err)
		}
	}
	if err := svc.Trigger("action"); !errors.Is(err, ErrTriggerQueueFull) {
		t.Errorf("expected ErrTriggerQueueFull, got %v", err)
	}
}

func TestBackfillService_Schedule(t *testing.T) {
	runner := newFakeRunner()
	svc := NewBackfillService(runner, config.BackfillConfig{Enabled: true, Interval: 10 * time.Millisecond})
	stop := serveInBackground(svc)

	runner.waitCalls(t, 2)
	_ = stop()

	_, runAlls := runner.snapshot()
	if len(runAlls) < 2 {
		t.Errorf("expected scheduled runs, got %d", len(runAlls))
	}
}

func TestBackfillService_DisabledScheduleOnlyRunsTriggers(t *testing.T) {
	runner := newFakeRunner()
	svc := NewBackfillService(runner, config.BackfillConfig{Enabled: false, Interval: time.Millisecond})
	stop := serveInBackground(svc)

	time.Sleep(30 * time.Millisecond)
	_ = stop()

	runs, runAlls := runner.snapshot()
	if len(runs)+len(runAlls) != 0 {
		t.Errorf("expected no runs without triggers, got %v %v", runs, runAlls)
	}
}

func TestBackfillService_RunFailureKeepsServing(t *testing.T) {
	runner := newFakeRunner()
	runner.err = errors.New("catalog unavailable")
	svc := NewBackfillService(runner, config.BackfillConfig{})
	stop := serveInBackground(svc)

	_ = svc.Trigger("action")
	_ = svc.Trigger("action")
	runner.waitCalls(t, 2)

	if err := stop(); !errors.Is(err, context.Canceled) {
		t.Errorf("service should survive failed runs, got %v", err)
	}
}
