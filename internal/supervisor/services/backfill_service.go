// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/rigcheck/internal/backfill"
	"github.com/tomtom215/rigcheck/internal/catalog"
	"github.com/tomtom215/rigcheck/internal/config"
	"github.com/tomtom215/rigcheck/internal/logging"
)

// ErrTriggerQueueFull is returned when too many triggers are pending.
var ErrTriggerQueueFull = errors.New("backfill trigger queue full")

const triggerQueueSize = 16

// BackfillRunner is satisfied by *backfill.Job.
type BackfillRunner interface {
	Run(ctx context.Context, category string) (backfill.Progress, error)
	RunAll(ctx context.Context, categories []string) error
	Running(category string) bool
}

// BackfillService schedules backfill runs.
//
// With scheduling enabled the configured categories are filled on every
// interval tick. Trigger queues an on-demand run regardless of the schedule.
// Runs execute one at a time on the Serve goroutine.
type BackfillService struct {
	runner     BackfillRunner
	categories []string
	interval   time.Duration
	scheduled  bool
	triggers   chan string
	name       string
}

// NewBackfillService creates the scheduler from the backfill configuration.
func NewBackfillService(runner BackfillRunner, cfg config.BackfillConfig) *BackfillService {
	return &BackfillService{
		runner:     runner,
		categories: cfg.Categories,
		interval:   cfg.Interval,
		scheduled:  cfg.Enabled && cfg.Interval > 0,
		triggers:   make(chan string, triggerQueueSize),
		name:       "backfill-scheduler",
	}
}

// Trigger queues a run for category, or for every configured category when
// category is empty. It does not wait for the run.
func (s *BackfillService) Trigger(category string) error {
	if category != "" {
		if err := catalog.ValidateCategory(category); err != nil {
			return err
		}
		if s.runner.Running(category) {
			return fmt.Errorf("%w: %s", backfill.ErrAlreadyRunning, category)
		}
	}
	select {
	case s.triggers <- category:
		return nil
	default:
		return ErrTriggerQueueFull
	}
}

// Serve implements suture.Service.
func (s *BackfillService) Serve(ctx context.Context) error {
	var tick <-chan time.Time
	if s.scheduled {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		tick = ticker.C
		logging.Info().Dur("interval", s.interval).Strs("categories", s.categories).Msg("Backfill schedule active")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
			s.runAll(ctx)
		case category := <-s.triggers:
			if category == "" {
				s.runAll(ctx)
				continue
			}
			s.runOne(ctx, category)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (s *BackfillService) runAll(ctx context.Context) {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	if err := s.runner.RunAll(ctx, s.categories); err != nil && ctx.Err() == nil {
		logging.CtxErr(ctx, err).Msg("Backfill run failed")
	}
}

func (s *BackfillService) runOne(ctx context.Context, category string) {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	_, err := s.runner.Run(ctx, category)
	switch {
	case err == nil, ctx.Err() != nil:
	case errors.Is(err, backfill.ErrAlreadyRunning):
		logging.CtxInfo(ctx).Str("category", category).Msg("Backfill already running, trigger dropped")
	default:
		logging.CtxErr(ctx, err).Str("category", category).Msg("Backfill run failed")
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *BackfillService) String() string {
	return s.name
}
