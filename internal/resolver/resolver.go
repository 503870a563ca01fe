// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package resolver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/rigcheck/internal/cache"
	"github.com/tomtom215/rigcheck/internal/catalog"
	"github.com/tomtom215/rigcheck/internal/config"
	"github.com/tomtom215/rigcheck/internal/logging"
	"github.com/tomtom215/rigcheck/internal/metrics"
	"github.com/tomtom215/rigcheck/internal/requirements"
	"github.com/tomtom215/rigcheck/internal/sources"
)

// ErrInvalidGame is returned when the game lacks an id or a name.
var ErrInvalidGame = errors.New("invalid game")

// DefaultAdapterTimeout bounds one adapter call.
const DefaultAdapterTimeout = 12 * time.Second

// DefaultOnlineCategories prefer the third-party catalog over Steam.
var DefaultOnlineCategories = []string{"online", "multiplayer", "competitive", "mmo", "battle-royale"}

// Resolution outcomes, used as the metrics "outcome" label.
const (
	OutcomeHit    = "hit"
	OutcomeFound  = "found"
	OutcomeEmpty  = "empty"
	OutcomeFailed = "failed"
)

// Resolver walks the source adapters for one game at a time.
type Resolver struct {
	cache            *cache.RequirementCache
	adapters         map[string]sources.Adapter
	online           map[string]struct{}
	adapterTimeout   time.Duration
	fillDeclaredSize bool
	mergeFallback    bool
	group            singleflight.Group
}

// New builds a Resolver. Adapters are matched to their slot by Name(); names
// other than steam, other and fallback are ignored.
func New(cfg config.ResolverConfig, c *cache.RequirementCache, adapters ...sources.Adapter) *Resolver {
	timeout := cfg.AdapterTimeout
	if timeout <= 0 {
		timeout = DefaultAdapterTimeout
	}
	categories := cfg.OnlineCategories
	if len(categories) == 0 {
		categories = DefaultOnlineCategories
	}

	r := &Resolver{
		cache:            c,
		adapters:         make(map[string]sources.Adapter, len(adapters)),
		online:           make(map[string]struct{}, len(categories)),
		adapterTimeout:   timeout,
		fillDeclaredSize: cfg.FillDeclaredSize,
		mergeFallback:    cfg.MergeFallback,
	}
	for _, a := range adapters {
		if a == nil {
			continue
		}
		switch a.Name() {
		case sources.NameSteam, sources.NameOther, sources.NameFallback:
			r.adapters[a.Name()] = a
		default:
			logging.Warn().Str("adapter", a.Name()).Msg("Ignoring adapter with unknown name")
		}
	}
	for _, category := range categories {
		r.online[strings.ToLower(strings.TrimSpace(category))] = struct{}{}
	}
	return r
}

// Cache returns the requirement cache the resolver writes to.
func (r *Resolver) Cache() *cache.RequirementCache {
	return r.cache
}

// Order returns the adapter names tried for category, fallback last.
// Adapters that are not configured are left out.
func (r *Resolver) Order(category string) []string {
	order := []string{sources.NameSteam, sources.NameOther}
	if _, ok := r.online[strings.ToLower(strings.TrimSpace(category))]; ok {
		order = []string{sources.NameOther, sources.NameSteam}
	}
	order = append(order, sources.NameFallback)

	out := order[:0]
	for _, name := range order {
		if _, ok := r.adapters[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

// Resolve returns the requirements entry for game. When force is false a
// fresh cache entry is returned as a "cache" hit without calling any adapter.
func (r *Resolver) Resolve(ctx context.Context, game catalog.Game, force bool) (cache.Entry, error) {
	if err := validateGame(game); err != nil {
		return cache.Entry{}, err
	}
	ctx = logging.ContextWithGameID(ctx, game.ID)

	if !force {
		entry, ok, err := r.cache.Get(ctx, game.ID)
		if err != nil {
			logging.CtxWarn(ctx).Err(err).Msg("Requirement cache read failed, resolving from sources")
		} else if ok {
			metrics.Resolutions.WithLabelValues(cache.SourceCache, OutcomeHit).Inc()
			return entry.AsCacheHit(), nil
		}
	}

	// Callers racing on the same id share one pass. The pass ignores caller
	// cancellation so one impatient caller cannot cache a bogus "none".
	key := game.ID + "|" + strconv.FormatBool(force)
	ch := r.group.DoChan(key, func() (interface{}, error) {
		return r.resolveFromSources(context.WithoutCancel(ctx), game), nil
	})

	select {
	case <-ctx.Done():
		return cache.Entry{}, fmt.Errorf("resolve %s: %w", game.ID, ctx.Err())
	case res := <-ch:
		entry, ok := res.Val.(cache.Entry)
		if !ok {
			return cache.Entry{}, fmt.Errorf("resolve %s: unexpected result type %T", game.ID, res.Val)
		}
		return entry.Clone(), nil
	}
}

func validateGame(game catalog.Game) error {
	switch {
	case strings.TrimSpace(game.ID) == "":
		return fmt.Errorf("%w: missing id", ErrInvalidGame)
	case strings.TrimSpace(game.Name) == "":
		return fmt.Errorf("%w: missing name for %s", ErrInvalidGame, game.ID)
	}
	return nil
}

// resolveFromSources runs the adapter chain and caches the outcome.
func (r *Resolver) resolveFromSources(ctx context.Context, game catalog.Game) cache.Entry {
	start := time.Now()
	logger := logging.Ctx(ctx).With().Str("category", game.Category).Logger()

	q := sources.Query{
		ID:         game.ID,
		Name:       strings.TrimSpace(game.Name),
		PlatformID: game.PlatformID,
		Category:   game.Category,
	}

	var winner *sources.Result
	attempted, failed := 0, 0
	for _, name := range r.Order(game.Category) {
		res := r.lookup(ctx, &logger, r.adapters[name], q)
		attempted++
		if res.Status == sources.StatusFailed {
			failed++
		}
		if res.Status == sources.StatusFound {
			winner = &res
			break
		}
	}

	entry := cache.Entry{Source: cache.SourceNone, FetchedAt: r.cache.Now()}
	outcome := OutcomeEmpty
	switch {
	case winner != nil:
		reqs := r.finish(ctx, &logger, winner, q, game)
		entry.Source = winner.Adapter
		entry.Requirements = &reqs
		outcome = OutcomeFound
	case attempted > 0 && failed == attempted:
		outcome = OutcomeFailed
		logger.Warn().Int("adapters", attempted).Msg("All requirement sources failed")
	default:
		logger.Debug().Int("adapters", attempted).Msg("No requirement source had data")
	}

	if err := r.cache.Put(ctx, game.ID, entry); err != nil {
		logger.Warn().Err(err).Msg("Requirement cache write failed")
	}

	metrics.Resolutions.WithLabelValues(entry.Source, outcome).Inc()
	metrics.ResolutionDuration.Observe(time.Since(start).Seconds())
	logger.Info().
		Str("source", entry.Source).
		Str("outcome", outcome).
		Dur("duration", time.Since(start)).
		Msg("Resolved game requirements")
	return entry
}

// lookup runs one adapter under the per-adapter timeout.
func (r *Resolver) lookup(ctx context.Context, logger *zerolog.Logger, a sources.Adapter, q sources.Query) sources.Result {
	ctx, cancel := context.WithTimeout(ctx, r.adapterTimeout)
	defer cancel()

	start := time.Now()
	res := sources.Run(ctx, a, q)
	metrics.AdapterRequests.WithLabelValues(res.Adapter, res.Status.String()).Inc()
	metrics.AdapterDuration.WithLabelValues(res.Adapter).Observe(time.Since(start).Seconds())

	switch res.Status {
	case sources.StatusFailed:
		logger.Warn().Err(res.Err).Str("adapter", res.Adapter).Msg("Requirement source failed, trying next")
	case sources.StatusNoData:
		logger.Debug().Str("adapter", res.Adapter).Msg("Requirement source had no data")
	}
	return res
}

// finish applies the post-win enrichment: fallback gap filling and the
// catalog's declared install size.
func (r *Resolver) finish(ctx context.Context, logger *zerolog.Logger, winner *sources.Result, q sources.Query, game catalog.Game) requirements.GameRequirements {
	reqs := winner.Requirements.Clone()

	if fb, ok := r.adapters[sources.NameFallback]; ok && r.mergeFallback && winner.Adapter != sources.NameFallback {
		if res := r.lookup(ctx, logger, fb, q); res.Status == sources.StatusFound {
			reqs = requirements.MergeMissing(reqs, *res.Requirements)
		}
	}
	if r.fillDeclaredSize {
		reqs = FillDeclaredSize(reqs, game.DeclaredSizeGB)
	}
	return reqs
}

// FillDeclaredSize sets storage on both tiers from the catalog's declared
// size when neither tier states storage.
func FillDeclaredSize(reqs requirements.GameRequirements, declaredGB float64) requirements.GameRequirements {
	if declaredGB <= 0 {
		return reqs
	}
	if hasStorage(reqs.Minimum) || hasStorage(reqs.Recommended) {
		return reqs
	}
	out := reqs.Clone()
	text := strconv.FormatFloat(declaredGB, 'f', -1, 64) + " GB"
	out.Minimum.SetStorage(text)
	out.Recommended.SetStorage(text)
	return out
}

func hasStorage(r requirements.Record) bool {
	return r.Storage != nil || r.StorageGB != nil
}
