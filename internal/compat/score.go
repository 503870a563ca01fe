// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package compat

import (
	"errors"
	"math"
	"strings"

	"github.com/tomtom215/rigcheck/internal/config"
	"github.com/tomtom215/rigcheck/internal/requirements"
)

// Tier is the discrete verdict derived from a score.
type Tier string

const (
	TierStrong    Tier = "Strong"
	TierMedium    Tier = "Medium"
	TierWeak      Tier = "Weak"
	TierCannotRun Tier = "CannotRun"
)

// Tier thresholds, inclusive lower bounds.
const (
	StrongThreshold = 0.85
	MediumThreshold = 0.60
	WeakThreshold   = 0.35
)

// Basis names which requirement tier a score was computed against.
const (
	BasisRecommended = "recommended"
	BasisMinimum     = "minimum"
	BasisNone        = "none"
)

// scorePrecision is the number of decimals kept in scores.
const scorePrecision = 4

// ErrInvalidWeights is returned by Weights.Validate.
var ErrInvalidWeights = errors.New("weights must be non-negative and sum to a positive value")

// Weights are the per-axis multipliers. They are expected to sum to 1.
type Weights struct {
	CPU     float64 `json:"cpu" koanf:"cpu" validate:"gte=0,lte=1"`
	GPU     float64 `json:"gpu" koanf:"gpu" validate:"gte=0,lte=1"`
	RAM     float64 `json:"ram" koanf:"ram" validate:"gte=0,lte=1"`
	Storage float64 `json:"storage" koanf:"storage" validate:"gte=0,lte=1"`
	OS      float64 `json:"os" koanf:"os" validate:"gte=0,lte=1"`
}

// DefaultWeights returns cpu 0.30, gpu 0.30, ram 0.15, storage 0.15, os 0.10.
func DefaultWeights() Weights {
	return Weights{CPU: 0.30, GPU: 0.30, RAM: 0.15, Storage: 0.15, OS: 0.10}
}

// Validate rejects negative weights and an all-zero set.
func (w Weights) Validate() error {
	for _, v := range []float64{w.CPU, w.GPU, w.RAM, w.Storage, w.OS} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidWeights
		}
	}
	if w.CPU+w.GPU+w.RAM+w.Storage+w.OS <= 0 {
		return ErrInvalidWeights
	}
	return nil
}

// WeightsFromConfig converts configured weights, falling back to
// DefaultWeights when the configured set is unusable.
func WeightsFromConfig(c config.WeightsConfig) Weights {
	w := Weights{CPU: c.CPU, GPU: c.GPU, RAM: c.RAM, Storage: c.Storage, OS: c.OS}
	if w.Validate() != nil {
		return DefaultWeights()
	}
	return w
}

// Profile is the user's hardware, supplied per request and never stored.
type Profile struct {
	CPU       string  `json:"cpu" validate:"max=200"`
	GPU       string  `json:"gpu" validate:"max=200"`
	RAMGB     float64 `json:"ramGB" validate:"gte=0"`
	StorageGB float64 `json:"storageGB" validate:"gte=0"`
	OS        string  `json:"os" validate:"max=100"`
}

// Breakdown exposes every intermediate value of a score.
type Breakdown struct {
	CPUScore     float64 `json:"cpuScore"`
	GPUScore     float64 `json:"gpuScore"`
	RAMScore     float64 `json:"ramScore"`
	StorageScore float64 `json:"storageScore"`
	OSScore      float64 `json:"osScore"`

	CPUWeighted     float64 `json:"cpuWeighted"`
	GPUWeighted     float64 `json:"gpuWeighted"`
	RAMWeighted     float64 `json:"ramWeighted"`
	StorageWeighted float64 `json:"storageWeighted"`
	OSWeighted      float64 `json:"osWeighted"`
}

// Result is the outcome of Score.
type Result struct {
	Score     float64   `json:"score"`
	Tier      Tier      `json:"tier"`
	Basis     string    `json:"basis"`
	Weights   Weights   `json:"weights"`
	Breakdown Breakdown `json:"breakdown"`
}

// TierFor maps a score to its tier.
func TierFor(score float64) Tier {
	switch {
	case score >= StrongThreshold:
		return TierStrong
	case score >= MediumThreshold:
		return TierMedium
	case score >= WeakThreshold:
		return TierWeak
	default:
		return TierCannotRun
	}
}

// Score rates user against reqs. A nil reqs, or one without data, is scored
// as if every requirement were unstated. A nil weights uses DefaultWeights.
func Score(user Profile, reqs *requirements.GameRequirements, weights *Weights) Result {
	w := DefaultWeights()
	if weights != nil {
		w = *weights
	}

	rec, basis := comparisonTier(reqs)

	var b Breakdown
	b.CPUScore = CrudeMatch(user.CPU, deref(rec.CPU))
	b.GPUScore = CrudeMatch(user.GPU, deref(rec.GPU))
	b.RAMScore = capacityScore(user.RAMGB, requiredGB(rec.RAMGB, rec.RAM))
	b.StorageScore = capacityScore(user.StorageGB, requiredGB(rec.StorageGB, rec.Storage))
	b.OSScore = osScore(user.OS, deref(rec.OS))

	b.CPUWeighted = round(w.CPU * b.CPUScore)
	b.GPUWeighted = round(w.GPU * b.GPUScore)
	b.RAMWeighted = round(w.RAM * b.RAMScore)
	b.StorageWeighted = round(w.Storage * b.StorageScore)
	b.OSWeighted = round(w.OS * b.OSScore)

	sum := w.CPU*b.CPUScore + w.GPU*b.GPUScore + w.RAM*b.RAMScore +
		w.Storage*b.StorageScore + w.OS*b.OSScore
	score := round(clamp(sum))

	return Result{
		Score:     score,
		Tier:      TierFor(score),
		Basis:     basis,
		Weights:   w,
		Breakdown: b,
	}
}

// comparisonTier prefers recommended when it states any hardware field.
func comparisonTier(reqs *requirements.GameRequirements) (requirements.Record, string) {
	switch {
	case reqs == nil || !reqs.HasData():
		return requirements.Record{}, BasisNone
	case reqs.Recommended.HasHardware():
		return reqs.Recommended, BasisRecommended
	default:
		return reqs.Minimum, BasisMinimum
	}
}

// requiredGB prefers the numeric field and falls back to parsing the text.
func requiredGB(gb *float64, text *string) float64 {
	if gb != nil {
		return *gb
	}
	if text != nil {
		if _, v, ok := requirements.NormalizeSize(*text); ok {
			return v
		}
	}
	return 0
}

// capacityScore is min(user/required, 1). An unstated requirement scores 1
// when the user reports any capacity and 0 otherwise.
func capacityScore(userGB, requiredGB float64) float64 {
	if requiredGB <= 0 {
		if userGB > 0 {
			return 1
		}
		return 0
	}
	if userGB <= 0 {
		return 0
	}
	return math.Min(userGB/requiredGB, 1)
}

// osScore passes when nothing is required or either name contains the other.
// A stated requirement against an empty user OS scores 0.
func osScore(user, required string) float64 {
	r := strings.ToLower(strings.TrimSpace(required))
	if r == "" {
		return 1
	}
	u := strings.ToLower(strings.TrimSpace(user))
	if u == "" {
		return 0
	}
	if strings.Contains(r, u) || strings.Contains(u, r) {
		return 1
	}
	return 0
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round(v float64) float64 {
	p := math.Pow(10, scorePrecision)
	return math.Round(v*p) / p
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
