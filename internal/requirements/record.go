// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package requirements

import "strings"

// Record is one requirement tier (minimum or recommended) for a game.
//
// Every field is independently nullable and serializes as JSON null when
// absent, so consumers can tell "not stated" from "stated as empty".
type Record struct {
	CPU       *string  `json:"cpu"`
	GPU       *string  `json:"gpu"`
	RAM       *string  `json:"ram"`
	RAMGB     *float64 `json:"ramGB"`
	Storage   *string  `json:"storage"`
	StorageGB *float64 `json:"storageGB"`
	OS        *string  `json:"os"`
}

// HasData reports whether at least one field is non-null.
func (r Record) HasData() bool {
	return r.CPU != nil || r.GPU != nil ||
		r.RAM != nil || r.RAMGB != nil ||
		r.Storage != nil || r.StorageGB != nil ||
		r.OS != nil
}

// HasHardware reports whether any of cpu, gpu, ram or storage is stated.
// OS alone does not count; scoring uses this to pick the comparison tier.
func (r Record) HasHardware() bool {
	return r.CPU != nil || r.GPU != nil ||
		r.RAM != nil || r.RAMGB != nil ||
		r.Storage != nil || r.StorageGB != nil
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	return Record{
		CPU:       cloneString(r.CPU),
		GPU:       cloneString(r.GPU),
		RAM:       cloneString(r.RAM),
		RAMGB:     cloneFloat(r.RAMGB),
		Storage:   cloneString(r.Storage),
		StorageGB: cloneFloat(r.StorageGB),
		OS:        cloneString(r.OS),
	}
}

// Equal compares two records field by field.
func (r Record) Equal(other Record) bool {
	return equalString(r.CPU, other.CPU) &&
		equalString(r.GPU, other.GPU) &&
		equalString(r.RAM, other.RAM) &&
		equalFloat(r.RAMGB, other.RAMGB) &&
		equalString(r.Storage, other.Storage) &&
		equalFloat(r.StorageGB, other.StorageGB) &&
		equalString(r.OS, other.OS)
}

// SetRAM stores the normalized RAM display text and its gigabyte value.
// Text without a usable quantity clears both fields.
func (r *Record) SetRAM(text string) {
	display, gb, ok := NormalizeSize(text)
	if !ok {
		r.RAM, r.RAMGB = nil, nil
		return
	}
	r.RAM, r.RAMGB = &display, &gb
}

// SetStorage stores the normalized storage display text and its gigabyte value.
func (r *Record) SetStorage(text string) {
	display, gb, ok := NormalizeSize(text)
	if !ok {
		r.Storage, r.StorageGB = nil, nil
		return
	}
	r.Storage, r.StorageGB = &display, &gb
}

// GameRequirements holds both requirement tiers for one game.
//
// Construct values with NewGameRequirements so a tier that was not discovered
// is back-filled from the other one; both tiers can always be dereferenced.
type GameRequirements struct {
	Minimum     Record `json:"minimum"`
	Recommended Record `json:"recommended"`
}

// NewGameRequirements builds a GameRequirements, copying the discovered tier
// into the missing one (recommended defaults to minimum and vice versa).
func NewGameRequirements(minimum, recommended Record) GameRequirements {
	switch {
	case minimum.HasData() && !recommended.HasData():
		recommended = minimum.Clone()
	case !minimum.HasData() && recommended.HasData():
		minimum = recommended.Clone()
	}
	return GameRequirements{Minimum: minimum, Recommended: recommended}
}

// HasData is the "meaningful data" predicate: at least one non-null field in
// at least one tier.
func (g GameRequirements) HasData() bool {
	return g.Minimum.HasData() || g.Recommended.HasData()
}

// Clone returns a deep copy of both tiers.
func (g GameRequirements) Clone() GameRequirements {
	return GameRequirements{Minimum: g.Minimum.Clone(), Recommended: g.Recommended.Clone()}
}

// MergeMissingFields fills every null field of primary from secondary and
// returns the result. Present values in primary are never overwritten and
// neither input is modified.
func MergeMissingFields(primary, secondary Record) Record {
	out := primary.Clone()
	if out.CPU == nil {
		out.CPU = cloneString(secondary.CPU)
	}
	if out.GPU == nil {
		out.GPU = cloneString(secondary.GPU)
	}
	// RAM and storage move as display/GB pairs so the two never disagree.
	if out.RAM == nil && out.RAMGB == nil {
		out.RAM = cloneString(secondary.RAM)
		out.RAMGB = cloneFloat(secondary.RAMGB)
	}
	if out.Storage == nil && out.StorageGB == nil {
		out.Storage = cloneString(secondary.Storage)
		out.StorageGB = cloneFloat(secondary.StorageGB)
	}
	if out.OS == nil {
		out.OS = cloneString(secondary.OS)
	}
	return out
}

// MergeMissing applies MergeMissingFields tier by tier.
func MergeMissing(primary, secondary GameRequirements) GameRequirements {
	return GameRequirements{
		Minimum:     MergeMissingFields(primary.Minimum, secondary.Minimum),
		Recommended: MergeMissingFields(primary.Recommended, secondary.Recommended),
	}
}

// StringPtr returns a pointer to the trimmed string, or nil when it is blank.
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// FloatPtr returns a pointer to f.
func FloatPtr(f float64) *float64 {
	return &f
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
