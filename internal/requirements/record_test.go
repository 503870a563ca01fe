// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package requirements

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestNewGameRequirements_BackfillsMissingTier(t *testing.T) {
	var minimum Record
	minimum.CPU = StringPtr("Intel Core i5-2500K")
	minimum.SetRAM("8 GB")

	reqs := NewGameRequirements(minimum, Record{})
	if !reqs.Recommended.Equal(reqs.Minimum) {
		t.Fatalf("recommended %+v does not equal minimum %+v", reqs.Recommended, reqs.Minimum)
	}

	// The copy must be independent of the source tier.
	*reqs.Recommended.CPU = "changed"
	if *reqs.Minimum.CPU != "Intel Core i5-2500K" {
		t.Error("recommended tier aliases minimum tier")
	}

	var recommended Record
	recommended.OS = StringPtr("Windows 10")
	reqs = NewGameRequirements(Record{}, recommended)
	if !reqs.Minimum.Equal(recommended) {
		t.Errorf("minimum %+v not back-filled from recommended", reqs.Minimum)
	}

	empty := NewGameRequirements(Record{}, Record{})
	if empty.HasData() {
		t.Error("empty requirements report data")
	}
}

func TestParseBlocks_BackfillFromParsedMinimum(t *testing.T) {
	reqs := ParseBlocks("Processor: Intel Core i5-2500K\nMemory: 8 GB", "")
	if !reqs.Recommended.Equal(reqs.Minimum) {
		t.Errorf("recommended %+v, want copy of minimum %+v", reqs.Recommended, reqs.Minimum)
	}
}

func TestMergeMissingFields_NeverOverwrites(t *testing.T) {
	primary := Record{CPU: StringPtr("AMD Ryzen 5 3600")}
	primary.SetStorage("50 GB")

	secondary := Record{
		CPU: StringPtr("Intel Core i3"),
		GPU: StringPtr("GTX 1050 Ti"),
		OS:  StringPtr("Windows 10"),
	}
	secondary.SetRAM("16 GB")
	secondary.SetStorage("100 GB")

	merged := MergeMissingFields(primary, secondary)

	if *merged.CPU != "AMD Ryzen 5 3600" {
		t.Errorf("cpu overwritten: %q", *merged.CPU)
	}
	if *merged.StorageGB != 50 {
		t.Errorf("storage overwritten: %v", *merged.StorageGB)
	}
	if merged.GPU == nil || *merged.GPU != "GTX 1050 Ti" {
		t.Errorf("gpu not filled: %v", merged.GPU)
	}
	if merged.RAMGB == nil || *merged.RAMGB != 16 {
		t.Errorf("ram not filled: %v", merged.RAMGB)
	}
	if primary.GPU != nil {
		t.Error("primary was modified")
	}
}

func TestRecord_JSONNulls(t *testing.T) {
	rec := Record{CPU: StringPtr("Intel Core i5")}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got := string(data)
	for _, key := range []string{`"gpu":null`, `"ram":null`, `"ramGB":null`, `"storage":null`, `"storageGB":null`, `"os":null`} {
		if !strings.Contains(got, key) {
			t.Errorf("marshaled record %s missing %s", got, key)
		}
	}
}

func TestRecord_HasHardware(t *testing.T) {
	if (Record{OS: StringPtr("Windows 10")}).HasHardware() {
		t.Error("OS-only record reported hardware")
	}
	if !(Record{RAMGB: FloatPtr(8)}).HasHardware() {
		t.Error("RAM record did not report hardware")
	}
}
