// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package requirements

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func deref(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

// TestParseText_BoilerplateAndShortInputs verifies placeholder-only and tiny
// blocks parse to an all-null record.
func TestParseText_BoilerplateAndShortInputs(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"abc",
		"<br><br>",
		"N/A",
		"TBA",
		"No requirements specified",
		"No system requirements available.",
		"Requirements not specified",
		"<strong>Minimum:</strong><br>Not specified",
		"Minimum: Not specified Recommended: TBA",
		"Requisitos no especificados",
		"Requisitos não especificados",
		"Configuration requise non spécifiée",
		"Keine Angaben",
		"Requisiti non specificati",
		"Системные требования не указаны",
		"Не указано",
		"未指定",
		"暂无",
	}
	for _, in := range inputs {
		rec := ParseText(in)
		if rec.HasData() {
			t.Errorf("ParseText(%q) = %+v, want all-null record", in, rec)
		}
	}
}

// TestParseText_NoFieldBleed verifies a field value stops at the next label.
func TestParseText_NoFieldBleed(t *testing.T) {
	rec := ParseText("Processor: Intel Core i5-2500K Graphics: NVIDIA GTX 660 Memory: 8 GB")

	cpu := deref(rec.CPU)
	if strings.Contains(cpu, "NVIDIA") || strings.Contains(cpu, "GTX") {
		t.Errorf("cpu bled into gpu text: %q", cpu)
	}
	if cpu != "Intel Core i5-2500K" {
		t.Errorf("cpu = %q, want %q", cpu, "Intel Core i5-2500K")
	}
	if gpu := deref(rec.GPU); gpu != "NVIDIA GTX 660" {
		t.Errorf("gpu = %q, want %q", gpu, "NVIDIA GTX 660")
	}
	if ram := deref(rec.RAM); ram != "8 GB" {
		t.Errorf("ram = %q, want %q", ram, "8 GB")
	}
	if rec.RAMGB == nil || *rec.RAMGB != 8 {
		t.Errorf("ramGB = %v, want 8", rec.RAMGB)
	}
	if rec.OS != nil || rec.Storage != nil {
		t.Errorf("unexpected os/storage: %q / %q", deref(rec.OS), deref(rec.Storage))
	}

	// "Video Memory:" ends the GPU value and is not the system RAM label.
	for _, raw := range []string{
		"Graphics: GeForce GTX 970 (4GB) Video Memory: 4 GB Memory: 16 GB",
		"Graphics: GeForce GTX 970 VRAM: 4 GB RAM: 16 GB",
	} {
		rec := ParseText(raw)
		if gpu := deref(rec.GPU); strings.Contains(strings.ToLower(gpu), "video") || !strings.HasPrefix(gpu, "GeForce GTX 970") {
			t.Errorf("%q: gpu = %q", raw, gpu)
		}
		if ram := deref(rec.RAM); ram != "16 GB" {
			t.Errorf("%q: ram = %q, want %q", raw, ram, "16 GB")
		}
		if rec.RAMGB == nil || *rec.RAMGB != 16 {
			t.Errorf("%q: ramGB = %v, want 16", raw, rec.RAMGB)
		}
	}
}

func TestParseText_SteamHTML(t *testing.T) {
	raw := `<strong>Minimum:</strong><br><ul class="bb_ul">` +
		`<li>Requires a 64-bit processor and operating system<br></li>` +
		`<li><strong>OS *:</strong> Windows&nbsp;10 64-bit<br></li>` +
		`<li><strong>Processor:</strong> Intel Core i5-4460 / AMD FX-6300<br></li>` +
		`<li><strong>Memory:</strong> 8192 MB RAM<br></li>` +
		`<li><strong>Graphics:</strong> NVIDIA GeForce GTX 960 2GB / AMD Radeon R7 370 2GB<br></li>` +
		`<li><strong>DirectX:</strong> Version 11<br></li>` +
		`<li><strong>Storage:</strong> 57.2 GB available space</li></ul>`

	rec := ParseText(raw)

	tests := []struct {
		field string
		got   string
		want  string
	}{
		{"os", deref(rec.OS), "Windows 10 64-bit"},
		{"cpu", deref(rec.CPU), "Intel Core i5-4460 / AMD FX-6300"},
		{"gpu", deref(rec.GPU), "NVIDIA GeForce GTX 960 2GB / AMD Radeon R7 370 2GB"},
		{"ram", deref(rec.RAM), "8 GB"},
		{"storage", deref(rec.Storage), "57.2 GB"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.field, tt.got, tt.want)
		}
	}
	if rec.StorageGB == nil || *rec.StorageGB != 57.2 {
		t.Errorf("storageGB = %v, want 57.2", rec.StorageGB)
	}
}

func TestParseText_KeywordScanWithoutLabels(t *testing.T) {
	rec := ParseText("Intel Core i5 8 GB RAM\nGeForce GTX 970\nWindows 10\n30 GB available space")

	if cpu := deref(rec.CPU); cpu != "Intel Core i5" {
		t.Errorf("cpu = %q, want %q", cpu, "Intel Core i5")
	}
	if gpu := deref(rec.GPU); gpu != "GeForce GTX 970" {
		t.Errorf("gpu = %q, want %q", gpu, "GeForce GTX 970")
	}
	if rec.RAMGB == nil || *rec.RAMGB != 8 {
		t.Errorf("ramGB = %v, want 8", rec.RAMGB)
	}
	if rec.StorageGB == nil || *rec.StorageGB != 30 {
		t.Errorf("storageGB = %v, want 30", rec.StorageGB)
	}
	if os := deref(rec.OS); os != "Windows 10" {
		t.Errorf("os = %q, want %q", os, "Windows 10")
	}
}

func TestParseText_ScanIgnoresOtherFieldsValues(t *testing.T) {
	// Radeon appears only inside the processor value; it must not become the GPU.
	rec := ParseText("Processor: AMD Ryzen 5 2400G with Radeon Vega Graphics\nMemory: 8 GB")
	if rec.GPU != nil {
		t.Errorf("gpu = %q, want nil", *rec.GPU)
	}
	if cpu := deref(rec.CPU); !strings.HasPrefix(cpu, "AMD Ryzen 5 2400G") {
		t.Errorf("cpu = %q", cpu)
	}
}

func TestParseText_RejectsMarkupArtifactsAndShortHardware(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"url in cpu", "Processor: see https://example.com/specs for details"},
		{"href leftover", "Processor: a href=specs Intel Core i7"},
		{"short cpu", "Processor: i5\nMemory: 4 GB"},
		{"placeholder cpu", "Processor: TBD\nMemory: 4 GB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ParseText(tt.raw)
			if rec.CPU != nil {
				t.Errorf("cpu = %q, want nil", *rec.CPU)
			}
		})
	}
}

func TestParseText_Truncation(t *testing.T) {
	longCPU := "Intel Core i7 " + strings.Repeat("x", 400)
	longOS := "Windows 10 " + strings.Repeat("y", 300)
	rec := ParseText("Processor: " + longCPU + "\nOS: " + longOS)

	if rec.CPU == nil || utf8.RuneCountInString(*rec.CPU) > MaxHardwareLength {
		t.Errorf("cpu not truncated to %d runes: %v", MaxHardwareLength, rec.CPU)
	}
	if rec.OS == nil || utf8.RuneCountInString(*rec.OS) > MaxOSLength {
		t.Errorf("os not truncated to %d runes: %v", MaxOSLength, rec.OS)
	}
}

func TestParseText_RAMUnitEquivalence(t *testing.T) {
	for _, in := range []string{"Memory: 8 GB", "Memory: 8192 MB", "Memory: 8", "Memory: 8GB RAM"} {
		rec := ParseText(in)
		if rec.RAMGB == nil || *rec.RAMGB != 8 {
			t.Errorf("ParseText(%q).RAMGB = %v, want 8", in, rec.RAMGB)
		}
		if rec.RAM == nil || !strings.HasSuffix(*rec.RAM, "GB") {
			t.Errorf("ParseText(%q).RAM = %q, want GB unit", in, deref(rec.RAM))
		}
	}
}

func TestSplitTiers(t *testing.T) {
	minimum, recommended := SplitTiers("Minimum: OS: Windows 7 Recommended: OS: Windows 10")
	if got := deref(ParseText(minimum).OS); got != "Windows 7" {
		t.Errorf("minimum os = %q", got)
	}
	if got := deref(ParseText(recommended).OS); got != "Windows 10" {
		t.Errorf("recommended os = %q", got)
	}

	only, rest := SplitTiers("OS: Windows 7")
	if only != "OS: Windows 7" || rest != "" {
		t.Errorf("SplitTiers without heading = %q, %q", only, rest)
	}
}

func TestStripMarkup(t *testing.T) {
	got := StripMarkup("<p>Line&nbsp;one<br/>Line   <b>two</b> &amp; more</p>")
	want := "Line one\nLine two & more"
	if got != want {
		t.Errorf("StripMarkup = %q, want %q", got, want)
	}
}
