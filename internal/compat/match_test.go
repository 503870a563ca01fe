// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package compat

import "testing"

func TestCrudeMatch(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		required string
		want     float64
	}{
		{"empty requirement", "Intel Core i7", "", 0},
		{"empty user", "", "Intel Core i5", 0},
		{"containment", "Intel Core i5-8400 @ 2.8GHz", "intel core i5-8400", 1},
		{"reverse containment", "GTX 1060", "NVIDIA GeForce GTX 1060 6GB", 1},
		{"newer intel generation", "Intel Core i5-8400", "Intel Core i5-2500K", 1},
		{"higher intel tier", "Intel Core i7-12700", "Intel Core i5-9400", 1},
		{"newer geforce", "NVIDIA GTX 1060", "NVIDIA GTX 660", 1},
		{"rtx over gtx", "RTX 3060", "GTX 1060", 1},
		{"lower geforce tier", "GTX 1050", "GTX 980", 0.7},
		{"older intel generation", "Intel Core i5-2500K", "Intel Core i5-8400", 0.7},
		{"newer ryzen", "AMD Ryzen 5 5600X", "AMD Ryzen 5 1600", 1},
		{"token overlap", "AMD Ryzen 5 3600", "AMD Ryzen 7 1700", 0.7},
		{"model number token", "my rig has a 1060", "GTX 1060 6GB", 0.7},
		{"vendor name token", "AMD Ryzen 7 5800X", "AMD FX-8350", 0.7},
		{"ryzen against fx", "AMD Ryzen 5 3600", "AMD FX-8350", 0.7},
		{"radeon vendor token", "Radeon Vega 8", "AMD Radeon HD 7850", 0.7},
		{"geforce vendor token", "geforce mx150", "nvidia geforce", 0.7},
		{"gt below gtx", "NVIDIA GeForce GT 1030", "NVIDIA GeForce GTX 660", 0.7},
		{"newer geforce gt", "GeForce GT 1030", "GT 730", 1},
		{"newer radeon hd", "Radeon HD 7970", "AMD Radeon HD 7850", 1},
		{"older radeon hd", "Radeon HD 6850", "AMD Radeon HD 7850", 0.7},
		{"newer intel arc", "Intel Arc B580", "Intel Arc A380", 1},
		{"lower intel arc", "Intel Arc A380", "Intel Arc A750", 0.7},
		{"no overlap", "Apple M2", "Intel Core i5", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CrudeMatch(tt.user, tt.required); got != tt.want {
				t.Errorf("CrudeMatch(%q, %q) = %v, want %v", tt.user, tt.required, got, tt.want)
			}
		})
	}
}

func TestSharesBrand(t *testing.T) {
	if !sharesBrand("rx 6600 xt", "rx 470") {
		t.Error("expected rx to be a shared brand token")
	}
	if sharesBrand("apple m1", "intel core") {
		t.Error("unexpected shared brand")
	}
}

func TestParseModel(t *testing.T) {
	tests := []struct {
		in   string
		want model
	}{
		{"intel core i5-2500k", model{line: "intel-core", gen: 2, tier: 5}},
		{"intel core i9-13900k", model{line: "intel-core", gen: 13, tier: 9}},
		{"nvidia gtx 660", model{line: "geforce", gen: 6, tier: 60}},
		{"nvidia rtx 4070", model{line: "geforce", gen: 40, tier: 70}},
		{"amd ryzen 7 3700x", model{line: "ryzen", gen: 3, tier: 7}},
		{"radeon rx 580", model{line: "radeon-rx3", gen: 5, tier: 80}},
		{"nvidia geforce gt 1030", model{line: "geforce-gt", gen: 10, tier: 30}},
		{"geforce gt 730", model{line: "geforce-gt", gen: 7, tier: 30}},
		{"amd radeon hd 7850", model{line: "radeon-hd4", gen: 7, tier: 85}},
		{"intel hd graphics 4000", model{line: "intel-hd4", gen: 4, tier: 0}},
		{"intel arc a770", model{line: "intel-arc", gen: 1, tier: 77}},
		{"intel arc b580", model{line: "intel-arc", gen: 2, tier: 58}},
	}
	for _, tt := range tests {
		got, ok := parseModel(tt.in)
		if !ok || got != tt.want {
			t.Errorf("parseModel(%q) = %+v, %v, want %+v", tt.in, got, ok, tt.want)
		}
	}
	for _, s := range []string{"apple m2", "nvidia gtx", "1 tb hdd 500"} {
		if _, ok := parseModel(s); ok {
			t.Errorf("parseModel(%q) should not match", s)
		}
	}
}
