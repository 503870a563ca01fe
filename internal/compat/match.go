// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package compat

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Scores returned by CrudeMatch.
const (
	MatchExact = 1.0
	MatchToken = 0.7
	MatchBrand = 0.4
	MatchNone  = 0.0
)

// brandTokens are vendor or product-line words that indicate the same maker.
var brandTokens = []string{"intel", "amd", "nvidia", "geforce", "radeon", "gtx", "rtx", "rx"}

// CrudeMatch compares free-text CPU or GPU names and returns a score in
// [0,1]. Rules, first match wins:
//
//   - empty requirement or empty user text: 0
//   - either string contains the other (case-insensitive): 1.0
//   - same product line and the user's part is at least the required
//     generation and tier (e.g. i5-8400 vs i5-2500K, GTX 1060 vs GTX 660): 1.0
//   - a requirement token of two or more characters appears in the user
//     text (model numbers, "i5", "rtx", vendor names): 0.7
//   - both name a common vendor or product line: 0.4
//   - otherwise: 0
func CrudeMatch(user, required string) float64 {
	r := strings.ToLower(strings.TrimSpace(required))
	if r == "" {
		return MatchNone
	}
	u := strings.ToLower(strings.TrimSpace(user))
	if u == "" {
		return MatchNone
	}
	if strings.Contains(u, r) || strings.Contains(r, u) {
		return MatchExact
	}
	if meetsModel(u, r) {
		return MatchExact
	}
	for _, tok := range tokenize(r) {
		if len(tok) >= 2 && strings.Contains(u, tok) {
			return MatchToken
		}
	}
	if sharesBrand(u, r) {
		return MatchBrand
	}
	return MatchNone
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	})
}

func sharesBrand(u, r string) bool {
	ut, rt := tokenSet(u), tokenSet(r)
	for _, b := range brandTokens {
		if ut[b] && rt[b] {
			return true
		}
	}
	return false
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range tokenize(s) {
		set[t] = true
	}
	return set
}

// model is a parsed part number. Parts are comparable only within a line.
type model struct {
	line string
	gen  int
	tier int
}

var (
	intelCorePattern = regexp.MustCompile(`\bi([3579])[\s-]*(\d{4,5})`)
	ryzenPattern     = regexp.MustCompile(`\bryzen\s*([3579])\s*(\d{4})`)
	geforcePattern   = regexp.MustCompile(`\b(?:gtx|rtx)\s*(\d{3,4})`)
	geforceGTPattern = regexp.MustCompile(`\bgt\s*(\d{3,4})\b`)
	radeonRXPattern  = regexp.MustCompile(`\brx\s*(\d{3,4})`)
	hdPattern        = regexp.MustCompile(`\bhd(?:\s*graphics)?\s*(\d{3,4})\b`)
	intelArcPattern  = regexp.MustCompile(`\barc\s*([a-e])\s*(\d{3})\b`)
)

// parseModel recognizes Intel Core, Ryzen, GeForce GTX/RTX/GT, Radeon RX,
// Radeon or Intel HD and Intel Arc part numbers in lowercased text.
func parseModel(s string) (model, bool) {
	if m := intelCorePattern.FindStringSubmatch(s); m != nil {
		tier, _ := strconv.Atoi(m[1])
		// i5-2500 is generation 2, i5-12400 generation 12.
		return model{line: "intel-core", gen: leadingDigits(m[2], len(m[2])-3), tier: tier}, true
	}
	if m := ryzenPattern.FindStringSubmatch(s); m != nil {
		tier, _ := strconv.Atoi(m[1])
		return model{line: "ryzen", gen: leadingDigits(m[2], 1), tier: tier}, true
	}
	if m := geforcePattern.FindStringSubmatch(s); m != nil {
		// 660 is generation 6 tier 60; 1060 is generation 10 tier 60.
		n := m[1]
		return model{line: "geforce", gen: leadingDigits(n, len(n)-2), tier: leadingDigits(n[len(n)-2:], 2)}, true
	}
	if m := geforceGTPattern.FindStringSubmatch(s); m != nil {
		n := m[1]
		return model{line: "geforce-gt", gen: leadingDigits(n, len(n)-2), tier: leadingDigits(n[len(n)-2:], 2)}, true
	}
	if m := radeonRXPattern.FindStringSubmatch(s); m != nil {
		// RX 580 and RX 6600 naming schemes are not comparable to each other.
		n := m[1]
		return model{line: "radeon-rx" + strconv.Itoa(len(n)), gen: leadingDigits(n, 1), tier: leadingDigits(n[1:], 2)}, true
	}
	if m := intelArcPattern.FindStringSubmatch(s); m != nil {
		// A770 is generation 1 tier 77; B580 generation 2 tier 58.
		return model{line: "intel-arc", gen: int(m[1][0]-'a') + 1, tier: leadingDigits(m[2], 2)}, true
	}
	if m := hdPattern.FindStringSubmatch(s); m != nil {
		// Radeon HD 7850 is generation 7 tier 85. Intel HD Graphics parts
		// share the prefix but not the numbering.
		n := m[1]
		line := "radeon-hd"
		if strings.Contains(s, "intel") {
			line = "intel-hd"
		}
		return model{line: line + strconv.Itoa(len(n)), gen: leadingDigits(n, 1), tier: leadingDigits(n[1:], 2)}, true
	}
	return model{}, false
}

// meetsModel reports whether the user's part is in the same line as the
// required one and at least as new and as high a tier.
func meetsModel(user, required string) bool {
	um, ok := parseModel(user)
	if !ok {
		return false
	}
	rm, ok := parseModel(required)
	if !ok || um.line != rm.line {
		return false
	}
	return um.gen >= rm.gen && um.tier >= rm.tier
}

func leadingDigits(s string, n int) int {
	if n > len(s) {
		n = len(s)
	}
	v, _ := strconv.Atoi(s[:n])
	return v
}
