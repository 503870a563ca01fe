// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package requirements

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinTextLength is the shortest stripped block that is parsed at all.
	MinTextLength = 5

	// MaxHardwareLength bounds CPU and GPU text.
	MaxHardwareLength = 200

	// MaxOSLength bounds OS text.
	MaxOSLength = 100

	// minHardwareRunes rejects CPU/GPU candidates at or below this length.
	minHardwareRunes = 5
)

// rule is one named extraction heuristic. Rules for a field are tried in
// order and the first one that yields a candidate decides the field.
type rule struct {
	name    string
	extract func(d *document) (string, bool)
}

func labeledRule(name string, kind fieldKind) rule {
	return rule{name: name, extract: func(d *document) (string, bool) {
		return d.labeled(kind)
	}}
}

func scanRule(name string, kind fieldKind, re *regexp.Regexp) rule {
	return rule{name: name, extract: func(d *document) (string, bool) {
		return d.scan(kind, re)
	}}
}

var (
	cpuVendorPattern = regexp.MustCompile(
		`(?i)\b(?:intel|amd)\s+(?:core|ryzen|pentium|athlon|xeon|celeron|phenom|fx|a\d+)\b[^\n,;|]*` +
			`|\b(?:core\s*2\s*(?:duo|quad)|core\s*i[3579]|ryzen\s*[3579]|i[3579]-\d{3,5}[a-z]*)\b[^\n,;|]*`,
	)
	gpuVendorPattern = regexp.MustCompile(
		`(?i)\b(?:nvidia|geforce|radeon|intel\s+(?:hd|uhd|iris|arc)|gtx|rtx|rx\s*\d{3,4})\b[^\n,;|]*`,
	)
	ramQuantityPattern = regexp.MustCompile(
		`(?i)\b(\d+(?:[.,]\d+)?\s*(?:gb|mb|go|mo)?)\s*(?:of\s+)?(?:system\s+)?(?:ram|memory)\b`,
	)
	storageQuantityPattern = regexp.MustCompile(
		`(?i)\b(\d+(?:[.,]\d+)?\s*(?:tb|gb|mb|go|mo))\s*(?:of\s+)?(?:available\s+|free\s+)?` +
			`(?:hard\s+(?:drive|disk)\s+|hdd\s+|ssd\s+|disk\s+)?(?:space|storage)\b`,
	)
	osNamePattern = regexp.MustCompile(
		`(?i)\b(?:windows\s*(?:11|10|8\.1|8|7|vista|xp)|win\s*(?:11|10|8|7)|mac\s*os(?:\s*x)?|macos|steamos|ubuntu|linux)\b[^\n,;|]*`,
	)

	// cpuScanStop ends an unlabeled CPU match where GPU or memory text begins.
	cpuScanStop = regexp.MustCompile(`(?i)\s(?:nvidia|geforce|radeon|gtx|rtx|\d+\s*(?:gb|mb)\b)`)
	// gpuScanStop ends an unlabeled GPU match where a memory amount begins.
	gpuScanStop = regexp.MustCompile(`(?i)\s\d+\s*(?:gb|mb)\s*(?:of\s+)?(?:ram|memory|space|storage|available)`)

	markupArtifact = regexp.MustCompile(`(?i)https?:|href|www\.|<\s*/?\s*[a-z]`)
)

var (
	cpuRules = []rule{
		labeledRule("cpu-label", fieldCPU),
		scanRule("cpu-vendor-scan", fieldCPU, cpuVendorPattern),
	}
	gpuRules = []rule{
		labeledRule("gpu-label", fieldGPU),
		scanRule("gpu-vendor-scan", fieldGPU, gpuVendorPattern),
	}
	ramRules = []rule{
		labeledRule("ram-label", fieldRAM),
		scanRule("ram-quantity-scan", fieldRAM, ramQuantityPattern),
	}
	storageRules = []rule{
		labeledRule("storage-label", fieldStorage),
		scanRule("storage-quantity-scan", fieldStorage, storageQuantityPattern),
	}
	osRules = []rule{
		labeledRule("os-label", fieldOS),
		scanRule("os-name-scan", fieldOS, osNamePattern),
	}
)

// ParseText turns one raw requirement block (HTML or plain text) into a
// Record. It never fails: anything it cannot read confidently is left null.
func ParseText(raw string) Record {
	text := StripMarkup(raw)
	if utf8.RuneCountInString(text) < MinTextLength || isBoilerplateOnly(text) {
		return Record{}
	}

	d := newDocument(text)
	var rec Record

	if v, via, ok := firstCandidate(d, cpuRules); ok {
		if via == "cpu-vendor-scan" {
			v = cutAt(v, cpuScanStop)
		}
		rec.CPU = hardwareValue(v)
	}
	if v, via, ok := firstCandidate(d, gpuRules); ok {
		if via == "gpu-vendor-scan" {
			v = cutAt(v, gpuScanStop)
		}
		rec.GPU = hardwareValue(v)
	}
	if v, _, ok := firstCandidate(d, ramRules); ok && acceptable(v) {
		rec.SetRAM(v)
	}
	if v, _, ok := firstCandidate(d, storageRules); ok && acceptable(v) {
		rec.SetStorage(v)
	}
	if v, _, ok := firstCandidate(d, osRules); ok {
		rec.OS = osValue(v)
	}
	return rec
}

// ParseBlocks parses a minimum and a recommended block and back-fills the
// missing tier.
func ParseBlocks(minimum, recommended string) GameRequirements {
	return NewGameRequirements(ParseText(minimum), ParseText(recommended))
}

// SplitTiers splits a combined "Minimum: ... Recommended: ..." block. When
// no recommended heading is present the whole text is the minimum tier.
func SplitTiers(text string) (minimum, recommended string) {
	loc := recommendedHeading.FindStringIndex(text)
	if loc == nil {
		return text, ""
	}
	return text[:loc[0]], text[loc[1]:]
}

func firstCandidate(d *document, rules []rule) (value, ruleName string, ok bool) {
	for _, r := range rules {
		if v, ok := r.extract(d); ok {
			return v, r.name, true
		}
	}
	return "", "", false
}

func hardwareValue(v string) *string {
	v = cleanValue(v)
	if !acceptable(v) || utf8.RuneCountInString(v) <= minHardwareRunes {
		return nil
	}
	v = truncateRunes(v, MaxHardwareLength)
	return &v
}

func osValue(v string) *string {
	v = cleanValue(v)
	if !acceptable(v) {
		return nil
	}
	v = truncateRunes(v, MaxOSLength)
	return &v
}

// acceptable rejects empty values, markup leftovers and placeholders.
func acceptable(v string) bool {
	return strings.TrimSpace(v) != "" && !markupArtifact.MatchString(v) && !isBoilerplateValue(v)
}

func cleanValue(v string) string {
	v = strings.Join(strings.Fields(v), " ")
	return strings.Trim(v, " -–—•*:;,.|")
}

func cutAt(v string, stop *regexp.Regexp) string {
	if loc := stop.FindStringIndex(v); loc != nil {
		return v[:loc[0]]
	}
	return v
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:limit]))
}
