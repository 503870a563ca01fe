// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package requirements

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// sizeQuantityPattern finds the first quantity in a RAM/storage string. The
// unit alternatives are ordered longest first so "GB" wins over "G".
var sizeQuantityPattern = regexp.MustCompile(
	`(?i)(\d+(?:[.,]\d+)*)\s*(terabytes?|gigabytes?|megabytes?|tb|gb|mb|go|mo|t|g|m)?\b`,
)

// NormalizeSize extracts the leading quantity from text and returns its
// display form (always carrying a unit) and its value in gigabytes.
//
// A number without a unit is taken as gigabytes. Megabyte values of 1024 or
// more are displayed in GB; smaller ones keep the MB unit. Terabytes are
// displayed as TB and converted at 1024 GB per TB. ok is false when no
// positive quantity is present.
func NormalizeSize(text string) (display string, gb float64, ok bool) {
	m := sizeQuantityPattern.FindStringSubmatch(text)
	if m == nil {
		return "", 0, false
	}
	n, ok := parseQuantity(m[1])
	if !ok || n <= 0 {
		return "", 0, false
	}

	switch unitOf(m[2]) {
	case unitMB:
		gb = roundTo(n/1024, 2)
		if n >= 1024 {
			return formatNumber(gb) + " GB", gb, true
		}
		return formatNumber(n) + " MB", gb, true
	case unitTB:
		return formatNumber(n) + " TB", roundTo(n*1024, 2), true
	default:
		return formatNumber(n) + " GB", roundTo(n, 2), true
	}
}

type sizeUnit int

const (
	unitGB sizeUnit = iota
	unitMB
	unitTB
)

func unitOf(raw string) sizeUnit {
	switch u := strings.ToLower(raw); {
	case u == "":
		return unitGB
	case strings.HasPrefix(u, "m"):
		return unitMB
	case strings.HasPrefix(u, "t"):
		return unitTB
	default:
		return unitGB
	}
}

// parseQuantity reads "8", "57.2", "2,5" and "1,024" style numbers. A comma
// followed by exactly three digits is a thousands separator; any other comma
// is a decimal mark.
func parseQuantity(raw string) (float64, bool) {
	s := raw
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		thousands := true
		for _, p := range parts[1:] {
			if len(p) != 3 || strings.Contains(p, ".") {
				thousands = false
				break
			}
		}
		if thousands {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	// "1.2.3" style version strings are not quantities.
	if strings.Count(s, ".") > 1 {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(roundTo(v, 2), 'f', -1, 64)
}
