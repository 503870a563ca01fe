// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package requirements

import (
	"regexp"
	"strings"
	"unicode"
)

// boilerplatePhrases are "no requirements stated" placeholders seen in store
// listings. Longer phrases come first so alternation prefers them.
var boilerplatePhrases = []string{
	// English
	`no (?:minimum |recommended )?(?:system )?requirements? (?:specified|available|listed|provided)`,
	`(?:system )?requirements? (?:not|are not|aren't) (?:yet )?(?:specified|available|listed|known)`,
	`to be (?:announced|determined|confirmed)`,
	`not (?:yet )?(?:specified|available|applicable|listed|known)`,
	`unspecified`, `unknown`, `n/a`, `tba`, `tbd`, `tbc`, `none`, `-+`,
	// Spanish / Portuguese
	`requisitos no especificados`, `requisitos não especificados`,
	`sin requisitos`, `sem requisitos`, `no especificado`, `não especificado`, `por determinar`,
	// French
	`configuration (?:requise )?non (?:spécifiée|communiquée)`, `non spécifiée?s?`, `non communiquée?s?`, `à déterminer`,
	// German
	`keine angaben?`, `nicht angegeben`, `keine systemanforderungen`, `wird noch bekannt gegeben`,
	// Italian
	`requisiti non specificati`, `non specificat[oaie]`,
	// Russian / Polish
	`системные требования не указаны`, `не указан[оаы]?`, `нет требований`, `нет данных`,
	`brak wymagań`, `nie określono`,
	// CJK
	`未指定`, `暂无`, `待定`, `未定`, `なし`, `미정`, `无`,
}

var (
	boilerplateAlternation = "(?:" + strings.Join(boilerplatePhrases, "|") + ")"

	// boilerplateAnywhere matches a placeholder phrase inside a longer block.
	boilerplateAnywhere = regexp.MustCompile(`(?i)` + boilerplateAlternation)

	// boilerplateValue matches a field value that is only a placeholder.
	boilerplateValue = regexp.MustCompile(`(?i)^\s*` + boilerplateAlternation + `\s*[.!]?\s*$`)

	// tierHeadings are headings that carry no requirement content by themselves.
	tierHeadings = regexp.MustCompile(
		`(?i)(?:minimum|recommended|system requirements|requirements|requisitos(?: mínimos| recomendados)?|` +
			`mínimos|recomendados|configuration (?:minimale|recommandée)|mindestanforderungen|` +
			`empfohlen|requisiti(?: minimi| consigliati)?|минимальные|рекомендуемые)\s*\*?\s*:?`,
	)
)

// isBoilerplateOnly reports whether a whole block says nothing beyond
// placeholder phrases and tier headings.
func isBoilerplateOnly(text string) bool {
	rest := boilerplateAnywhere.ReplaceAllString(text, " ")
	rest = tierHeadings.ReplaceAllString(rest, " ")
	return !strings.ContainsFunc(rest, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

// isBoilerplateValue reports whether a single extracted value is a placeholder.
func isBoilerplateValue(v string) bool {
	return boilerplateValue.MatchString(v)
}
