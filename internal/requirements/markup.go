// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package requirements

import (
	"strings"

	"golang.org/x/net/html"
)

// lineBreakTags start a new logical line when stripped.
var lineBreakTags = map[string]bool{
	"br": true, "p": true, "div": true, "li": true, "ul": true, "ol": true,
	"tr": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// StripMarkup converts an HTML fragment to plain text. Line-break style tags
// become newlines, all other tags are dropped, entities are decoded and
// whitespace is collapsed within each line. Empty lines are removed.
func StripMarkup(raw string) string {
	if !strings.ContainsAny(raw, "<&") {
		return collapseWhitespace(raw)
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a tokenizer error; keep whatever text was read.
			return collapseWhitespace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if lineBreakTags[string(name)] {
				b.WriteByte('\n')
			}
		}
	}
}

func collapseWhitespace(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := lines[:0]
	for _, line := range lines {
		// strings.Fields splits on unicode spaces, including U+00A0.
		if fields := strings.Fields(line); len(fields) > 0 {
			out = append(out, strings.Join(fields, " "))
		}
	}
	return strings.Join(out, "\n")
}
