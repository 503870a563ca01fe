// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package requirements

import (
	"regexp"
	"sort"
	"strings"
)

type fieldKind int

const (
	fieldOther fieldKind = iota
	fieldOS
	fieldCPU
	fieldGPU
	fieldRAM
	fieldStorage
)

// labelKinds maps every recognized "Label:" (lowercased) to the field it
// introduces. fieldOther labels are delimiters only; they end the previous
// field's value.
var labelKinds = map[string]fieldKind{
	"operating system":       fieldOS,
	"os":                     fieldOS,
	"sistema operativo":      fieldOS,
	"so":                     fieldOS,
	"système d'exploitation": fieldOS,
	"système d’exploitation": fieldOS,
	"betriebssystem":         fieldOS,

	"processor":   fieldCPU,
	"cpu":         fieldCPU,
	"procesador":  fieldCPU,
	"processador": fieldCPU,
	"processeur":  fieldCPU,
	"prozessor":   fieldCPU,

	"graphics card":   fieldGPU,
	"graphics":        fieldGPU,
	"video card":      fieldGPU,
	"video":           fieldGPU,
	"gpu":             fieldGPU,
	"gráficos":        fieldGPU,
	"tarjeta gráfica": fieldGPU,
	"placa de vídeo":  fieldGPU,
	"carte graphique": fieldGPU,
	"graphismes":      fieldGPU,
	"grafikkarte":     fieldGPU,
	"grafik":          fieldGPU,

	"system memory":   fieldRAM,
	"memory":          fieldRAM,
	"ram":             fieldRAM,
	"memoria":         fieldRAM,
	"memória":         fieldRAM,
	"mémoire vive":    fieldRAM,
	"mémoire":         fieldRAM,
	"arbeitsspeicher": fieldRAM,

	"storage":          fieldStorage,
	"hard drive":       fieldStorage,
	"hard disk space":  fieldStorage,
	"hard disk":        fieldStorage,
	"free disk space":  fieldStorage,
	"disk space":       fieldStorage,
	"hdd":              fieldStorage,
	"almacenamiento":   fieldStorage,
	"armazenamento":    fieldStorage,
	"espacio en disco": fieldStorage,
	"espace disque":    fieldStorage,
	"stockage":         fieldStorage,
	"speicherplatz":    fieldStorage,

	"video memory":     fieldOther,
	"video ram":        fieldOther,
	"graphics memory":  fieldOther,
	"vram":             fieldOther,
	"directx":          fieldOther,
	"direct x":         fieldOther,
	"network":          fieldOther,
	"sound card":       fieldOther,
	"sound":            fieldOther,
	"additional notes": fieldOther,
	"additional":       fieldOther,
	"vr support":       fieldOther,
	"partner software": fieldOther,
	"minimum":          fieldOther,
	"recommended":      fieldOther,
	"mínimo":           fieldOther,
	"recomendado":      fieldOther,
}

// labelPattern matches any known label followed by an optional "*" footnote
// marker and a colon. Longer names are tried first.
var labelPattern = func() *regexp.Regexp {
	names := make([]string, 0, len(labelKinds))
	for name := range labelKinds {
		names = append(names, regexp.QuoteMeta(name))
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return regexp.MustCompile(`(?i)\b(` + strings.Join(names, "|") + `)\s*\*?\s*:`)
}()

// recommendedHeading splits a combined block into its two tiers.
var recommendedHeading = regexp.MustCompile(`(?i)\b(?:recommended|recomendado|recommandée|empfohlen)\s*\*?\s*:`)

type labelSpan struct {
	kind       fieldKind
	start      int // offset of the label itself
	valueStart int // offset just past the colon
}

// document is stripped requirement text plus the positions of its labels.
type document struct {
	text   string
	labels []labelSpan
}

func newDocument(text string) *document {
	idx := labelPattern.FindAllStringSubmatchIndex(text, -1)
	labels := make([]labelSpan, 0, len(idx))
	for _, m := range idx {
		labels = append(labels, labelSpan{
			kind:       labelKinds[strings.ToLower(text[m[2]:m[3]])],
			start:      m[0],
			valueStart: m[1],
		})
	}
	return &document{text: text, labels: labels}
}

// labeled returns the value of the first label of the given kind that has
// one. A value runs until the next label or the end of its line.
func (d *document) labeled(kind fieldKind) (string, bool) {
	for i, l := range d.labels {
		if l.kind != kind {
			continue
		}
		end := len(d.text)
		if i+1 < len(d.labels) {
			end = d.labels[i+1].start
		}
		v := strings.TrimLeft(d.text[l.valueStart:end], " \n")
		if nl := strings.IndexByte(v, '\n'); nl >= 0 {
			v = v[:nl]
		}
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}

// owner returns the kind of the labeled value containing pos. Text outside
// any labeled value on its line is owned by fieldOther.
func (d *document) owner(pos int) fieldKind {
	kind := fieldOther
	for _, l := range d.labels {
		if l.valueStart > pos {
			break
		}
		kind = l.kind
		if strings.IndexByte(d.text[l.valueStart:pos], '\n') >= 0 {
			kind = fieldOther
		}
	}
	return kind
}

// scan returns the first match of re that is not inside another field's
// labeled value. When re has a capture group its first group is returned.
// The result is clipped at the next label or line end.
func (d *document) scan(kind fieldKind, re *regexp.Regexp) (string, bool) {
	for _, m := range re.FindAllStringSubmatchIndex(d.text, -1) {
		start, end := m[0], m[1]
		if len(m) >= 4 && m[2] >= 0 {
			start, end = m[2], m[3]
		}
		if owner := d.owner(start); owner != fieldOther && owner != kind {
			continue
		}
		if v := strings.TrimSpace(d.clip(start, end)); v != "" {
			return v, true
		}
	}
	return "", false
}

func (d *document) clip(start, end int) string {
	for _, l := range d.labels {
		if l.start > start && l.start < end {
			end = l.start
			break
		}
	}
	v := d.text[start:end]
	if nl := strings.IndexByte(v, '\n'); nl >= 0 {
		v = v[:nl]
	}
	return v
}
