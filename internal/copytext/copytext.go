// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package copytext normalizes and clamps the short pieces of copy (headlines,
// CTAs, captions) that flow from editors and brand vaults into generated
// creatives. Lengths are counted in runes, never bytes.
package copytext

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Ellipsis marks truncated copy. It counts as one character of the limit.
const Ellipsis = "…"

// Normalize composes the text to NFC, turns control characters into
// spaces, collapses whitespace runs and trims both ends.
func Normalize(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Clamp limits s to max runes. Truncated text keeps max-1 runes and ends
// with Ellipsis, so the result is exactly max runes long.
func Clamp(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return Ellipsis
	}
	return string(r[:max-1]) + Ellipsis
}

// Fit normalizes s and clamps it to max runes.
func Fit(s string, max int) string {
	return Clamp(Normalize(s), max)
}

// FirstNonEmpty returns the first value that is non-blank after
// normalization, normalized. Returns "" when all are blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = Normalize(v); v != "" {
			return v
		}
	}
	return ""
}

// Wrap splits s into lines of at most width runes, breaking on spaces.
// Words longer than width are hard-split. At most maxLines lines are
// returned; overflow is folded into the last line with an ellipsis.
func Wrap(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	words := strings.Fields(s)
	var lines []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, string(cur))
			cur = nil
		}
	}
	for _, w := range words {
		wr := []rune(w)
		for len(wr) > width {
			flush()
			lines = append(lines, string(wr[:width]))
			wr = wr[width:]
		}
		switch {
		case len(cur) == 0:
			cur = wr
		case len(cur)+1+len(wr) <= width:
			cur = append(append(cur, ' '), wr...)
		default:
			flush()
			cur = wr
		}
	}
	flush()

	if len(lines) > maxLines {
		r := []rune(strings.Join(lines[maxLines-1:], " "))
		if len(r) > width-1 {
			r = r[:width-1]
		}
		lines = append(lines[:maxLines-1], strings.TrimRight(string(r), " ")+Ellipsis)
	}
	return lines
}
