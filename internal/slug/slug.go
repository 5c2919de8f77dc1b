// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug builds ASCII, filesystem-safe names for exported creatives.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLen caps the length of a generated slug.
const MaxLen = 80

var (
	// nonAlphanumeric matches runs of anything that isn't a letter or digit.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// Generate creates a lowercase, hyphen-separated slug. Accents are folded
// to their base letters and any other non-ASCII text is dropped.
// Example: "Terça em Dobro!" → "terca-em-dobro"
func Generate(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	result := strings.ToLower(folded)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	if len(result) > MaxLen {
		result = strings.TrimRight(result[:MaxLen], "-")
	}
	return result
}

// Filename joins the slugs of each non-empty part with underscores and
// appends ext. It falls back to "creative" when nothing survives.
// Example: Filename(".svg", "Terça em Dobro", "story_9_16") → "terca-em-dobro_story-9-16.svg"
func Filename(ext string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if s := Generate(p); s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		kept = []string{"creative"}
	}
	return strings.Join(kept, "_") + ext
}
