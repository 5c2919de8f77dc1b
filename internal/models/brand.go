// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"regexp"
	"strings"
)

// Brand defaults applied when the vault is only partially populated.
const (
	DefaultBrandName   = "Your Brand"
	DefaultArchetype   = "The Everyman"
	DefaultTone        = "warm, confident and approachable"
	DefaultPromise     = "Quality you can feel every day"
	DefaultVisualVibe  = "clean, modern, natural light"
	DefaultMusicalVibe = "upbeat acoustic pop, no lyrics"
	DefaultCTA         = "Learn more"

	DefaultPrimaryColor    = "#1F2937"
	DefaultSecondaryColor  = "#4F46E5"
	DefaultAccentColor     = "#F59E0B"
	DefaultBackgroundColor = "#F9FAFB"

	DefaultHeadingFont = "Montserrat"
	DefaultBodyFont    = "Inter"
)

// hexColor accepts #RGB and #RRGGBB.
var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Vaults is the read-only brand context handed to generation. The vault
// collaborator owns it; this package only reads it.
type Vaults struct {
	Brand    BrandContext `json:"brand" yaml:"brand"`
	Products []Product    `json:"products,omitempty" yaml:"products,omitempty"`
}

// BrandContext holds brand identity and design rules. Every field is
// optional; Resolved fills the gaps with the package defaults.
type BrandContext struct {
	Name        string     `json:"name,omitempty" yaml:"name,omitempty"`
	Archetype   string     `json:"archetype,omitempty" yaml:"archetype,omitempty"`
	Tone        string     `json:"tone,omitempty" yaml:"tone,omitempty"`
	Promise     string     `json:"promise,omitempty" yaml:"promise,omitempty"`
	Palette     Palette    `json:"palette" yaml:"palette"`
	Typography  Typography `json:"typography" yaml:"typography"`
	Prohibited  []string   `json:"prohibited,omitempty" yaml:"prohibited,omitempty"`
	Mandatory   []string   `json:"mandatory,omitempty" yaml:"mandatory,omitempty"`
	VisualVibe  string     `json:"visual_vibe,omitempty" yaml:"visual_vibe,omitempty"`
	MusicalVibe string     `json:"musical_vibe,omitempty" yaml:"musical_vibe,omitempty"`
	DefaultCTA  string     `json:"default_cta,omitempty" yaml:"default_cta,omitempty"`
}

// Palette is the four-color brand palette as hex strings.
type Palette struct {
	Primary    string `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Accent     string `json:"accent,omitempty" yaml:"accent,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
}

// Typography names the heading and body font families.
type Typography struct {
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`
	Body    string `json:"body,omitempty" yaml:"body,omitempty"`
}

// Product is one entry of the product/offer catalog.
type Product struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Hero        bool   `json:"hero,omitempty" yaml:"hero,omitempty"`
	Role        string `json:"role,omitempty" yaml:"role,omitempty"`
}

// IsHero reports whether the product is flagged as the brand's hero
// product, either by flag or by role.
func (p *Product) IsHero() bool {
	return p.Hero || strings.EqualFold(strings.TrimSpace(p.Role), "hero")
}

// IsHexColor reports whether s is a #RGB or #RRGGBB color.
func IsHexColor(s string) bool {
	return hexColor.MatchString(s)
}

// Resolved returns a copy of the palette with every missing or malformed
// color replaced by its default. Malformed values are dropped rather than
// embedded so they never reach generated markup.
func (p Palette) Resolved() Palette {
	return Palette{
		Primary:    colorOr(p.Primary, DefaultPrimaryColor),
		Secondary:  colorOr(p.Secondary, DefaultSecondaryColor),
		Accent:     colorOr(p.Accent, DefaultAccentColor),
		Background: colorOr(p.Background, DefaultBackgroundColor),
	}
}

// Resolved returns a copy of the brand context with defaults applied to
// every empty field. Rule slices are copied, never shared.
func (b BrandContext) Resolved() BrandContext {
	return BrandContext{
		Name:      textOr(b.Name, DefaultBrandName),
		Archetype: textOr(b.Archetype, DefaultArchetype),
		Tone:      textOr(b.Tone, DefaultTone),
		Promise:   textOr(b.Promise, DefaultPromise),
		Palette:   b.Palette.Resolved(),
		Typography: Typography{
			Heading: textOr(b.Typography.Heading, DefaultHeadingFont),
			Body:    textOr(b.Typography.Body, DefaultBodyFont),
		},
		Prohibited:  nonEmpty(b.Prohibited),
		Mandatory:   nonEmpty(b.Mandatory),
		VisualVibe:  textOr(b.VisualVibe, DefaultVisualVibe),
		MusicalVibe: textOr(b.MusicalVibe, DefaultMusicalVibe),
		DefaultCTA:  textOr(b.DefaultCTA, DefaultCTA),
	}
}

func colorOr(v, fallback string) string {
	v = strings.TrimSpace(v)
	if !IsHexColor(v) {
		return fallback
	}
	return strings.ToUpper(v)
}

func textOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

// nonEmpty copies the trimmed, non-blank entries of rules.
func nonEmpty(rules []string) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
