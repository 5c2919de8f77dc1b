// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package imaging

import (
	"math"
	"unicode/utf8"

	"creativestudio/internal/catalog"
	"creativestudio/internal/copytext"
	"creativestudio/internal/models"
)

// scene is the resolved geometry of one variant, in canvas pixels. Both the
// SVG encoder and the thumbnail rasterizer draw from it.
type scene struct {
	index    int
	width    int
	height   int
	label    string // accessible name, the headline
	gradient [2]string
	circles  [2]circle
	panel    box
	cta      box
	lines    []textLine
}

type circle struct {
	cx, cy, r float64
	fill      string
	opacity   float64
}

type box struct {
	x, y, w, h, rx float64
	fill           string
	opacity        float64
}

type textLine struct {
	x, y    float64
	size    float64
	bold    bool
	family  string
	fill    string
	opacity float64
	center  bool
	value   string
}

// accentRing returns the colors variants rotate through. Variant i uses
// ring[i mod n] and ring[(i+1) mod n].
func accentRing(p models.Palette) []string {
	return []string{p.Accent, p.Secondary, p.Primary}
}

// accentsFor returns the accent pair for a variant index.
func accentsFor(p models.Palette, index int) (string, string) {
	ring := accentRing(p)
	k := index % len(ring)
	return ring[k], ring[(k+1)%len(ring)]
}

// buildScene lays out one variant. Sizes scale with the short side of the
// canvas so every format keeps the same proportions.
func buildScene(f catalog.CreativeFormat, brand models.BrandContext, text Copy, index int) scene {
	W, H := float64(f.Width), float64(f.Height)
	short := math.Min(W, H)
	s := short / 1080

	accentA, accentB := accentsFor(brand.Palette, index)
	headingFont := brand.Typography.Heading + ", sans-serif"
	bodyFont := brand.Typography.Body + ", sans-serif"

	sc := scene{
		index:    index,
		width:    f.Width,
		height:   f.Height,
		label:    text.Headline,
		gradient: [2]string{brand.Palette.Primary, brand.Palette.Secondary},
		circles: [2]circle{
			{cx: W * 0.86, cy: H * 0.12, r: short * 0.34, fill: accentA, opacity: 0.9},
			{cx: W * 0.08, cy: H * 0.62, r: short * 0.22, fill: accentB, opacity: 0.7},
		},
	}

	pad := W * 0.07
	bottomSafe := pad
	if f.IsVertical() {
		bottomSafe = H * 0.14
	}

	panelX, panelW := pad, W-2*pad
	inner := 48 * s
	textW := panelW - 2*inner

	headSize, headLines := fitText(text.Headline, textW, 76*s, 3)
	subSize, subLines := fitText(text.Subheadline, textW, 38*s, 4)
	ctaSize := 34 * s

	ctaH := 84 * s
	ctaW := float64(utf8.RuneCountInString(text.CTA))*ctaSize*0.6 + 88*s
	ctaW = math.Min(math.Max(ctaW, 240*s), textW)

	panelH := inner + float64(len(headLines))*headSize*1.15 + 24*s +
		float64(len(subLines))*subSize*1.3 + 40*s + ctaH + inner
	panelY := math.Max(H-bottomSafe-panelH, pad)

	sc.panel = box{x: panelX, y: panelY, w: panelW, h: panelH, rx: 32 * s, fill: brand.Palette.Background, opacity: 0.9}

	y := panelY + inner
	for _, l := range headLines {
		y += headSize * 1.15
		sc.lines = append(sc.lines, textLine{
			x: panelX + inner, y: y - headSize*0.15, size: headSize, bold: true,
			family: headingFont, fill: brand.Palette.Primary, opacity: 1, value: l,
		})
	}
	y += 24 * s
	for _, l := range subLines {
		y += subSize * 1.3
		sc.lines = append(sc.lines, textLine{
			x: panelX + inner, y: y - subSize*0.3, size: subSize,
			family: bodyFont, fill: brand.Palette.Primary, opacity: 0.78, value: l,
		})
	}
	y += 40 * s

	sc.cta = box{x: panelX + inner, y: y, w: ctaW, h: ctaH, rx: ctaH / 2, fill: accentA, opacity: 1}
	sc.lines = append(sc.lines, textLine{
		x: sc.cta.x + ctaW/2, y: y + ctaH/2 + ctaSize*0.35, size: ctaSize, bold: true,
		family: bodyFont, fill: brand.Palette.Background, opacity: 1, center: true, value: text.CTA,
	})
	return sc
}

// fitText shrinks size in steps until s wraps into maxLines without being
// truncated. Clamped copy always fits well before the floor of half the
// starting size; past it the last line is cut with an ellipsis.
func fitText(s string, width, size float64, maxLines int) (float64, []string) {
	floor := size * 0.5
	for {
		n := charsPerLine(width, size)
		lines := copytext.Wrap(s, n, maxLines+1)
		if len(lines) <= maxLines {
			return size, lines
		}
		if size*0.92 < floor {
			return size, copytext.Wrap(s, n, maxLines)
		}
		size *= 0.92
	}
}

// charsPerLine estimates how many characters of the given size fit in
// width, using an average glyph advance of 0.56em.
func charsPerLine(width, size float64) int {
	n := int(width / (size * 0.56))
	if n < 8 {
		return 8
	}
	return n
}
