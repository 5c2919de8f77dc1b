// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package imaging

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
)

// svgText is a string already escaped for XML text and attribute values.
// The encoder only writes user-supplied strings through this type.
type svgText string

func escape(s string) svgText {
	return svgText(html.EscapeString(s))
}

// num formats a coordinate with at most one decimal place.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

// encodeSVG serializes a scene. Colors come from a resolved palette and are
// always valid hex; every other string goes through escape.
func encodeSVG(sc scene) string {
	var b strings.Builder
	gradID := fmt.Sprintf("bg-%d", sc.index)

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="%s">`,
		sc.width, sc.height, sc.width, sc.height, escape(sc.label))
	fmt.Fprintf(&b, `<defs><linearGradient id="%s" x1="0" y1="0" x2="1" y2="1">`, gradID)
	fmt.Fprintf(&b, `<stop offset="0" stop-color="%s"/><stop offset="1" stop-color="%s"/>`, sc.gradient[0], sc.gradient[1])
	b.WriteString(`</linearGradient></defs>`)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="url(#%s)"/>`, sc.width, sc.height, gradID)

	for _, c := range sc.circles {
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="%s"/>`,
			num(c.cx), num(c.cy), num(c.r), c.fill, num(c.opacity))
	}

	writeBox(&b, sc.panel)
	writeBox(&b, sc.cta)

	for _, l := range sc.lines {
		weight := "400"
		if l.bold {
			weight = "800"
		}
		anchor := ""
		if l.center {
			anchor = ` text-anchor="middle"`
		}
		fmt.Fprintf(&b, `<text x="%s" y="%s" font-family="%s" font-size="%s" font-weight="%s" fill="%s" fill-opacity="%s"%s>%s</text>`,
			num(l.x), num(l.y), escape(l.family), num(l.size), weight, l.fill, num(l.opacity), anchor, escape(l.value))
	}

	b.WriteString(`</svg>`)
	return b.String()
}

func writeBox(b *strings.Builder, r box) {
	fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s" fill-opacity="%s"/>`,
		num(r.x), num(r.y), num(r.w), num(r.h), num(r.rx), r.fill, num(r.opacity))
}
