// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package imaging

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontsOnce sync.Once
	fontErr   error
	regular   *truetype.Font
	bold      *truetype.Font
)

// loadFonts parses the embedded Go fonts once. Brand fonts are named in the
// SVG only; thumbnails always use these.
func loadFonts() error {
	fontsOnce.Do(func() {
		regular, fontErr = truetype.Parse(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("imaging: parse regular font: %w", fontErr)
			return
		}
		bold, fontErr = truetype.Parse(gobold.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("imaging: parse bold font: %w", fontErr)
		}
	})
	return fontErr
}

// thumbnail rasterizes a scene into a PNG of the given width, keeping the
// canvas aspect ratio.
func thumbnail(sc scene, width int) ([]byte, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	if width <= 0 {
		return nil, fmt.Errorf("imaging: invalid thumbnail width %d", width)
	}

	k := float64(width) / float64(sc.width)
	height := int(float64(sc.height)*k + 0.5)
	dc := gg.NewContext(width, height)

	grad := gg.NewLinearGradient(0, 0, float64(width), float64(height))
	grad.AddColorStop(0, hexColor(sc.gradient[0], 1))
	grad.AddColorStop(1, hexColor(sc.gradient[1], 1))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	for _, c := range sc.circles {
		dc.SetColor(hexColor(c.fill, c.opacity))
		dc.DrawCircle(c.cx*k, c.cy*k, c.r*k)
		dc.Fill()
	}

	for _, r := range []box{sc.panel, sc.cta} {
		dc.SetColor(hexColor(r.fill, r.opacity))
		dc.DrawRoundedRectangle(r.x*k, r.y*k, r.w*k, r.h*k, r.rx*k)
		dc.Fill()
	}

	for _, l := range sc.lines {
		dc.SetFontFace(face(l.bold, l.size*k))
		dc.SetColor(hexColor(l.fill, l.opacity))
		ax := 0.0
		if l.center {
			ax = 0.5
		}
		dc.DrawStringAnchored(l.value, l.x*k, l.y*k, ax, 0)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("imaging: encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

func face(isBold bool, size float64) font.Face {
	f := regular
	if isBold {
		f = bold
	}
	if size < 1 {
		size = 1
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull})
}

// hexColor converts "#RGB" or "#RRGGBB" to a color with the given opacity.
// Invalid input yields opaque black.
func hexColor(hex string, opacity float64) color.NRGBA {
	s := hex
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if len(s) != 6 || err != nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(opacity*255 + 0.5),
	}
}
