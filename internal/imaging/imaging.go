// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging renders brand template creatives. Each call produces N
// SVG variants of one fixed layout (gradient background, two decorative
// circles, a translucent copy panel and a CTA pill) plus a small PNG
// thumbnail per variant. Output is a pure function of the inputs: the only
// thing that changes between variants is the accent pair, picked by
// index from a fixed color ring.
package imaging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"creativestudio/internal/catalog"
	"creativestudio/internal/copytext"
	"creativestudio/internal/models"
)

// Copy length limits, in characters, ellipsis included.
const (
	MaxHeadlineLen    = 60
	MaxSubheadlineLen = 120
	MaxCTALen         = 28
)

// ThumbnailWidth is the pixel width of the PNG preview of each variant.
const ThumbnailWidth = 270

// Request holds everything one render needs. It is a value snapshot; the
// renderer never keeps a reference to it.
type Request struct {
	Item      models.ContentItem
	Vaults    models.Vaults
	FormatID  string
	Variants  int
	Overrides models.TextOverrides
}

// Copy is the resolved text drawn on every variant.
type Copy struct {
	Headline    string
	Subheadline string
	CTA         string
}

// ResolveCopy picks each text by precedence: explicit override, then the
// item field, then the brand default. Results are normalized and clamped.
func ResolveCopy(item *models.ContentItem, brand models.BrandContext, o models.TextOverrides) Copy {
	b := brand.Resolved()
	return Copy{
		Headline:    copytext.Clamp(copytext.FirstNonEmpty(o.Headline, item.Name(), b.Name), MaxHeadlineLen),
		Subheadline: copytext.Clamp(copytext.FirstNonEmpty(o.Subheadline, item.Caption, b.Promise), MaxSubheadlineLen),
		CTA:         copytext.Clamp(copytext.FirstNonEmpty(o.CTA, item.CTA, b.DefaultCTA), MaxCTALen),
	}
}

// GenerateTemplateVariants renders max(1, req.Variants) variants. Unknown
// format ids fall back to the catalog default; missing palette colors fall
// back to brand defaults. Markup is byte-identical across calls with equal
// inputs; only ID and CreatedAt differ.
func GenerateTemplateVariants(req Request) []models.GeneratedAsset {
	count := req.Variants
	if count < 1 {
		count = 1
	}

	format := catalog.GetCreativeFormat(req.FormatID)
	brand := req.Vaults.Brand.Resolved()
	text := ResolveCopy(&req.Item, brand, req.Overrides)
	now := time.Now().UTC()

	assets := make([]models.GeneratedAsset, 0, count)
	for i := 0; i < count; i++ {
		sc := buildScene(format, brand, text, i)
		markup := encodeSVG(sc)

		assets = append(assets, models.GeneratedAsset{
			ID:         uuid.New(),
			Kind:       models.AssetKindSVG,
			FormatID:   format.ID,
			Width:      format.Width,
			Height:     format.Height,
			Variant:    i,
			SVG:        markup,
			PreviewURL: previewURL(sc, markup),
			Overrides:  req.Overrides,
			CreatedAt:  now,
		})
	}
	return assets
}

// previewURL returns the PNG thumbnail as a data URI, or the SVG itself
// when rasterization fails.
func previewURL(sc scene, markup string) string {
	png, err := thumbnail(sc, ThumbnailWidth)
	if err != nil {
		slog.Warn("thumbnail rasterization failed", "variant", sc.index, "error", err)
		return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(markup))
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

// DecodePreview splits a preview data URI into its media type and payload.
// Only the PNG and SVG previews this package produces are accepted.
func DecodePreview(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, errors.New("imaging: preview is not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New("imaging: preview has no payload")
	}
	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, errors.New("imaging: preview is not base64 encoded")
	}
	if mediaType != "image/png" && mediaType != "image/svg+xml" {
		return "", nil, fmt.Errorf("imaging: unexpected preview type %q", mediaType)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("imaging: decode preview: %w", err)
	}
	return mediaType, data, nil
}
