// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"strings"

	"creativestudio/internal/catalog"
	"creativestudio/internal/copytext"
	"creativestudio/internal/models"
	"creativestudio/internal/taxonomy"
)

// Placeholders used when the item or the vault leaves a field empty.
const (
	PlaceholderProductName = "Featured product"
	PlaceholderProductDesc = "the product this post promotes"
	PlaceholderHook        = "[HOOK: 3 to 6 words that stop the scroll]"
	PlaceholderCTA         = "[CTA: one short action, e.g. \"Order now\"]"
	PlaceholderTitle       = "Untitled creative"
)

// Context is the single resolution pass both outputs are compiled from, so
// the prompt and the guide can never disagree.
type Context struct {
	Item         models.ContentItem
	Brand        models.BrandContext
	Product      models.Product
	Selection    taxonomy.Selection
	ChannelLabel string
	Placement    string
	ContentType  models.ContentType
	Motion       bool
	Format       catalog.CreativeFormat
	SafeZone     string
	Title        string
	Hook         string
	Caption      string
	CTA          string
}

// ResolveProduct picks the product an item talks about: the exact offer id,
// then a hero product, then the first product, then a placeholder.
func ResolveProduct(offerID string, products []models.Product) models.Product {
	if id := strings.TrimSpace(offerID); id != "" {
		for _, p := range products {
			if p.ID == id {
				return p
			}
		}
	}
	for i := range products {
		if products[i].IsHero() {
			return products[i]
		}
	}
	if len(products) > 0 {
		return products[0]
	}
	return models.Product{Name: PlaceholderProductName, Description: PlaceholderProductDesc}
}

// Resolve derives every field the compiler needs. formatID may be empty,
// in which case the item's format field is tried before the subchannel
// default.
func Resolve(item *models.ContentItem, vaults models.Vaults, formatID string) Context {
	sel := taxonomy.ResolveItemChannel(item)
	contentType := taxonomy.ResolveContentType(item, sel)
	requested := copytext.FirstNonEmpty(formatID, item.Format)
	format := catalog.GetCreativeFormat(taxonomy.ResolveFormatID(sel.ChannelID, sel.SubchannelID, requested))

	product := ResolveProduct(item.OfferID, vaults.Products)
	if copytext.Normalize(product.Name) == "" {
		product.Name = PlaceholderProductName
	}
	if copytext.Normalize(product.Description) == "" {
		product.Description = PlaceholderProductDesc
	}

	return Context{
		Item:         *item,
		Brand:        vaults.Brand.Resolved(),
		Product:      product,
		Selection:    sel,
		ChannelLabel: taxonomy.ChannelLabel(sel.ChannelID),
		Placement:    taxonomy.ToLegacyChannelLabel(sel.ChannelID, sel.SubchannelID),
		ContentType:  contentType,
		Motion:       contentType.IsMotion(),
		Format:       format,
		SafeZone:     safeZone(format),
		Title:        copytext.FirstNonEmpty(item.Name(), PlaceholderTitle),
		Hook:         copytext.FirstNonEmpty(item.Name(), PlaceholderHook),
		Caption:      copytext.Normalize(item.Caption),
		CTA:          copytext.FirstNonEmpty(item.CTA, PlaceholderCTA),
	}
}

func safeZone(f catalog.CreativeFormat) string {
	if f.IsVertical() {
		return "keep text, faces and logos out of the top 14% and bottom 20% of the frame (platform UI overlays)"
	}
	return "keep a 5% margin free on every edge"
}
