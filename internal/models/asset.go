// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// AssetKind tells a rendered visual apart from a compiled prompt.
type AssetKind string

const (
	AssetKindSVG    AssetKind = "svg"
	AssetKindPrompt AssetKind = "prompt"
)

// TextOverrides are editor-supplied replacements for the copy drawn on a
// visual. Empty fields fall through to the item and then the brand.
type TextOverrides struct {
	Headline    string `json:"headline,omitempty" yaml:"headline,omitempty"`
	Subheadline string `json:"subheadline,omitempty" yaml:"subheadline,omitempty"`
	CTA         string `json:"cta,omitempty" yaml:"cta,omitempty"`
}

// GeneratedAsset is one generation result. It lives only in the caller's
// hands until it is explicitly saved as a SavedAsset.
type GeneratedAsset struct {
	ID         uuid.UUID        `json:"id"`
	Kind       AssetKind        `json:"kind"`
	ProviderID string           `json:"provider_id"`
	FormatID   string           `json:"format_id"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Variant    int              `json:"variant"`
	SVG        string           `json:"svg,omitempty"`
	PreviewURL string           `json:"preview_url,omitempty"`
	Overrides  TextOverrides    `json:"overrides"`
	Prompt     *GeneratedPrompt `json:"prompt,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// IsPrompt returns true if the asset carries a compiled prompt instead of
// rendered markup.
func (a *GeneratedAsset) IsPrompt() bool {
	return a.Kind == AssetKindPrompt
}

// PromptBlock is one named section of the instructional prompt.
type PromptBlock struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// GeneratedPrompt is the compiled instructional prompt plus the human
// production guide derived from the same inputs.
type GeneratedPrompt struct {
	Blocks         []PromptBlock `json:"blocks"`
	AIPrompt       string        `json:"ai_prompt"`
	HumanGuide     string        `json:"human_guide"`
	HumanGuideHTML string        `json:"human_guide_html,omitempty"`
}

// Block returns the block with the given name.
func (p *GeneratedPrompt) Block(name string) (PromptBlock, bool) {
	for _, b := range p.Blocks {
		if b.Name == name {
			return b, true
		}
	}
	return PromptBlock{}, false
}

// SavedAsset is the persisted record created when the editor keeps one
// generated asset. ItemID is a back-reference only; the item does not own
// the record.
type SavedAsset struct {
	ID           uuid.UUID     `json:"id"`
	ItemID       string        `json:"item_id"`
	Title        string        `json:"title,omitempty"`
	ProviderID   string        `json:"provider_id"`
	ChannelID    string        `json:"channel_id"`
	SubchannelID string        `json:"subchannel_id"`
	ChannelLabel string        `json:"channel_label"`
	FormatID     string        `json:"format_id"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	SVG          string        `json:"svg,omitempty"`
	PreviewURL   string        `json:"preview_url,omitempty"`
	Overrides    TextOverrides `json:"overrides"`
	CreatedAt    time.Time     `json:"created_at"`
}
