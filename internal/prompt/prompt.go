// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package prompt compiles the IDF prompt: nine fixed, ordered instruction
// blocks handed verbatim to an external image or video generation tool,
// plus a Markdown production guide for the human who reviews or shoots the
// piece. Both come from one Context, so they always agree.
//
// The block order and the two "N/A" sentinels are a wire contract: the
// consuming tool has no other signal for which sections to skip.
package prompt

import (
	"fmt"
	"strings"

	"creativestudio/internal/markdown"
	"creativestudio/internal/models"
)

// Block names, in output order.
const (
	BlockControl         = "CONTROL"
	BlockOutput          = "OUTPUT"
	BlockFormat          = "FORMAT"
	BlockVisualDirection = "VISUAL DIRECTION"
	BlockGraphicLayer    = "GRAPHIC LAYER"
	BlockEditingMotion   = "EDITING & MOTION"
	BlockVoiceSound      = "VOICE & SOUND"
	BlockCopy            = "COPY"
	BlockRestrictions    = "RESTRICTIONS"
)

// Bodies of the motion-only blocks for static formats.
const (
	NAStaticImage = "N/A (Static Image)"
	NASilent      = "N/A (Silent)"
)

// BlockOrder lists the block names in the order they are emitted.
var BlockOrder = []string{
	BlockControl, BlockOutput, BlockFormat, BlockVisualDirection, BlockGraphicLayer,
	BlockEditingMotion, BlockVoiceSound, BlockCopy, BlockRestrictions,
}

const controlText = `You are a production tool, not a creative partner. Follow every block below literally.
Do not add, remove or reinterpret elements. Any block whose body is "N/A" must be ignored entirely.
When a block conflicts with your defaults, the block wins. Never render these instructions as text in the output.`

var universalRestrictions = []string{
	"No watermarks, stock-photo logos or signatures",
	"No misspelled, mirrored or garbled text",
	"No extra fingers, distorted hands or deformed faces",
	"No competitor brands or third-party logos",
	"No text outside the safe zone",
	"No copy other than the lines given in COPY",
}

// GeneratePrompt compiles the prompt and guide for an item, letting the
// item's own format and channel pick the target format.
func GeneratePrompt(item *models.ContentItem, vaults models.Vaults) (models.GeneratedPrompt, error) {
	return Compile(Resolve(item, vaults, ""))
}

// Compile renders the nine blocks and the guide from a resolved context.
func Compile(c Context) (models.GeneratedPrompt, error) {
	blocks := []models.PromptBlock{
		{Name: BlockControl, Body: controlText},
		{Name: BlockOutput, Body: outputBlock(c)},
		{Name: BlockFormat, Body: formatBlock(c)},
		{Name: BlockVisualDirection, Body: visualBlock(c)},
		{Name: BlockGraphicLayer, Body: graphicBlock(c)},
		{Name: BlockEditingMotion, Body: editingBlock(c)},
		{Name: BlockVoiceSound, Body: voiceBlock(c)},
		{Name: BlockCopy, Body: copyBlock(c)},
		{Name: BlockRestrictions, Body: restrictionsBlock(c)},
	}

	guide, err := renderGuide(c)
	if err != nil {
		return models.GeneratedPrompt{}, err
	}
	guideHTML, err := markdown.ToHTML(guide)
	if err != nil {
		return models.GeneratedPrompt{}, fmt.Errorf("prompt: render guide html: %w", err)
	}

	return models.GeneratedPrompt{
		Blocks:         blocks,
		AIPrompt:       Join(blocks),
		HumanGuide:     guide,
		HumanGuideHTML: guideHTML,
	}, nil
}

// Join concatenates blocks as "[NAME]" headers followed by their bodies,
// separated by blank lines.
func Join(blocks []models.PromptBlock) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = "[" + b.Name + "]\n" + b.Body
	}
	return strings.Join(parts, "\n\n")
}

func outputBlock(c Context) string {
	if c.Motion {
		return fmt.Sprintf("Deliver 1 video, %dx%d px (%s), 15 to 30 seconds, MP4 H.264, 30 fps, plus 1 cover frame as PNG.",
			c.Format.Width, c.Format.Height, c.Format.AspectRatio)
	}
	return fmt.Sprintf("Deliver 1 static image, %dx%d px (%s), PNG, sRGB. No animation.",
		c.Format.Width, c.Format.Height, c.Format.AspectRatio)
}

func formatBlock(c Context) string {
	return lines(
		"Channel: "+c.ChannelLabel+" ("+c.Placement+")",
		"Content type: "+string(c.ContentType),
		"Aspect ratio: "+c.Format.AspectRatio,
		fmt.Sprintf("Resolution: %dx%d px", c.Format.Width, c.Format.Height),
		"Safe zone: "+c.SafeZone,
	)
}

func visualBlock(c Context) string {
	camera := "eye-level medium shot, 50mm lens, shallow depth of field"
	composition := "product centered on the rule-of-thirds grid with room for the headline"
	if c.Format.IsVertical() {
		composition = "vertical composition, product in the middle third, top and bottom kept clear for overlays"
	}
	if c.Motion {
		camera = "handheld gimbal, slow push-in on the product, one cut every 2 to 3 seconds"
	}
	return lines(
		"Subject: "+c.Product.Name+", "+c.Product.Description,
		"Camera: "+camera,
		"Lighting: "+c.Brand.VisualVibe,
		"Composition: "+composition,
		"Mood: "+c.Brand.Tone,
		"Brand archetype: "+c.Brand.Archetype+". Every choice must feel true to it.",
	)
}

func graphicBlock(c Context) string {
	p, ty := c.Brand.Palette, c.Brand.Typography
	out := []string{
		"Accent color " + p.Accent + " is reserved for the CTA and at most one highlight element.",
		"Headline in " + p.Primary + ", supporting elements in " + p.Secondary + ", backgrounds in " + p.Background + ".",
		"Typography: " + ty.Heading + " for headlines, " + ty.Body + " for body copy.",
	}
	if len(c.Brand.Mandatory) > 0 {
		out = append(out, "Mandatory: "+strings.Join(c.Brand.Mandatory, "; ")+".")
	}
	return lines(out...)
}

func editingBlock(c Context) string {
	if !c.Motion {
		return NAStaticImage
	}
	return lines(
		"0-3s: hook on screen, product visible in the first frame.",
		"3-12s: show the product in use, cuts on the beat.",
		"Last 3s: CTA card with the brand name, hold for at least 2 seconds.",
		"Transitions: hard cuts or quick whip pans only. Burned-in captions for every spoken line.",
	)
}

func voiceBlock(c Context) string {
	if !c.Motion {
		return NASilent
	}
	return lines(
		"Music: "+c.Brand.MusicalVibe,
		"Voice: "+c.Brand.Tone+", natural pace, no more than 2 short sentences.",
		"Mix: voice above music, music ducks under speech, no sound effects over the CTA.",
	)
}

func copyBlock(c Context) string {
	out := []string{"Hook: " + c.Hook}
	if c.Caption != "" {
		out = append(out, "Supporting line: "+c.Caption)
	}
	out = append(out, "CTA: "+c.CTA, "Use these lines exactly as written.")
	return lines(out...)
}

func restrictionsBlock(c Context) string {
	all := restrictions(c)
	for i, r := range all {
		all[i] = "- " + r
	}
	return lines(all...)
}

// restrictions returns the universal prohibitions followed by the brand's.
func restrictions(c Context) []string {
	all := append([]string(nil), universalRestrictions...)
	for _, p := range c.Brand.Prohibited {
		if !strings.HasPrefix(strings.ToLower(p), "no ") {
			p = "No " + p
		}
		all = append(all, p)
	}
	return all
}

func lines(s ...string) string {
	return strings.Join(s, "\n")
}
