// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package taxonomy maps publishing channels to their subchannels, the
// formats each subchannel accepts, and the free-text "legacy" labels older
// calendar items were saved with. Old labels and structured ids coexist
// without a data migration, so every lookup here accepts either.
package taxonomy

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"creativestudio/internal/catalog"
	"creativestudio/internal/copytext"
	"creativestudio/internal/models"
)

// Channel ids.
const (
	ChannelInstagram = "instagram"
	ChannelFacebook  = "facebook"
	ChannelTikTok    = "tiktok"
	ChannelWhatsApp  = "whatsapp"
	ChannelGoogle    = "google"
	ChannelYouTube   = "youtube"

	DefaultChannelID    = ChannelInstagram
	DefaultSubchannelID = "feed"
)

// Channel is a publishing platform.
type Channel struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Subchannels []Subchannel `json:"subchannels"`
}

// Subchannel is a placement inside a channel (feed, stories, reels...).
type Subchannel struct {
	ID                 string             `json:"id"`
	Label              string             `json:"label"`
	LegacyLabel        string             `json:"legacy_label"`
	DefaultContentType models.ContentType `json:"default_content_type"`
	Formats            []string           `json:"formats"`
}

// Selection is a resolved channel/subchannel pair.
type Selection struct {
	ChannelID    string `json:"channel_id"`
	SubchannelID string `json:"subchannel_id"`
}

var channels = []Channel{
	{ID: ChannelInstagram, Label: "Instagram", Subchannels: []Subchannel{
		{ID: "feed", Label: "Feed", LegacyLabel: "Instagram Feed", DefaultContentType: models.ContentTypePost,
			Formats: []string{catalog.FormatFeed4x5, catalog.FormatSquare1x1}},
		{ID: "carousel", Label: "Carousel", LegacyLabel: "Instagram Carousel", DefaultContentType: models.ContentTypeCarousel,
			Formats: []string{catalog.FormatFeed4x5, catalog.FormatSquare1x1}},
		{ID: "stories", Label: "Stories", LegacyLabel: "Instagram Stories", DefaultContentType: models.ContentTypeStory,
			Formats: []string{catalog.FormatStory9x16}},
		{ID: "reels", Label: "Reels", LegacyLabel: "Instagram Reel", DefaultContentType: models.ContentTypeReel,
			Formats: []string{catalog.FormatReel9x16, catalog.FormatStory9x16}},
	}},
	{ID: ChannelFacebook, Label: "Facebook", Subchannels: []Subchannel{
		{ID: "feed", Label: "Feed", LegacyLabel: "Facebook Feed", DefaultContentType: models.ContentTypePost,
			Formats: []string{catalog.FormatSquare1x1, catalog.FormatFeed4x5, catalog.FormatLandscape191}},
		{ID: "stories", Label: "Stories", LegacyLabel: "Facebook Stories", DefaultContentType: models.ContentTypeStory,
			Formats: []string{catalog.FormatStory9x16}},
	}},
	{ID: ChannelTikTok, Label: "TikTok", Subchannels: []Subchannel{
		{ID: "video", Label: "Video", LegacyLabel: "TikTok", DefaultContentType: models.ContentTypeVideo,
			Formats: []string{catalog.FormatReel9x16, catalog.FormatStory9x16}},
	}},
	{ID: ChannelWhatsApp, Label: "WhatsApp", Subchannels: []Subchannel{
		{ID: "status", Label: "Status", LegacyLabel: "WhatsApp Status", DefaultContentType: models.ContentTypeStory,
			Formats: []string{catalog.FormatStory9x16}},
		{ID: "broadcast", Label: "Broadcast list", LegacyLabel: "WhatsApp Broadcast", DefaultContentType: models.ContentTypePost,
			Formats: []string{catalog.FormatSquare1x1, catalog.FormatFeed4x5}},
	}},
	{ID: ChannelGoogle, Label: "Google", Subchannels: []Subchannel{
		{ID: "business_profile", Label: "Business Profile", LegacyLabel: "Google Business Profile", DefaultContentType: models.ContentTypePost,
			Formats: []string{catalog.FormatGoogle4x3, catalog.FormatSquare1x1}},
		{ID: "display", Label: "Display", LegacyLabel: "Google Display", DefaultContentType: models.ContentTypePost,
			Formats: []string{catalog.FormatLandscape191, catalog.FormatSquare1x1}},
	}},
	{ID: ChannelYouTube, Label: "YouTube", Subchannels: []Subchannel{
		{ID: "shorts", Label: "Shorts", LegacyLabel: "YouTube Shorts", DefaultContentType: models.ContentTypeVideo,
			Formats: []string{catalog.FormatReel9x16}},
		{ID: "video", Label: "Video", LegacyLabel: "YouTube Video", DefaultContentType: models.ContentTypeVideo,
			Formats: []string{catalog.FormatLandscape16x9}},
	}},
}

// keywordRules are tried in order after an exact legacy match fails.
// Platform names win over placement words, so "WhatsApp story" stays on
// WhatsApp.
var keywordRules = []struct {
	keywords  []string
	selection func() Selection
}{
	{[]string{"tiktok"}, func() Selection { return defaultFor(ChannelTikTok) }},
	{[]string{"whatsapp"}, func() Selection { return defaultFor(ChannelWhatsApp) }},
	{[]string{"google"}, func() Selection { return defaultFor(ChannelGoogle) }},
	{[]string{"story", "stories"}, func() Selection { return Selection{ChannelInstagram, "stories"} }},
	{[]string{"reel"}, func() Selection { return Selection{ChannelInstagram, "reels"} }},
}

// ListChannels returns every channel with its subchannels, in display order.
func ListChannels() []Channel {
	out := make([]Channel, len(channels))
	for i, c := range channels {
		out[i] = copyChannel(c)
	}
	return out
}

// ListSubchannels returns the subchannels of a channel, or nil when the
// channel is unknown.
func ListSubchannels(channelID string) []Subchannel {
	c, ok := findChannel(channelID)
	if !ok {
		return nil
	}
	return copyChannel(c).Subchannels
}

// LookupSubchannel returns the subchannel for a channel/subchannel pair.
func LookupSubchannel(channelID, subchannelID string) (Subchannel, bool) {
	c, ok := findChannel(channelID)
	if !ok {
		return Subchannel{}, false
	}
	for _, s := range c.Subchannels {
		if s.ID == subchannelID {
			return copySubchannel(s), true
		}
	}
	return Subchannel{}, false
}

// GetDefaultSubchannelID returns the first subchannel of a channel. Unknown
// channels resolve to the default subchannel of the default channel.
func GetDefaultSubchannelID(channelID string) string {
	c, ok := findChannel(channelID)
	if !ok {
		return DefaultSubchannelID
	}
	return c.Subchannels[0].ID
}

// Resolve turns any channel/subchannel pair into a defined one: unknown
// channels become the default channel, unknown subchannels become the
// channel's first subchannel.
func Resolve(channelID, subchannelID string) (Selection, Subchannel) {
	c, ok := findChannel(channelID)
	if !ok {
		c, _ = findChannel(DefaultChannelID)
		subchannelID = DefaultSubchannelID
	}
	for _, s := range c.Subchannels {
		if s.ID == subchannelID {
			return Selection{c.ID, s.ID}, copySubchannel(s)
		}
	}
	return Selection{c.ID, c.Subchannels[0].ID}, copySubchannel(c.Subchannels[0])
}

// ToLegacyChannelLabel returns the free-text label older items stored for
// a channel/subchannel pair. Unknown ids resolve as in Resolve.
func ToLegacyChannelLabel(channelID, subchannelID string) string {
	_, s := Resolve(channelID, subchannelID)
	return s.LegacyLabel
}

// ParseLegacyChannelLabel converts a free-text channel label into a
// structured selection. Exact (case-insensitive) legacy labels win; then
// keyword heuristics; anything else is Instagram feed.
func ParseLegacyChannelLabel(text string) Selection {
	fold := cases.Fold()
	needle := fold.String(copytext.Normalize(text))
	if needle == "" {
		return Selection{DefaultChannelID, DefaultSubchannelID}
	}

	for _, c := range channels {
		for _, s := range c.Subchannels {
			if fold.String(s.LegacyLabel) == needle {
				return Selection{c.ID, s.ID}
			}
		}
	}

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(needle, kw) {
				return rule.selection()
			}
		}
	}
	return Selection{DefaultChannelID, DefaultSubchannelID}
}

// ResolveItemChannel derives the selection for a calendar item, accepting
// structured ids, a legacy label, or as a last hint the item's format.
func ResolveItemChannel(item *models.ContentItem) Selection {
	if _, ok := findChannel(item.ChannelID); ok {
		sel, _ := Resolve(item.ChannelID, item.SubchannelID)
		return sel
	}
	if strings.TrimSpace(item.Channel) != "" {
		return ParseLegacyChannelLabel(item.Channel)
	}
	return ParseLegacyChannelLabel(item.Format)
}

// ResolveFormatID returns requested when the subchannel allows it,
// otherwise the subchannel's first allowed format.
func ResolveFormatID(channelID, subchannelID, requested string) string {
	_, s := Resolve(channelID, subchannelID)
	if slices.Contains(s.Formats, requested) {
		return requested
	}
	return s.Formats[0]
}

// ResolveContentType returns the item's own content type when its format
// names one, otherwise the subchannel default.
func ResolveContentType(item *models.ContentItem, sel Selection) models.ContentType {
	if ct, ok := models.ParseContentType(item.Format); ok {
		return ct
	}
	_, s := Resolve(sel.ChannelID, sel.SubchannelID)
	return s.DefaultContentType
}

// ChannelLabel returns the display label of a channel ("" when unknown).
func ChannelLabel(channelID string) string {
	c, ok := findChannel(channelID)
	if !ok {
		return ""
	}
	return c.Label
}

func defaultFor(channelID string) Selection {
	return Selection{channelID, GetDefaultSubchannelID(channelID)}
}

func findChannel(id string) (Channel, bool) {
	for _, c := range channels {
		if c.ID == id {
			return c, true
		}
	}
	return Channel{}, false
}

func copyChannel(c Channel) Channel {
	subs := make([]Subchannel, len(c.Subchannels))
	for i, s := range c.Subchannels {
		subs[i] = copySubchannel(s)
	}
	c.Subchannels = subs
	return c
}

func copySubchannel(s Subchannel) Subchannel {
	s.Formats = append([]string(nil), s.Formats...)
	return s
}
