// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data shapes shared by the creative pipeline:
// calendar items and brand vaults coming from collaborators, and the
// generated assets and prompts going back to the editor.
package models

import (
	"strings"
	"time"
)

// ContentType is the editorial kind of a calendar item. It decides whether
// the deliverable is a still image or a motion piece.
type ContentType string

const (
	ContentTypePost     ContentType = "post"
	ContentTypeCarousel ContentType = "carousel"
	ContentTypeStory    ContentType = "story"
	ContentTypeReel     ContentType = "reel"
	ContentTypeVideo    ContentType = "video"
)

// IsMotion returns true for content types delivered as video.
func (t ContentType) IsMotion() bool {
	return t == ContentTypeReel || t == ContentTypeVideo
}

// ParseContentType maps a free-text format value ("Reels", "reel_9_16",
// "vídeo curto") onto a ContentType. The second return value is false when
// nothing recognisable was found.
func ParseContentType(s string) (ContentType, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return "", false
	case strings.Contains(v, "reel"):
		return ContentTypeReel, true
	case strings.Contains(v, "video"), strings.Contains(v, "vídeo"), strings.Contains(v, "tiktok"):
		return ContentTypeVideo, true
	case strings.Contains(v, "stor"):
		return ContentTypeStory, true
	case strings.Contains(v, "carousel"), strings.Contains(v, "carrossel"):
		return ContentTypeCarousel, true
	case strings.Contains(v, "post"), strings.Contains(v, "feed"), strings.Contains(v, "static"):
		return ContentTypePost, true
	}
	return "", false
}

// ContentItem is a content-calendar entry as owned by the calendar
// collaborator. Items created before the structured taxonomy only carry the
// free-text Channel; newer ones carry ChannelID/SubchannelID. Both shapes
// must be accepted everywhere.
type ContentItem struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"` // initiative name, e.g. "Terça em Dobro"
	Initiative   string `json:"initiative,omitempty" yaml:"initiative,omitempty"`
	Date         string `json:"date,omitempty" yaml:"date,omitempty"`
	ChannelID    string `json:"channel_id,omitempty" yaml:"channel_id,omitempty"`
	SubchannelID string `json:"subchannel_id,omitempty" yaml:"subchannel_id,omitempty"`
	Channel      string `json:"channel,omitempty" yaml:"channel,omitempty"` // legacy label
	Format       string `json:"format,omitempty" yaml:"format,omitempty"`   // content type or format id
	OfferID      string `json:"offer_id,omitempty" yaml:"offer_id,omitempty"`
	Caption      string `json:"caption,omitempty" yaml:"caption,omitempty"`
	CTA          string `json:"cta,omitempty" yaml:"cta,omitempty"`
}

// Name returns the initiative name. Calendar payloads carry it either as
// title or as initiative; title wins when both are set.
func (c *ContentItem) Name() string {
	if t := strings.TrimSpace(c.Title); t != "" {
		return t
	}
	return strings.TrimSpace(c.Initiative)
}

// Day parses the calendar date (YYYY-MM-DD). Returns false when the date is
// missing or malformed.
func (c *ContentItem) Day() (time.Time, bool) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(c.Date))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
