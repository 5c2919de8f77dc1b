// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog is the static registry of output formats a creative can
// be rendered in. The table is built once and only exposed through
// accessors that hand out copies.
package catalog

// Format ids.
const (
	FormatFeed4x5       = "feed_4_5"
	FormatSquare1x1     = "square_1_1"
	FormatStory9x16     = "story_9_16"
	FormatReel9x16      = "reel_9_16"
	FormatLandscape191  = "landscape_1_91_1"
	FormatLandscape16x9 = "landscape_16_9"
	FormatGoogle4x3     = "google_4_3"

	// DefaultFormatID is used whenever a requested id is unknown.
	DefaultFormatID = FormatFeed4x5
)

// CreativeFormat is one output canvas.
type CreativeFormat struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	AspectRatio string `json:"aspect_ratio"`
}

// IsVertical returns true for canvases taller than 16:10, where platform UI
// overlays eat the top and bottom of the frame.
func (f CreativeFormat) IsVertical() bool {
	return f.Height*10 > f.Width*16
}

var formats = []CreativeFormat{
	{ID: FormatFeed4x5, Label: "Feed 4:5", Width: 1080, Height: 1350, AspectRatio: "4:5"},
	{ID: FormatSquare1x1, Label: "Square 1:1", Width: 1080, Height: 1080, AspectRatio: "1:1"},
	{ID: FormatStory9x16, Label: "Story 9:16", Width: 1080, Height: 1920, AspectRatio: "9:16"},
	{ID: FormatReel9x16, Label: "Reel / Short video 9:16", Width: 1080, Height: 1920, AspectRatio: "9:16"},
	{ID: FormatLandscape191, Label: "Link / Display 1.91:1", Width: 1200, Height: 628, AspectRatio: "1.91:1"},
	{ID: FormatLandscape16x9, Label: "Landscape 16:9", Width: 1920, Height: 1080, AspectRatio: "16:9"},
	{ID: FormatGoogle4x3, Label: "Google Business 4:3", Width: 1200, Height: 900, AspectRatio: "4:3"},
}

var formatsByID = func() map[string]CreativeFormat {
	m := make(map[string]CreativeFormat, len(formats))
	for _, f := range formats {
		m[f.ID] = f
	}
	return m
}()

// ListCreativeFormats returns every format in catalog order.
func ListCreativeFormats() []CreativeFormat {
	return append([]CreativeFormat(nil), formats...)
}

// LookupCreativeFormat returns the format with the given id and whether it
// exists.
func LookupCreativeFormat(id string) (CreativeFormat, bool) {
	f, ok := formatsByID[id]
	return f, ok
}

// GetCreativeFormat returns the format with the given id, or the default
// format when the id is unknown.
func GetCreativeFormat(id string) CreativeFormat {
	if f, ok := formatsByID[id]; ok {
		return f
	}
	return formatsByID[DefaultFormatID]
}
