package handlers

import (
	"strings"
	"unicode/utf8"

	"creativestudio/internal/models"
)

// Validation limits for calendar items and copy overrides. Longer copy is
// clamped at render time; these bounds only reject abusive payloads.
const (
	maxItemIDLen   = 200
	maxTitleLen    = 300
	maxCaptionLen  = 2_200
	maxCTALen      = 200
	maxOverrideLen = 500
	maxLabelLen    = 100
)

// validateRequest checks an item and its overrides and returns the first
// error found.
func validateRequest(item *models.ContentItem, o models.TextOverrides) string {
	if msg := validateItem(item); msg != "" {
		return msg
	}
	return validateOverrides(o)
}

// validateItem checks the calendar item fields a generation call reads.
func validateItem(item *models.ContentItem) string {
	if utf8.RuneCountInString(item.ID) > maxItemIDLen {
		return "Item id is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(item.Title) > maxTitleLen || utf8.RuneCountInString(item.Initiative) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(item.Caption) > maxCaptionLen {
		return "Caption is too long (max 2,200 characters)."
	}
	if utf8.RuneCountInString(item.CTA) > maxCTALen {
		return "CTA is too long (max 200 characters)."
	}
	for _, v := range []string{item.Channel, item.ChannelID, item.SubchannelID, item.Format, item.OfferID} {
		if utf8.RuneCountInString(v) > maxLabelLen {
			return "Channel, format and offer fields are limited to 100 characters."
		}
	}
	return ""
}

// validateOverrides checks editor-supplied copy overrides.
func validateOverrides(o models.TextOverrides) string {
	for _, v := range []string{o.Headline, o.Subheadline, o.CTA} {
		if utf8.RuneCountInString(v) > maxOverrideLen {
			return "Text overrides are limited to 500 characters."
		}
	}
	return ""
}

// validateItemID checks the item id a saved asset is filed under.
func validateItemID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return "Item id is required."
	}
	if utf8.RuneCountInString(id) > maxItemIDLen {
		return "Item id is too long (max 200 characters)."
	}
	return ""
}
