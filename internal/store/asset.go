// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store keeps the asset library: generated creatives an editor
// chose to save against a calendar item. Records live in process memory;
// the library is the only mutable state in the application.
package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"creativestudio/internal/catalog"
	"creativestudio/internal/models"
	"creativestudio/internal/taxonomy"
)

// ErrNotSavable is returned when an asset carries no markup to keep.
var ErrNotSavable = errors.New("store: only rendered assets can be saved")

// ErrUnknownFormat is returned when an asset names a format outside the
// catalog.
var ErrUnknownFormat = errors.New("store: unknown creative format")

// AssetStore is a concurrency-safe in-memory library of saved assets.
type AssetStore struct {
	mu     sync.RWMutex
	assets map[uuid.UUID]models.SavedAsset
	now    func() time.Time
}

// NewAssetStore creates an empty library.
func NewAssetStore() *AssetStore {
	return &AssetStore{
		assets: make(map[uuid.UUID]models.SavedAsset),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// NewSavedAsset builds the record for keeping a generated asset against an
// item. The channel is resolved from the item as it is at save time, and
// the canvas size always comes from the catalog entry for the format.
func NewSavedAsset(item *models.ContentItem, a *models.GeneratedAsset) (models.SavedAsset, error) {
	if a.IsPrompt() || a.SVG == "" {
		return models.SavedAsset{}, ErrNotSavable
	}
	if strings.TrimSpace(item.ID) == "" {
		return models.SavedAsset{}, fmt.Errorf("store: item id is required")
	}
	format, ok := catalog.LookupCreativeFormat(a.FormatID)
	if !ok {
		return models.SavedAsset{}, fmt.Errorf("%w: %q", ErrUnknownFormat, a.FormatID)
	}
	sel := taxonomy.ResolveItemChannel(item)
	return models.SavedAsset{
		ItemID:       item.ID,
		Title:        item.Name(),
		ProviderID:   a.ProviderID,
		ChannelID:    sel.ChannelID,
		SubchannelID: sel.SubchannelID,
		ChannelLabel: taxonomy.ToLegacyChannelLabel(sel.ChannelID, sel.SubchannelID),
		FormatID:     format.ID,
		Width:        format.Width,
		Height:       format.Height,
		SVG:          a.SVG,
		PreviewURL:   a.PreviewURL,
		Overrides:    a.Overrides,
	}, nil
}

// Create stores a record, assigning a fresh ID and CreatedAt, and returns
// the stored copy.
func (s *AssetStore) Create(a models.SavedAsset) (*models.SavedAsset, error) {
	if strings.TrimSpace(a.ItemID) == "" {
		return nil, fmt.Errorf("create asset: item id is required")
	}
	a.ID = uuid.New()
	a.CreatedAt = s.now()

	s.mu.Lock()
	s.assets[a.ID] = a
	s.mu.Unlock()

	return &a, nil
}

// FindByID returns a copy of the record, or (nil, nil) when absent.
func (s *AssetStore) FindByID(id uuid.UUID) (*models.SavedAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assets[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// ListByItem returns an item's saved assets newest first, with pagination.
// A non-positive limit returns every record from offset on.
func (s *AssetStore) ListByItem(itemID string, limit, offset int) ([]models.SavedAsset, error) {
	if offset < 0 {
		return nil, fmt.Errorf("list assets: negative offset %d", offset)
	}

	s.mu.RLock()
	var out []models.SavedAsset
	for _, a := range s.assets {
		if a.ItemID == itemID {
			out = append(out, a)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})

	if offset >= len(out) {
		return []models.SavedAsset{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// Delete removes a record. Deleting a missing id is not an error.
func (s *AssetStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	delete(s.assets, id)
	s.mu.Unlock()
	return nil
}

// Count returns the number of saved assets.
func (s *AssetStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assets)
}

// CountByItem returns the number of saved assets for one item.
func (s *AssetStore) CountByItem(itemID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, a := range s.assets {
		if a.ItemID == itemID {
			n++
		}
	}
	return n
}
