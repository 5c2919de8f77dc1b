// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"creativestudio/internal/models"
)

// testStore returns a store whose clock advances one second per Create,
// so list order is predictable.
func testStore() *AssetStore {
	s := NewAssetStore()
	base := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	tick := 0
	s.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}

func svgAsset() *models.GeneratedAsset {
	return &models.GeneratedAsset{
		ID:         uuid.New(),
		Kind:       models.AssetKindSVG,
		ProviderID: "template",
		FormatID:   "story_9_16",
		Width:      1080,
		Height:     1920,
		SVG:        "<svg></svg>",
		Overrides:  models.TextOverrides{Headline: "Terça em Dobro"},
	}
}

func TestNewSavedAsset(t *testing.T) {
	item := &models.ContentItem{ID: "item-1", Title: "Terça em Dobro", Channel: "Instagram Reel"}

	rec, err := NewSavedAsset(item, svgAsset())
	if err != nil {
		t.Fatalf("NewSavedAsset: %v", err)
	}
	if rec.ItemID != "item-1" || rec.ChannelID != "instagram" || rec.SubchannelID != "reels" {
		t.Errorf("back-reference: got item=%q channel=%s/%s", rec.ItemID, rec.ChannelID, rec.SubchannelID)
	}
	if rec.ChannelLabel != "Instagram Reel" {
		t.Errorf("ChannelLabel = %q", rec.ChannelLabel)
	}
	if rec.Width != 1080 || rec.Height != 1920 || rec.FormatID != "story_9_16" {
		t.Errorf("format: got %s %dx%d", rec.FormatID, rec.Width, rec.Height)
	}
	if rec.Overrides.Headline != "Terça em Dobro" {
		t.Errorf("override snapshot lost: %+v", rec.Overrides)
	}
}

func TestNewSavedAsset_Rejects(t *testing.T) {
	prompt := &models.GeneratedAsset{Kind: models.AssetKindPrompt, Prompt: &models.GeneratedPrompt{}}
	if _, err := NewSavedAsset(&models.ContentItem{ID: "x"}, prompt); !errors.Is(err, ErrNotSavable) {
		t.Errorf("prompt asset: got %v, want ErrNotSavable", err)
	}
	if _, err := NewSavedAsset(&models.ContentItem{}, svgAsset()); err == nil {
		t.Error("missing item id should fail")
	}
	for _, id := range []string{"", "billboard_48_14"} {
		a := svgAsset()
		a.FormatID = id
		if _, err := NewSavedAsset(&models.ContentItem{ID: "x"}, a); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("format %q: got %v, want ErrUnknownFormat", id, err)
		}
	}
}

func TestNewSavedAsset_SizeFromCatalog(t *testing.T) {
	a := svgAsset()
	a.Width, a.Height = 99999, 1

	rec, err := NewSavedAsset(&models.ContentItem{ID: "item-1"}, a)
	if err != nil {
		t.Fatalf("NewSavedAsset: %v", err)
	}
	if rec.Width != 1080 || rec.Height != 1920 {
		t.Errorf("size = %dx%d, want catalog 1080x1920", rec.Width, rec.Height)
	}
}

func TestAssetStore_CRUD(t *testing.T) {
	s := testStore()
	item := &models.ContentItem{ID: "item-1"}
	rec, _ := NewSavedAsset(item, svgAsset())

	created, err := s.Create(rec)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil || created.CreatedAt.IsZero() {
		t.Fatalf("Create did not assign id/timestamp: %+v", created)
	}

	found, err := s.FindByID(created.ID)
	if err != nil || found == nil {
		t.Fatalf("FindByID: got %v, %v", found, err)
	}
	if found.SVG != "<svg></svg>" {
		t.Errorf("SVG = %q", found.SVG)
	}

	found.SVG = "mutated"
	again, _ := s.FindByID(created.ID)
	if again.SVG == "mutated" {
		t.Error("FindByID returned shared state")
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := s.FindByID(created.ID)
	if err != nil || gone != nil {
		t.Errorf("after delete: got %v, %v; want nil, nil", gone, err)
	}
	if err := s.Delete(created.ID); err != nil {
		t.Errorf("second delete should be a no-op, got %v", err)
	}
}

func TestAssetStore_CreateRequiresItem(t *testing.T) {
	if _, err := testStore().Create(models.SavedAsset{}); err == nil {
		t.Error("expected error for missing item id")
	}
}

func TestAssetStore_ListByItem(t *testing.T) {
	s := testStore()
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		a, _ := s.Create(models.SavedAsset{ItemID: "item-1", Width: i})
		ids = append(ids, a.ID)
	}
	_, _ = s.Create(models.SavedAsset{ItemID: "item-2"})

	list, err := s.ListByItem("item-1", 0, 0)
	if err != nil {
		t.Fatalf("ListByItem: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	if list[0].ID != ids[2] || list[2].ID != ids[0] {
		t.Error("list should be newest first")
	}

	page, _ := s.ListByItem("item-1", 1, 1)
	if len(page) != 1 || page[0].ID != ids[1] {
		t.Errorf("page: got %+v", page)
	}

	empty, _ := s.ListByItem("item-1", 10, 10)
	if empty == nil || len(empty) != 0 {
		t.Errorf("offset past end: got %v, want empty slice", empty)
	}

	if _, err := s.ListByItem("item-1", 1, -1); err == nil {
		t.Error("negative offset should fail")
	}

	if s.Count() != 4 || s.CountByItem("item-1") != 3 {
		t.Errorf("counts: total=%d item-1=%d", s.Count(), s.CountByItem("item-1"))
	}
}

func TestAssetStore_Concurrent(t *testing.T) {
	s := NewAssetStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := s.Create(models.SavedAsset{ItemID: "item-1"})
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			_, _ = s.ListByItem("item-1", 0, 0)
			_, _ = s.FindByID(a.ID)
		}()
	}
	wg.Wait()

	if got := s.CountByItem("item-1"); got != 50 {
		t.Errorf("CountByItem = %d, want 50", got)
	}
}
