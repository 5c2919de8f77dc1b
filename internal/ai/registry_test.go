// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"creativestudio/internal/catalog"
	"creativestudio/internal/models"
)

// mockGenerator is a test double implementing Generator. It records calls
// and returns one empty asset per request.
type mockGenerator struct {
	mu        sync.Mutex
	callCount int
	lastReq   Request
	err       error
}

func (m *mockGenerator) Generate(ctx context.Context, req Request) ([]models.GeneratedAsset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return []models.GeneratedAsset{{FormatID: req.FormatID}}, nil
}

func (m *mockGenerator) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

func creds(values map[string]string) CredentialSource {
	return CredentialFunc(func(name string) string { return values[name] })
}

func promoItem() models.ContentItem {
	return models.ContentItem{ID: "item-1", Title: "Terça em Dobro", Format: "reel"}
}

// ---------- Listing ----------

func TestListProviders(t *testing.T) {
	reg := NewRegistry(nil)

	all := reg.ListProviders()
	if len(all) != 6 {
		t.Fatalf("ListProviders: got %d providers, want 6", len(all))
	}
	if all[0].ID != ProviderTemplate {
		t.Errorf("first provider: got %q, want %q", all[0].ID, ProviderTemplate)
	}

	for _, p := range reg.ListActiveProviders() {
		if p.Status != StatusActive {
			t.Errorf("ListActiveProviders returned %q with status %q", p.ID, p.Status)
		}
	}

	all[0].Capabilities[0] = "mutated"
	all[0].Label = "mutated"
	again, _ := reg.GetProvider(ProviderTemplate)
	if again.Label == "mutated" || again.Capabilities[0] == "mutated" {
		t.Error("mutating a listed provider leaked into the registry")
	}
}

func TestGetProvider(t *testing.T) {
	reg := NewRegistry(nil)

	p, ok := reg.GetProvider(ProviderMidjourney)
	if !ok {
		t.Fatal("midjourney should be registered")
	}
	if p.Status != StatusComingSoon || !p.RequiresCredential() {
		t.Errorf("midjourney: got status %q requiresCredential %v", p.Status, p.RequiresCredential())
	}
	if _, ok := reg.GetProvider("dall-e"); ok {
		t.Error("unknown provider should not be found")
	}
}

func TestIsProviderAvailable(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		creds map[string]string
		want  bool
	}{
		{name: "template needs nothing", id: ProviderTemplate, want: true},
		{name: "prompt needs nothing", id: ProviderIDFPrompt, want: true},
		{name: "gemini without key", id: ProviderGeminiImage, want: false},
		{name: "gemini with key", id: ProviderGeminiImage, creds: map[string]string{"GEMINI_API_KEY": "k"}, want: true},
		{name: "blank key counts as missing", id: ProviderGeminiImage, creds: map[string]string{"GEMINI_API_KEY": "  "}, want: false},
		{name: "coming soon with key", id: ProviderMidjourney, creds: map[string]string{"MIDJOURNEY_API_KEY": "k"}, want: false},
		{name: "disabled", id: ProviderCanva, creds: map[string]string{"CANVA_API_TOKEN": "k"}, want: false},
		{name: "unknown", id: "nope", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry(creds(tt.creds))
			if got := reg.IsProviderAvailable(tt.id); got != tt.want {
				t.Errorf("IsProviderAvailable(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

// ---------- Dispatch errors ----------

func TestGenerateCreativeAssets_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		creds     map[string]string
		wantErr   error
		wantInMsg string
	}{
		{name: "unknown provider", id: "dall-e", wantErr: ErrProviderNotFound, wantInMsg: "dall-e"},
		{name: "coming soon", id: ProviderMidjourney, creds: map[string]string{"MIDJOURNEY_API_KEY": "k"}, wantErr: ErrProviderNotAvailable, wantInMsg: "Midjourney"},
		{name: "disabled", id: ProviderCanva, wantErr: ErrProviderNotAvailable, wantInMsg: "Canva"},
		{name: "missing credential", id: ProviderGeminiImage, wantErr: ErrMissingCredential, wantInMsg: "GEMINI_API_KEY"},
		{name: "not implemented", id: ProviderGeminiImage, creds: map[string]string{"GEMINI_API_KEY": "k"}, wantErr: ErrNotImplemented, wantInMsg: "Gemini Image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry(creds(tt.creds))
			assets, err := reg.GenerateCreativeAssets(context.Background(), Request{ProviderID: tt.id, Item: promoItem()})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if assets != nil {
				t.Errorf("expected no assets, got %d", len(assets))
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error kind: got %v, want %v", err, tt.wantErr)
			}
			var pe *ProviderError
			if !errors.As(err, &pe) {
				t.Fatalf("error should be a *ProviderError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.wantInMsg) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantInMsg)
			}
		})
	}
}

// TestGenerateCreativeAssets_ComingSoonHasNoSideEffects verifies that a
// rejected provider never reaches its generator.
func TestGenerateCreativeAssets_ComingSoonHasNoSideEffects(t *testing.T) {
	gen := &mockGenerator{}
	reg := NewRegistryWith(nil, []Provider{
		{ID: "soon", Label: "Soon Studio", Status: StatusComingSoon, Generator: gen},
		{ID: "keyed", Label: "Keyed Studio", Status: StatusActive, Credential: "KEY", Generator: gen},
	})

	for _, id := range []string{"soon", "keyed"} {
		if _, err := reg.GenerateCreativeAssets(context.Background(), Request{ProviderID: id}); err == nil {
			t.Errorf("%s: expected error", id)
		}
	}
	if gen.calls() != 0 {
		t.Errorf("generator called %d times, want 0", gen.calls())
	}

	_, err := reg.GenerateCreativeAssets(context.Background(), Request{ProviderID: "soon"})
	if !strings.Contains(err.Error(), "Soon Studio") {
		t.Errorf("error %q should name the provider label", err)
	}
}

func TestGenerateCreativeAssets_NilGenerator(t *testing.T) {
	reg := NewRegistryWith(nil, []Provider{{ID: "bare", Label: "Bare", Status: StatusActive}})
	_, err := reg.GenerateCreativeAssets(context.Background(), Request{ProviderID: "bare"})
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("got %v, want ErrNotImplemented", err)
	}
}

func TestGenerateCreativeAssets_GeneratorErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	reg := NewRegistryWith(nil, []Provider{{ID: "x", Label: "X", Status: StatusActive, Generator: &mockGenerator{err: boom}}})
	_, err := reg.GenerateCreativeAssets(context.Background(), Request{ProviderID: "x"})
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want the generator error", err)
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		t.Error("generator errors should not be wrapped as provider errors")
	}
}

// ---------- Format constraint ----------

func TestGenerateCreativeAssets_ConstrainsFormat(t *testing.T) {
	tests := []struct {
		name   string
		item   models.ContentItem
		format string
		want   string
	}{
		{name: "allowed format kept", item: promoItem(), format: catalog.FormatStory9x16, want: catalog.FormatStory9x16},
		{name: "disallowed format replaced", item: promoItem(), format: catalog.FormatLandscape16x9, want: catalog.FormatReel9x16},
		{name: "empty format uses subchannel default", item: models.ContentItem{ChannelID: "youtube", SubchannelID: "video"}, want: catalog.FormatLandscape16x9},
		{name: "unknown format uses subchannel default", item: models.ContentItem{Channel: "Google Display"}, format: "poster", want: catalog.FormatLandscape191},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{}
			reg := NewRegistryWith(nil, []Provider{{ID: "m", Label: "Mock", Status: StatusActive, Generator: gen}})

			assets, err := reg.GenerateCreativeAssets(context.Background(), Request{ProviderID: "m", Item: tt.item, FormatID: tt.format})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gen.lastReq.FormatID != tt.want {
				t.Errorf("generator saw format %q, want %q", gen.lastReq.FormatID, tt.want)
			}
			if assets[0].ProviderID != "m" {
				t.Errorf("asset provider: got %q, want %q", assets[0].ProviderID, "m")
			}
		})
	}
}

// ---------- Built-in generators ----------

func TestGenerateCreativeAssets_TemplateScenario(t *testing.T) {
	reg := NewRegistry(nil)
	req := Request{
		ProviderID: ProviderTemplate,
		Item:       promoItem(),
		Vaults:     models.Vaults{Brand: models.BrandContext{Palette: models.Palette{Primary: "#FF4500"}}},
		FormatID:   catalog.FormatStory9x16,
		Variants:   3,
	}

	assets, err := reg.GenerateCreativeAssets(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateCreativeAssets: %v", err)
	}
	if len(assets) != 3 {
		t.Fatalf("got %d assets, want 3", len(assets))
	}
	for i, a := range assets {
		if a.Width != 1080 || a.Height != 1920 {
			t.Errorf("asset %d: got %dx%d, want 1080x1920", i, a.Width, a.Height)
		}
		if a.ProviderID != ProviderTemplate {
			t.Errorf("asset %d provider: got %q", i, a.ProviderID)
		}
		if !strings.Contains(a.SVG, "Terça em Dobro") {
			t.Errorf("asset %d does not contain the headline", i)
		}
	}
}

func TestGenerateCreativeAssets_Prompt(t *testing.T) {
	reg := NewRegistry(nil)
	assets, err := reg.GenerateCreativeAssets(context.Background(), Request{ProviderID: ProviderIDFPrompt, Item: promoItem()})
	if err != nil {
		t.Fatalf("GenerateCreativeAssets: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("got %d assets, want 1", len(assets))
	}
	a := assets[0]
	if !a.IsPrompt() || a.Prompt == nil {
		t.Fatalf("expected a prompt asset, got kind %q", a.Kind)
	}
	if a.FormatID != catalog.FormatReel9x16 {
		t.Errorf("format: got %q, want %q", a.FormatID, catalog.FormatReel9x16)
	}
	if !strings.Contains(a.Prompt.AIPrompt, "Terça em Dobro") {
		t.Error("prompt should carry the item title")
	}
}

func TestGenerateCreativeAssets_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRegistry(nil).GenerateCreativeAssets(ctx, Request{ProviderID: ProviderTemplate})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

// ---------- Concurrency ----------

func TestRegistryConcurrentGenerate(t *testing.T) {
	reg := NewRegistry(nil)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := reg.GenerateCreativeAssets(context.Background(), Request{ProviderID: ProviderTemplate, Item: promoItem(), Variants: 2})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("concurrent generate: %v", err)
		}
	}
}
