// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the API handler
// tests: a registry with configurable credentials, an empty asset library
// and a chi router carrying the same routes as the server.
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"creativestudio/internal/ai"
	"creativestudio/internal/models"
	"creativestudio/internal/store"
)

type testEnv struct {
	api    *API
	assets *store.AssetStore
	router chi.Router
}

// newTestEnv builds an API over the built-in providers. creds maps
// credential names to values; missing names are absent.
func newTestEnv(t *testing.T, creds map[string]string, maxVariants int) *testEnv {
	t.Helper()

	registry := ai.NewRegistry(ai.CredentialFunc(func(name string) string { return creds[name] }))
	assets := store.NewAssetStore()
	api := NewAPI(registry, assets, maxVariants)

	r := chi.NewRouter()
	r.Get("/health", api.Health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/channels", api.Channels)
		r.Get("/channels/{channelID}/subchannels", api.Subchannels)
		r.Get("/formats", api.Formats)
		r.Get("/providers", api.Providers)
		r.Post("/creatives/generate", api.Generate)
		r.Post("/prompts", api.Prompt)
		r.Get("/items/{itemID}/assets", api.ListItemAssets)
		r.Post("/items/{itemID}/assets", api.SaveAsset)
		r.Get("/assets/{id}", api.GetAsset)
		r.Delete("/assets/{id}", api.DeleteAsset)
		r.Get("/assets/{id}/preview.png", api.AssetPreview)
		r.Get("/assets/{id}/download.svg", api.AssetDownload)
	})

	return &testEnv{api: api, assets: assets, router: r}
}

// do sends a request through the router. A non-nil body is JSON encoded.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a JSON response body into dst.
func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func promoItem() models.ContentItem {
	return models.ContentItem{
		ID:      "item-42",
		Title:   "Terça em Dobro",
		Channel: "Instagram Stories",
		Format:  "story",
		CTA:     "Peça já",
	}
}

func promoVaults() models.Vaults {
	return models.Vaults{
		Brand: models.BrandContext{
			Name: "Pizzaria Roma",
			Palette: models.Palette{
				Primary:    "#FF4500",
				Secondary:  "#1A1A1A",
				Accent:     "#FFD166",
				Background: "#FFF8F0",
			},
		},
		Products: []models.Product{{ID: "p1", Name: "Margherita", Hero: true}},
	}
}

// generateOne renders a single template asset for the promo item.
func (e *testEnv) generateOne(t *testing.T) models.GeneratedAsset {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/creatives/generate", ai.Request{
		ProviderID: ai.ProviderTemplate,
		Item:       promoItem(),
		Vaults:     promoVaults(),
		Variants:   1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("generate: status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Assets []models.GeneratedAsset `json:"assets"`
	}
	decode(t, w, &resp)
	if len(resp.Assets) != 1 {
		t.Fatalf("generate: got %d assets, want 1", len(resp.Assets))
	}
	return resp.Assets[0]
}
