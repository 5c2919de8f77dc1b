// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"creativestudio/internal/ai"
	"creativestudio/internal/models"
)

// promptRequest is the body of POST /api/prompts.
type promptRequest struct {
	Item     models.ContentItem `json:"item"`
	Vaults   models.Vaults      `json:"vaults"`
	FormatID string             `json:"format_id,omitempty"`
}

// Generate runs one generation call against the requested provider.
// Generated assets are returned to the caller and not stored.
func (a *API) Generate(w http.ResponseWriter, r *http.Request) {
	var req ai.Request
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateRequest(&req.Item, req.Overrides); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if a.maxVariants > 0 && req.Variants > a.maxVariants {
		req.Variants = a.maxVariants
	}

	assets, err := a.registry.GenerateCreativeAssets(r.Context(), req)
	if err != nil {
		writeProviderError(w, r, err)
		return
	}

	slog.Info("creatives generated", "provider", req.ProviderID, "item", req.Item.ID, "count", len(assets))
	writeJSON(w, http.StatusOK, map[string]any{"assets": assets})
}

// Prompt compiles the instructional prompt and production guide for an
// item.
func (a *API) Prompt(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateRequest(&req.Item, models.TextOverrides{}); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	assets, err := a.registry.GenerateCreativeAssets(r.Context(), ai.Request{
		ProviderID: ai.ProviderIDFPrompt,
		Item:       req.Item,
		Vaults:     req.Vaults,
		FormatID:   req.FormatID,
	})
	if err != nil {
		writeProviderError(w, r, err)
		return
	}
	if len(assets) == 0 || assets[0].Prompt == nil {
		slog.Error("prompt provider returned no prompt", "item", req.Item.ID)
		writeError(w, http.StatusInternalServerError, "prompt compilation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"format_id": assets[0].FormatID,
		"prompt":    assets[0].Prompt,
	})
}
