// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"creativestudio/internal/imaging"
	"creativestudio/internal/models"
	"creativestudio/internal/slug"
	"creativestudio/internal/store"
)

const (
	defaultAssetPageSize = 20
	maxAssetPageSize     = 100
)

// saveAssetRequest is the body of POST /api/items/{itemID}/assets.
type saveAssetRequest struct {
	Item  models.ContentItem    `json:"item"`
	Asset models.GeneratedAsset `json:"asset"`
}

// SaveAsset keeps one generated asset in the library against an item.
func (a *API) SaveAsset(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if msg := validateItemID(itemID); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var req saveAssetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Item.ID == "" {
		req.Item.ID = itemID
	}
	if req.Item.ID != itemID {
		writeError(w, http.StatusBadRequest, "Item id does not match the URL.")
		return
	}
	if msg := validateRequest(&req.Item, req.Asset.Overrides); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	rec, err := store.NewSavedAsset(&req.Item, &req.Asset)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotSavable):
			writeError(w, http.StatusUnprocessableEntity, "Only rendered assets can be saved.")
			return
		case errors.Is(err, store.ErrUnknownFormat):
			writeError(w, http.StatusUnprocessableEntity, "Unknown creative format.")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := a.assets.Create(rec)
	if err != nil {
		slog.Error("save asset failed", "error", err, "item", itemID)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	slog.Info("asset saved", "asset_id", saved.ID, "item", itemID, "format", saved.FormatID)
	writeJSON(w, http.StatusCreated, saved)
}

// ListItemAssets lists an item's saved assets newest first.
// Supports ?limit= (max 100) and ?offset=.
func (a *API) ListItemAssets(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if msg := validateItemID(itemID); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	limit, ok := queryInt(r, "limit", defaultAssetPageSize)
	if !ok || limit < 1 {
		writeError(w, http.StatusBadRequest, "Invalid limit.")
		return
	}
	limit = min(limit, maxAssetPageSize)
	offset, ok := queryInt(r, "offset", 0)
	if !ok || offset < 0 {
		writeError(w, http.StatusBadRequest, "Invalid offset.")
		return
	}

	assets, err := a.assets.ListByItem(itemID, limit, offset)
	if err != nil {
		slog.Error("list assets failed", "error", err, "item", itemID)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"assets": assets,
		"total":  a.assets.CountByItem(itemID),
	})
}

// GetAsset returns one saved asset.
func (a *API) GetAsset(w http.ResponseWriter, r *http.Request) {
	asset, ok := a.findAsset(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// AssetPreview serves the raster preview of a saved asset.
func (a *API) AssetPreview(w http.ResponseWriter, r *http.Request) {
	asset, ok := a.findAsset(w, r)
	if !ok {
		return
	}

	mediaType, data, err := imaging.DecodePreview(asset.PreviewURL)
	if err != nil {
		slog.Warn("asset preview unreadable", "asset_id", asset.ID, "error", err)
		writeError(w, http.StatusNotFound, "Preview not available.")
		return
	}

	w.Header().Set("Content-Type", mediaType)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// AssetDownload serves the SVG markup of a saved asset as an attachment
// named after the item title and format.
func (a *API) AssetDownload(w http.ResponseWriter, r *http.Request) {
	asset, ok := a.findAsset(w, r)
	if !ok {
		return
	}

	name := slug.Filename(".svg", asset.Title, asset.FormatID)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(asset.SVG))
}

// DeleteAsset removes a saved asset from the library.
func (a *API) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	asset, ok := a.findAsset(w, r)
	if !ok {
		return
	}
	if err := a.assets.Delete(asset.ID); err != nil {
		slog.Error("delete asset failed", "error", err, "asset_id", asset.ID)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	slog.Info("asset deleted", "asset_id", asset.ID, "item", asset.ItemID)
	w.WriteHeader(http.StatusNoContent)
}

// findAsset loads the asset named by the {id} URL parameter. It writes the
// error response itself and returns false when there is nothing to serve.
func (a *API) findAsset(w http.ResponseWriter, r *http.Request) (*models.SavedAsset, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return nil, false
	}

	asset, err := a.assets.FindByID(id)
	if err != nil {
		slog.Error("asset lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return nil, false
	}
	if asset == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return nil, false
	}
	return asset, true
}

// queryInt reads an integer query parameter, returning fallback when it is
// absent.
func queryInt(r *http.Request, key string, fallback int) (int, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
