// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers of the creative studio JSON
// API: catalog lookups, generation, prompt compilation and the asset
// library.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"creativestudio/internal/ai"
	"creativestudio/internal/store"
)

// API groups the JSON endpoints and their dependencies.
type API struct {
	registry    *ai.Registry
	assets      *store.AssetStore
	maxVariants int
}

// NewAPI creates a new API handler group. A non-positive maxVariants
// disables the variant cap.
func NewAPI(registry *ai.Registry, assets *store.AssetStore, maxVariants int) *API {
	return &API{
		registry:    registry,
		assets:      assets,
		maxVariants: maxVariants,
	}
}

// writeJSON encodes data as JSON with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode json response failed", "error", err)
	}
}

// writeError sends {"error": msg} with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads the request body into dst. It writes the error response
// itself and returns false when the body is unusable.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// writeProviderError maps a dispatch failure onto an HTTP status. Provider
// errors carry a message meant for the editor; anything else is logged and
// reported as an internal error.
func writeProviderError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *ai.ProviderError
	if !errors.As(err, &perr) {
		if r.Context().Err() != nil {
			slog.Warn("generation cancelled", "error", err)
			writeError(w, http.StatusServiceUnavailable, "request cancelled")
			return
		}
		slog.Error("generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "generation failed")
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ai.ErrProviderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ai.ErrProviderNotAvailable):
		status = http.StatusConflict
	case errors.Is(err, ai.ErrMissingCredential):
		status = http.StatusPreconditionFailed
	case errors.Is(err, ai.ErrNotImplemented):
		status = http.StatusNotImplemented
	}
	writeJSON(w, status, map[string]string{
		"error":    perr.Error(),
		"provider": perr.ProviderID,
	})
}
