// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"creativestudio/internal/ai"
	"creativestudio/internal/catalog"
	"creativestudio/internal/taxonomy"
)

// providerView is a provider as listed to the editor.
type providerView struct {
	ai.Provider
	Available bool `json:"available"`
}

// Health reports liveness.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Channels lists every channel with its subchannels.
func (a *API) Channels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, taxonomy.ListChannels())
}

// Subchannels lists the subchannels of one channel.
func (a *API) Subchannels(w http.ResponseWriter, r *http.Request) {
	subs := taxonomy.ListSubchannels(chi.URLParam(r, "channelID"))
	if subs == nil {
		writeError(w, http.StatusNotFound, "channel not found")
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

// Formats lists the output formats. With ?channel= (and optionally
// ?subchannel=) only the formats that placement accepts are returned.
func (a *API) Formats(w http.ResponseWriter, r *http.Request) {
	channelID := r.URL.Query().Get("channel")
	if channelID == "" {
		writeJSON(w, http.StatusOK, catalog.ListCreativeFormats())
		return
	}

	_, sub := taxonomy.Resolve(channelID, r.URL.Query().Get("subchannel"))
	out := make([]catalog.CreativeFormat, 0, len(sub.Formats))
	for _, id := range sub.Formats {
		out = append(out, catalog.GetCreativeFormat(id))
	}
	writeJSON(w, http.StatusOK, out)
}

// Providers lists the creative providers. ?active=true limits the list to
// providers whose status is active.
func (a *API) Providers(w http.ResponseWriter, r *http.Request) {
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active"))

	var providers []ai.Provider
	if activeOnly {
		providers = a.registry.ListActiveProviders()
	} else {
		providers = a.registry.ListProviders()
	}

	out := make([]providerView, len(providers))
	for i, p := range providers {
		out[i] = providerView{Provider: p, Available: a.registry.IsProviderAvailable(p.ID)}
	}
	writeJSON(w, http.StatusOK, out)
}

// NotFound answers unknown routes with a JSON error.
func (a *API) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found")
}

// MethodNotAllowed answers known routes called with the wrong method.
func (a *API) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
