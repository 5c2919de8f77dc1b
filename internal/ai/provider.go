// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai holds the creative provider registry. Every provider is a
// static descriptor carrying its Generator; the Registry validates status
// and credentials, constrains the format to the item's subchannel, then
// hands the request to that generator. Dispatch has no side effects of its
// own, so adding a provider never touches the existing ones.
package ai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"creativestudio/internal/copytext"
	"creativestudio/internal/models"
	"creativestudio/internal/taxonomy"
)

// Status is the lifecycle state of a provider.
type Status string

const (
	StatusActive     Status = "active"
	StatusComingSoon Status = "coming_soon"
	StatusDisabled   Status = "disabled"
)

// Capability tags what a provider produces.
type Capability string

const (
	CapabilitySVG      Capability = "svg"
	CapabilityVariants Capability = "variants"
	CapabilityPrompt   Capability = "prompt"
	CapabilityImage    Capability = "image"
)

// Provider ids.
const (
	ProviderTemplate    = "template"
	ProviderIDFPrompt   = "idf_prompt"
	ProviderGeminiImage = "gemini_image"
	ProviderOpenAIImage = "openai_image"
	ProviderMidjourney  = "midjourney"
	ProviderCanva       = "canva"
)

// Request is one generation call. The registry passes generators a copy
// with FormatID already constrained to the item's subchannel.
type Request struct {
	ProviderID string               `json:"provider_id"`
	Item       models.ContentItem   `json:"item"`
	Vaults     models.Vaults        `json:"vaults"`
	FormatID   string               `json:"format_id,omitempty"`
	Variants   int                  `json:"variants,omitempty"`
	Overrides  models.TextOverrides `json:"overrides,omitempty"`
}

// Generator produces assets for a validated request. Implementations must
// not share mutable state between calls.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]models.GeneratedAsset, error)
}

// Provider describes one creative backend.
type Provider struct {
	ID           string       `json:"id"`
	Label        string       `json:"label"`
	Status       Status       `json:"status"`
	Credential   string       `json:"credential,omitempty"` // config key, empty when none is needed
	Capabilities []Capability `json:"capabilities"`
	Generator    Generator    `json:"-"`
}

// RequiresCredential reports whether the provider needs a configured secret.
func (p *Provider) RequiresCredential() bool {
	return p.Credential != ""
}

// CredentialSource resolves a credential name to its configured value.
// An empty value means the credential is absent.
type CredentialSource interface {
	Credential(name string) string
}

// CredentialFunc adapts a function to CredentialSource.
type CredentialFunc func(name string) string

// Credential calls f(name).
func (f CredentialFunc) Credential(name string) string { return f(name) }

// builtinProviders returns the provider table in display order.
func builtinProviders() []Provider {
	return []Provider{
		{ID: ProviderTemplate, Label: "Brand Template", Status: StatusActive,
			Capabilities: []Capability{CapabilitySVG, CapabilityVariants}, Generator: templateGenerator{}},
		{ID: ProviderIDFPrompt, Label: "IDF Prompt", Status: StatusActive,
			Capabilities: []Capability{CapabilityPrompt}, Generator: promptGenerator{}},
		{ID: ProviderGeminiImage, Label: "Gemini Image", Status: StatusActive, Credential: "GEMINI_API_KEY",
			Capabilities: []Capability{CapabilityImage}, Generator: unimplementedGenerator{}},
		{ID: ProviderOpenAIImage, Label: "OpenAI Images", Status: StatusComingSoon, Credential: "OPENAI_API_KEY",
			Capabilities: []Capability{CapabilityImage}},
		{ID: ProviderMidjourney, Label: "Midjourney", Status: StatusComingSoon, Credential: "MIDJOURNEY_API_KEY",
			Capabilities: []Capability{CapabilityImage}},
		{ID: ProviderCanva, Label: "Canva", Status: StatusDisabled, Credential: "CANVA_API_TOKEN",
			Capabilities: []Capability{CapabilitySVG}},
	}
}

// Registry is an immutable provider table. It is safe for concurrent use.
type Registry struct {
	providers []Provider
	index     map[string]int
	creds     CredentialSource
}

// NewRegistry creates a registry over the built-in providers. A nil creds
// treats every credential as absent.
func NewRegistry(creds CredentialSource) *Registry {
	return NewRegistryWith(creds, builtinProviders())
}

// NewRegistryWith creates a registry over a custom provider table. Later
// entries with a duplicate id are ignored.
func NewRegistryWith(creds CredentialSource, providers []Provider) *Registry {
	if creds == nil {
		creds = CredentialFunc(func(string) string { return "" })
	}
	r := &Registry{index: make(map[string]int, len(providers)), creds: creds}
	for _, p := range providers {
		if _, dup := r.index[p.ID]; dup {
			continue
		}
		r.index[p.ID] = len(r.providers)
		r.providers = append(r.providers, copyProvider(p))
	}
	return r
}

// ListProviders returns every provider in display order.
func (r *Registry) ListProviders() []Provider {
	out := make([]Provider, len(r.providers))
	for i, p := range r.providers {
		out[i] = copyProvider(p)
	}
	return out
}

// ListActiveProviders returns the providers whose status is active.
// Credentials are not checked; see IsProviderAvailable.
func (r *Registry) ListActiveProviders() []Provider {
	var out []Provider
	for _, p := range r.providers {
		if p.Status == StatusActive {
			out = append(out, copyProvider(p))
		}
	}
	return out
}

// GetProvider looks a provider up by id.
func (r *Registry) GetProvider(id string) (Provider, bool) {
	i, ok := r.index[id]
	if !ok {
		return Provider{}, false
	}
	return copyProvider(r.providers[i]), true
}

// IsProviderAvailable reports whether a generation call with this provider
// would pass validation.
func (r *Registry) IsProviderAvailable(id string) bool {
	_, err := r.validate(id)
	return err == nil
}

// GenerateCreativeAssets validates the provider, constrains the format to
// the item's subchannel and runs the provider's generator. Validation
// failures are *ProviderError values; nothing is generated when one occurs.
func (r *Registry) GenerateCreativeAssets(ctx context.Context, req Request) ([]models.GeneratedAsset, error) {
	p, err := r.validate(req.ProviderID)
	if err != nil {
		slog.Warn("provider rejected", "provider", req.ProviderID, "error", err)
		return nil, err
	}
	if p.Generator == nil {
		return nil, newProviderError(p, ErrNotImplemented)
	}

	sel := taxonomy.ResolveItemChannel(&req.Item)
	req.FormatID = taxonomy.ResolveFormatID(sel.ChannelID, sel.SubchannelID,
		copytext.FirstNonEmpty(req.FormatID, req.Item.Format))

	assets, err := p.Generator.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, ErrNotImplemented) {
			return nil, newProviderError(p, ErrNotImplemented)
		}
		return nil, err
	}
	for i := range assets {
		assets[i].ProviderID = p.ID
	}

	slog.Debug("creative assets generated",
		"provider", p.ID,
		"item", req.Item.ID,
		"channel", sel.ChannelID+"/"+sel.SubchannelID,
		"format", req.FormatID,
		"count", len(assets),
	)
	return assets, nil
}

// validate runs the dispatch checks in order: existence, status, credential.
func (r *Registry) validate(id string) (*Provider, error) {
	i, ok := r.index[strings.TrimSpace(id)]
	if !ok {
		return nil, &ProviderError{ProviderID: id, Err: ErrProviderNotFound}
	}
	p := &r.providers[i]
	if p.Status != StatusActive {
		return nil, newProviderError(p, ErrProviderNotAvailable)
	}
	if p.RequiresCredential() && strings.TrimSpace(r.creds.Credential(p.Credential)) == "" {
		return nil, newProviderError(p, ErrMissingCredential)
	}
	return p, nil
}

func copyProvider(p Provider) Provider {
	p.Capabilities = append([]Capability(nil), p.Capabilities...)
	return p
}
