// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"errors"
	"fmt"
)

// Dispatch error kinds. Match them with errors.Is.
var (
	ErrProviderNotFound     = errors.New("provider not found")
	ErrProviderNotAvailable = errors.New("provider not available")
	ErrMissingCredential    = errors.New("missing credential")
	ErrNotImplemented       = errors.New("provider not implemented")
)

// ProviderError reports why a provider refused a request. Its message
// names the provider by label so callers can show it as is.
type ProviderError struct {
	ProviderID string
	Label      string
	Status     Status
	Credential string
	Err        error
}

func newProviderError(p *Provider, kind error) *ProviderError {
	return &ProviderError{
		ProviderID: p.ID,
		Label:      p.Label,
		Status:     p.Status,
		Credential: p.Credential,
		Err:        kind,
	}
}

func (e *ProviderError) Error() string {
	switch {
	case errors.Is(e.Err, ErrProviderNotFound):
		return fmt.Sprintf("ai: unknown provider %q: %v", e.ProviderID, e.Err)
	case errors.Is(e.Err, ErrProviderNotAvailable):
		if e.Status == StatusComingSoon {
			return fmt.Sprintf("ai: %s is coming soon: %v", e.Label, e.Err)
		}
		return fmt.Sprintf("ai: %s is %s: %v", e.Label, e.Status, e.Err)
	case errors.Is(e.Err, ErrMissingCredential):
		return fmt.Sprintf("ai: %s requires %s: %v", e.Label, e.Credential, e.Err)
	default:
		return fmt.Sprintf("ai: %s: %v", e.Label, e.Err)
	}
}

func (e *ProviderError) Unwrap() error { return e.Err }
