// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"creativestudio/internal/imaging"
	"creativestudio/internal/models"
	"creativestudio/internal/prompt"
)

// templateGenerator renders brand template variants locally.
type templateGenerator struct{}

func (templateGenerator) Generate(ctx context.Context, req Request) ([]models.GeneratedAsset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return imaging.GenerateTemplateVariants(imaging.Request{
		Item:      req.Item,
		Vaults:    req.Vaults,
		FormatID:  req.FormatID,
		Variants:  req.Variants,
		Overrides: req.Overrides,
	}), nil
}

// promptGenerator compiles the IDF prompt and guide into a single asset.
type promptGenerator struct{}

func (promptGenerator) Generate(ctx context.Context, req Request) ([]models.GeneratedAsset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := prompt.Resolve(&req.Item, req.Vaults, req.FormatID)
	p, err := prompt.Compile(c)
	if err != nil {
		return nil, fmt.Errorf("ai: compile prompt: %w", err)
	}
	return []models.GeneratedAsset{{
		ID:        uuid.New(),
		Kind:      models.AssetKindPrompt,
		FormatID:  c.Format.ID,
		Width:     c.Format.Width,
		Height:    c.Format.Height,
		Overrides: req.Overrides,
		Prompt:    &p,
		CreatedAt: time.Now().UTC(),
	}}, nil
}

// unimplementedGenerator backs providers that are listed as active but have
// no generation backend yet.
type unimplementedGenerator struct{}

func (unimplementedGenerator) Generate(context.Context, Request) ([]models.GeneratedAsset, error) {
	return nil, ErrNotImplemented
}
