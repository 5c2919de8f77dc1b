package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"creativestudio/internal/imaging"
	"creativestudio/internal/models"
	"creativestudio/internal/slug"
)

// loadItem reads a calendar item from a YAML file.
func loadItem(path string) (models.ContentItem, error) {
	var item models.ContentItem
	if err := readYAML(path, &item); err != nil {
		return models.ContentItem{}, fmt.Errorf("load item: %w", err)
	}
	return item, nil
}

// loadVaults reads brand vaults from a YAML file. An empty path yields
// empty vaults, which render with the built-in brand defaults.
func loadVaults(path string) (models.Vaults, error) {
	var v models.Vaults
	if path == "" {
		return v, nil
	}
	if err := readYAML(path, &v); err != nil {
		return models.Vaults{}, fmt.Errorf("load vaults: %w", err)
	}
	return v, nil
}

func readYAML(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// writeAssets writes each generated asset into dir and returns the paths
// written. Rendered assets produce an .svg plus its preview image; prompt
// assets produce the prompt text and the guide as Markdown and HTML.
func writeAssets(dir string, item *models.ContentItem, assets []models.GeneratedAsset) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	for _, a := range assets {
		var (
			paths []string
			err   error
		)
		if a.IsPrompt() {
			paths, err = writePrompt(dir, item, &a)
		} else {
			paths, err = writeVisual(dir, item, &a)
		}
		if err != nil {
			return written, err
		}
		written = append(written, paths...)
	}
	return written, nil
}

func writeVisual(dir string, item *models.ContentItem, a *models.GeneratedAsset) ([]string, error) {
	variant := fmt.Sprintf("v%d", a.Variant+1)
	svgPath := filepath.Join(dir, slug.Filename(".svg", item.Name(), a.FormatID, variant))
	if err := os.WriteFile(svgPath, []byte(a.SVG), 0o644); err != nil {
		return nil, fmt.Errorf("write svg: %w", err)
	}
	paths := []string{svgPath}

	mediaType, data, err := imaging.DecodePreview(a.PreviewURL)
	if err != nil || mediaType != "image/png" {
		// The SVG is the deliverable; a missing raster preview is not fatal.
		return paths, nil
	}
	pngPath := filepath.Join(dir, slug.Filename(".png", item.Name(), a.FormatID, variant))
	if err := os.WriteFile(pngPath, data, 0o644); err != nil {
		return paths, fmt.Errorf("write preview: %w", err)
	}
	return append(paths, pngPath), nil
}

func writePrompt(dir string, item *models.ContentItem, a *models.GeneratedAsset) ([]string, error) {
	if a.Prompt == nil {
		return nil, fmt.Errorf("write prompt: asset %s has no prompt", a.ID)
	}
	files := []struct {
		suffix  string
		ext     string
		content string
	}{
		{"prompt", ".txt", a.Prompt.AIPrompt},
		{"guide", ".md", a.Prompt.HumanGuide},
		{"guide", ".html", a.Prompt.HumanGuideHTML},
	}

	var paths []string
	for _, f := range files {
		if f.content == "" {
			continue
		}
		p := filepath.Join(dir, slug.Filename(f.ext, item.Name(), a.FormatID, f.suffix))
		if err := os.WriteFile(p, []byte(f.content), 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", f.suffix, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
