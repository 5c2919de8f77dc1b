// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"bytes"
	"fmt"
	"text/template"
)

// guideTmpl is compiled once; a parse error is a programming error.
var guideTmpl = template.Must(template.New("guide").Parse(guideSource))

const guideSource = `# Production guide: {{.Title}}

| Field | Value |
|---|---|
| Channel | {{.ChannelLabel}} ({{.Placement}}) |
| Content type | {{.ContentType}} |
| Format | {{.Format.Label}}, {{.Format.Width}}x{{.Format.Height}} px ({{.Format.AspectRatio}}) |
| Product | {{.Product.Name}} |
| Brand | {{.Brand.Name}} |
| Archetype | {{.Brand.Archetype}} |
{{- if .Item.Date}}
| Publish date | {{.Item.Date}} |
{{- end}}

## 1. Pre-production checklist

- [ ] {{.Product.Name}} available, clean and styled for the shot
- [ ] Brand palette at hand: {{.Brand.Palette.Primary}}, {{.Brand.Palette.Secondary}}, {{.Brand.Palette.Accent}}, {{.Brand.Palette.Background}}
- [ ] Fonts installed: {{.Brand.Typography.Heading}}, {{.Brand.Typography.Body}}
- [ ] Canvas set to {{.Format.Width}}x{{.Format.Height}} px
{{- range .Brand.Mandatory}}
- [ ] Mandatory: {{.}}
{{- end}}

## 2. Visual style guide

- **Subject:** {{.Product.Name}}, {{.Product.Description}}
- **Mood:** {{.Brand.Tone}}
- **Look:** {{.Brand.VisualVibe}}
- **Archetype:** {{.Brand.Archetype}}
- **Safe zone:** {{.SafeZone}}
- **Accent color:** {{.Brand.Palette.Accent}}, only on the CTA and one highlight

{{if .Motion -}}
## 3. Video script

| Time | Picture | Text on screen |
|---|---|---|
| 0-3s | {{.Product.Name}} in the first frame | {{.Hook}} |
| 3-12s | Product in use, cuts on the beat | {{if .Caption}}{{.Caption}}{{else}}(none){{end}} |
| last 3s | CTA card with brand name | {{.CTA}} |

- **Music:** {{.Brand.MusicalVibe}}
- **Voice:** {{.Brand.Tone}}, natural pace
- **Captions:** burned in for every spoken line
{{- else -}}
## 3. Static design

- **Headline:** {{.Hook}}
{{- if .Caption}}
- **Supporting line:** {{.Caption}}
{{- end}}
- **CTA:** {{.CTA}}
- **Layout:** product as hero, headline in {{.Brand.Palette.Primary}}, CTA button in {{.Brand.Palette.Accent}}
- **Typography:** {{.Brand.Typography.Heading}} for the headline, {{.Brand.Typography.Body}} for the rest
{{- end}}

## 4. Disqualifying errors

{{range .Restrictions -}}
- {{.}}
{{end}}
## 5. Final checklist

- [ ] Exported at {{.Format.Width}}x{{.Format.Height}} px
- [ ] Copy matches exactly: "{{.Hook}}" / "{{.CTA}}"
- [ ] Nothing important inside the overlay areas
- [ ] Colors match the brand palette
{{- if .Motion}}
- [ ] Length between 15 and 30 seconds, audio levels checked
{{- end}}
- [ ] Approved for {{.Placement}}
`

// guideData extends Context with derived lists the template ranges over.
type guideData struct {
	Context
	Restrictions []string
}

func renderGuide(c Context) (string, error) {
	var buf bytes.Buffer
	if err := guideTmpl.Execute(&buf, guideData{Context: c, Restrictions: restrictions(c)}); err != nil {
		return "", fmt.Errorf("prompt: render guide: %w", err)
	}
	return buf.String(), nil
}
