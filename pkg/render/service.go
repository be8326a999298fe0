package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/quimera-ai/quimera/pkg/core"
)

var pageShell = template.Must(template.New("page_shell").Funcs(GetTemplateFuncs()).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{with .Description}}<meta name="description" content="{{.}}">{{end}}
<style>
:root {
  --bg: {{safeCSS .Colors.Background}};
  --primary: {{safeCSS .Colors.Primary}};
  --secondary: {{safeCSS .Colors.Secondary}};
  --accent: {{safeCSS .Colors.Accent}};
  --text: {{safeCSS .Colors.Text}};
}
body { margin: 0; background: var(--bg); color: var(--text); font-family: system-ui, sans-serif; }
.section { padding: 3rem 1.5rem; }
</style>
{{range .HeadSnippets}}{{safeHTML .}}
{{end}}
</head>
<body>
{{range .Sections}}{{.}}
{{end}}
</body>
</html>
`))

// PageData is the assembled input for a full page render.
type PageData struct {
	Title        string
	Description  string
	Colors       core.GlobalColors
	Sections     []template.HTML
	HeadSnippets []string
}

// Service produces complete HTML pages from stored sections. It is used by
// the public site handlers and by the preview iframe.
type Service struct {
	registry *RendererRegistry
}

func NewService(registry *RendererRegistry) *Service {
	if registry == nil {
		registry = GetGlobalRegistry()
	}
	return &Service{registry: registry}
}

// RenderPage assembles the given sections into a full document. Disabled
// sections are skipped; the palette is read from the globalstyles section
// when present, falling back to the defaults.
func (s *Service) RenderPage(title string, sections []core.Section, headSnippets []string) (template.HTML, error) {
	colors := core.DefaultColors
	for _, section := range sections {
		if section.Type == "globalstyles" {
			colors = colorsFromData(section.Data)
			break
		}
	}

	var rendered []template.HTML
	for _, section := range sections {
		if !section.Enabled {
			continue
		}
		if section.Type == "globalstyles" || section.Type == "typography" {
			continue
		}
		rendered = append(rendered, s.registry.Render(section, colors))
	}

	var buf strings.Builder
	err := pageShell.Execute(&buf, PageData{
		Title:        title,
		Colors:       colors,
		Sections:     rendered,
		HeadSnippets: headSnippets,
	})
	if err != nil {
		return "", fmt.Errorf("rendering page %s: %w", title, err)
	}
	return template.HTML(buf.String()), nil
}

// RenderPost converts a blog post's markdown body and wraps it in the page
// shell.
func (s *Service) RenderPost(item core.NewsItem, colors core.GlobalColors, headSnippets []string) (template.HTML, error) {
	body, err := Markdown(item.Body)
	if err != nil {
		return "", err
	}

	article := template.HTML(fmt.Sprintf(
		`<section class="section section-post"><article><h1>%s</h1><div class="post-meta">%s</div>%s</article></section>`,
		template.HTMLEscapeString(item.Title),
		template.HTMLEscapeString(FormatDate(item.CreatedAt)),
		body,
	))

	title := item.SEOTitle
	if title == "" {
		title = item.Title
	}

	var buf strings.Builder
	err = pageShell.Execute(&buf, PageData{
		Title:        title,
		Description:  item.SEODesc,
		Colors:       colors,
		Sections:     []template.HTML{article},
		HeadSnippets: headSnippets,
	})
	if err != nil {
		return "", fmt.Errorf("rendering post %s: %w", item.Slug, err)
	}
	return template.HTML(buf.String()), nil
}

func colorsFromData(data core.SectionData) core.GlobalColors {
	def := core.DefaultColors
	return core.GlobalColors{
		Background: data.StringAt("colors.background", def.Background),
		Primary:    data.StringAt("colors.primary", def.Primary),
		Secondary:  data.StringAt("colors.secondary", def.Secondary),
		Accent:     data.StringAt("colors.accent", def.Accent),
		Text:       data.StringAt("colors.text", def.Text),
	}
}
