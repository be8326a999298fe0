package render

import (
	"html/template"
	"strings"

	"github.com/quimera-ai/quimera/pkg/core"
)

// defaultTemplate is the fallback markup used when no specific renderer
// claims a section. It surfaces the title and content keys most section
// kinds carry, so a page survives a section type this build does not know.
var defaultTemplate = `
<section class="section section-{{.Section.Type}}" style="--bg: {{safeCSS .Colors.Background}}; --text: {{safeCSS .Colors.Text}};">
  {{with .Data.String "title" ""}}
  <h2 class="section-title">{{.}}</h2>
  {{end}}
  {{with .Data.String "content" ""}}
  <div class="section-content">{{.}}</div>
  {{end}}
</section>
`

// DefaultRenderer provides generic rendering when no specific renderer
// matches.
type DefaultRenderer struct {
	tmpl *template.Template
}

func NewDefaultRenderer() *DefaultRenderer {
	t, err := template.New("default_section").Funcs(GetTemplateFuncs()).Parse(defaultTemplate)
	if err != nil {
		// Fail closed but return a minimal renderer to avoid panics downstream.
		fallback, _ := template.New("fallback").Parse("<section></section>")
		return &DefaultRenderer{tmpl: fallback}
	}
	return &DefaultRenderer{tmpl: t}
}

func (r *DefaultRenderer) Render(section core.Section, colors core.GlobalColors) template.HTML {
	var buf strings.Builder
	data := TemplateData{Section: section, Data: section.Data, Colors: colors}
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return template.HTML("<!-- default renderer error -->")
	}
	return template.HTML(buf.String())
}

// CanRender always returns true (catch-all fallback).
func (r *DefaultRenderer) CanRender(section core.Section) bool { return true }

func (r *DefaultRenderer) SectionType() string { return "" }
