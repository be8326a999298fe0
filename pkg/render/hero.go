package render

import (
	"html/template"
	"strings"

	"github.com/quimera-ai/quimera/pkg/core"
)

var heroTemplate = `
<section class="section section-hero hero-{{.Data.String "variant" "split"}}"
  style="--bg: {{safeCSS .Colors.Background}}; --primary: {{safeCSS .Colors.Primary}}; --text: {{safeCSS .Colors.Text}};">
  {{with .Data.String "backgroundImage" ""}}
  <div class="hero-media"><img src="{{.}}" alt=""></div>
  {{end}}
  <div class="hero-body" style="text-align: {{safeCSS (.Data.String "textAlign" "left")}};">
    <h1>{{.Data.String "title" ""}}</h1>
    {{with .Data.String "subtitle" ""}}<p class="hero-subtitle">{{.}}</p>{{end}}
    {{with .Data.String "ctaText" ""}}
    <a class="hero-cta" href="{{$.Data.String "ctaLink" "#"}}">{{.}}</a>
    {{end}}
  </div>
</section>
`

func init() {
	RegisterRenderer(NewHeroRenderer())
}

// HeroRenderer renders the hero section with its variant-specific layout
// class.
type HeroRenderer struct {
	tmpl *template.Template
}

func NewHeroRenderer() *HeroRenderer {
	t := template.Must(template.New("hero_section").Funcs(GetTemplateFuncs()).Parse(heroTemplate))
	return &HeroRenderer{tmpl: t}
}

func (r *HeroRenderer) Render(section core.Section, colors core.GlobalColors) template.HTML {
	var buf strings.Builder
	data := TemplateData{Section: section, Data: section.Data, Colors: colors}
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return template.HTML("<!-- hero renderer error -->")
	}
	return template.HTML(buf.String())
}

func (r *HeroRenderer) CanRender(section core.Section) bool {
	return section.Type == "hero"
}

func (r *HeroRenderer) SectionType() string { return "hero" }
