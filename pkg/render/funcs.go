package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/quimera-ai/quimera/pkg/core"
)

// TemplateData is the payload handed to every section template.
type TemplateData struct {
	Section core.Section
	Data    core.SectionData
	Colors  core.GlobalColors
}

// FormatDate formats publication dates for the blog pages.
func FormatDate(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)
	switch {
	case diff < time.Hour:
		return "just now"
	case diff < 24*time.Hour:
		h := int(diff.Hours())
		if h == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", h)
	case diff < 7*24*time.Hour:
		d := int(diff.Hours() / 24)
		if d == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", d)
	default:
		return t.Format("Jan 2, 2006")
	}
}

func GetTemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": FormatDate,
		"htmlEscape": template.HTMLEscapeString,
		"safeHTML":   func(s string) template.HTML { return template.HTML(s) },
		"safeCSS":    func(s string) template.CSS { return template.CSS(s) },

		"truncate": func(s string, length int) string {
			if len(s) <= length {
				return s
			}
			if length <= 3 {
				return s[:length]
			}
			return s[:length-3] + "..."
		},

		"default": func(def, val any) any {
			if val == nil {
				return def
			}
			if v, ok := val.(string); ok && v == "" {
				return def
			}
			return val
		},

		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"title":    cases.Title(language.English).String,
		"trim":     strings.TrimSpace,
		"join":     strings.Join,
		"contains": strings.Contains,

		"asMap": func(v any) map[string]any {
			if m, ok := v.(map[string]any); ok {
				return m
			}
			return map[string]any{}
		},
		"asSlice": func(v any) []any {
			if s, ok := v.([]any); ok {
				return s
			}
			return []any{}
		},
	}
}
