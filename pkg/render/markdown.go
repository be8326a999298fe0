package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	markdownPolicy = bluemonday.UGCPolicy()
)

// Markdown converts markdown to sanitized HTML. Post bodies are authored as
// markdown; the sanitizer runs after conversion so raw HTML passthrough
// cannot smuggle script.
func Markdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(markdownPolicy.SanitizeBytes(buf.Bytes())), nil
}
