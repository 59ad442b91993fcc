package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other formats
// fall through to PlainRenderer.
type GlamourRenderer struct {
	Style string // "auto", "dark", "light", "notty" or a style file path
	Width int    // word wrap column, 0 for glamour's default
}

// NewGlamourRenderer auto-detects the style, or uses "notty" when NO_COLOR
// is set.
func NewGlamourRenderer() *GlamourRenderer {
	style := "auto"
	if os.Getenv("NO_COLOR") != "" {
		style = "notty"
	}
	return &GlamourRenderer{Style: style}
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	return options
}

func (r *GlamourRenderer) Render(content string, format string) string {
	plain := &PlainRenderer{}
	if format != ".md" {
		return plain.Render(content, format)
	}

	tr, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		return plain.Render(content, format)
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return plain.Render(content, format)
	}
	return rendered
}
