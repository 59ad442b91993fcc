package topics

import "strings"

// Renderer turns raw topic content into terminal output. format is the
// topic file extension, ".md" for markdown.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics unchanged apart from a final newline.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
