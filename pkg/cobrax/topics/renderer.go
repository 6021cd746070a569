package topics

import (
	"github.com/arthur-debert/terraformer/pkg/ui/markdown"
	"github.com/charmbracelet/glamour"
)

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer is the default renderer that returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// MarkdownRenderer styles .md topics the way markdown command output is
// styled. Other extensions, or a renderer glamour failed to build, pass
// content through.
type MarkdownRenderer struct {
	term *glamour.TermRenderer
}

// NewMarkdownRenderer builds the glamour renderer once for every topic
func NewMarkdownRenderer() *MarkdownRenderer {
	term, err := markdown.NewTermRenderer()
	if err != nil {
		return &MarkdownRenderer{}
	}
	return &MarkdownRenderer{term: term}
}

// Render implements Renderer
func (r *MarkdownRenderer) Render(content string, format string) string {
	if format != ".md" || r.term == nil {
		return content
	}
	rendered, err := r.term.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
