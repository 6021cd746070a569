// Package markdown renders results as markdown through glamour
package markdown

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// Markdowner is implemented by results with a markdown rendition
type Markdowner interface {
	Markdown() string
}

// Renderer converts markdown to styled terminal output
type Renderer struct {
	output io.Writer
	term   *glamour.TermRenderer
}

// WordWrap is the column markdown output wraps at
const WordWrap = 100

// NewTermRenderer returns the glamour renderer shared by command output and
// help topics: auto style detection, wrapped at WordWrap
func NewTermRenderer() (*glamour.TermRenderer, error) {
	term, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(WordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return term, nil
}

// New creates a markdown renderer writing to output
func New(output io.Writer) (*Renderer, error) {
	term, err := NewTermRenderer()
	if err != nil {
		return nil, err
	}
	return &Renderer{output: output, term: term}, nil
}

// RenderResult renders results that know their markdown form; anything
// else is printed as a code block
func (r *Renderer) RenderResult(result interface{}) error {
	if md, ok := result.(Markdowner); ok {
		return r.render(md.Markdown())
	}
	return r.render(fmt.Sprintf("```\n%+v\n```\n", result))
}

// RenderError renders an error as a quoted block
func (r *Renderer) RenderError(err error) error {
	return r.render(fmt.Sprintf("> **Error:** %s\n", err.Error()))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.render(msg + "\n")
}

func (r *Renderer) render(content string) error {
	rendered, err := r.term.Render(content)
	if err != nil {
		// Fallback to plain text on error
		rendered = content
	}
	_, err = fmt.Fprint(r.output, rendered)
	return err
}
