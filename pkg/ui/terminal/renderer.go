// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/terraformer/pkg/display"
	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/style"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
	rich   *display.RichRenderer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output: w,
		rich:   display.NewRichRenderer(),
	}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var out string
	switch v := result.(type) {
	case *display.CommandResult:
		out = r.rich.RenderCommandResult(v)
	case *display.StatusResult:
		out = r.rich.RenderStatus(v)
	case *display.DiscoverResult:
		out = r.rich.RenderDiscover(v)
	case *display.MessageResult:
		return r.RenderMessage(v.Message)
	default:
		// For unknown types, just print them
		out = fmt.Sprintf("%+v\n", result)
	}
	_, err := fmt.Fprint(r.output, out)
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		msg = fmt.Sprintf("%s %s", style.MutedStyle.Render("["+string(code)+"]"), msg)
	}
	_, werr := fmt.Fprintf(r.output, "%s %s\n", style.ErrorIndicator, style.ErrorStyle.Render(msg))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.InfoStyle.Render(msg))
	return err
}
