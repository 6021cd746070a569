package terraformer

import (
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/ui"
	"github.com/spf13/cobra"
)

// Process exit codes
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitConfig      = 2
	ExitStorageRoot = 3
	ExitPrompt      = 4
)

// ExitError is an error that has already been shown to the user. main
// exits with Code without printing it again.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for an error returned by Execute
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitCodeFor(err)
}

func exitCodeFor(err error) int {
	switch errors.GetErrorCode(err) {
	case errors.ErrPrompt:
		return ExitPrompt
	case errors.ErrStorageRoot:
		return ExitStorageRoot
	case errors.ErrConfigLoad, errors.ErrConfigParse, errors.ErrInvalidInput, errors.ErrGroupNotFound:
		return ExitConfig
	default:
		return ExitFailure
	}
}

// output bundles the renderer chosen by --format with the format itself
type output struct {
	renderer ui.Renderer
	format   ui.Format
}

func newOutput(cmd *cobra.Command, opts *globalOptions) (*output, error) {
	format, err := ui.ParseFormat(opts.format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrFormat, err)
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}
	return &output{renderer: renderer, format: format}, nil
}

// machineReadable reports whether hints must stay off stdout
func (o *output) machineReadable() bool {
	return ui.IsMachineReadable(o.format)
}

// fail renders err and wraps it so main does not print it twice
func (o *output) fail(err error) error {
	_ = o.renderer.RenderError(err)
	return &ExitError{Code: exitCodeFor(err), Err: err}
}
