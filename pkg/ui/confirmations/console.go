// Package confirmations provides UI implementations for confirmation dialogs.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/arthur-debert/terraformer/pkg/logging"
)

// PromptFormat is the question shown before an existing path is overwritten
const PromptFormat = "⚠️  %s already exists. Overwrite it? (yes/no): "

// ConsoleConfirmer asks yes/no questions on a line oriented console.
// Only a literal "yes" (any case, surrounding blanks ignored) approves.
type ConsoleConfirmer struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleConfirmer creates a confirmer reading answers from in and
// writing prompts to out
func NewConsoleConfirmer(in io.Reader, out io.Writer) *ConsoleConfirmer {
	return &ConsoleConfirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm prompts for path and waits for one line of input. A closed or
// failing input is an error, not a decline.
func (c *ConsoleConfirmer) Confirm(path string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	logger := logging.GetLogger("confirmations")

	if _, err := fmt.Fprintf(c.out, PromptFormat, path); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return false, fmt.Errorf("no answer for %s: input closed", path)
		}
		return false, fmt.Errorf("failed to read answer for %s: %w", path, err)
	}

	approved := strings.EqualFold(strings.TrimSpace(line), "yes")
	logger.Debug().
		Str("path", path).
		Bool("approved", approved).
		Msg("Overwrite confirmation answered")

	return approved, nil
}
