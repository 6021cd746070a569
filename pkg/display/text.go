package display

import (
	"fmt"
	"io"
)

// TextRenderer provides minimal text output without styling
type TextRenderer struct {
	writer io.Writer
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{writer: w}
}

// RenderCommandResult writes a backup or restore run
func (r *TextRenderer) RenderCommandResult(result *CommandResult) error {
	if result == nil {
		return nil
	}

	header := result.Command
	if result.DryRun {
		header += " (dry run)"
	}
	if _, err := fmt.Fprintln(r.writer, header); err != nil {
		return err
	}

	if len(result.Groups) == 0 {
		if _, err := fmt.Fprintln(r.writer, "No groups to process"); err != nil {
			return err
		}
	}

	for _, group := range result.Groups {
		if _, err := fmt.Fprintf(r.writer, "\n    %s: %s <-> %s\n", group.Name, group.Home, group.Storage); err != nil {
			return err
		}
		if len(group.Files) == 0 {
			if _, err := fmt.Fprintln(r.writer, "        (no tracked paths)"); err != nil {
				return err
			}
		}
		for _, file := range group.Files {
			if _, err := fmt.Fprintf(r.writer, "        %-8s : %-24s : %s\n", file.Outcome, file.Path, file.Message); err != nil {
				return err
			}
		}
	}

	if len(result.Inventory) > 0 {
		if _, err := fmt.Fprintln(r.writer, "\n    inventory:"); err != nil {
			return err
		}
		for _, item := range result.Inventory {
			detail := item.Message
			if detail == "" {
				detail = fmt.Sprintf("%d entries", item.Count)
			}
			if _, err := fmt.Fprintf(r.writer, "        %-8s : %-24s : %s\n", item.Status, item.Task, detail); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(r.writer, "\napplied=%d skipped=%d failed=%d\n",
		result.Summary.Applied, result.Summary.Skipped, result.Summary.Failed); err != nil {
		return err
	}

	if result.Message != "" {
		if _, err := fmt.Fprintln(r.writer, result.Message); err != nil {
			return err
		}
	}
	return nil
}

// RenderStatus writes the status listing
func (r *TextRenderer) RenderStatus(result *StatusResult) error {
	if result == nil {
		return nil
	}
	for _, group := range result.Groups {
		if _, err := fmt.Fprintf(r.writer, "%s: %s <-> %s\n", group.Name, group.Home, group.Storage); err != nil {
			return err
		}
		for _, entry := range group.Entries {
			line := fmt.Sprintf("    %-13s : %s", entry.State, entry.Path)
			if entry.Message != "" {
				line += " (" + entry.Message + ")"
			}
			if _, err := fmt.Fprintln(r.writer, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderDiscover writes one untracked path per line
func (r *TextRenderer) RenderDiscover(result *DiscoverResult) error {
	if result == nil {
		return nil
	}
	for _, path := range result.Untracked {
		if _, err := fmt.Fprintln(r.writer, path); err != nil {
			return err
		}
	}
	return nil
}
