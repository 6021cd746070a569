package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/terraformer/pkg/ui/format"
)

// Markdown renders the run as a heading per group with a table of paths
func (c *CommandResult) Markdown() string {
	var b strings.Builder

	title := capitalize(c.Command)
	if c.DryRun {
		title += " (dry run)"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	for _, group := range c.Groups {
		fmt.Fprintf(&b, "## %s\n\n`%s` <-> `%s`\n\n", group.Name, group.Home, group.Storage)
		if len(group.Files) == 0 {
			b.WriteString("_no tracked paths_\n\n")
			continue
		}
		b.WriteString("| Path | Outcome | Details |\n|---|---|---|\n")
		for _, file := range group.Files {
			fmt.Fprintf(&b, "| `%s` | %s %s | %s |\n", file.Path,
				format.OutcomeEmoji(group.Direction, file.Outcome), file.Outcome, escapeCell(file.Message))
		}
		b.WriteString("\n")
	}

	if len(c.Inventory) > 0 {
		b.WriteString("## Inventory\n\n| Task | Status | Details |\n|---|---|---|\n")
		for _, item := range c.Inventory {
			detail := item.Message
			if detail == "" {
				detail = fmt.Sprintf("%d entries in `%s`", item.Count, item.Path)
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", item.Task, item.Status, escapeCell(detail))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**applied** %d, **skipped** %d, **failed** %d\n",
		c.Summary.Applied, c.Summary.Skipped, c.Summary.Failed)
	if c.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", c.Message)
	}
	return b.String()
}

// Markdown renders the status listing as one table per group
func (s *StatusResult) Markdown() string {
	var b strings.Builder
	b.WriteString("# Status\n\n")
	for _, group := range s.Groups {
		fmt.Fprintf(&b, "## %s\n\n| Path | State | Details |\n|---|---|---|\n", group.Name)
		for _, entry := range group.Entries {
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", entry.Path, entry.State, escapeCell(entry.Message))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Markdown renders the untracked candidates as a list
func (d *DiscoverResult) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Untracked in `%s`\n\n", d.Home)
	if len(d.Untracked) == 0 {
		b.WriteString("_nothing new to track_\n")
	}
	for _, path := range d.Untracked {
		fmt.Fprintf(&b, "- `%s`\n", path)
	}
	return b.String()
}

// Markdown returns the message itself
func (m *MessageResult) Markdown() string {
	return m.Message + "\n"
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
