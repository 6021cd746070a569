package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/terraformer/pkg/style"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/arthur-debert/terraformer/pkg/ui/format"
)

// RichRenderer renders display results with terminal styling.
// Rows use a three-column layout: path : destination : message.
type RichRenderer struct {
	pathWidth int
}

// NewRichRenderer creates a new rich terminal renderer
func NewRichRenderer() *RichRenderer {
	return &RichRenderer{pathWidth: 24}
}

// RenderCommandResult renders a backup or restore run
func (r *RichRenderer) RenderCommandResult(result *CommandResult) string {
	var out strings.Builder

	header := capitalize(result.Command)
	if result.DryRun {
		header += " (dry run)"
	}
	out.WriteString(style.TitleStyle.Render(header) + "\n")

	if len(result.Groups) == 0 {
		out.WriteString(style.MutedStyle.Render("No groups to process") + "\n")
	}

	for i, group := range result.Groups {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(r.RenderGroupResult(group) + "\n")
	}

	if len(result.Inventory) > 0 {
		out.WriteString("\n" + style.SubtitleStyle.Render("Inventory") + "\n")
		for _, item := range result.Inventory {
			out.WriteString(style.Indent(r.renderInventoryItem(item), 1) + "\n")
		}
	}

	out.WriteString("\n" + r.RenderSummary(result.Summary) + "\n")

	if result.Message != "" {
		out.WriteString("\n" + style.InfoStyle.Render(result.Message) + "\n")
	}

	return out.String()
}

// RenderGroupResult renders one group with its files
func (r *RichRenderer) RenderGroupResult(group GroupResult) string {
	var out strings.Builder

	badge := style.BadgeStyle(group.Counts).Sprint(" " + group.Name + " ")
	out.WriteString(fmt.Sprintf("%s %s %s %s\n",
		format.DirectionEmoji(group.Direction),
		badge,
		style.PathStyle.Render(group.Home),
		style.MutedStyle.Render("<-> "+group.Storage)))

	if len(group.Files) == 0 {
		out.WriteString(style.Indent(style.MutedStyle.Render("(no tracked paths)"), 1))
		return out.String()
	}

	for _, file := range group.Files {
		out.WriteString(style.Indent(r.RenderFileResult(group.Direction, file), 1) + "\n")
	}

	return strings.TrimRight(out.String(), "\n")
}

// RenderFileResult renders a single row
func (r *RichRenderer) RenderFileResult(direction types.Direction, file FileResult) string {
	indicator := style.OutcomeIndicator(file.Outcome)
	path := style.PathStyle.Render(padRight(file.Path, r.pathWidth))
	message := style.OutcomeStyle(direction, file.Outcome).Render(file.Message)
	if file.ErrorCode != "" && file.Outcome == types.OutcomeFailed {
		message += " " + style.MutedStyle.Render("["+file.ErrorCode+"]")
	}
	return fmt.Sprintf("%s %s : %s", indicator, path, message)
}

// RenderSummary renders the outcome counts
func (r *RichRenderer) RenderSummary(counts types.ReportCounts) string {
	parts := []string{
		style.SuccessStyle.Render(fmt.Sprintf("%s applied: %d", format.EmojiDone, counts.Applied)),
		style.SkippedStyle.Render(fmt.Sprintf("%s skipped: %d", format.EmojiSkip, counts.Skipped)),
	}
	if counts.Failed > 0 {
		parts = append(parts, style.ErrorStyle.Render(fmt.Sprintf("%s failed: %d", format.EmojiFailed, counts.Failed)))
	}
	return strings.Join(parts, "  ")
}

// RenderStatus renders the status listing
func (r *RichRenderer) RenderStatus(result *StatusResult) string {
	var out strings.Builder

	out.WriteString(style.TitleStyle.Render("Status") + "\n")
	for i, group := range result.Groups {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(fmt.Sprintf("%s %s %s\n",
			style.Bold(group.Name),
			style.PathStyle.Render(group.Home),
			style.MutedStyle.Render("<-> "+group.Storage)))
		for _, entry := range group.Entries {
			state := style.StateStyle(entry.State).Render(padRight(string(entry.State), 13))
			line := fmt.Sprintf("%s %s", state, style.PathStyle.Render(entry.Path))
			if entry.Message != "" {
				line += style.MutedStyle.Render(" (" + entry.Message + ")")
			}
			out.WriteString(style.Indent(line, 1) + "\n")
		}
	}
	return out.String()
}

// RenderDiscover renders the untracked candidates
func (r *RichRenderer) RenderDiscover(result *DiscoverResult) string {
	var out strings.Builder

	out.WriteString(style.TitleStyle.Render("Untracked in "+result.Home) + "\n")
	if len(result.Untracked) == 0 {
		out.WriteString(style.MutedStyle.Render("Nothing new to track") + "\n")
		return out.String()
	}
	for _, path := range result.Untracked {
		out.WriteString(style.Indent(style.InfoIndicator+" "+style.PathStyle.Render(path), 1) + "\n")
	}
	return out.String()
}

func (r *RichRenderer) renderInventoryItem(item InventoryItem) string {
	var indicator string
	switch item.Status {
	case "done":
		indicator = style.SuccessIndicator
	case "failed":
		indicator = style.ErrorIndicator
	case "skipped":
		indicator = style.WarningIndicator
	default:
		indicator = style.PendingIndicator
	}
	line := fmt.Sprintf("%s %s", indicator, padRight(item.Task, 20))
	if item.Path != "" {
		line += " " + style.PathStyle.Render(item.Path)
	}
	if item.Message != "" {
		line += " " + style.MutedStyle.Render(item.Message)
	} else {
		line += " " + style.MutedStyle.Render(fmt.Sprintf("(%d)", item.Count))
	}
	return line
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
