package style

import (
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// OutcomeStyle returns the style used for a per-path outcome
func OutcomeStyle(direction types.Direction, outcome types.Outcome) lipgloss.Style {
	switch outcome {
	case types.OutcomeApplied:
		if direction == types.DirectionBackup {
			return LinkedStyle
		}
		return CopiedStyle
	case types.OutcomeFailed:
		return ErrorStyle
	default:
		return SkippedStyle
	}
}

// OutcomeIndicator returns the one character marker for an outcome
func OutcomeIndicator(outcome types.Outcome) string {
	switch outcome {
	case types.OutcomeApplied:
		return SuccessIndicator
	case types.OutcomeFailed:
		return ErrorIndicator
	default:
		return PendingIndicator
	}
}

// StateStyle returns the style used for a status state
func StateStyle(state types.PathState) lipgloss.Style {
	switch state {
	case types.PathStateLinked:
		return SuccessStyle
	case types.PathStateConflict, types.PathStateError:
		return ErrorStyle
	case types.PathStateForeignLink:
		return WarningStyle
	case types.PathStateUnlinked, types.PathStateStorageOnly:
		return InfoStyle
	default:
		return MutedStyle
	}
}

// BadgeStyle returns the pterm badge style for a group header: green when
// every path went through, yellow with skips, red with failures
func BadgeStyle(counts types.ReportCounts) *pterm.Style {
	switch {
	case counts.Failed > 0:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case counts.Skipped > 0:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case counts.Applied > 0:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}
