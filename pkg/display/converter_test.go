package display

import (
	"testing"

	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/inventory"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *types.Report {
	report := types.NewReport(types.DirectionBackup, "/home/user", "/home/user/repo/dotfiles")
	report.Group = "dotfiles"
	report.Add(types.PathResult{
		Path:        ".zshrc",
		Source:      "/home/user/.zshrc",
		Destination: "/home/user/repo/dotfiles/.zshrc",
		Outcome:     types.OutcomeApplied,
	})
	report.Add(types.PathResult{
		Path:    ".vimrc",
		Outcome: types.OutcomeSkipped,
		Reason:  types.SkipNotFound,
	})
	report.Add(types.PathResult{
		Path:    ".gitconfig",
		Outcome: types.OutcomeFailed,
		Err: errors.New(errors.ErrUnsupported, "moved but could not link it back").
			WithDetail("content_at", "/home/user/repo/dotfiles/.gitconfig"),
	})
	return report
}

func TestConverter_ConvertReports(t *testing.T) {
	c := NewConverter("/home/user")

	inv := []inventory.Result{
		{Task: inventory.TaskBrew, Path: "/home/user/repo/brew_packages.txt", Status: inventory.StatusDone, Count: 3},
	}
	result := c.ConvertReports("backup", false, []*types.Report{sampleReport(), nil}, inv)

	require.Len(t, result.Groups, 1)
	group := result.Groups[0]
	assert.Equal(t, "dotfiles", group.Name)
	assert.Equal(t, "~", group.Home)
	assert.Equal(t, "~/repo/dotfiles", group.Storage)
	assert.Equal(t, types.ReportCounts{Applied: 1, Skipped: 1, Failed: 1}, result.Summary)

	require.Len(t, group.Files, 3)
	assert.Equal(t, "moved to storage and linked", group.Files[0].Message)
	assert.Equal(t, "~/repo/dotfiles/.zshrc", group.Files[0].Destination)
	assert.Equal(t, "not found in home", group.Files[1].Message)
	assert.Equal(t, "UNSUPPORTED_OPERATION", group.Files[2].ErrorCode)
	assert.Equal(t, "moved but could not link it back (content is at ~/repo/dotfiles/.gitconfig)", group.Files[2].Message)

	require.Len(t, result.Inventory, 1)
	assert.Equal(t, "~/repo/brew_packages.txt", result.Inventory[0].Path)
	assert.Equal(t, "done", result.Inventory[0].Status)
}

func TestConverter_Messages(t *testing.T) {
	tests := []struct {
		name      string
		direction types.Direction
		dryRun    bool
		result    types.PathResult
		expected  string
	}{
		{"backup overwrite", types.DirectionBackup, false, types.PathResult{Outcome: types.OutcomeApplied, Overwrote: true}, "replaced storage copy and linked"},
		{"backup dry run", types.DirectionBackup, true, types.PathResult{Outcome: types.OutcomeApplied}, "would move to storage and link"},
		{"restore", types.DirectionRestore, false, types.PathResult{Outcome: types.OutcomeApplied}, "copied from storage"},
		{"restore overwrite dry run", types.DirectionRestore, true, types.PathResult{Outcome: types.OutcomeApplied, Overwrote: true}, "would replace home copy from storage"},
		{"restore missing", types.DirectionRestore, false, types.PathResult{Outcome: types.OutcomeSkipped, Reason: types.SkipNotFound}, "not found in storage"},
		{"declined", types.DirectionRestore, false, types.PathResult{Outcome: types.OutcomeSkipped, Reason: types.SkipUserDeclined}, "kept existing copy"},
		{"already linked", types.DirectionBackup, false, types.PathResult{Outcome: types.OutcomeSkipped, Reason: types.SkipAlreadyLinked}, "already linked"},
		{"wrapped failure", types.DirectionRestore, false, types.PathResult{
			Outcome: types.OutcomeFailed,
			Err:     errors.Wrap(assert.AnError, errors.ErrIO, "cannot copy"),
		}, "cannot copy: " + assert.AnError.Error()},
	}

	c := NewConverter("/home/user")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ConvertPathResult(tt.direction, tt.dryRun, tt.result)
			assert.Equal(t, tt.expected, got.Message)
		})
	}
}

func TestConverter_ConvertStatus(t *testing.T) {
	c := NewConverter("/home/user")
	statuses := []types.PathStatus{
		{Group: "dotfiles", Path: ".zshrc", Home: "/home/user/.zshrc", Storage: "/repo/dotfiles/.zshrc", State: types.PathStateLinked},
		{Group: "vscode", Path: "settings.json", Home: "/home/user/.config/Code/User/settings.json", Storage: "/repo/dotfiles/vscode/settings.json", State: types.PathStateUnlinked},
		{Group: "dotfiles", Path: ".vimrc", Home: "/home/user/.vimrc", Storage: "/repo/dotfiles/.vimrc", State: types.PathStateMissing},
	}

	result := c.ConvertStatus(statuses)

	require.Len(t, result.Groups, 2)
	assert.Equal(t, "dotfiles", result.Groups[0].Name)
	assert.Equal(t, "~", result.Groups[0].Home)
	assert.Equal(t, "/repo/dotfiles", result.Groups[0].Storage)
	require.Len(t, result.Groups[0].Entries, 2)
	assert.Equal(t, ".vimrc", result.Groups[0].Entries[1].Path)
	assert.Equal(t, "~/.config/Code/User", result.Groups[1].Home)
	assert.Equal(t, 1, result.Counts[types.PathStateLinked])
	assert.Equal(t, 1, result.Counts[types.PathStateMissing])
}

func TestConverter_ShortenPath(t *testing.T) {
	c := NewConverter("/home/user")
	assert.Equal(t, "~", c.ShortenPath("/home/user"))
	assert.Equal(t, "~/.zshrc", c.ShortenPath("/home/user/.zshrc"))
	assert.Equal(t, "/home/username", c.ShortenPath("/home/username"))
	assert.Equal(t, "/etc/hosts", c.ShortenPath("/etc/hosts"))
	assert.Equal(t, "/etc/hosts", NewConverter("").ShortenPath("/etc/hosts"))
}
