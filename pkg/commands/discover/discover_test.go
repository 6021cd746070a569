package discover_test

import (
	"testing"

	"github.com/arthur-debert/terraformer/pkg/commands/discover"
	"github.com/arthur-debert/terraformer/pkg/testutil"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithHomeFiles(map[string]string{
		".zshrc":          "tracked by default",
		".tmux.conf":      "tracked by default",
		".wezterm.lua":    "new",
		".zsh_history":    "excluded",
		".DS_Store":       "excluded",
		"notes.txt":       "not a dotfile",
		".config/foo.ini": "new directory",
	})

	result, err := discover.Discover(discover.DiscoverOptions{Root: env.RepoRoot, FileSystem: env.FS})
	require.NoError(t, err)

	assert.Equal(t, env.HomeDir, result.Home)
	assert.Equal(t, []types.TrackedPath{".config", ".tmux.conf", ".wezterm.lua", ".zshrc"}, result.Candidates)
	assert.Equal(t, []types.TrackedPath{".config", ".wezterm.lua"}, result.Untracked)
}

func TestDiscover_EmptyHome(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	result, err := discover.Discover(discover.DiscoverOptions{Root: env.RepoRoot, FileSystem: env.FS})
	require.NoError(t, err)
	assert.Empty(t, result.Untracked)
}
