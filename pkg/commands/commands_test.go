package commands_test

import (
	"testing"

	"github.com/arthur-debert/terraformer/pkg/commands"
	"github.com/arthur-debert/terraformer/pkg/testutil"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupThenRestoreRoundTrip(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WithHomeFiles(map[string]string{".zshrc": "export EDITOR=vim"})

	opts := commands.SyncOptions{
		Root:          env.RepoRoot,
		Groups:        []string{"dotfiles"},
		Confirm:       testutil.AlwaysYes,
		SkipInventory: true,
		FileSystem:    env.FS,
	}

	backup, err := commands.Backup(opts)
	require.NoError(t, err)
	assert.Equal(t, types.DirectionBackup, backup.Direction)
	testutil.AssertSymlink(t, env.HomePath(".zshrc"), env.StoragePath(".zshrc"))

	restore, err := commands.Restore(opts)
	require.NoError(t, err)
	assert.Equal(t, types.DirectionRestore, restore.Direction)
	testutil.AssertRegularFile(t, env.HomePath(".zshrc"), "export EDITOR=vim")
	testutil.AssertFileContent(t, env.StoragePath(".zshrc"), "export EDITOR=vim")
}
