package status_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/terraformer/pkg/status"
	"github.com/arthur-debert/terraformer/pkg/testutil"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	testutil.SkipOnWindows(t)
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	env.WithStorageFiles(map[string]string{
		".linked":       "L",
		".conflict":     "C2",
		".storage_only": "S",
	})
	env.WithHomeFiles(map[string]string{
		".unlinked": "U",
		".conflict": "C1",
		".target":   "T",
	})
	testutil.CreateSymlink(t, env.StoragePath(".linked"), env.HomePath(".linked"))
	testutil.CreateSymlink(t, env.HomePath(".target"), env.HomePath(".foreign"))
	testutil.CreateSymlink(t, env.StoragePath(".gone"), env.HomePath(".broken"))

	g := status.Group{
		Name:    "dotfiles",
		Home:    env.HomeDir,
		Storage: env.StorageRoot,
		Paths:   []string{".linked", ".unlinked", ".conflict", ".storage_only", ".foreign", ".missing", ".broken"},
	}
	got := status.Check(env.FS, g)
	require.Len(t, got, len(g.Paths))

	want := map[string]types.PathState{
		".linked":       types.PathStateLinked,
		".unlinked":     types.PathStateUnlinked,
		".conflict":     types.PathStateConflict,
		".storage_only": types.PathStateStorageOnly,
		".foreign":      types.PathStateForeignLink,
		".missing":      types.PathStateMissing,
		".broken":       types.PathStateMissing,
	}
	for i, st := range got {
		assert.Equal(t, g.Paths[i], st.Path, "order preserved")
		assert.Equal(t, "dotfiles", st.Group)
		assert.Equal(t, want[st.Path], st.State, st.Path)
	}

	assert.Equal(t, env.HomePath(".target"), got[4].LinkTarget)
	assert.Equal(t, filepath.Join(env.StorageRoot, ".linked"), got[0].Storage)
}

func TestCheckDoesNotMutate(t *testing.T) {
	testutil.SkipOnWindows(t)
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WithHomeFiles(map[string]string{".zshrc": "X"})
	before := testutil.Snapshot(t, env.HomeDir)

	status.Check(env.FS, status.Group{Home: env.HomeDir, Storage: env.StorageRoot, Paths: []string{".zshrc"}})

	assert.Equal(t, before, testutil.Snapshot(t, env.HomeDir))
	testutil.AssertNoFile(t, env.StorageRoot)
}

func TestSummary(t *testing.T) {
	counts := status.Summary([]types.PathStatus{
		{State: types.PathStateLinked},
		{State: types.PathStateLinked},
		{State: types.PathStateConflict},
	})
	assert.Equal(t, 2, counts[types.PathStateLinked])
	assert.Equal(t, 1, counts[types.PathStateConflict])
	assert.Equal(t, 0, counts[types.PathStateMissing])
}

func TestCheckComparesConflictingFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WithStorageFiles(map[string]string{".same": "X", ".diff": "stored"})
	env.WithHomeFiles(map[string]string{".same": "X", ".diff": "edited"})

	got := status.Check(env.FS, status.Group{
		Name:    "dotfiles",
		Home:    env.HomeDir,
		Storage: env.StorageRoot,
		Paths:   []string{".same", ".diff"},
	})
	require.Len(t, got, 2)

	assert.Equal(t, types.PathStateConflict, got[0].State)
	assert.Equal(t, "home and storage hold identical copies", got[0].Message)
	assert.Equal(t, types.PathStateConflict, got[1].State)
	assert.Equal(t, "home and storage copies differ", got[1].Message)
}
