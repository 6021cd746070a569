// pkg/filesystem/filesystem_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (temp dirs), afero MemMapFs
// PURPOSE: Test location classification and copy/move primitives

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/testutil"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testutil.SkipOnWindows(t)
	root := t.TempDir()
	fsys := filesystem.NewOS()

	file := testutil.CreateFile(t, root, "file.txt", "content")
	dir := testutil.CreateDir(t, root, "dir")
	link := filepath.Join(root, "link")
	testutil.CreateSymlink(t, file, link)
	dangling := filepath.Join(root, "dangling")
	testutil.CreateSymlink(t, filepath.Join(root, "nowhere"), dangling)

	tests := []struct {
		name     string
		path     string
		kind     types.LocationKind
		dangling bool
	}{
		{"regular_file", file, types.LocationFile, false},
		{"directory", dir, types.LocationDirectory, false},
		{"symlink", link, types.LocationSymlink, false},
		{"dangling_symlink", dangling, types.LocationSymlink, true},
		{"missing", filepath.Join(root, "missing"), types.LocationMissing, false},
		{"parent_is_file", filepath.Join(file, "child"), types.LocationMissing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := filesystem.Classify(fsys, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, loc.Kind)
			assert.Equal(t, tt.dangling, loc.Dangling)
		})
	}

	loc, err := filesystem.Classify(fsys, link)
	require.NoError(t, err)
	assert.Equal(t, file, loc.Target)
	assert.True(t, filesystem.PointsTo(loc, link, file))
	assert.False(t, filesystem.PointsTo(loc, link, dir))
}

func TestResolveLinkTarget(t *testing.T) {
	assert.Equal(t, "/a/b/target", filesystem.ResolveLinkTarget("/a/b/link", "target"))
	assert.Equal(t, "/a/target", filesystem.ResolveLinkTarget("/a/b/link", "../target"))
	assert.Equal(t, "/x/y", filesystem.ResolveLinkTarget("/a/b/link", "/x//y/"))
}

func TestCopy_PreservesContentModeAndTimes(t *testing.T) {
	testutil.SkipOnWindows(t)
	root := t.TempDir()
	fsys := filesystem.NewOS()

	src := testutil.CreateDir(t, root, "src")
	script := testutil.CreateFile(t, src, "bin/run.sh", "#!/bin/sh\necho hi\n")
	testutil.Chmod(t, script, 0o750)
	testutil.CreateFile(t, src, "nested/deep/file.txt", "deep")
	testutil.CreateSymlink(t, "nested/deep/file.txt", filepath.Join(src, "shortcut"))

	old := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(script, old, old))
	require.NoError(t, os.Chtimes(src, old, old))

	dst := filepath.Join(root, "dst")
	require.NoError(t, filesystem.Copy(fsys, src, dst))

	testutil.AssertFileContent(t, filepath.Join(dst, "bin/run.sh"), "#!/bin/sh\necho hi\n")
	testutil.AssertFileContent(t, filepath.Join(dst, "nested/deep/file.txt"), "deep")
	testutil.AssertSymlink(t, filepath.Join(dst, "shortcut"), "nested/deep/file.txt")

	info, err := os.Stat(filepath.Join(dst, "bin/run.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
	assert.True(t, info.ModTime().Equal(old), "file mtime should be preserved")

	dirInfo, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, dirInfo.ModTime().Equal(old), "directory mtime should be preserved")

	// Source untouched
	testutil.AssertFileContent(t, script, "#!/bin/sh\necho hi\n")
}

func TestCopy_FollowsTopLevelSymlink(t *testing.T) {
	testutil.SkipOnWindows(t)
	root := t.TempDir()
	fsys := filesystem.NewOS()

	target := testutil.CreateFile(t, root, "real", "data")
	link := filepath.Join(root, "link")
	testutil.CreateSymlink(t, target, link)

	dst := filepath.Join(root, "copy")
	require.NoError(t, filesystem.Copy(fsys, link, dst))

	assert.False(t, testutil.SymlinkExists(t, dst))
	testutil.AssertFileContent(t, dst, "data")
}

func TestMove(t *testing.T) {
	root := t.TempDir()
	fsys := filesystem.NewOS()

	src := testutil.CreateFile(t, root, "a/file", "moved")
	dst := filepath.Join(root, "b", "file")
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o755))

	require.NoError(t, filesystem.Move(fsys, src, dst))
	testutil.AssertNoFile(t, src)
	testutil.AssertFileContent(t, dst, "moved")
}

func TestMove_CrossDevice(t *testing.T) {
	testutil.SkipOnWindows(t)
	root := t.TempDir()
	src := testutil.CreateFile(t, root, "home/app/a", "A")
	testutil.CreateFile(t, root, "home/app/b", "B")
	dst := filepath.Join(root, "storage", "app")
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o755))

	fsys := &testutil.CrossDeviceFS{FS: filesystem.NewOS(), Boundary: filepath.Join(root, "home")}

	require.NoError(t, filesystem.Move(fsys, filepath.Dir(src), dst))
	assert.False(t, testutil.DirExists(t, filepath.Dir(src)))
	testutil.AssertFileContent(t, filepath.Join(dst, "a"), "A")
	testutil.AssertFileContent(t, filepath.Join(dst, "b"), "B")

	entries, err := os.ReadDir(filepath.Dir(dst))
	require.NoError(t, err)
	require.Len(t, entries, 1, "staging copy renamed into place")
	assert.Equal(t, "app", entries[0].Name())
}

func TestMove_CrossDeviceSourceCleanupFails(t *testing.T) {
	testutil.SkipOnWindows(t)
	root := t.TempDir()
	testutil.CreateFile(t, root, "home/app/a", "A")
	testutil.CreateFile(t, root, "home/app/b", "B")
	src := filepath.Join(root, "home", "app")
	dst := filepath.Join(root, "storage", "app")
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o755))

	fsys := &testutil.CrossDeviceFS{
		FS:          filesystem.NewOS(),
		Boundary:    filepath.Join(root, "home"),
		BreakRemove: src,
	}

	err := filesystem.Move(fsys, src, dst)
	require.Error(t, err)
	assert.True(t, filesystem.IsSourceCleanup(err))

	// The destination is complete even though the source is half gone
	testutil.AssertFileContent(t, filepath.Join(dst, "a"), "A")
	testutil.AssertFileContent(t, filepath.Join(dst, "b"), "B")
	assert.False(t, testutil.FileExists(t, filepath.Join(src, "a")))
	assert.True(t, testutil.FileExists(t, filepath.Join(src, "b")))
}

func TestIsSourceCleanup(t *testing.T) {
	assert.False(t, filesystem.IsSourceCleanup(nil))
	assert.False(t, filesystem.IsSourceCleanup(os.ErrPermission))
	assert.True(t, filesystem.IsSourceCleanup(filesystem.ErrSourceCleanup))
}

func TestStagingPath(t *testing.T) {
	p1 := filesystem.StagingPath("/home/user/.zshrc", "old")
	p2 := filesystem.StagingPath("/home/user/.zshrc", "old")

	assert.Equal(t, "/home/user", filepath.Dir(p1))
	assert.Contains(t, filepath.Base(p1), ".zshrc.terraformer-old-")
	assert.NotEqual(t, p1, p2)
}

// noLinkFs hides every optional afero interface of the wrapped backend.
type noLinkFs struct{ afero.Fs }

func TestAferoFS_SymlinkUnsupported(t *testing.T) {
	fsys := filesystem.NewAferoFS(noLinkFs{afero.NewMemMapFs()})
	require.NoError(t, fsys.WriteFile("/target", []byte("x"), 0o644))

	err := fsys.Symlink("/target", "/link")
	require.Error(t, err)
	assert.True(t, filesystem.IsSymlinkUnsupported(err))

	_, err = fsys.Readlink("/target")
	assert.True(t, filesystem.IsSymlinkUnsupported(err))

	assert.False(t, filesystem.IsSymlinkUnsupported(os.ErrPermission))
	assert.False(t, filesystem.IsSymlinkUnsupported(nil))
}

func TestAferoFS_MemoryCopy(t *testing.T) {
	fsys := filesystem.NewAferoFS(noLinkFs{afero.NewMemMapFs()})
	require.NoError(t, fsys.MkdirAll("/src/sub", 0o755))
	require.NoError(t, fsys.WriteFile("/src/sub/a.txt", []byte("alpha"), 0o600))

	require.NoError(t, filesystem.Copy(fsys, "/src", "/dst"))

	data, err := fsys.ReadFile("/dst/sub/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(data))

	loc, err := filesystem.Classify(fsys, "/dst/sub")
	require.NoError(t, err)
	assert.Equal(t, types.LocationDirectory, loc.Kind)
}
