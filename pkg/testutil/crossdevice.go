package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/arthur-debert/terraformer/pkg/types"
)

// CrossDeviceFS pretends everything under Boundary lives on its own device:
// renames that leave Boundary fail with EXDEV. When BreakRemove is set,
// RemoveAll on that exact path deletes its first entry and then fails with
// EACCES, leaving the rest behind.
type CrossDeviceFS struct {
	types.FS
	Boundary    string
	BreakRemove string
}

// Rename implements types.FS
func (c *CrossDeviceFS) Rename(oldpath, newpath string) error {
	if within(oldpath, c.Boundary) && !within(newpath, c.Boundary) {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
	}
	return c.FS.Rename(oldpath, newpath)
}

// RemoveAll implements types.FS
func (c *CrossDeviceFS) RemoveAll(path string) error {
	if c.BreakRemove == "" || filepath.Clean(path) != filepath.Clean(c.BreakRemove) {
		return c.FS.RemoveAll(path)
	}
	entries, err := c.FS.ReadDir(path)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		if err := c.FS.RemoveAll(filepath.Join(path, entries[0].Name())); err != nil {
			return err
		}
	}
	return &os.PathError{Op: "unlinkat", Path: path, Err: syscall.EACCES}
}

func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
