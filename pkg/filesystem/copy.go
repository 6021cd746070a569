package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/google/uuid"
)

// Copy copies src to dst, recursively for directories, preserving permission
// bits and modification times. A symlink at src itself is followed; symlinks
// found below a copied directory are recreated as links. dst must not exist.
func Copy(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	return copyEntry(fsys, src, dst, info)
}

// Move renames src to dst. When the two live on different filesystems the
// content is copied to a staging sibling of dst, renamed into place, and only
// then is src removed. src is moved as-is, a symlink stays a symlink.
//
// A failure to remove src after dst is complete wraps ErrSourceCleanup: the
// move itself happened and dst must be kept.
func Move(fsys types.FS, src, dst string) error {
	err := fsys.Rename(src, dst)
	if err == nil || !IsCrossDevice(err) {
		return err
	}

	info, err := fsys.Lstat(src)
	if err != nil {
		return err
	}
	staging := StagingPath(dst, "move")
	if err := copyEntry(fsys, src, staging, info); err != nil {
		_ = fsys.RemoveAll(staging)
		return fmt.Errorf("cross-device copy of %s: %w", src, err)
	}
	if err := fsys.Rename(staging, dst); err != nil {
		_ = fsys.RemoveAll(staging)
		return err
	}
	if err := fsys.RemoveAll(src); err != nil {
		return fmt.Errorf("%w %s: %w", ErrSourceCleanup, src, err)
	}
	return nil
}

// StagingPath returns a unique hidden sibling of path used to stage a
// replacement or park the previous content while it is replaced.
func StagingPath(path, tag string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.terraformer-%s-%s", base, tag, uuid.NewString()[:8]))
}

func copyEntry(fsys types.FS, src, dst string, info fs.FileInfo) error {
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := fsys.Readlink(src)
		if err != nil {
			return err
		}
		return fsys.Symlink(target, dst)
	case info.IsDir():
		return copyDir(fsys, src, dst, info)
	default:
		return copyFile(fsys, src, dst, info)
	}
}

func copyDir(fsys types.FS, src, dst string, info fs.FileInfo) error {
	if err := fsys.MkdirAll(dst, 0o700); err != nil {
		return err
	}

	entries, err := fsys.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		childInfo, err := fsys.Lstat(filepath.Join(src, entry.Name()))
		if err != nil {
			return err
		}
		if err := copyEntry(fsys, filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()), childInfo); err != nil {
			return err
		}
	}

	// Metadata last: writing children bumps the directory mtime.
	return applyMetadata(fsys, dst, info)
}

func copyFile(fsys types.FS, src, dst string, info fs.FileInfo) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return applyMetadata(fsys, dst, info)
}

func applyMetadata(fsys types.FS, path string, info fs.FileInfo) error {
	if err := fsys.Chmod(path, info.Mode().Perm()); err != nil {
		return err
	}
	return fsys.Chtimes(path, info.ModTime(), info.ModTime())
}
