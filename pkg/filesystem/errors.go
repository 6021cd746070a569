package filesystem

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"
)

// ErrSourceCleanup marks a cross-device move whose content reached the
// destination but whose source could not be fully removed.
var ErrSourceCleanup = errors.New("moved content but could not remove")

// IsSourceCleanup reports whether err comes from a move that completed at
// the destination and left part of the source behind.
func IsSourceCleanup(err error) bool {
	return errors.Is(err, ErrSourceCleanup)
}

// IsSymlinkUnsupported reports whether err means the platform or filesystem
// cannot create symbolic links, as opposed to an ordinary I/O failure.
func IsSymlinkUnsupported(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrSymlinkUnsupported) ||
		errors.Is(err, afero.ErrNoSymlink) ||
		errors.Is(err, afero.ErrNoReadlink) ||
		errors.Is(err, errors.ErrUnsupported) ||
		isPlatformSymlinkUnsupported(err)
}

// IsNotExist reports whether err means nothing is at the path. A path whose
// parent is a regular file counts as not existing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || isNotDir(err)
}

// IsCrossDevice reports whether a rename failed because source and
// destination live on different filesystems.
func IsCrossDevice(err error) bool {
	return isCrossDevice(err)
}
