//go:build !windows

package filesystem

import (
	"errors"
	"syscall"
)

func isPlatformSymlinkUnsupported(err error) bool {
	return errors.Is(err, syscall.ENOTSUP) || errors.Is(err, syscall.EOPNOTSUPP) || errors.Is(err, syscall.ENOSYS)
}

func isNotDir(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}

func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
