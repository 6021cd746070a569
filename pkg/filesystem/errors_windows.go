//go:build windows

package filesystem

import (
	"errors"
	"syscall"
)

const (
	errorPrivilegeNotHeld syscall.Errno = 1314
	errorNotSameDevice    syscall.Errno = 17
	errorDirectory        syscall.Errno = 267
)

// Creating symlinks on Windows needs developer mode or an elevated token.
func isPlatformSymlinkUnsupported(err error) bool {
	return errors.Is(err, errorPrivilegeNotHeld)
}

func isNotDir(err error) bool {
	return errors.Is(err, errorDirectory)
}

func isCrossDevice(err error) bool {
	return errors.Is(err, errorNotSameDevice)
}
