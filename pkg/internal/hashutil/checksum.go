// Package hashutil fingerprints file content so two copies can be compared
// without holding both in memory.
package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/arthur-debert/terraformer/pkg/types"
)

// FileChecksum returns the SHA256 checksum of the file at path as
// "sha256:<hex>"
func FileChecksum(fsys types.FS, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", hash.Sum(nil)), nil
}

// SameContent reports whether two files hold identical bytes
func SameContent(fsys types.FS, a, b string) (bool, error) {
	sumA, err := FileChecksum(fsys, a)
	if err != nil {
		return false, err
	}
	sumB, err := FileChecksum(fsys, b)
	if err != nil {
		return false, err
	}
	return sumA == sumB, nil
}
