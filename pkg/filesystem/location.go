package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/terraformer/pkg/types"
)

// Classify reports what currently sits at path without following a final
// symlink. Missing paths are not an error.
func Classify(fsys types.FS, path string) (types.Location, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		if IsNotExist(err) {
			return types.Location{Kind: types.LocationMissing}, nil
		}
		return types.Location{}, err
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := fsys.Readlink(path)
		if err != nil {
			return types.Location{}, err
		}
		loc := types.Location{Kind: types.LocationSymlink, Target: target}
		if _, err := fsys.Stat(path); err != nil {
			if !IsNotExist(err) {
				return types.Location{}, err
			}
			loc.Dangling = true
		}
		return loc, nil
	case info.IsDir():
		return types.Location{Kind: types.LocationDirectory}, nil
	default:
		return types.Location{Kind: types.LocationFile}, nil
	}
}

// ResolveLinkTarget returns the absolute, cleaned path a symlink at link
// with raw target text points to.
func ResolveLinkTarget(link, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(filepath.Dir(link), target)
}

// PointsTo reports whether loc, classified at link, is a symlink to want
func PointsTo(loc types.Location, link, want string) bool {
	if loc.Kind != types.LocationSymlink {
		return false
	}
	return ResolveLinkTarget(link, loc.Target) == filepath.Clean(want)
}
