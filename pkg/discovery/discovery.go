// Package discovery suggests tracked paths by listing dotfile candidates in
// a home directory. Its output is only ever shown to the operator or written
// into a starter config; it never feeds a reconciliation directly.
package discovery

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/logging"
	"github.com/arthur-debert/terraformer/pkg/paths"
	"github.com/arthur-debert/terraformer/pkg/types"
)

// Candidates returns the direct children of home whose names match at least
// one include glob and no exclude glob, sorted. Symlinks are left out since
// they are either already managed or point somewhere the operator chose.
func Candidates(fsys types.FS, home string, include, exclude []string) ([]types.TrackedPath, error) {
	logger := logging.GetLogger("discovery")

	if err := checkPatterns(include, exclude); err != nil {
		return nil, err
	}
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	entries, err := fsys.ReadDir(home)
	if err != nil {
		if filesystem.IsNotExist(err) {
			return []types.TrackedPath{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", home)
	}

	found := []types.TrackedPath{}
	for _, entry := range entries {
		name := entry.Name()
		if !matchesAny(include, name) || matchesAny(exclude, name) {
			continue
		}

		loc, err := filesystem.Classify(fsys, filepath.Join(home, name))
		if err != nil {
			logger.Warn().Err(err).Str("name", name).Msg("Skipping unreadable entry")
			continue
		}
		if loc.Kind == types.LocationSymlink {
			logger.Debug().Str("name", name).Str("target", loc.Target).Msg("Skipping symlink")
			continue
		}
		found = append(found, types.TrackedPath(name))
	}

	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })
	logger.Debug().Int("count", len(found)).Str("home", home).Msg("Discovered candidates")
	return found, nil
}

// Untracked filters out candidates already covered by tracked, either
// exactly or by a tracked parent directory
func Untracked(candidates []types.TrackedPath, tracked []string) []types.TrackedPath {
	result := []types.TrackedPath{}
	for _, c := range candidates {
		covered := false
		for _, t := range tracked {
			if paths.ContainsPath(t, c.String()) {
				covered = true
				break
			}
		}
		if !covered {
			result = append(result, c)
		}
	}
	return result
}

func matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func checkPatterns(groups ...[]string) error {
	for _, patterns := range groups {
		for _, pattern := range patterns {
			if _, err := filepath.Match(pattern, ""); err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "invalid glob %q", pattern)
			}
		}
	}
	return nil
}
