package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/types"
)

// ValidatePath performs basic validation on a path.
// It rejects empty paths, null bytes and excessive length.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Common filesystem limit
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ValidateTrackedPath checks a single tracked path and returns its cleaned
// form. Tracked paths must be relative and stay inside their base.
func ValidateTrackedPath(path string) (types.TrackedPath, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}

	if filepath.IsAbs(path) || strings.HasPrefix(path, "~") {
		return "", errors.Newf(errors.ErrInvalidInput, "tracked path must be relative: %s", path).
			WithDetail("path", path)
	}

	cleaned := filepath.Clean(path)
	if cleaned == "." {
		return "", errors.Newf(errors.ErrInvalidInput, "tracked path refers to the base directory itself: %s", path).
			WithDetail("path", path)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrInvalidInput, "tracked path escapes its base: %s", path).
			WithDetail("path", path)
	}

	return types.TrackedPath(cleaned), nil
}

// ValidateTrackedPaths validates a set of tracked paths. Besides the
// per-path rules the set must not contain the same path twice or a path
// nested inside another one. Input order is preserved.
func ValidateTrackedPaths(raw []string) ([]types.TrackedPath, error) {
	cleaned := make([]types.TrackedPath, 0, len(raw))
	seen := make(map[types.TrackedPath]string, len(raw))

	for _, path := range raw {
		tp, err := ValidateTrackedPath(path)
		if err != nil {
			return nil, err
		}
		if original, dup := seen[tp]; dup {
			return nil, errors.Newf(errors.ErrInvalidInput, "duplicate tracked path: %s (also listed as %s)", path, original).
				WithDetail("path", tp.String())
		}
		seen[tp] = path
		cleaned = append(cleaned, tp)
	}

	for i, a := range cleaned {
		for _, b := range cleaned[i+1:] {
			if ContainsPath(a.String(), b.String()) || ContainsPath(b.String(), a.String()) {
				return nil, errors.Newf(errors.ErrInvalidInput, "overlapping tracked paths: %s and %s", a, b).
					WithDetail("paths", []string{a.String(), b.String()})
			}
		}
	}

	return cleaned, nil
}

// ContainsPath checks if child is contained within (or equal to) parent.
// Both paths are cleaned before comparison.
func ContainsPath(parent, child string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(child))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
