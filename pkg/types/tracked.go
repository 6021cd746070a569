package types

import (
	"fmt"
	"strings"
)

// TrackedPath is a path relative to both the home base and the storage
// directory of a group, e.g. ".zshrc" or ".config/nvim".
type TrackedPath string

func (p TrackedPath) String() string {
	return string(p)
}

// Direction selects which side of a reconciliation is the source of truth
type Direction string

const (
	// DirectionBackup moves home content into storage and links home to it
	DirectionBackup Direction = "backup"
	// DirectionRestore copies storage content into home as real files
	DirectionRestore Direction = "restore"
)

// ParseDirection parses a direction name. "push" is accepted for restore.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "backup":
		return DirectionBackup, nil
	case "restore", "push":
		return DirectionRestore, nil
	default:
		return "", fmt.Errorf("unknown direction: %s", s)
	}
}

// LocationKind classifies what currently sits at a filesystem path
type LocationKind int

const (
	LocationMissing LocationKind = iota
	LocationFile
	LocationDirectory
	LocationSymlink
)

func (k LocationKind) String() string {
	switch k {
	case LocationMissing:
		return "missing"
	case LocationFile:
		return "file"
	case LocationDirectory:
		return "directory"
	case LocationSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Location is the classification of a single path. Target is the raw link
// text for symlinks and empty otherwise. Dangling is set for symlinks whose
// target does not resolve.
type Location struct {
	Kind     LocationKind
	Target   string
	Dangling bool
}

// Exists reports whether anything, including a dangling link, is present
func (l Location) Exists() bool {
	return l.Kind != LocationMissing
}

func (l Location) String() string {
	if l.Kind == LocationSymlink {
		if l.Dangling {
			return fmt.Sprintf("symlink(%s, dangling)", l.Target)
		}
		return fmt.Sprintf("symlink(%s)", l.Target)
	}
	return l.Kind.String()
}
