package reconcile

import (
	"path/filepath"

	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/paths"
	"github.com/arthur-debert/terraformer/pkg/types"
)

// Options holds the inputs of a reconciliation pass
type Options struct {
	// Group labels the report, it has no effect on behaviour
	Group string
	// Paths are relative to both Home and Storage, processed in order
	Paths     []string
	Home      string
	Storage   string
	Direction types.Direction
	// Confirm is asked before any existing destination is replaced.
	// It may be nil for dry runs.
	Confirm    types.Confirmer
	FileSystem types.FS // Allow injecting a filesystem for testing
	DryRun     bool
}

type plan struct {
	group     string
	paths     []types.TrackedPath
	home      string
	storage   string
	direction types.Direction
	confirm   types.Confirmer
	fs        types.FS
	dryRun    bool
}

// validate checks everything that can be checked without touching the
// filesystem. Any problem is an InvalidInput error.
func (o Options) validate() (*plan, error) {
	switch o.Direction {
	case types.DirectionBackup, types.DirectionRestore:
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown direction %q", o.Direction)
	}

	if o.Home == "" || !filepath.IsAbs(o.Home) {
		return nil, errors.Newf(errors.ErrInvalidInput, "home directory must be an absolute path: %q", o.Home)
	}
	if o.Storage == "" || !filepath.IsAbs(o.Storage) {
		return nil, errors.Newf(errors.ErrInvalidInput, "storage directory must be an absolute path: %q", o.Storage)
	}
	home := filepath.Clean(o.Home)
	storage := filepath.Clean(o.Storage)
	if home == storage {
		return nil, errors.Newf(errors.ErrInvalidInput, "home and storage are the same directory: %s", home)
	}

	if o.Confirm == nil && !o.DryRun {
		return nil, errors.New(errors.ErrInvalidInput, "a confirmer is required unless running dry")
	}

	tracked, err := paths.ValidateTrackedPaths(o.Paths)
	if err != nil {
		return nil, err
	}

	// A tracked entry may not contain the other side, or moving it would
	// move the storage tree (or home) into itself.
	for _, p := range tracked {
		homePath := filepath.Join(home, p.String())
		storagePath := filepath.Join(storage, p.String())
		if paths.ContainsPath(homePath, storage) || paths.ContainsPath(storagePath, home) {
			return nil, errors.Newf(errors.ErrInvalidInput, "tracked path %s contains the other side of the reconciliation", p).
				WithDetail("path", p.String())
		}
	}

	fs := o.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return &plan{
		group:     o.Group,
		paths:     tracked,
		home:      home,
		storage:   storage,
		direction: o.Direction,
		confirm:   o.Confirm,
		fs:        fs,
		dryRun:    o.DryRun,
	}, nil
}

// endpoints returns source and destination of p for the plan's direction
func (pl *plan) endpoints(p types.TrackedPath) (src, dst string) {
	homePath := filepath.Join(pl.home, p.String())
	storagePath := filepath.Join(pl.storage, p.String())
	if pl.direction == types.DirectionBackup {
		return homePath, storagePath
	}
	return storagePath, homePath
}
