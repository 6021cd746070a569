package config

import (
	"path/filepath"

	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/paths"
)

// ResolvedGroup is a group with its directories made absolute
type ResolvedGroup struct {
	Name    string
	Home    string
	Storage string
	Paths   []string
}

// Validate checks the configuration without touching the filesystem
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return errors.New(errors.ErrInvalidInput, "storage.dir cannot be empty")
	}

	for _, name := range c.GroupNames() {
		g := c.Groups[name]
		if !g.Enabled {
			continue
		}
		if g.Home == "" {
			return errors.Newf(errors.ErrInvalidInput, "group %s has no home directory", name).
				WithDetail("group", name)
		}
		if g.Storage != "" {
			if _, err := paths.ValidateTrackedPath(g.Storage); err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "group %s has an invalid storage directory", name).
					WithDetail("group", name)
			}
		}
		if _, err := paths.ValidateTrackedPaths(g.Paths); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "group %s has invalid paths", name).
				WithDetail("group", name)
		}
	}

	return c.checkGroupStorageOverlap()
}

// checkGroupStorageOverlap rejects tracked paths whose storage locations
// collide across groups, e.g. tracking "vscode" in a group stored at the
// root while a vscode group exists.
func (c *Config) checkGroupStorageOverlap() error {
	enabled := c.EnabledGroupNames()
	for _, a := range enabled {
		for _, b := range enabled {
			if a == b {
				continue
			}
			otherRoot := filepath.Join("storage", c.Groups[b].Storage)
			for _, p := range c.Groups[a].Paths {
				stored := filepath.Join("storage", c.Groups[a].Storage, p)
				if paths.ContainsPath(stored, otherRoot) {
					return overlapError(p, a, b)
				}
				for _, q := range c.Groups[b].Paths {
					if paths.ContainsPath(stored, filepath.Join(otherRoot, q)) {
						return overlapError(p, a, b)
					}
				}
			}
		}
	}
	return nil
}

func overlapError(path, group, other string) error {
	return errors.Newf(errors.ErrInvalidInput,
		"path %s of group %s overlaps the storage of group %s", path, group, other).
		WithDetail("group", group)
}

// StorageRoot returns the absolute storage root for the repository at p
func (c *Config) StorageRoot(p paths.Paths) string {
	return p.Resolve(c.Storage.Dir)
}

// LogFile returns the absolute path of the run journal
func (c *Config) LogFile(p paths.Paths) string {
	return p.Resolve(c.Storage.LogFile)
}

// ResolveGroups resolves the named groups, or every enabled group when
// names is empty. Explicitly named groups are used even when disabled.
func (c *Config) ResolveGroups(p paths.Paths, names []string) ([]ResolvedGroup, error) {
	if len(names) == 0 {
		names = c.EnabledGroupNames()
	}

	storageRoot := c.StorageRoot(p)
	resolved := make([]ResolvedGroup, 0, len(names))
	for _, name := range names {
		g, ok := c.Groups[name]
		if !ok {
			return nil, errors.Newf(errors.ErrGroupNotFound, "unknown group %q", name).
				WithDetail("available", c.GroupNames())
		}
		rg, err := resolveGroup(name, g, storageRoot)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, rg)
	}
	return resolved, nil
}

func resolveGroup(name string, g Group, storageRoot string) (ResolvedGroup, error) {
	home := paths.ExpandPath(g.Home)
	if !filepath.IsAbs(home) {
		return ResolvedGroup{}, errors.Newf(errors.ErrInvalidInput,
			"home of group %s does not resolve to an absolute path: %s", name, g.Home).
			WithDetail("group", name)
	}

	return ResolvedGroup{
		Name:    name,
		Home:    filepath.Clean(home),
		Storage: filepath.Join(storageRoot, g.Storage),
		Paths:   append([]string(nil), g.Paths...),
	}, nil
}
