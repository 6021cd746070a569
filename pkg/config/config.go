package config

import (
	"sort"
)

// Config is the fully merged terraformer configuration
type Config struct {
	Storage   Storage          `koanf:"storage"`
	Groups    map[string]Group `koanf:"groups"`
	VSCode    VSCode           `koanf:"vscode"`
	Discover  Discover         `koanf:"discover"`
	Inventory Inventory        `koanf:"inventory"`
}

// Storage locates the storage root and the run journal
type Storage struct {
	Dir     string `koanf:"dir"`
	LogFile string `koanf:"log_file"`
}

// Group is a named set of tracked paths sharing a home base and a storage
// subdirectory
type Group struct {
	Enabled bool     `koanf:"enabled"`
	Home    string   `koanf:"home"`
	Storage string   `koanf:"storage"`
	Paths   []string `koanf:"paths"`
}

// VSCode controls extension list syncing
type VSCode struct {
	SyncExtensions bool   `koanf:"sync_extensions"`
	Group          string `koanf:"group"`
	ExtensionsFile string `koanf:"extensions_file"`
}

// Discover holds the globs used to suggest tracked paths
type Discover struct {
	Include []string `koanf:"include"`
	Exclude []string `koanf:"exclude"`
}

// Inventory controls the machine inventory files
type Inventory struct {
	Enabled  bool   `koanf:"enabled"`
	AppsDir  string `koanf:"apps_dir"`
	AppsFile string `koanf:"apps_file"`
	BrewFile string `koanf:"brew_file"`
}

// GroupNames returns all configured group names, sorted
func (c *Config) GroupNames() []string {
	names := make([]string, 0, len(c.Groups))
	for name := range c.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnabledGroupNames returns the enabled group names, sorted
func (c *Config) EnabledGroupNames() []string {
	var names []string
	for _, name := range c.GroupNames() {
		if c.Groups[name].Enabled {
			names = append(names, name)
		}
	}
	return names
}
