package config

import (
	"bytes"
	"strings"

	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// RootFile is the shape of a generated repository config file
type RootFile struct {
	Storage RootStorage          `toml:"storage"`
	Groups  map[string]RootGroup `toml:"groups"`
}

// RootStorage is the storage section of a generated config
type RootStorage struct {
	Dir string `toml:"dir"`
}

// RootGroup is a group section of a generated config
type RootGroup struct {
	Enabled bool     `toml:"enabled"`
	Home    string   `toml:"home"`
	Storage string   `toml:"storage"`
	Paths   []string `toml:"paths"`
}

// NewRootFile builds a starter config from cfg. When discovered is not
// empty it replaces the dotfiles group's path list.
func NewRootFile(cfg *Config, discovered []string) RootFile {
	rf := RootFile{
		Storage: RootStorage{Dir: cfg.Storage.Dir},
		Groups:  make(map[string]RootGroup, len(cfg.Groups)),
	}
	for name, g := range cfg.Groups {
		rg := RootGroup{
			Enabled: g.Enabled,
			Home:    g.Home,
			Storage: g.Storage,
			Paths:   append([]string{}, g.Paths...),
		}
		if name == "dotfiles" && len(discovered) > 0 {
			rg.Paths = append([]string{}, discovered...)
		}
		rf.Groups[name] = rg
	}
	return rf
}

// GenerateRootConfig renders rf as TOML followed by the embedded defaults
// commented out for reference.
func GenerateRootConfig(rf RootFile) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# terraformer repository configuration\n\n")

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(rf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigWrite, "failed to encode config")
	}

	buf.WriteString("\n# Defaults, for reference:\n#\n")
	buf.WriteString(commentOutConfigValues(DefaultsContent()))
	return buf.Bytes(), nil
}

// commentOutConfigValues comments out every line that is not already a
// comment, keeping blank lines.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			result = append(result, line)
		case strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}

// UserDefaultsContent returns the embedded defaults with every value
// commented out, as a template for the user config file
func UserDefaultsContent() string {
	return commentOutConfigValues(DefaultsContent())
}
