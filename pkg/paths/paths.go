package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Environment variable names
const (
	// EnvRoot overrides repository root discovery
	EnvRoot = "TERRAFORMER_ROOT"

	// EnvConfigDir overrides the XDG config directory for terraformer
	EnvConfigDir = "TERRAFORMER_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppName is used for XDG subdirectories
	AppName = "terraformer"

	// UserConfigFile is the per-user config file name inside ConfigDir
	UserConfigFile = "config.toml"

	// DefaultStorageDir is the storage root relative to the repository root
	DefaultStorageDir = "dotfiles"
)

// RootConfigFiles are the repository config file names, in lookup order
var RootConfigFiles = []string{".terraformer.toml", "terraformer.toml"}

// Paths provides centralized path management for terraformer
type Paths interface {
	Root() string
	UsedFallback() bool
	// Resolve joins a relative path onto the root; absolute and ~ paths
	// are only expanded.
	Resolve(path string) string
	ConfigDir() string
	UserConfigPath() string
	RootConfigPath() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	root         string
	usedFallback bool
	xdgConfig    string
	xdgState     string
}

// New creates a Paths instance. An empty root is discovered from
// TERRAFORMER_ROOT, the enclosing git work tree, or the current directory,
// in that order.
func New(root string) (Paths, error) {
	p := &paths{}

	if root == "" {
		found, usedFallback, err := findRoot()
		if err != nil {
			return nil, err
		}
		p.root = found
		p.usedFallback = usedFallback
	} else {
		p.root = ExpandPath(root)
	}

	absRoot, err := filepath.Abs(p.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for root")
	}
	p.root = absRoot

	p.xdgConfig = userConfigDir()
	p.xdgState = filepath.Join(lookupXDG("XDG_STATE_HOME"), AppName)

	return p, nil
}

// findRoot determines the repository root:
// 1. TERRAFORMER_ROOT environment variable (if set)
// 2. Git repository root (via 'git rev-parse --show-toplevel', read-only)
// 3. Current working directory (fallback)
func findRoot() (string, bool, error) {
	if root := os.Getenv(EnvRoot); root != "" {
		return ExpandPath(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		log.Debug().Str("root", gitRoot).Msg("Using git work tree as root")
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

func (p *paths) Root() string {
	return p.root
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

func (p *paths) Resolve(path string) string {
	expanded := ExpandPath(path)
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded)
	}
	return filepath.Join(p.root, expanded)
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) UserConfigPath() string {
	return filepath.Join(p.xdgConfig, UserConfigFile)
}

// RootConfigPath returns the first existing root config file, or the
// preferred name when none exists yet.
func (p *paths) RootConfigPath() string {
	for _, name := range RootConfigFiles {
		candidate := filepath.Join(p.root, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return filepath.Join(p.root, RootConfigFiles[0])
}

func (p *paths) StateDir() string {
	return p.xdgState
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, AppName+".log")
}

// UserConfigPath returns the user config file. Unlike the repository config
// it does not depend on the root.
func UserConfigPath() string {
	return filepath.Join(userConfigDir(), UserConfigFile)
}

func userConfigDir() string {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		return ExpandPath(configDir)
	}
	return filepath.Join(lookupXDG("XDG_CONFIG_HOME"), AppName)
}

// ExpandPath expands a leading ~ and ${VAR}/$VAR references. XDG base
// directory variables that are unset resolve to their platform defaults.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	path = os.Expand(path, func(name string) string {
		if strings.HasPrefix(name, "XDG_") {
			return lookupXDG(name)
		}
		return os.Getenv(name)
	})

	return expandHome(path)
}

// HomeDir returns the current user's home directory, preferring $HOME
func HomeDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to determine home directory")
	}
	return home, nil
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := HomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}

// lookupXDG returns an XDG base directory, honouring the environment first
// so a changed variable is seen without reloading the xdg package.
func lookupXDG(name string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	switch name {
	case "XDG_CONFIG_HOME":
		return xdg.ConfigHome
	case "XDG_DATA_HOME":
		return xdg.DataHome
	case "XDG_STATE_HOME":
		return xdg.StateHome
	case "XDG_CACHE_HOME":
		return xdg.CacheHome
	default:
		return ""
	}
}
