// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with proper dependencies

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // In-memory afero backend, no symlink support
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a complete test environment with all dependencies
type TestEnvironment struct {
	HomeDir     string
	RepoRoot    string
	StorageRoot string
	ConfigHome  string
	StateHome   string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// noLinkFs exposes only afero.Fs so optional link interfaces are hidden
type noLinkFs struct{ afero.Fs }

// NewTestEnvironment creates a new test environment and points HOME,
// TERRAFORMER_ROOT and the XDG variables at it for the duration of the test.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:    t,
		Type: envType,
	}

	switch envType {
	case EnvMemoryOnly:
		env.setupMemoryEnvironment()
	case EnvIsolated:
		env.setupIsolatedEnvironment()
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("TERRAFORMER_ROOT", env.RepoRoot)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)

	return env
}

func (env *TestEnvironment) setupMemoryEnvironment() {
	env.HomeDir = "/virtual/home"
	env.RepoRoot = "/virtual/repo"
	env.StorageRoot = "/virtual/repo/dotfiles"
	env.ConfigHome = "/virtual/home/.config"
	env.StateHome = "/virtual/home/.local/state"

	env.FS = filesystem.NewAferoFS(noLinkFs{afero.NewMemMapFs()})
	env.mkdirs()
}

func (env *TestEnvironment) setupIsolatedEnvironment() {
	tempDir := env.t.TempDir()
	// Resolve platform temp dir symlinks (macOS /var -> /private/var) so
	// link targets compare equal.
	if resolved, err := filepath.EvalSymlinks(tempDir); err == nil {
		tempDir = resolved
	}

	env.HomeDir = filepath.Join(tempDir, "home")
	env.RepoRoot = filepath.Join(tempDir, "repo")
	env.StorageRoot = filepath.Join(env.RepoRoot, "dotfiles")
	env.ConfigHome = filepath.Join(env.HomeDir, ".config")
	env.StateHome = filepath.Join(env.HomeDir, ".local", "state")

	env.FS = filesystem.NewOS()
	env.mkdirs()
}

func (env *TestEnvironment) mkdirs() {
	for _, dir := range []string{env.HomeDir, env.RepoRoot} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			env.t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
}

// WithHomeFiles writes files relative to the home directory
func (env *TestEnvironment) WithHomeFiles(files map[string]string) {
	env.t.Helper()
	env.writeFiles(env.HomeDir, files)
}

// WithStorageFiles writes files relative to the storage root
func (env *TestEnvironment) WithStorageFiles(files map[string]string) {
	env.t.Helper()
	env.writeFiles(env.StorageRoot, files)
}

// HomePath joins rel onto the home directory
func (env *TestEnvironment) HomePath(rel string) string {
	return filepath.Join(env.HomeDir, rel)
}

// StoragePath joins rel onto the storage root
func (env *TestEnvironment) StoragePath(rel string) string {
	return filepath.Join(env.StorageRoot, rel)
}

func (env *TestEnvironment) writeFiles(base string, files map[string]string) {
	env.t.Helper()

	for rel, content := range files {
		full := filepath.Join(base, rel)
		if err := env.FS.MkdirAll(filepath.Dir(full), 0755); err != nil {
			env.t.Fatalf("Failed to create directory for %s: %v", full, err)
		}
		if err := env.FS.WriteFile(full, []byte(content), 0644); err != nil {
			env.t.Fatalf("Failed to write file %s: %v", full, err)
		}
	}
}
