// Test Type: Unit Test
// Description: Tests for root discovery and path expansion

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/terraformer/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithExplicitRoot(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	t.Setenv(paths.EnvConfigDir, "")

	p, err := paths.New(root)
	require.NoError(t, err)

	assert.Equal(t, root, p.Root())
	assert.False(t, p.UsedFallback())
	assert.Equal(t, filepath.Join("/cfg", "terraformer"), p.ConfigDir())
	assert.Equal(t, filepath.Join("/cfg", "terraformer", "config.toml"), p.UserConfigPath())
	assert.Equal(t, filepath.Join("/state", "terraformer", "terraformer.log"), p.LogFilePath())
}

func TestNewFromEnvironment(t *testing.T) {
	root := t.TempDir()
	t.Setenv(paths.EnvRoot, root)

	p, err := paths.New("")
	require.NoError(t, err)
	assert.Equal(t, root, p.Root())
	assert.False(t, p.UsedFallback())
}

func TestConfigDirOverride(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/custom/config")

	p, err := paths.New(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/custom/config", p.ConfigDir())
	assert.Equal(t, "/custom/config/config.toml", paths.UserConfigPath())
}

func TestRootConfigPath(t *testing.T) {
	root := t.TempDir()
	p, err := paths.New(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, ".terraformer.toml"), p.RootConfigPath(), "preferred name when none exists")

	require.NoError(t, os.WriteFile(filepath.Join(root, "terraformer.toml"), []byte(""), 0644))
	assert.Equal(t, filepath.Join(root, "terraformer.toml"), p.RootConfigPath())
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	t.Setenv("HOME", "/home/tester")

	p, err := paths.New(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "dotfiles"), p.Resolve("dotfiles"))
	assert.Equal(t, "/abs/store", p.Resolve("/abs/store/"))
	assert.Equal(t, "/home/tester/store", p.Resolve("~/store"))
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_CONFIG_HOME", "/home/tester/.cfg")
	t.Setenv("EDITOR_DIR", "code")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", "/home/tester"},
		{"~/.zshrc", "/home/tester/.zshrc"},
		{"~other/x", "~other/x"},
		{"${XDG_CONFIG_HOME}/Code/User", "/home/tester/.cfg/Code/User"},
		{"$HOME/$EDITOR_DIR", "/home/tester/code"},
		{"/etc/hosts", "/etc/hosts"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.ExpandPath(tt.in))
		})
	}
}

func TestExpandPathXDGFallback(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	got := paths.ExpandPath("${XDG_CONFIG_HOME}/Code/User")
	assert.True(t, filepath.IsAbs(got), "unset XDG variable should fall back to a platform default, got %q", got)
	assert.Equal(t, "User", filepath.Base(got))
}

func TestHomeDirPrefersEnv(t *testing.T) {
	t.Setenv("HOME", "/somewhere/else")
	home, err := paths.HomeDir()
	require.NoError(t, err)
	assert.Equal(t, "/somewhere/else", home)
}
