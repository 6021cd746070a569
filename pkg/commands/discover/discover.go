// Package discover lists dotfiles in the home directory that no group
// tracks yet.
package discover

import (
	"path/filepath"

	"github.com/arthur-debert/terraformer/pkg/commands/internal"
	"github.com/arthur-debert/terraformer/pkg/discovery"
	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/logging"
	"github.com/arthur-debert/terraformer/pkg/paths"
	"github.com/arthur-debert/terraformer/pkg/types"
)

// DiscoverOptions holds options for the discover command
type DiscoverOptions struct {
	Root       string
	Overrides  map[string]interface{}
	FileSystem types.FS // Allow injecting a filesystem for testing
}

// DiscoverResult lists the candidates found in Home
type DiscoverResult struct {
	Home       string
	Candidates []types.TrackedPath
	// Untracked are the candidates not covered by any group rooted at Home
	Untracked []types.TrackedPath
}

// Discover lists the home directory candidates and filters out the ones
// already tracked
func Discover(opts DiscoverOptions) (*DiscoverResult, error) {
	logger := logging.GetLogger("commands.discover")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	env, err := internal.LoadEnvironment(opts.Root, opts.Overrides)
	if err != nil {
		return nil, err
	}
	home, err := paths.HomeDir()
	if err != nil {
		return nil, err
	}
	home = filepath.Clean(home)

	cfg := env.Config
	candidates, err := discovery.Candidates(fs, home, cfg.Discover.Include, cfg.Discover.Exclude)
	if err != nil {
		return nil, err
	}

	// Only groups rooted at home can cover a candidate
	var tracked []string
	for _, name := range cfg.GroupNames() {
		g := cfg.Groups[name]
		if filepath.Clean(paths.ExpandPath(g.Home)) != home {
			continue
		}
		tracked = append(tracked, g.Paths...)
	}

	result := &DiscoverResult{
		Home:       home,
		Candidates: candidates,
		Untracked:  discovery.Untracked(candidates, tracked),
	}
	logger.Info().
		Int("candidates", len(result.Candidates)).
		Int("untracked", len(result.Untracked)).
		Msg("Discovery complete")
	return result, nil
}
