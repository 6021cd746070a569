// Package status reports the state of every tracked path without changing
// anything.
package status

import (
	"github.com/arthur-debert/terraformer/pkg/commands/internal"
	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/logging"
	pathstatus "github.com/arthur-debert/terraformer/pkg/status"
	"github.com/arthur-debert/terraformer/pkg/types"
)

// StatusOptions holds options for the status command
type StatusOptions struct {
	Root       string
	Groups     []string
	Overrides  map[string]interface{}
	FileSystem types.FS // Allow injecting a filesystem for testing
}

// Status checks the selected groups, all enabled groups when none are named
func Status(opts StatusOptions) ([]types.PathStatus, error) {
	logger := logging.GetLogger("commands.status")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	env, err := internal.LoadEnvironment(opts.Root, opts.Overrides)
	if err != nil {
		return nil, err
	}
	groups, err := env.Config.ResolveGroups(env.Paths, opts.Groups)
	if err != nil {
		return nil, err
	}

	statuses := []types.PathStatus{}
	for _, g := range groups {
		statuses = append(statuses, pathstatus.Check(fs, pathstatus.Group{
			Name:    g.Name,
			Home:    g.Home,
			Storage: g.Storage,
			Paths:   g.Paths,
		})...)
	}

	logger.Debug().
		Int("paths", len(statuses)).
		Interface("summary", pathstatus.Summary(statuses)).
		Msg("Status checked")
	return statuses, nil
}
