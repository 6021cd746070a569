// Package initialize writes a starter repository config and creates the
// storage directory.
package initialize

import (
	"github.com/arthur-debert/terraformer/pkg/commands/internal"
	"github.com/arthur-debert/terraformer/pkg/config"
	"github.com/arthur-debert/terraformer/pkg/discovery"
	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/logging"
	"github.com/arthur-debert/terraformer/pkg/paths"
	"github.com/arthur-debert/terraformer/pkg/types"
)

// InitOptions defines the options for the Init command
type InitOptions struct {
	Root string
	// Discover seeds the dotfiles group with the dotfiles found in home
	Discover bool
	// Force overwrites an existing repository config
	Force      bool
	Overrides  map[string]interface{}
	FileSystem types.FS // Allow injecting a filesystem for testing
}

// InitResult describes what Init wrote
type InitResult struct {
	ConfigPath  string
	StorageRoot string
	Discovered  []string
	Overwritten bool
}

// Init writes the repository config file and creates the storage root
func Init(opts InitOptions) (*InitResult, error) {
	log := logging.GetLogger("commands.initialize")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	env, err := internal.LoadEnvironment(opts.Root, opts.Overrides)
	if err != nil {
		return nil, err
	}

	result := &InitResult{
		ConfigPath:  env.Paths.RootConfigPath(),
		StorageRoot: env.StorageRoot(),
	}

	if _, err := fs.Lstat(result.ConfigPath); err == nil {
		if !opts.Force {
			return nil, errors.Newf(errors.ErrConfigWrite, "config %s already exists, use --force to overwrite", result.ConfigPath).
				WithDetail("path", result.ConfigPath)
		}
		result.Overwritten = true
	}

	if opts.Discover {
		home, err := paths.HomeDir()
		if err != nil {
			return nil, err
		}
		found, err := discovery.Candidates(fs, home, env.Config.Discover.Include, env.Config.Discover.Exclude)
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			result.Discovered = append(result.Discovered, p.String())
		}
		log.Info().Int("count", len(found)).Msg("Seeding dotfiles group from home directory")
	}

	content, err := config.GenerateRootConfig(config.NewRootFile(env.Config, result.Discovered))
	if err != nil {
		return nil, err
	}

	if err := fs.MkdirAll(result.StorageRoot, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStorageRoot, "cannot create storage directory %s", result.StorageRoot).
			WithDetail("path", result.StorageRoot)
	}
	if err := fs.WriteFile(result.ConfigPath, content, 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", result.ConfigPath)
	}

	log.Info().
		Str("config", result.ConfigPath).
		Str("storage", result.StorageRoot).
		Bool("overwritten", result.Overwritten).
		Msg("Repository initialized")
	return result, nil
}
