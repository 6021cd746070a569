package internal

import (
	"github.com/arthur-debert/terraformer/pkg/config"
	"github.com/arthur-debert/terraformer/pkg/logging"
	"github.com/arthur-debert/terraformer/pkg/paths"
)

// Environment is the resolved repository and configuration every command
// starts from
type Environment struct {
	Paths  paths.Paths
	Config *config.Config
}

// LoadEnvironment resolves the repository root and loads its configuration.
// overrides are dotted config keys set from the command line.
func LoadEnvironment(root string, overrides map[string]interface{}) (*Environment, error) {
	logger := logging.GetLogger("commands.internal")

	p, err := paths.New(root)
	if err != nil {
		return nil, err
	}
	if p.UsedFallback() {
		logger.Warn().
			Str("root", p.Root()).
			Msg("Repository root not found, using the current directory")
	}

	src := config.SourcesFor(p)
	src.Overrides = overrides
	cfg, err := config.LoadFrom(src)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", p.Root()).
		Str("storage", cfg.StorageRoot(p)).
		Strs("groups", cfg.EnabledGroupNames()).
		Msg("Environment loaded")

	return &Environment{Paths: p, Config: cfg}, nil
}

// StorageRoot returns the absolute storage root
func (e *Environment) StorageRoot() string {
	return e.Config.StorageRoot(e.Paths)
}
