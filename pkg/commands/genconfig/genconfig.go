// Package genconfig prints or writes the user configuration template.
package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/terraformer/pkg/config"
	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/logging"
	"github.com/arthur-debert/terraformer/pkg/paths"
	"github.com/arthur-debert/terraformer/pkg/types"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Write stores the template at the user config path instead of only
	// returning it
	Write      bool
	Force      bool
	FileSystem types.FS // Allow injecting a filesystem for testing
}

// GenConfigResult holds the template and the files written
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
}

// GenConfig outputs or writes the commented out default configuration
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &GenConfigResult{
		ConfigContent: config.UserDefaultsContent(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	target := paths.UserConfigPath()

	if _, err := fs.Lstat(target); err == nil && !opts.Force {
		return nil, errors.Newf(errors.ErrConfigWrite, "config %s already exists, use --force to overwrite", target).
			WithDetail("path", target)
	}

	if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigWrite, "failed to create directory for %s", target)
	}
	if err := fs.WriteFile(target, []byte(result.ConfigContent), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", target)
	}

	logger.Info().Str("path", target).Msg("Wrote config file")
	result.FilesWritten = append(result.FilesWritten, target)
	return result, nil
}
