// Package commands provides high-level command implementations for terraformer.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the reconciler.
//
// Each command is implemented in its own subdirectory:
//   - sync/       - Backup and Restore commands
//   - status/     - Status command
//   - discover/   - Discover command
//   - initialize/ - Init command
//   - genconfig/  - GenConfig command
//   - internal/   - Shared environment loading
//
// This file serves as the main entry point and re-exports all command functions.
package commands

import (
	"github.com/arthur-debert/terraformer/pkg/commands/discover"
	"github.com/arthur-debert/terraformer/pkg/commands/genconfig"
	"github.com/arthur-debert/terraformer/pkg/commands/initialize"
	"github.com/arthur-debert/terraformer/pkg/commands/status"
	"github.com/arthur-debert/terraformer/pkg/commands/sync"
	"github.com/arthur-debert/terraformer/pkg/types"
)

// SyncOptions configures a backup or restore run.
type SyncOptions = sync.SyncOptions

// SyncResult holds the reports of a backup or restore run.
type SyncResult = sync.SyncResult

// Backup moves tracked paths from home into storage and links them back.
func Backup(opts SyncOptions) (*SyncResult, error) {
	opts.Direction = types.DirectionBackup
	return sync.Sync(opts)
}

// Restore copies tracked paths from storage into home.
func Restore(opts SyncOptions) (*SyncResult, error) {
	opts.Direction = types.DirectionRestore
	return sync.Sync(opts)
}

// Status classifies every tracked path.
type StatusOptions = status.StatusOptions

func Status(opts StatusOptions) ([]types.PathStatus, error) {
	return status.Status(opts)
}

// Discover lists dotfiles that no group tracks yet.
type DiscoverOptions = discover.DiscoverOptions

type DiscoverResult = discover.DiscoverResult

func Discover(opts DiscoverOptions) (*DiscoverResult, error) {
	return discover.Discover(opts)
}

// Init writes a starter repository config.
type InitOptions = initialize.InitOptions

type InitResult = initialize.InitResult

func Init(opts InitOptions) (*InitResult, error) {
	return initialize.Init(opts)
}

// GenConfig prints or writes the user config template.
type GenConfigOptions = genconfig.GenConfigOptions

type GenConfigResult = genconfig.GenConfigResult

func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
