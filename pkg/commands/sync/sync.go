// Package sync runs a backup or restore pass over every configured group,
// then refreshes the machine inventory and appends to the run log.
package sync

import (
	"context"

	"github.com/arthur-debert/terraformer/pkg/commands/internal"
	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/inventory"
	"github.com/arthur-debert/terraformer/pkg/logging"
	"github.com/arthur-debert/terraformer/pkg/reconcile"
	"github.com/arthur-debert/terraformer/pkg/runlog"
	"github.com/arthur-debert/terraformer/pkg/types"
)

// SyncOptions holds options for the backup and restore commands
type SyncOptions struct {
	// Root is the repository root, discovered when empty
	Root      string
	Direction types.Direction
	// Groups limits the run to the named groups, all enabled groups when empty
	Groups  []string
	Confirm types.Confirmer
	DryRun  bool
	// SkipInventory disables the inventory files and extension syncing
	SkipInventory bool
	// Overrides are dotted config keys set from the command line
	Overrides  map[string]interface{}
	FileSystem types.FS         // Allow injecting a filesystem for testing
	Runner     inventory.Runner // Allow injecting a command runner for testing
	Context    context.Context
}

// SyncResult is everything a sync run produced
type SyncResult struct {
	Direction   types.Direction
	DryRun      bool
	StorageRoot string
	Reports     []*types.Report
	Inventory   []inventory.Result
	LogFile     string
}

// Counts tallies the outcomes of every report
func (r *SyncResult) Counts() types.ReportCounts {
	var total types.ReportCounts
	for _, report := range r.Reports {
		c := report.Counts()
		total.Applied += c.Applied
		total.Skipped += c.Skipped
		total.Failed += c.Failed
	}
	return total
}

// Sync reconciles every selected group in the configured direction.
//
// Per-path problems are recorded in the reports and never fail the run.
// The returned error is set for configuration problems, an unusable storage
// root, or a confirmation that could not be obtained; in the last case the
// result still holds every report completed so far.
func Sync(opts SyncOptions) (*SyncResult, error) {
	logger := logging.GetLogger("commands.sync")
	logger.Info().
		Str("direction", string(opts.Direction)).
		Strs("groups", opts.Groups).
		Bool("dry_run", opts.DryRun).
		Msg("Starting sync")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	env, err := internal.LoadEnvironment(opts.Root, opts.Overrides)
	if err != nil {
		return nil, err
	}
	cfg := env.Config

	groups, err := cfg.ResolveGroups(env.Paths, opts.Groups)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{
		Direction:   opts.Direction,
		DryRun:      opts.DryRun,
		StorageRoot: env.StorageRoot(),
		Reports:     make([]*types.Report, 0, len(groups)),
		LogFile:     cfg.LogFile(env.Paths),
	}

	if !opts.DryRun {
		if err := fs.MkdirAll(result.StorageRoot, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrStorageRoot, "cannot create storage directory %s", result.StorageRoot).
				WithDetail("path", result.StorageRoot)
		}
	}

	for _, g := range groups {
		report, err := reconcile.Reconcile(reconcile.Options{
			Group:      g.Name,
			Paths:      g.Paths,
			Home:       g.Home,
			Storage:    g.Storage,
			Direction:  opts.Direction,
			Confirm:    opts.Confirm,
			FileSystem: fs,
			DryRun:     opts.DryRun,
		})
		if report != nil {
			result.Reports = append(result.Reports, report)
		}
		if err != nil {
			logger.Error().Err(err).Str("group", g.Name).Msg("Sync aborted")
			return result, err
		}
	}

	if !opts.SkipInventory {
		result.Inventory = runInventory(ctx, logger, opts, fs, env, groups)
	}

	if !opts.DryRun {
		entry := runlog.NewEntry(string(opts.Direction), result.Counts())
		if err := runlog.Append(fs, result.LogFile, entry); err != nil {
			// The reconciliation itself went through, so this only warns
			logger.Warn().Err(err).Str("path", result.LogFile).Msg("Failed to append to run log")
		}
	}

	counts := result.Counts()
	logger.Info().
		Int("applied", counts.Applied).
		Int("skipped", counts.Skipped).
		Int("failed", counts.Failed).
		Msg("Sync complete")

	return result, nil
}
