package sync

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/terraformer/pkg/commands/internal"
	"github.com/arthur-debert/terraformer/pkg/config"
	"github.com/arthur-debert/terraformer/pkg/inventory"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/rs/zerolog"
)

// runInventory syncs the extension list of the vscode group, when it took
// part in the run, and refreshes the inventory files. Failures are reported
// in the results only.
func runInventory(ctx context.Context, logger zerolog.Logger, opts SyncOptions, fs types.FS, env *internal.Environment, groups []config.ResolvedGroup) []inventory.Result {
	cfg := env.Config
	inv := inventory.New(fs, opts.Runner, opts.DryRun)
	var results []inventory.Result

	if cfg.VSCode.SyncExtensions {
		for _, g := range groups {
			if g.Name != cfg.VSCode.Group {
				continue
			}
			file := filepath.Join(g.Storage, cfg.VSCode.ExtensionsFile)
			if opts.Direction == types.DirectionBackup {
				results = append(results, inv.ExportExtensions(ctx, file))
			} else {
				results = append(results, inv.InstallExtensions(ctx, file))
			}
		}
	}

	if cfg.Inventory.Enabled {
		results = append(results,
			inv.WriteApps(cfg.Inventory.AppsDir, env.Paths.Resolve(cfg.Inventory.AppsFile)),
			inv.WriteBrewPackages(ctx, env.Paths.Resolve(cfg.Inventory.BrewFile)),
		)
	}

	for _, r := range results {
		logger.Debug().
			Str("task", r.Task).
			Str("status", string(r.Status)).
			Int("count", r.Count).
			Msg("Inventory task finished")
	}
	return results
}
