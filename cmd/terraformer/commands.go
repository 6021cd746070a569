package terraformer

import (
	"fmt"

	"github.com/arthur-debert/terraformer/internal/version"
	"github.com/arthur-debert/terraformer/pkg/commands"
	"github.com/arthur-debert/terraformer/pkg/config"
	"github.com/arthur-debert/terraformer/pkg/display"
	"github.com/arthur-debert/terraformer/pkg/paths"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/arthur-debert/terraformer/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// groupNamesCompletion provides shell completion for configured group names
func groupNamesCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		p, err := paths.New(opts.root)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		cfg, err := config.LoadFrom(config.SourcesFor(p))
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		taken := make(map[string]bool, len(args))
		for _, arg := range args {
			taken[arg] = true
		}

		var names []string
		for _, name := range cfg.GroupNames() {
			if !taken[name] {
				names = append(names, name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// newConverter builds a display converter that shortens paths under home
func newConverter() *display.Converter {
	home, err := paths.HomeDir()
	if err != nil {
		home = ""
	}
	return display.NewConverter(home)
}

func confirmerFor(cmd *cobra.Command, opts *globalOptions) types.Confirmer {
	if opts.yes {
		return confirmations.AlwaysYes
	}
	// Prompts go to stderr so structured output on stdout stays parseable
	return confirmations.NewConsoleConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// runSync runs a backup or restore and renders the per-path report. Only
// fatal errors make the command fail; skipped and failed paths are part of
// a completed run.
func runSync(cmd *cobra.Command, opts *globalOptions, direction types.Direction, groups []string) error {
	out, err := newOutput(cmd, opts)
	if err != nil {
		return err
	}

	log.Info().
		Str("direction", string(direction)).
		Strs("groups", groups).
		Bool("dry_run", opts.dryRun).
		Msg("Running sync")

	syncOpts := commands.SyncOptions{
		Root:          opts.root,
		Groups:        groups,
		Confirm:       confirmerFor(cmd, opts),
		DryRun:        opts.dryRun,
		SkipInventory: opts.noInventory,
		Overrides:     opts.overrides(),
		Context:       cmd.Context(),
	}

	var result *commands.SyncResult
	errFormat := MsgErrBackup
	if direction == types.DirectionBackup {
		result, err = commands.Backup(syncOpts)
	} else {
		errFormat = MsgErrRestore
		result, err = commands.Restore(syncOpts)
	}

	if result != nil && len(result.Reports) > 0 {
		cr := newConverter().ConvertReports(string(direction), result.DryRun, result.Reports, result.Inventory)
		if rerr := out.renderer.RenderResult(cr); rerr != nil {
			return rerr
		}
	}
	if err != nil {
		return out.fail(fmt.Errorf(errFormat, err))
	}

	if !opts.dryRun && !out.machineReadable() {
		return out.renderer.RenderMessage(MsgGitHint)
	}
	return nil
}

func newSyncCmd(opts *globalOptions, direction types.Direction) *cobra.Command {
	cmd := &cobra.Command{
		Use:               string(direction) + " [groups...]",
		GroupID:           "core",
		ValidArgsFunction: groupNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, opts, direction, args)
		},
	}
	return cmd
}

func newBackupCmd(opts *globalOptions) *cobra.Command {
	cmd := newSyncCmd(opts, types.DirectionBackup)
	cmd.Short = MsgBackupShort
	cmd.Long = MsgBackupLong
	cmd.Example = MsgBackupExample
	return cmd
}

func newRestoreCmd(opts *globalOptions) *cobra.Command {
	cmd := newSyncCmd(opts, types.DirectionRestore)
	cmd.Aliases = []string{"push"}
	cmd.Short = MsgRestoreShort
	cmd.Long = MsgRestoreLong
	cmd.Example = MsgRestoreExample
	return cmd
}

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "status [groups...]",
		Short:             MsgStatusShort,
		Long:              MsgStatusLong,
		Example:           MsgStatusExample,
		GroupID:           "core",
		ValidArgsFunction: groupNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newOutput(cmd, opts)
			if err != nil {
				return err
			}

			statuses, err := commands.Status(commands.StatusOptions{
				Root:      opts.root,
				Groups:    args,
				Overrides: opts.overrides(),
			})
			if err != nil {
				return out.fail(fmt.Errorf(MsgErrStatus, err))
			}

			return out.renderer.RenderResult(newConverter().ConvertStatus(statuses))
		},
	}
}

func newDiscoverCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "discover",
		Short:   MsgDiscoverShort,
		Long:    MsgDiscoverLong,
		GroupID: "setup",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newOutput(cmd, opts)
			if err != nil {
				return err
			}

			res, err := commands.Discover(commands.DiscoverOptions{
				Root:      opts.root,
				Overrides: opts.overrides(),
			})
			if err != nil {
				return out.fail(fmt.Errorf(MsgErrDiscover, err))
			}

			conv := newConverter()
			result := &display.DiscoverResult{
				Home:      conv.ShortenPath(res.Home),
				Untracked: make([]string, 0, len(res.Untracked)),
			}
			for _, p := range res.Untracked {
				result.Untracked = append(result.Untracked, p.String())
			}

			if len(result.Untracked) == 0 && !out.machineReadable() {
				return out.renderer.RenderMessage(fmt.Sprintf(MsgNothingFound, result.Home))
			}
			return out.renderer.RenderResult(result)
		},
	}
}

func newInitCmd(opts *globalOptions) *cobra.Command {
	var discover, force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "setup",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newOutput(cmd, opts)
			if err != nil {
				return err
			}

			res, err := commands.Init(commands.InitOptions{
				Root:      opts.root,
				Discover:  discover,
				Force:     force,
				Overrides: opts.overrides(),
			})
			if err != nil {
				return out.fail(fmt.Errorf(MsgErrInit, err))
			}

			msg := fmt.Sprintf(MsgInitDone, res.ConfigPath, res.StorageRoot)
			if len(res.Discovered) > 0 {
				msg += fmt.Sprintf(MsgInitDiscovered, len(res.Discovered))
			}
			if res.Overwritten {
				msg += MsgInitOverwrote
			}
			return out.renderer.RenderResult(&display.MessageResult{Message: msg})
		},
	}

	cmd.Flags().BoolVar(&discover, "discover", false, MsgFlagDiscover)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newGenConfigCmd(opts *globalOptions) *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "setup",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newOutput(cmd, opts)
			if err != nil {
				return err
			}

			res, err := commands.GenConfig(commands.GenConfigOptions{
				Write: write,
				Force: force,
			})
			if err != nil {
				return out.fail(fmt.Errorf(MsgErrGenConfig, err))
			}

			if !write {
				// The template itself is the output, whatever the format
				_, err := fmt.Fprint(cmd.OutOrStdout(), res.ConfigContent)
				return err
			}
			if len(res.FilesWritten) == 0 {
				return out.renderer.RenderMessage(MsgNothingToWrite)
			}
			for _, f := range res.FilesWritten {
				if err := out.renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, f)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, MsgVersionFormat, version.Version)
			fmt.Fprintf(w, MsgCommitFormat, version.Commit)
			fmt.Fprintf(w, MsgBuiltFormat, version.Date)
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}
}
