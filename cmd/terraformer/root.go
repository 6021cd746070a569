package terraformer

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/terraformer/internal/version"
	"github.com/arthur-debert/terraformer/pkg/cobrax/topics"
	"github.com/arthur-debert/terraformer/pkg/logging"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity   int
	dryRun      bool
	yes         bool
	root        string
	format      string
	noInventory bool
}

// overrides turns flags that mirror config keys into dotted overrides
func (o *globalOptions) overrides() map[string]interface{} {
	if !o.noInventory {
		return nil
	}
	return map[string]interface{}{
		"inventory.enabled":      false,
		"vscode.sync_extensions": false,
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}
	var backup, restore, push bool

	rootCmd := &cobra.Command{
		Use:     "terraformer [--backup | --restore] [groups...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithOutput(cmd.ErrOrStderr(), opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := rootDirection(backup, restore || push)
			if err != nil {
				return err
			}
			if direction == "" {
				if len(args) > 0 {
					return fmt.Errorf(MsgErrExtraArgs, args)
				}
				// No direction given: show help
				return cmd.Help()
			}
			return runSync(cmd, opts, direction, args)
		},
		ValidArgsFunction: groupNamesCompletion(opts),
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	pf.BoolVarP(&opts.yes, "yes", "y", false, MsgFlagYes)
	pf.StringVar(&opts.root, "root", "", MsgFlagRoot)
	pf.StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)
	pf.BoolVar(&opts.noInventory, "no-inventory", false, MsgFlagNoInventory)

	// Direction flags, kept for muscle memory
	rootCmd.Flags().BoolVar(&backup, "backup", false, MsgFlagBackup)
	rootCmd.Flags().BoolVar(&restore, "restore", false, MsgFlagRestore)
	rootCmd.Flags().BoolVar(&push, "push", false, MsgFlagPush)
	rootCmd.MarkFlagsMutuallyExclusive("backup", "restore")
	rootCmd.MarkFlagsMutuallyExclusive("backup", "push")

	// Disable automatic help command (topics installs its own)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "setup",
		Title: "SETUP:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newBackupCmd(opts))
	rootCmd.AddCommand(newRestoreCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newDiscoverCmd(opts))
	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if sub, err := fs.Sub(topicsFS, "topics"); err == nil {
		topicOpts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewMarkdownRenderer(),
		}
		// Logging is not set up yet, a broken topic set only costs the topics
		_ = topics.InitializeWithOptions(rootCmd, sub, topicOpts)
	}

	return rootCmd
}

// rootDirection maps the root direction flags onto a direction, empty when
// neither is set
func rootDirection(backup, restore bool) (types.Direction, error) {
	switch {
	case backup && restore:
		return "", fmt.Errorf(MsgErrDirections)
	case backup:
		return types.DirectionBackup, nil
	case restore:
		return types.DirectionRestore, nil
	}
	return "", nil
}
