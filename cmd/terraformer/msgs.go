package terraformer

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Back up and restore dotfiles through a git repository"
	MsgBackupShort     = "Move tracked files into storage and link them back"
	MsgRestoreShort    = "Copy tracked files from storage into home"
	MsgStatusShort     = "Show the state of every tracked path"
	MsgDiscoverShort   = "List dotfiles no group tracks yet"
	MsgInitShort       = "Write a starter repository config"
	MsgGenConfigShort  = "Print or write the user config template"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgInitDone       = "Wrote %s\nStorage root: %s"
	MsgInitDiscovered = "\nSeeded the dotfiles group with %d discovered paths"
	MsgInitOverwrote  = "\nReplaced the existing config"
	MsgConfigWritten  = "Wrote %s"
	MsgNothingToWrite = "No config written"
	MsgNothingFound   = "Every dotfile in %s is tracked"

	// Error messages
	MsgErrBackup     = "backup failed: %w"
	MsgErrRestore    = "restore failed: %w"
	MsgErrStatus     = "failed to get status: %w"
	MsgErrDiscover   = "failed to discover dotfiles: %w"
	MsgErrInit       = "failed to initialize repository: %w"
	MsgErrGenConfig  = "failed to generate config: %w"
	MsgErrFormat     = "invalid --format: %w"
	MsgErrExtraArgs  = "group names need --backup or --restore: %v"
	MsgErrDirections = "--backup and --restore cannot be combined"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun      = "Preview changes without executing them"
	MsgFlagYes         = "Overwrite existing files without asking"
	MsgFlagRoot        = "Repository root (default: $TERRAFORMER_ROOT, the git work tree, or the current directory)"
	MsgFlagFormat      = "Output format: auto, term, text, json, yaml, markdown"
	MsgFlagNoInventory = "Skip the inventory files and editor extension sync"
	MsgFlagBackup      = "Run a backup (same as the backup command)"
	MsgFlagRestore     = "Run a restore (same as the restore command)"
	MsgFlagPush        = "Alias for --restore"
	MsgFlagDiscover    = "Seed the dotfiles group with untracked dotfiles from home"
	MsgFlagForce       = "Replace an existing config file"
	MsgFlagWrite       = "Write the template to the user config path instead of stdout"

	// Version output
	MsgVersionFormat = "terraformer version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/backup-long.txt
	msgBackupLongRaw string
	MsgBackupLong    = strings.TrimSpace(msgBackupLongRaw)

	//go:embed msgs/backup-example.txt
	msgBackupExampleRaw string
	MsgBackupExample    = strings.TrimRight(msgBackupExampleRaw, "\n")

	//go:embed msgs/restore-long.txt
	msgRestoreLongRaw string
	MsgRestoreLong    = strings.TrimSpace(msgRestoreLongRaw)

	//go:embed msgs/restore-example.txt
	msgRestoreExampleRaw string
	MsgRestoreExample    = strings.TrimRight(msgRestoreExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimRight(msgStatusExampleRaw, "\n")

	//go:embed msgs/discover-long.txt
	msgDiscoverLongRaw string
	MsgDiscoverLong    = strings.TrimSpace(msgDiscoverLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/gen-config-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/git-hint.txt
	msgGitHintRaw string
	MsgGitHint    = strings.TrimRight(msgGitHintRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
