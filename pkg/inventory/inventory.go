package inventory

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/logging"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/rs/zerolog"
)

// Task names used in results
const (
	TaskApps              = "apps"
	TaskBrew              = "brew"
	TaskExportExtensions  = "export_extensions"
	TaskInstallExtensions = "install_extensions"
)

// Status is the outcome of one inventory task
type Status string

const (
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Result reports one inventory task
type Result struct {
	Task   string `json:"task" yaml:"task"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
	Status Status `json:"status" yaml:"status"`
	// Count is the number of lines written, or extensions installed
	Count   int    `json:"count" yaml:"count"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Err     error  `json:"-" yaml:"-"`
}

// Inventory writes inventory files through an injectable filesystem and
// command runner
type Inventory struct {
	fs     types.FS
	runner Runner
	dryRun bool
	logger zerolog.Logger
}

// New creates an Inventory. Nil arguments select the OS filesystem and
// os/exec runner.
func New(fsys types.FS, runner Runner, dryRun bool) *Inventory {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if runner == nil {
		runner = NewExecRunner()
	}
	return &Inventory{
		fs:     fsys,
		runner: runner,
		dryRun: dryRun,
		logger: logging.GetLogger("inventory"),
	}
}

// WriteApps lists the directories in appsDir into outFile, one per line
func (inv *Inventory) WriteApps(appsDir, outFile string) Result {
	res := Result{Task: TaskApps, Path: outFile}

	entries, err := inv.fs.ReadDir(appsDir)
	if err != nil {
		if filesystem.IsNotExist(err) {
			return inv.skip(res, "applications directory %s does not exist", appsDir)
		}
		return inv.fail(res, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", appsDir))
	}

	var apps []string
	for _, entry := range entries {
		if entry.IsDir() {
			apps = append(apps, entry.Name())
		}
	}
	sort.Strings(apps)

	return inv.writeLines(res, apps)
}

// WriteBrewPackages writes the output of `brew list` to outFile
func (inv *Inventory) WriteBrewPackages(ctx context.Context, outFile string) Result {
	res := Result{Task: TaskBrew, Path: outFile}

	if _, err := inv.runner.LookPath("brew"); err != nil {
		return inv.skip(res, "brew not found, skipping package list")
	}

	out, err := inv.runner.Output(ctx, "brew", "list")
	if err != nil {
		return inv.fail(res, errors.Wrap(err, errors.ErrToolFailed, "brew list failed"))
	}

	return inv.writeLines(res, splitLines(out))
}

// ExportExtensions writes `code --list-extensions` to outFile
func (inv *Inventory) ExportExtensions(ctx context.Context, outFile string) Result {
	res := Result{Task: TaskExportExtensions, Path: outFile}

	if _, err := inv.runner.LookPath("code"); err != nil {
		return inv.skip(res, "VSCode CLI (code) not found, skipping extension export")
	}

	out, err := inv.runner.Output(ctx, "code", "--list-extensions")
	if err != nil {
		return inv.fail(res, errors.Wrap(err, errors.ErrToolFailed, "code --list-extensions failed"))
	}

	return inv.writeLines(res, splitLines(out))
}

// InstallExtensions installs every extension listed in file. Blank lines
// and # comments are ignored. One failed install does not stop the rest.
func (inv *Inventory) InstallExtensions(ctx context.Context, file string) Result {
	res := Result{Task: TaskInstallExtensions, Path: file}

	data, err := inv.fs.ReadFile(file)
	if err != nil {
		if filesystem.IsNotExist(err) {
			return inv.skip(res, "no extension list at %s", file)
		}
		return inv.fail(res, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", file))
	}

	var extensions []string
	for _, line := range splitLines(data) {
		if strings.HasPrefix(line, "#") {
			continue
		}
		extensions = append(extensions, line)
	}
	if len(extensions) == 0 {
		return inv.skip(res, "extension list %s is empty", file)
	}

	if _, err := inv.runner.LookPath("code"); err != nil {
		return inv.skip(res, "VSCode CLI (code) not found, skipping %d extensions", len(extensions))
	}

	if inv.dryRun {
		res.Status = StatusDone
		res.Count = len(extensions)
		res.Message = "dry run"
		return res
	}

	var failed []string
	for _, ext := range extensions {
		inv.logger.Info().Str("extension", ext).Msg("Installing VSCode extension")
		if _, err := inv.runner.Output(ctx, "code", "--install-extension", ext); err != nil {
			inv.logger.Warn().Err(err).Str("extension", ext).Msg("Extension install failed")
			failed = append(failed, ext)
			continue
		}
		res.Count++
	}

	if len(failed) > 0 {
		return inv.fail(res, errors.Newf(errors.ErrToolFailed, "%d of %d extensions failed to install", len(failed), len(extensions)).
			WithDetail("failed", failed))
	}
	res.Status = StatusDone
	return res
}

func (inv *Inventory) writeLines(res Result, lines []string) Result {
	res.Count = len(lines)
	if inv.dryRun {
		res.Status = StatusDone
		res.Message = "dry run"
		return res
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if err := inv.fs.MkdirAll(filepath.Dir(res.Path), 0755); err != nil {
		return inv.fail(res, errors.Wrapf(err, errors.ErrFileAccess, "failed to create directory for %s", res.Path))
	}
	if err := inv.fs.WriteFile(res.Path, buf.Bytes(), 0644); err != nil {
		return inv.fail(res, errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", res.Path))
	}

	inv.logger.Info().Str("task", res.Task).Str("path", res.Path).Int("lines", res.Count).Msg("Inventory written")
	res.Status = StatusDone
	return res
}

func (inv *Inventory) skip(res Result, format string, args ...interface{}) Result {
	res.Status = StatusSkipped
	res.Message = fmt.Sprintf(format, args...)
	inv.logger.Warn().Str("task", res.Task).Msg(res.Message)
	return res
}

func (inv *Inventory) fail(res Result, err error) Result {
	res.Status = StatusFailed
	res.Err = err
	res.Message = err.Error()
	inv.logger.Warn().Err(err).Str("task", res.Task).Msg("Inventory task failed")
	return res
}

func splitLines(data []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
