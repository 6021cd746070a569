// Package runlog appends one line per run to the repository's run journal,
// so the history of backups and restores travels with the tracked files.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/google/uuid"
)

// Entry is a single journal line
type Entry struct {
	Time     time.Time
	RunID    string
	Hostname string
	Platform string
	Mode     string
	Counts   types.ReportCounts
}

// NewEntry builds an entry for the current machine. mode is the run
// direction, or "none" for runs that only refresh the inventory.
func NewEntry(mode string, counts types.ReportCounts) Entry {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return Entry{
		Time:     time.Now(),
		RunID:    uuid.Must(uuid.NewV7()).String(),
		Hostname: hostname,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Mode:     mode,
		Counts:   counts,
	}
}

// String renders the entry as a journal line without the trailing newline
func (e Entry) String() string {
	return strings.Join([]string{
		e.Time.Format(time.RFC3339),
		e.RunID,
		e.Hostname,
		e.Platform,
		e.Mode,
		fmt.Sprintf("applied=%d skipped=%d failed=%d", e.Counts.Applied, e.Counts.Skipped, e.Counts.Failed),
	}, " - ")
}

// Append adds e to the journal at path, creating it if needed
func Append(fsys types.FS, path string, e Entry) error {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to create directory for %s", path)
	}

	f, err := fsys.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to open run log %s", path)
	}
	if _, err := fmt.Fprintln(f, e.String()); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write run log %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to close run log %s", path)
	}
	return nil
}
