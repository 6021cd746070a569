package runlog_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/runlog"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryString(t *testing.T) {
	e := runlog.Entry{
		Time:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		RunID:    "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b",
		Hostname: "laptop",
		Platform: "darwin/arm64",
		Mode:     "backup",
		Counts:   types.ReportCounts{Applied: 2, Skipped: 1},
	}

	assert.Equal(t,
		"2024-03-01T12:00:00Z - 0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b - laptop - darwin/arm64 - backup - applied=2 skipped=1 failed=0",
		e.String())
}

func TestNewEntry(t *testing.T) {
	e := runlog.NewEntry("restore", types.ReportCounts{Failed: 1})

	id, err := uuid.Parse(e.RunID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Equal(t, "restore", e.Mode)
	assert.NotEmpty(t, e.Hostname)
	assert.Contains(t, e.Platform, "/")
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repo", "log.txt")
	fsys := filesystem.NewOS()

	require.NoError(t, runlog.Append(fsys, path, runlog.NewEntry("backup", types.ReportCounts{Applied: 1})))
	require.NoError(t, runlog.Append(fsys, path, runlog.NewEntry("restore", types.ReportCounts{})))

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], " - backup - applied=1 skipped=0 failed=0")
	assert.Contains(t, lines[1], " - restore - ")
}
