package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLoggerWithOutput(&bytes.Buffer{}, tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "terraformer", "terraformer.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	got := LogFilePath()
	want := filepath.Join("/custom/state", "terraformer", "terraformer.log")
	if got != want {
		t.Errorf("LogFilePath() = %q, want %q", got, want)
	}
}

func TestGetLoggerAddsComponent(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var buf bytes.Buffer
	SetupLoggerWithOutput(&buf, 1)

	logger := GetLogger("reconcile")
	logger.Info().Msg("hello")

	if !strings.Contains(buf.String(), "reconcile") {
		t.Errorf("expected component in output, got %q", buf.String())
	}
}

func TestLogOperationStart(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var buf bytes.Buffer
	SetupLoggerWithOutput(&buf, 2)

	done := LogOperationStart(GetLogger("test"), "copy")
	done()

	out := buf.String()
	if !strings.Contains(out, "Operation started") || !strings.Contains(out, "Operation completed") {
		t.Errorf("expected start and completion messages, got %q", out)
	}
}
