package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/terraformer/pkg/display"
	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/arthur-debert/terraformer/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
		description string
	}{
		{
			name:        "create terminal renderer",
			format:      ui.FormatTerminal,
			expectError: false,
			description: "should create terminal renderer successfully",
		},
		{
			name:        "create text renderer",
			format:      ui.FormatText,
			expectError: false,
			description: "should create text renderer successfully",
		},
		{
			name:        "create json renderer",
			format:      ui.FormatJSON,
			expectError: false,
			description: "should create JSON renderer successfully",
		},
		{
			name:        "create yaml renderer",
			format:      ui.FormatYAML,
			expectError: false,
			description: "should create YAML renderer successfully",
		},
		{
			name:        "create markdown renderer",
			format:      ui.FormatMarkdown,
			expectError: false,
			description: "should create markdown renderer successfully",
		},
		{
			name:        "create auto renderer with buffer",
			format:      ui.FormatAuto,
			expectError: false,
			description: "should default to terminal format when output is not a file",
		},
		{
			name:        "invalid format",
			format:      ui.Format(999),
			expectError: true,
			description: "should return error for unknown format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(tt.format, buf)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				assert.Contains(t, err.Error(), "unknown format")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, renderer)
			}
		})
	}
}

func TestRendererInterface(t *testing.T) {
	// Test that all renderer implementations satisfy the Renderer interface
	formats := []ui.Format{
		ui.FormatTerminal,
		ui.FormatText,
		ui.FormatJSON,
		ui.FormatYAML,
		ui.FormatMarkdown,
	}

	for _, format := range formats {
		t.Run(format.String()+" renderer implements interface", func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf)
			require.NoError(t, err)

			// Verify the renderer implements all required methods
			assert.NotNil(t, renderer)

			// Test basic method calls (just ensure they don't panic)
			err = renderer.RenderMessage("test message")
			assert.NoError(t, err)

			err = renderer.RenderError(assert.AnError)
			assert.NoError(t, err)

			// Test with simple data
			testData := map[string]string{"test": "data"}
			err = renderer.RenderResult(testData)
			assert.NoError(t, err)
		})
	}
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		err := renderer.RenderMessage("hello world")
		assert.NoError(t, err)

		var result map[string]string
		err = json.Unmarshal(buf.Bytes(), &result)
		assert.NoError(t, err)
		assert.Equal(t, "hello world", result["message"])
	})

	t.Run("render error", func(t *testing.T) {
		buf.Reset()
		err := renderer.RenderError(assert.AnError)
		assert.NoError(t, err)

		var result map[string]string
		err = json.Unmarshal(buf.Bytes(), &result)
		assert.NoError(t, err)
		assert.Equal(t, assert.AnError.Error(), result["error"])
	})

	t.Run("render result", func(t *testing.T) {
		buf.Reset()
		testData := map[string]string{"foo": "bar"}
		err := renderer.RenderResult(testData)
		assert.NoError(t, err)

		var result map[string]string
		err = json.Unmarshal(buf.Bytes(), &result)
		assert.NoError(t, err)
		assert.Equal(t, "bar", result["foo"])
	})

	t.Run("render structured error", func(t *testing.T) {
		buf.Reset()
		err := renderer.RenderError(errors.New(errors.ErrStorageRoot, "cannot create storage").WithDetail("path", "/repo/dotfiles"))
		assert.NoError(t, err)

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "STORAGE_ROOT", result["code"])
		assert.Equal(t, map[string]interface{}{"path": "/repo/dotfiles"}, result["details"])
	})

	t.Run("render command result", func(t *testing.T) {
		buf.Reset()
		err := renderer.RenderResult(sampleResult())
		assert.NoError(t, err)

		var result display.CommandResult
		err = json.Unmarshal(buf.Bytes(), &result)
		assert.NoError(t, err)
		assert.Equal(t, "backup", result.Command)
		require.Len(t, result.Groups, 1)
		assert.Equal(t, "dotfiles", result.Groups[0].Name)
		assert.Equal(t, types.OutcomeApplied, result.Groups[0].Files[0].Outcome)
		assert.Equal(t, 1, result.Summary.Applied)
	})
}

func TestYAMLRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatYAML, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleResult()))

	var result display.CommandResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "backup", result.Command)
	require.Len(t, result.Groups, 1)
	assert.Equal(t, ".zshrc", result.Groups[0].Files[0].Path)
	assert.Contains(t, buf.String(), "outcome: applied")
}

func TestMarkdownRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatMarkdown, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleResult()))
	assert.Contains(t, buf.String(), "dotfiles")
	assert.Contains(t, buf.String(), ".zshrc")
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		err := renderer.RenderMessage("hello world")
		assert.NoError(t, err)
		assert.Equal(t, "hello world\n", buf.String())
	})

	t.Run("render error", func(t *testing.T) {
		buf.Reset()
		err := renderer.RenderError(assert.AnError)
		assert.NoError(t, err)
		assert.Equal(t, "Error: assert.AnError general error for testing\n", buf.String())
	})

	t.Run("render unknown result type", func(t *testing.T) {
		buf.Reset()
		unknownData := map[string]string{"foo": "bar"}
		err := renderer.RenderResult(unknownData)
		assert.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "map[foo:bar]")
	})

	t.Run("render command result", func(t *testing.T) {
		buf.Reset()
		err := renderer.RenderResult(sampleResult())
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), ".zshrc")
		assert.Contains(t, buf.String(), "moved to storage and linked")
	})
}

func sampleResult() *display.CommandResult {
	return &display.CommandResult{
		Command: "backup",
		Groups: []display.GroupResult{{
			Name:      "dotfiles",
			Direction: types.DirectionBackup,
			Home:      "~",
			Storage:   "~/repo/dotfiles",
			Files: []display.FileResult{{
				Path:    ".zshrc",
				Outcome: types.OutcomeApplied,
				Message: "moved to storage and linked",
			}},
			Counts: types.ReportCounts{Applied: 1},
		}},
		Summary: types.ReportCounts{Applied: 1},
	}
}

func TestTerminalRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		err := renderer.RenderMessage("hello world")
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "hello world")
	})

	t.Run("render error", func(t *testing.T) {
		buf.Reset()
		err := renderer.RenderError(assert.AnError)
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "assert.AnError")
	})

	t.Run("render unknown result type", func(t *testing.T) {
		buf.Reset()
		unknownData := map[string]string{"foo": "bar"}
		err := renderer.RenderResult(unknownData)
		assert.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "map[foo:bar]")
	})

	t.Run("render command result", func(t *testing.T) {
		buf.Reset()
		err := renderer.RenderResult(sampleResult())
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), ".zshrc")
		assert.Contains(t, buf.String(), "moved to storage and linked")
	})
}
