package confirmations

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("interrupted")
}

func TestConsoleConfirmer_Answers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "yes", input: "yes\n", expected: true},
		{name: "uppercase yes", input: "YES\n", expected: true},
		{name: "padded yes", input: "  Yes \r\n", expected: true},
		{name: "yes without newline", input: "yes", expected: true},
		{name: "y is not yes", input: "y\n", expected: false},
		{name: "no", input: "no\n", expected: false},
		{name: "empty line", input: "\n", expected: false},
		{name: "anything else", input: "sure\n", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewConsoleConfirmer(strings.NewReader(tt.input), &out)

			got, err := c.Confirm("/home/u/.zshrc")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Contains(t, out.String(), "/home/u/.zshrc already exists. Overwrite it? (yes/no)")
		})
	}
}

func TestConsoleConfirmer_ReadsOneLinePerPrompt(t *testing.T) {
	c := NewConsoleConfirmer(strings.NewReader("yes\nno\n"), &bytes.Buffer{})

	first, err := c.Confirm("a")
	require.NoError(t, err)
	second, err := c.Confirm("b")
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

func TestConsoleConfirmer_ClosedInput(t *testing.T) {
	c := NewConsoleConfirmer(strings.NewReader(""), &bytes.Buffer{})

	_, err := c.Confirm("/home/u/.zshrc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input closed")
}

func TestConsoleConfirmer_ReadError(t *testing.T) {
	c := NewConsoleConfirmer(failingReader{}, &bytes.Buffer{})

	_, err := c.Confirm("/home/u/.zshrc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interrupted")
}

func TestAlwaysYes(t *testing.T) {
	ok, err := AlwaysYes.Confirm("/home/u/.zshrc")
	require.NoError(t, err)
	assert.True(t, ok)
}
