// Package output tests the console reporter.
// Related: internal/output/format.go
// Tags: output, reporter, console
package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleSuccess(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewConsole(&buf).Success("commit validation: successful!")

	got := buf.String()
	assert.Contains(t, got, "✓")
	assert.Contains(t, got, "commit validation: successful!")
	assert.True(t, got[len(got)-1] == '\n')
}

func TestNewConsole_NilDefaultsToStdout(t *testing.T) {
	t.Parallel()

	c := NewConsole(nil)
	require.NotNil(t, c.Out)
}
