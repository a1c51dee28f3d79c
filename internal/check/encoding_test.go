// Package check tests commit message file decoding.
// Related: internal/check/encoding.go
// Tags: check, encoding, iana
package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMessageFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("utf-8 passthrough", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "utf8.txt")
		require.NoError(t, os.WriteFile(path, []byte("feat: héllo"), 0o644))

		got, err := readMessageFile(path, "utf-8")
		require.NoError(t, err)
		assert.Equal(t, "feat: héllo", got)
	})

	t.Run("latin-1 decoded", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "latin1.txt")
		// "caf\xe9" is "café" in ISO-8859-1.
		require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0o644))

		got, err := readMessageFile(path, "ISO-8859-1")
		require.NoError(t, err)
		assert.Equal(t, "café", got)
	})

	t.Run("unknown encoding rejected", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "any.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		_, err := readMessageFile(path, "klingon-8")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown encoding "klingon-8"`)
	})

	t.Run("missing file propagates", func(t *testing.T) {
		t.Parallel()
		_, err := readMessageFile(filepath.Join(dir, "nope"), "utf-8")
		assert.Error(t, err)
	})
}
