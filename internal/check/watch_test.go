// Package check tests the watch loop re-running validation on file writes.
// Related: internal/check/watch.go
// Tags: check, watch, fsnotify
package check

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchFile_RunsOnceThenOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte("feat: one"), 0o644))

	runs := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- WatchFile(ctx, path, func() { runs <- struct{}{} })
	}()

	// Initial run happens before any event.
	select {
	case <-runs:
	case <-time.After(2 * time.Second):
		t.Fatal("initial run never happened")
	}

	require.NoError(t, os.WriteFile(path, []byte("feat: two"), 0o644))

	select {
	case <-runs:
	case <-time.After(2 * time.Second):
		t.Fatal("write did not trigger a re-run")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop on context cancel")
	}
}

func TestWatchFile_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte("feat: one"), 0o644))

	runs := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- WatchFile(ctx, path, func() { runs <- struct{}{} })
	}()

	<-runs // initial run

	// Writes to other files in the watched directory are not re-checks.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-runs:
		t.Fatal("sibling write triggered a re-run")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatchFile_MissingDirectory(t *testing.T) {
	t.Parallel()

	err := WatchFile(context.Background(), filepath.Join(t.TempDir(), "nope", "msg"), func() {})
	require.Error(t, err)
}
