package check

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events editors emit on save
// (truncate + write, or rename-into-place) into a single re-check.
const watchDebounce = 100 * time.Millisecond

// WatchFile re-runs the given check whenever the commit message file is
// written. The parent directory is watched rather than the file itself so
// editors that replace the file atomically keep triggering events. Runs
// once immediately, then blocks until the context is cancelled.
func WatchFile(ctx context.Context, path string, run func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	run()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			name, err := filepath.Abs(event.Name)
			if err != nil {
				name = event.Name
			}
			if name == abs && (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				pending = time.After(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			return fmt.Errorf("watching %s: %w", path, err)
		case <-pending:
			pending = nil
			run()
		}
	}
}
