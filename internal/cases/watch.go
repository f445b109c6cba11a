package cases

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch re-evaluates the case file each time it is written and passes the
// outcomes to onChange. A file that fails to load is logged and skipped.
// It runs until ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(*Set, []Outcome)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	slog.Info("cases: watching for changes", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			set, err := Load(path)
			if err != nil {
				slog.Error("cases: reload failed", "path", path, "err", err)
				continue
			}

			outcomes := Evaluate(set)
			slog.Info("cases: re-evaluated", "path", path,
				"cases", len(outcomes), "failed", Failed(outcomes))
			onChange(set, outcomes)

			// Editors that save atomically replace the inode
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("cases: watcher error", "err", err)
		}
	}
}
