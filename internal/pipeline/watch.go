package pipeline

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/backmassage/shownamer/internal/config"
	"github.com/backmassage/shownamer/internal/logging"
)

// watchDebounce batches the event bursts a download or unpack produces into
// one rescan.
const watchDebounce = 2 * time.Second

// Watch re-runs the rename pass whenever the library changes. It returns
// when ctx is cancelled or the watcher shuts down.
func Watch(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addRecursive(watcher, cfg.MediaFolder); err != nil {
		return err
	}
	log.Infof("Watching for changes: %s", cfg.MediaFolder)

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(ev) {
				continue
			}
			// New directories must be watched before files land in them.
			if ev.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := addRecursive(watcher, ev.Name); err != nil {
						log.Warnf("Cannot watch %s: %v", ev.Name, err)
					}
				}
			}
			log.Debugf("Change detected: %s", ev.Name)
			debounce.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("Watcher error: %v", err)

		case <-debounce.C:
			Run(ctx, cfg, log)
		}
	}
}

// addRecursive watches root and every directory below it.
func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// relevantEvent filters out noise: attribute-only changes and events on
// non-video files. Directory events always count so renames and new season
// folders trigger a rescan.
func relevantEvent(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	if IsVideoFile(filepath.Base(ev.Name)) {
		return true
	}
	fi, err := os.Stat(ev.Name)
	return err == nil && fi.IsDir()
}
