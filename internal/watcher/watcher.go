package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
)

type implWatcher struct {
	configPath string
	handler    ReloadHandler
	logger     logger.Logger
	watcher    *fsnotify.Watcher
}

// Start monitors the config file until the context is cancelled
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Config watcher started. Monitoring: %s", w.configPath)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Config watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !w.isConfigEvent(event) {
				continue
			}

			w.logger.Info(ctx, "Config change detected: %s", event.Name)

			// Small delay to ensure file is fully written
			time.Sleep(500 * time.Millisecond)

			if err := w.handler(ctx, w.configPath); err != nil {
				w.logger.Error(ctx, "Failed to reload %s: %v", w.configPath, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isConfigEvent reports whether the event is a write or create of the
// watched config file. Other files in the directory are ignored.
func (w *implWatcher) isConfigEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == filepath.Clean(w.configPath)
}
