package watcher

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
)

// New creates a Watcher that monitors the given config file for changes.
// The parent directory is watched rather than the file itself, so that
// editors which replace the file on save still trigger a reload.
func New(configPath string, handler ReloadHandler, log logger.Logger) (Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		configPath: configPath,
		handler:    handler,
		logger:     log,
		watcher:    fsWatcher,
	}, nil
}
