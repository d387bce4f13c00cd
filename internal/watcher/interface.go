package watcher

import "context"

// Watcher defines the interface for config file monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// ReloadHandler is called with the config path whenever the file changes
type ReloadHandler func(ctx context.Context, configPath string) error
