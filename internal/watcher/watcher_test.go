package watcher

import (
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestIsConfigEvent(t *testing.T) {
	w := &implWatcher{configPath: "/etc/summarizer/config.yaml"}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{
			name:  "write to config file",
			event: fsnotify.Event{Name: "/etc/summarizer/config.yaml", Op: fsnotify.Write},
			want:  true,
		},
		{
			name:  "create of config file",
			event: fsnotify.Event{Name: "/etc/summarizer/config.yaml", Op: fsnotify.Create},
			want:  true,
		},
		{
			name:  "unclean path still matches",
			event: fsnotify.Event{Name: "/etc/summarizer/./config.yaml", Op: fsnotify.Write},
			want:  true,
		},
		{
			name:  "write to sibling file",
			event: fsnotify.Event{Name: "/etc/summarizer/config.yaml.swp", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:  "remove of config file",
			event: fsnotify.Event{Name: "/etc/summarizer/config.yaml", Op: fsnotify.Remove},
			want:  false,
		},
		{
			name:  "chmod of config file",
			event: fsnotify.Event{Name: "/etc/summarizer/config.yaml", Op: fsnotify.Chmod},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.isConfigEvent(tt.event); got != tt.want {
				t.Errorf("isConfigEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}
