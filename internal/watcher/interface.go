package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles one caption file that appeared in the watched folder.
type EventHandler func(ctx context.Context, filePath string) error
