package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
)

const defaultSettle = 500 * time.Millisecond

// Option configures a Watcher.
type Option func(*implWatcher)

// WithSettle sets how long a new file must sit before it is handled, giving
// the writer time to finish.
func WithSettle(d time.Duration) Option {
	return func(w *implWatcher) {
		w.settle = d
	}
}

// WithExisting makes Start handle caption files already in the folder.
func WithExisting() Option {
	return func(w *implWatcher) {
		w.existing = true
	}
}

// New creates a new Watcher instance with concurrency control
func New(inputDir string, handler EventHandler, log logger.Logger, maxConcurrent int, opts ...Option) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	w := &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
		settle:        defaultSettle,
		inFlight:      make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}
