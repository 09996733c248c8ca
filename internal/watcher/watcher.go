package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/caption-digest/internal/caption"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
	settle        time.Duration
	existing      bool

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// Start monitors the input directory for new caption files and hands each to
// the handler, at most maxConcurrent at a time. It returns ctx.Err() after
// in-flight handlers finish.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)

	if w.existing {
		if err := w.scan(ctx); err != nil {
			w.logger.Warn(ctx, "Failed to scan %s: %v", w.inputDir, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher events channel closed")
			}

			// Create covers new files and renames into the folder.
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !caption.IsCaptionFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-caption file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New caption file detected: %s", event.Name)
			if err := w.dispatch(ctx, event.Name); err != nil {
				w.wg.Wait()
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.wg.Wait()
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

func (w *implWatcher) scan(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return err
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && caption.IsCaptionFile(e.Name()) {
			paths = append(paths, filepath.Join(w.inputDir, e.Name()))
		}
	}
	sort.Strings(paths)

	for _, p := range paths {
		w.logger.Info(ctx, "Existing caption file: %s", p)
		if err := w.dispatch(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// dispatch blocks until a slot is free, then handles path in a goroutine.
// A path already being handled is skipped.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	w.mu.Lock()
	if _, busy := w.inFlight[path]; busy {
		w.mu.Unlock()
		return nil
	}
	w.inFlight[path] = struct{}{}
	w.mu.Unlock()

	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		w.forget(path)
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()
		defer w.forget(path)

		if w.settle > 0 {
			select {
			case <-time.After(w.settle):
			case <-ctx.Done():
				return
			}
		}

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) forget(path string) {
	w.mu.Lock()
	delete(w.inFlight, path)
	w.mu.Unlock()
}
