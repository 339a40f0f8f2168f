package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"fitfolio/internal/logging"
)

// Watcher watches a content file for changes and delivers freshly parsed
// content to a callback. Editors save in bursts (write, truncate, rename),
// so events are debounced: a reload fires only once a file has been quiet
// for the debounce window.
//
// The watcher watches the file's directory rather than the file itself;
// editors that replace the file on save would otherwise silently detach the
// watch.
type Watcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	path        string // Absolute path of the content file
	onReload    func(Site)
	debounceDur time.Duration
	lastEvent   time.Time
	dirty       bool
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats WatcherStats
}

// WatcherStats tracks watcher activity for debugging.
type WatcherStats struct {
	Events  int
	Reloads int
	Errors  int
}

// NewWatcher creates a watcher for the given content file. onReload is
// invoked from the watcher goroutine with each successfully parsed reload;
// parse failures are logged and the previous content stays on screen.
func NewWatcher(path string, onReload func(Site)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{
		watcher:     fw,
		path:        abs,
		onReload:    onReload,
		debounceDur: 250 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the watch loop runs in a goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		logging.WatchError("failed to watch %s: %v", dir, err)
		return err
	}
	logging.Watch("watching %s for changes to %s", dir, filepath.Base(w.path))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the loop to drain.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.WatchError("error closing watcher: %v", err)
	}
	logging.Watch("stopped")
}

// Stats returns a snapshot of the watcher counters.
func (w *Watcher) Stats() WatcherStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	settle := time.NewTicker(100 * time.Millisecond)
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Watch("context cancelled")
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.WatchError("watch error: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-settle.C:
			w.reloadIfSettled()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Only the content file matters; the directory watch sees everything.
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}

	logging.Get(logging.CategoryWatch).Debug("%s event for %s", event.Op, event.Name)

	w.mu.Lock()
	w.stats.Events++
	w.lastEvent = time.Now()
	w.dirty = true
	w.mu.Unlock()
}

// reloadIfSettled reloads the file once events have been quiet for the
// debounce window, collapsing a save burst into one reload.
func (w *Watcher) reloadIfSettled() {
	w.mu.Lock()
	if !w.dirty || time.Since(w.lastEvent) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.dirty = false
	w.mu.Unlock()

	site, err := Load(w.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Watch("content file removed, keeping current content")
			return
		}
		logging.WatchError("reload failed, keeping current content: %v", err)
		w.mu.Lock()
		w.stats.Errors++
		w.mu.Unlock()
		return
	}

	w.mu.Lock()
	w.stats.Reloads++
	w.mu.Unlock()

	logging.Watch("content reloaded from %s", w.path)
	if w.onReload != nil {
		w.onReload(site)
	}
}
