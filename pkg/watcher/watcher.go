// Package watcher provides a debounced file watcher.
//
// Modeling tools rewrite exported mesh files in bursts, often as a
// temp-file-and-rename. The watcher coalesces each burst into a single
// callback and re-arms watches that editors break by replacing the
// file.
package watcher

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher invokes a callback when watched files change, coalescing
// rapid event bursts into one call per file.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	log      *slog.Logger

	mu        sync.Mutex
	callbacks map[string]func(string)
	timers    map[string]*time.Timer
	closed    bool
}

// New creates a watcher. A change to a file is reported once no new
// event has arrived for the debounce interval.
func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		fsw:       fsw,
		debounce:  debounce,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		callbacks: make(map[string]func(string)),
		timers:    make(map[string]*time.Timer),
	}, nil
}

// SetLogger routes watcher diagnostics to l. Call before Start.
func (w *Watcher) SetLogger(l *slog.Logger) {
	if l != nil {
		w.log = l
	}
}

// Watch registers files and the callback invoked when one of them
// changes. The callback receives the absolute path and runs on a timer
// goroutine.
func (w *Watcher) Watch(files []string, callback func(string)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if err := w.fsw.Add(abs); err != nil {
			return fmt.Errorf("failed to watch %s: %w", abs, err)
		}
		w.callbacks[abs] = callback
	}
	return nil
}

// Start launches the event loop. It runs until Close is called.
func (w *Watcher) Start() {
	go w.run()
}

// Close stops the event loop and cancels pending callbacks.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	return w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	switch {
	case event.Op.Has(fsnotify.Write), event.Op.Has(fsnotify.Create):
		w.schedule(event.Name)

	case event.Op.Has(fsnotify.Rename), event.Op.Has(fsnotify.Remove):
		// Saving via a temp file renamed over the original drops the
		// kernel watch on the old inode. Re-arm the path and treat the
		// replacement as a change.
		w.rearm(event.Name)
	}
}

// schedule starts or restarts the debounce timer for path.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	callback, ok := w.callbacks[path]
	if !ok || w.closed {
		return
	}

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.log.Debug("file changed", "path", path)
		callback(path)
	})
}

// rearm re-adds a watched path after its inode went away. The new file
// may not exist yet, so it retries for about a second.
func (w *Watcher) rearm(path string) {
	w.mu.Lock()
	_, watched := w.callbacks[path]
	w.mu.Unlock()
	if !watched {
		return
	}

	go func() {
		const retry = 50 * time.Millisecond
		for i := 0; i < 20; i++ {
			time.Sleep(retry)

			w.mu.Lock()
			if w.closed {
				w.mu.Unlock()
				return
			}
			err := w.fsw.Add(path)
			w.mu.Unlock()

			if err == nil {
				w.schedule(path)
				return
			}
		}
		w.log.Warn("lost watch on replaced file", "path", path)
	}()
}
