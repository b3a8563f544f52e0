// Package fsnotify implements the ports.Watcher interface using
// github.com/fsnotify/fsnotify. It watches the script file's directory
// rather than the file itself (editors often save via rename-and-replace,
// which drops a direct file watch) and debounces rapid events.
package fsnotify

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 100 * time.Millisecond

// Watcher implements ports.Watcher for a single file.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewWatcher creates a new file watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring path. onChange is invoked with the absolute path
// after each write, create, or rename touching it.
func (w *Watcher) Watch(path string, onChange func(string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.fw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	go func() {
		var last time.Time
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if event.Name != absPath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}

				// Debounce: editors trigger multiple events per save.
				now := time.Now()
				if now.Sub(last) < debounceInterval {
					continue
				}
				last = now

				onChange(absPath)

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// watch errors are transient, keep draining

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
