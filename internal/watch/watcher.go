// Package watch keeps the panes honest: when a displayed directory
// changes on disk behind the application's back, the front end gets an
// event telling it to reload that listing.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"gxplorer/internal/log"

	"github.com/fsnotify/fsnotify"
)

// RefreshEvent reports that the contents of Dir changed.
type RefreshEvent struct {
	Dir       string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors the directories currently displayed by the panes
// using fsnotify. Directories are added and removed as the panes
// navigate; events are delivered on a buffered channel.
type Watcher struct {
	events chan RefreshEvent
	done   chan struct{}

	fsWatcher *fsnotify.Watcher

	// Lock for running state and the watched set
	mutex   sync.RWMutex
	watched map[string]int // refcount: both panes may display the same dir
	running bool
}

// New creates a directory watcher.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		events:    make(chan RefreshEvent, 10),
		done:      make(chan struct{}),
		fsWatcher: fsWatcher,
		watched:   make(map[string]int),
	}, nil
}

// Add starts watching dir. A directory shown in both panes is
// refcounted so one pane navigating away doesn't silence the other.
func (w *Watcher) Add(dir string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.watched[dir] == 0 {
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		log.Debugf("watching %s", dir)
	}
	w.watched[dir]++
	return nil
}

// Remove stops watching dir once no pane displays it anymore.
func (w *Watcher) Remove(dir string) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.watched[dir] == 0 {
		return
	}
	w.watched[dir]--
	if w.watched[dir] == 0 {
		delete(w.watched, dir)
		if err := w.fsWatcher.Remove(dir); err != nil {
			log.Debugf("unwatch %s: %v", dir, err)
		}
	}
}

// Retarget swaps a pane's watch from oldDir to newDir.
func (w *Watcher) Retarget(oldDir, newDir string) error {
	if oldDir == newDir {
		return nil
	}
	if oldDir != "" {
		w.Remove(oldDir)
	}
	return w.Add(newDir)
}

// Events returns the channel refresh events are delivered on.
func (w *Watcher) Events() <-chan RefreshEvent {
	return w.events
}

// Start begins forwarding filesystem events. Safe to call once.
func (w *Watcher) Start() {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return
	}
	w.running = true
	w.mutex.Unlock()

	go w.loop()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			ev := RefreshEvent{
				Dir:       parentOf(event.Name),
				Timestamp: time.Now(),
				Op:        event.Op,
			}
			// Drop events when the consumer lags; the next refresh
			// rescans the whole directory anyway
			select {
			case w.events <- ev:
			default:
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("watch error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Stop shuts the watcher down. The events channel stays open so a
// consumer mid-receive never sees a closed-channel race; it simply goes
// quiet.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}
	w.running = false
	close(w.done)
	w.fsWatcher.Close()
}

// parentOf returns the watched directory an event path belongs to.
func parentOf(path string) string {
	return filepath.Dir(path)
}

// Running reports whether the forwarding loop is active.
func (w *Watcher) Running() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
