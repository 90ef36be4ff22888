// Package watch notifies when a chart definition file changes on disk.
package watch

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Interface defines the interface for file watchers
type Interface interface {
	Changes() <-chan struct{}
	Errors() <-chan error
	Close() error
}

// Watcher monitors a single file for changes
type Watcher struct {
	watcher    *fsnotify.Watcher
	filePath   string
	modTime    time.Time
	changeChan chan struct{}
	errorChan  chan error
	done       chan struct{}
}

// NewWatcher creates a new file watcher for a chart definition file.
// The containing directory is watched rather than the file itself, so
// editors that replace the file on save are still observed.
func NewWatcher(filePath string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(filePath)
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	if err := fsWatcher.Add(filepath.Dir(filePath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:    fsWatcher,
		filePath:   filePath,
		modTime:    info.ModTime(),
		changeChan: make(chan struct{}, 1),
		errorChan:  make(chan error, 10),
		done:       make(chan struct{}),
	}

	go w.watch()

	return w, nil
}

// watch runs the file watching loop
func (w *Watcher) watch() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	defer close(w.changeChan)
	defer close(w.errorChan)

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			// Periodically compare mtimes (polling as backup)
			w.checkModTime()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Check if the event is for our file
			if event.Name == w.filePath {
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					w.notify()
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.errorChan <- err
		}
	}
}

// checkModTime notifies if the file's mtime moved since the last look
func (w *Watcher) checkModTime() {
	info, err := os.Stat(w.filePath)
	if err != nil {
		// The file may be mid-replacement; the next tick will see it
		return
	}

	if info.ModTime().After(w.modTime) {
		w.modTime = info.ModTime()
		w.notify()
	}
}

// notify signals a change without blocking. The channel holds one
// pending notification, so bursts of writes coalesce into a single
// reload.
func (w *Watcher) notify() {
	select {
	case w.changeChan <- struct{}{}:
	default:
	}
}

// Changes returns a channel that receives after the file changes
func (w *Watcher) Changes() <-chan struct{} {
	return w.changeChan
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching the file
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		// Already closed
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}
