package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher reports debounced changes of a set of files
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	timers    map[string]*time.Timer
	debounce  time.Duration
	onError   func(error)
}

// NewFileWatcher creates a new file watcher. onError receives errors reported
// by the underlying watcher; it may be nil.
func NewFileWatcher(debounce time.Duration, onError func(error)) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if onError == nil {
		onError = func(error) {}
	}

	return &FileWatcher{
		watcher:   w,
		callbacks: make(map[string]func(string)),
		timers:    make(map[string]*time.Timer),
		debounce:  debounce,
		onError:   onError,
	}, nil
}

// Watch adds files to the watch set.
// callback is called with the absolute path of a file once it stops changing
// for the debounce interval.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if err := fw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		fw.callbacks[absPath] = callback
	}

	return nil
}

// Run dispatches change events until ctx is done or the watcher is closed
func (fw *FileWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			// Editors often replace files instead of writing in place
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.schedule(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.onError(err)
		}
	}
}

// schedule (re)starts the debounce timer of filePath
func (fw *FileWatcher) schedule(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[filePath]
	if !exists {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}
	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		callback(filePath)
	})
}

// Close stops pending timers and the underlying watcher
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.timers = make(map[string]*time.Timer)
	fw.mu.Unlock()

	return fw.watcher.Close()
}
