package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// WatchFile starts a background goroutine that invokes onChange whenever
// path is written or re-created. Editors that replace files on save
// produce create events, so both are treated as a change. Call the
// returned stop function to clean up.
func WatchFile(path string, onChange func()) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("graph watcher: %w", err)
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, fmt.Errorf("graph watcher add %s: %w", path, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					onChange()
				}
			case <-w.Errors:
				// Ignore watcher errors and keep serving the last
				// successfully loaded graph.
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}
