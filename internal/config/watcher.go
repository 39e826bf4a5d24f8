package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"shophub/internal/logging"
)

// Watcher reloads the logging configuration when config.yaml changes on
// disk, so long-running TUI sessions pick up debug-mode toggles without a
// restart.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	done    chan struct{}
}

// Watch starts watching the config file at path. onReload, if non-nil, is
// invoked after each successful reload.
func Watch(path string, onReload func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors replace files on save, which would drop
	// a watch on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{watcher: fw, path: path, done: make(chan struct{})}
	go w.loop(onReload)
	return w, nil
}

func (w *Watcher) loop(onReload func()) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := logging.ReloadConfig(); err != nil {
				logging.BootError("config reload failed: %v", err)
				continue
			}
			logging.Boot("config reloaded after change to %s", w.path)
			if onReload != nil {
				onReload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.BootError("config watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
