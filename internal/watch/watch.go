// Package watch watches a directory of ".grin" program files and invokes a
// callback, debounced, whenever one changes on disk.
package watch

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RunFunc re-runs the program at path. Errors are the caller's concern to
// surface (log, persist, publish); Watch itself only decides when to call it.
type RunFunc func(path string)

// Watch watches dir for writes/creates of *.grin files and calls run for
// each one, debounced by interval so a single "go build"-style burst of
// writes triggers only one re-run. Watch blocks until stop is closed.
func Watch(dir string, interval time.Duration, run RunFunc, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	debounce := make(map[string]*time.Timer)
	defer func() {
		for _, t := range debounce {
			t.Stop()
		}
	}()

	log.Printf("watch: watching %s for .grin changes", dir)

	for {
		select {
		case <-stop:
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if strings.ToLower(filepath.Ext(ev.Name)) != ".grin" {
				continue
			}

			path := ev.Name
			if t, exists := debounce[path]; exists {
				t.Stop()
			}
			debounce[path] = time.AfterFunc(interval, func() {
				run(path)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: watcher error: %v", err)
		}
	}
}
