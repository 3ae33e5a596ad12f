package cmd

import (
	"context"
	"fmt"
	"hastec/common"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long the watcher waits for changes to settle before
// checking again.  Editors often write a file in several steps.
const watchDebounce = 100 * time.Millisecond

// Watch calls check once and then again every time a watched file changes
// until the context is cancelled.  The watched files are the checked source
// files and the project file.
func (c *Compiler) Watch(ctx context.Context, check func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(c.projectDir()); err != nil {
		return fmt.Errorf("failed to watch `%s`: %w", c.projectDir(), err)
	}

	check()

	// debounce is nil until a relevant change arrives.
	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 && c.isWatched(ev.Name) {
				debounce = time.After(watchDebounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			c.rep.ReportStdError(c.projectDir(), err)
		case <-debounce:
			debounce = nil
			check()
		}
	}
}

// isWatched returns whether a change to the file at the given path should
// cause the files to be checked again.
func (c *Compiler) isWatched(path string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	if filepath.Base(absPath) == common.HasteProjectFileName {
		return true
	}

	if c.rootIsDir {
		return filepath.Dir(absPath) == c.rootAbsPath && filepath.Ext(absPath) == common.HasteFileExt
	}

	return absPath == c.rootAbsPath
}
