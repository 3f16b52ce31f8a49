// Package watch re-runs generation when scanned source changes. It watches
// the directories of every scanned package, debounces rapid saves, and
// ignores generated artifacts so a write by dg itself never retriggers a
// run.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/declgen-tools/cli/internal/log"
)

const debounce = 500 * time.Millisecond

// Watcher observes a set of package directories and invokes a callback
// after changes settle.
type Watcher struct {
	fs     *fsnotify.Watcher
	ignore []string // file names never worth a rerun
	onRun  func() error
}

// New creates a watcher over the given directories. ignoreFiles lists
// base names (typically the generated artifacts) whose changes are skipped.
func New(dirs []string, ignoreFiles []string, onRun func() error) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return nil, err
		}
		log.Debug("watch: watching %s", dir)
	}

	return &Watcher{fs: fs, ignore: ignoreFiles, onRun: onRun}, nil
}

// Run blocks until the context is cancelled, invoking the callback after
// each settled burst of relevant changes. Callback errors are logged and
// watching continues; a broken declaration mid-edit is normal.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			log.Debug("watch: %s %s", event.Op, event.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch: %v", err)

		case <-fire:
			if err := w.onRun(); err != nil {
				log.Error("watch: generation failed: %v", err)
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
		return false
	}
	for _, ignored := range w.ignore {
		if name == ignored {
			return false
		}
	}
	return true
}
