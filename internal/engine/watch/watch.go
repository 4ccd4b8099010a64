// Package watch reports changes to asset files so a session can reload
// them.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period used when Watcher.Debounce is zero.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a set of files. Parent directories are watched rather
// than the files themselves, so saves that replace a file by renaming are
// still seen.
type Watcher struct {
	// Debounce is how long a file must stay quiet before its change is
	// reported.
	Debounce time.Duration

	fs    *fsnotify.Watcher
	files map[string]bool
	dirs  map[string]bool
	log   *zap.Logger
}

// New creates a watcher.
func New(log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	return &Watcher{
		fs:    fw,
		files: make(map[string]bool),
		dirs:  make(map[string]bool),
		log:   log.Named("watch"),
	}, nil
}

// Add starts watching paths.
func (w *Watcher) Add(paths ...string) error {
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		w.files[abs] = true

		dir := filepath.Dir(abs)
		if w.dirs[dir] {
			continue
		}
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	return nil
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run calls onChange for every watched file that was written or created,
// once it has been quiet for the debounce period. onChange runs on the
// caller's goroutine. Run returns when ctx is done or the watcher is
// closed.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	pending := make(map[string]time.Time)
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			w.log.Debug("file changed", zap.String("path", name), zap.Stringer("op", event.Op))
			pending[name] = time.Now()
			timer.Reset(debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))

		case now := <-timer.C:
			var next time.Duration
			for name, at := range pending {
				if wait := debounce - now.Sub(at); wait > 0 {
					if next == 0 || wait < next {
						next = wait
					}
					continue
				}
				delete(pending, name)
				onChange(name)
			}
			if next > 0 {
				timer.Reset(next)
			}
		}
	}
}
