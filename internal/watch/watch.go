// Package watch re-runs a callback when a file changes on disk. Bursts of
// events are debounced so one editor save triggers one run.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const (
	defaultDebounce = 300 * time.Millisecond
	tick            = 50 * time.Millisecond
)

// Watcher follows a single file. The parent directory is watched so that
// editors replacing the file through a rename are still seen.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
	logger   *zap.Logger

	dirty bool
	last  time.Time
}

// New watches path. debounce <= 0 selects the default window.
func New(path string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{fsw: fsw, path: abs, debounce: debounce, logger: logger}, nil
}

// Run blocks until ctx is done, calling onChange once per settled burst of
// changes. Errors from onChange are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				w.logger.Debug("file changed", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
				w.mark(time.Now())
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		case now := <-ticker.C:
			if !w.ready(now) {
				continue
			}
			if err := onChange(ctx); err != nil {
				w.logger.Warn("re-check failed", zap.String("path", w.path), zap.Error(err))
			}
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0
}

func (w *Watcher) mark(t time.Time) {
	w.dirty = true
	w.last = t
}

// ready reports whether a pending change has settled, and clears it.
func (w *Watcher) ready(now time.Time) bool {
	if !w.dirty || now.Sub(w.last) < w.debounce {
		return false
	}
	w.dirty = false
	return true
}
