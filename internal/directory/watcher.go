package directory

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc receives each freshly loaded directory, or the error that
// prevented loading it.
type ReloadFunc func(*Directory, error)

// DefaultDebounce coalesces bursts of writes from editors that save in
// several steps.
const DefaultDebounce = 100 * time.Millisecond

// Watch reloads the directory file at path whenever it changes and passes
// the result to fn. It blocks until ctx is done. The parent directory is
// watched so that atomic replace-by-rename saves are seen.
func Watch(ctx context.Context, path string, fn ReloadFunc) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watching %s: %w", absPath, err)
	}

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != absPath {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(DefaultDebounce)
			} else {
				timer.Reset(DefaultDebounce)
			}
			timerCh = timer.C

		case <-timerCh:
			timerCh = nil
			fn(Load(absPath))

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("watching %s: %w", absPath, err))
		}
	}
}
