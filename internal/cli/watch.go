package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/oaiview/pkg/errors"
)

// watchDebounce coalesces the bursts of events editors emit on save.
const watchDebounce = 150 * time.Millisecond

// watchFile calls fn after path changes until ctx is cancelled.
//
// The parent directory is watched rather than the file itself so that
// editors which save by writing a new file and renaming it over the old
// one keep triggering events.
func watchFile(ctx context.Context, path string, logger *log.Logger, fn func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "resolve %s", path)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "start watcher")
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrap(errors.ErrCodeNotFound, err, "watch %s", filepath.Dir(abs))
	}
	logger.Debug("watcher started", "path", abs)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("watcher stopped", "path", abs)
			return nil

		case <-fire:
			fire = nil
			fn()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("file changed", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		}
	}
}
