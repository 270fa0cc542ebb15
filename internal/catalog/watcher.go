package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"blocksd/internal/common/fsutil"
)

// debounceInterval coalesces bursts of filesystem events (editors typically
// write, chmod and rename on save) into a single reload.
const debounceInterval = 200 * time.Millisecond

// Watch reloads the catalog whenever a descriptor file changes, until ctx is
// done. A failed reload keeps the previous snapshot; partial writes resolve
// themselves on the next event.
func (c *Catalog) Watch(ctx context.Context) error {
	dir, err := fsutil.ExpandHome(c.dir)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("abs path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(abs); err != nil {
		return fmt.Errorf("watch %s: %w", abs, err)
	}
	c.log.Info().Str("dir", abs).Msg("watching catalog directory")

	var (
		debounce *time.Timer
		reload   <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Ext(evt.Name), ".json") {
				continue
			}
			if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceInterval)
				reload = debounce.C
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(debounceInterval)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.log.Warn().Err(err).Msg("catalog watcher error")

		case <-reload:
			if err := c.Load(); err != nil {
				c.log.Warn().Err(err).Msg("catalog reload failed, keeping previous snapshot")
			}
		}
	}
}
