package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	sharedcfg "github.com/leapstack-labs/drills/internal/config"
	"golang.org/x/sync/errgroup"
)

const watchDebounce = 100 * time.Millisecond

// watchConfig calls onChange after each burst of writes to a file in dir
// whose base name is one of names. It returns nil when ctx is cancelled.
func watchConfig(ctx context.Context, dir string, names []string, debounce time.Duration, logger *slog.Logger, onChange func(context.Context, string) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	changes := make(chan string, 1)
	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return forwardConfigEvents(egctx, watcher, names, debounce, changes, logger)
	})
	eg.Go(func() error {
		for {
			select {
			case <-egctx.Done():
				return nil
			case name := <-changes:
				logger.Debug("config changed", "file", name)
				if err := onChange(egctx, name); err != nil {
					return err
				}
			}
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// forwardConfigEvents debounces watcher events for config files onto changes.
func forwardConfigEvents(ctx context.Context, watcher *fsnotify.Watcher, names []string, debounce time.Duration, changes chan<- string, logger *slog.Logger) error {
	var timer *time.Timer
	var fire <-chan time.Time
	var pending string

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !slices.Contains(names, filepath.Base(event.Name)) {
				continue
			}

			pending = event.Name
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case changes <- pending:
			default: // a reload is already queued
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

// watchedConfigNames returns the file names a reload should react to: the
// loaded config file when there is one, otherwise the names drills searches.
func watchedConfigNames(used string) []string {
	if used != "" {
		return []string{filepath.Base(used)}
	}
	return []string{sharedcfg.ConfigFileName, sharedcfg.ConfigFileNameAlt}
}
