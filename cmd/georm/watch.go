package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/georm/compiler/load"
)

// generateFunc runs one generation and returns the directories holding
// entity declarations.
type generateFunc func(ctx context.Context) ([]string, error)

// watch regenerates whenever a Go source file of dirs changes, until ctx is
// done. Bursts of events within debounce trigger a single run.
func watch(ctx context.Context, dirs []string, debounce time.Duration, logger *slog.Logger, run generateFunc) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := addDirs(w, dirs); err != nil {
		return err
	}
	logger.Info("georm: watching for changes", "dirs", len(dirs))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("georm: source changed", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("georm: watcher error", "error", err)
		case <-fire:
			fire = nil
			dirs, err := run(ctx)
			if err != nil {
				logger.Error("georm: generation failed", "error", err)
				continue
			}
			if err := addDirs(w, dirs); err != nil {
				logger.Warn("georm: watching new directory", "error", err)
			}
		}
	}
}

// addDirs adds the directories not yet watched by w.
func addDirs(w *fsnotify.Watcher, dirs []string) error {
	watched := w.WatchList()
	for _, dir := range dirs {
		if slices.Contains(watched, dir) {
			continue
		}
		if err := w.Add(dir); err != nil {
			return err
		}
	}
	return nil
}

// relevant reports whether the event touches a Go source file other than
// tests and generated files.
func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	return strings.HasSuffix(name, ".go") &&
		!strings.HasSuffix(name, "_test.go") &&
		!strings.HasSuffix(name, load.GeneratedSuffix)
}
