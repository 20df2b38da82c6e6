// Package apps provides the application catalog: a cached scan of a
// desktop-entry directory, refreshed when the directory changes.
package apps

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
	"github.com/lightbar-dev/lightbar/internal/logger"
)

// Ensure Catalog implements the interface.
var _ driven.AppCatalog = (*Catalog)(nil)

// Catalog scans a directory of .desktop entries once and keeps the
// snapshot fresh via filesystem events. List never touches the disk.
type Catalog struct {
	dir string

	mu   sync.RWMutex
	apps []domain.Application

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// DefaultDir returns the conventional applications directory.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "applications")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "/usr/share/applications"
	}
	return filepath.Join(home, ".local", "share", "applications")
}

// New scans dir and starts watching it for changes. A missing directory
// is not an error; the catalog just stays empty until it appears on a
// rescan.
func New(dir string) (*Catalog, error) {
	c := &Catalog{
		dir:  dir,
		done: make(chan struct{}),
	}
	c.rescan()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		// Watch is best effort: without it the snapshot is still valid,
		// just static.
		logger.Warn("Cannot watch %s: %v", dir, err)
		watcher.Close()
		return c, nil
	}
	c.watcher = watcher

	go c.watch()
	return c, nil
}

// List returns the current application snapshot.
func (c *Catalog) List(_ context.Context) ([]domain.Application, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Application, len(c.apps))
	copy(out, c.apps)
	return out, nil
}

// Close stops the directory watcher.
func (c *Catalog) Close() error {
	close(c.done)
	if c.watcher != nil {
		return c.watcher.Close()
	}
	return nil
}

func (c *Catalog) watch() {
	for {
		select {
		case <-c.done:
			return
		case ev, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !strings.HasSuffix(ev.Name, ".desktop") {
				continue
			}
			logger.Debug("Application directory changed (%s), rescanning", ev.Op)
			c.rescan()
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Application watcher error: %v", err)
		}
	}
}

// rescan rebuilds the snapshot from the directory contents.
func (c *Catalog) rescan() {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		c.mu.Lock()
		c.apps = nil
		c.mu.Unlock()
		return
	}

	var apps []domain.Application
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".desktop") {
			continue
		}
		path := filepath.Join(c.dir, entry.Name())
		app, err := parseDesktopEntry(path)
		if err != nil {
			logger.Debug("Skipping %s: %v", path, err)
			continue
		}
		apps = append(apps, app)
	}

	c.mu.Lock()
	c.apps = apps
	c.mu.Unlock()
	logger.Debug("Application catalog: %d entries", len(apps))
}

// parseDesktopEntry reads the Name and Exec keys of a desktop entry.
// Only the [Desktop Entry] section is considered.
func parseDesktopEntry(path string) (domain.Application, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Application{}, err
	}
	defer f.Close()

	var app domain.Application
	app.Path = path
	app.ID = strings.TrimSuffix(filepath.Base(path), ".desktop")

	inSection := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "["):
			inSection = line == "[Desktop Entry]"
		case !inSection:
			continue
		case strings.HasPrefix(line, "Name="):
			if app.Name == "" {
				app.Name = strings.TrimPrefix(line, "Name=")
			}
		case strings.HasPrefix(line, "Exec="):
			if app.Exec == "" {
				app.Exec = stripFieldCodes(strings.TrimPrefix(line, "Exec="))
			}
		case line == "NoDisplay=true" || line == "Hidden=true":
			return domain.Application{}, fmt.Errorf("entry is hidden")
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.Application{}, err
	}
	if app.Name == "" || app.Exec == "" {
		return domain.Application{}, fmt.Errorf("missing Name or Exec")
	}
	return app, nil
}

// stripFieldCodes removes %f/%u style placeholders from an Exec line.
func stripFieldCodes(exec string) string {
	fields := strings.Fields(exec)
	out := fields[:0]
	for _, f := range fields {
		if strings.HasPrefix(f, "%") {
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}
