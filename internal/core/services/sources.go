package services

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
	"github.com/lightbar-dev/lightbar/internal/detect"
	"github.com/lightbar-dev/lightbar/internal/logger"
)

// collectSources runs the detectors and every synchronous source filter
// for the trimmed query. Source failures are isolated: a failing catalog
// contributes nothing and the rest still produce results.
func collectSources(ctx context.Context, cats Catalogs, query string) Sources {
	src := Sources{Query: query}
	if query == "" {
		return src
	}

	src.Hints = detect.Hints(query)

	if cats.Apps != nil {
		apps, err := cats.Apps.List(ctx)
		if err != nil {
			logger.Warn("Application catalog failed: %v", err)
		} else {
			src.Applications = filterApplications(apps, query)
		}
	}

	if cats.History != nil {
		entries, err := cats.History.List(ctx)
		if err != nil {
			logger.Warn("File history failed: %v", err)
		} else {
			src.History = filterHistory(entries, query)
		}
	}

	if cats.Plugins != nil {
		plugins, err := cats.Plugins.List(ctx)
		if err != nil {
			logger.Warn("Plugin registry failed: %v", err)
		} else {
			src.Plugins = filterPlugins(plugins, query)
		}
	}

	if cats.Folders != nil {
		folders, err := cats.Folders.List(ctx)
		if err != nil {
			logger.Warn("Folder catalog failed: %v", err)
		} else {
			src.Folders = filterFolders(folders, query)
		}
	}

	if cats.Notes != nil {
		notes, err := cats.Notes.List(ctx)
		if err != nil {
			logger.Warn("Note store failed: %v", err)
		} else {
			src.Notes = filterNotes(notes, query)
		}
	}

	return src
}

// Catalogs bundles the synchronous source snapshots the launcher reads.
// Any field may be nil; the launcher degrades to the remaining sources.
type Catalogs struct {
	Apps    driven.AppCatalog
	History driven.FileHistory
	Plugins driven.PluginRegistry
	Folders driven.FolderCatalog
	Notes   driven.NoteStore
}

// matches reports a case-insensitive substring match.
func matches(haystack, query string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(query))
}

func filterApplications(apps []domain.Application, query string) []domain.ResultItem {
	var items []domain.ResultItem
	for _, app := range apps {
		if matches(app.Name, query) {
			items = append(items, app.ResultItem())
		}
	}
	return items
}

func filterHistory(entries []domain.FileHistoryEntry, query string) []domain.ResultItem {
	var items []domain.ResultItem
	for _, e := range entries {
		if matches(filepath.Base(e.Path), query) || matches(e.Name, query) {
			items = append(items, e.ResultItem())
		}
	}
	return items
}

// filterPlugins matches a plugin when the query starts with its trigger
// keyword, or when the plugin name contains the query.
func filterPlugins(plugins []domain.Plugin, query string) []domain.ResultItem {
	lower := strings.ToLower(query)
	var items []domain.ResultItem
	for _, p := range plugins {
		keyword := strings.ToLower(p.Keyword)
		if (keyword != "" && strings.HasPrefix(lower, keyword)) || matches(p.Name, query) {
			items = append(items, p.ResultItem())
		}
	}
	return items
}

// filterFolders matches well-known folders by name prefix only: typing
// "do" should offer Downloads and Documents, "report" should not.
func filterFolders(folders []domain.SystemFolder, query string) []domain.ResultItem {
	lower := strings.ToLower(query)
	var items []domain.ResultItem
	for _, f := range folders {
		if strings.HasPrefix(strings.ToLower(f.Name), lower) {
			items = append(items, f.ResultItem())
		}
	}
	return items
}

func filterNotes(notes []domain.Note, query string) []domain.ResultItem {
	var items []domain.ResultItem
	for _, n := range notes {
		if matches(n.Title, query) || matches(n.Body, query) {
			items = append(items, n.ResultItem())
		}
	}
	return items
}
