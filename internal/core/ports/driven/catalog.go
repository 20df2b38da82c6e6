package driven

import (
	"context"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// AppCatalog lists installed applications from a cached snapshot.
// Refreshing the snapshot is the adapter's concern.
type AppCatalog interface {
	// List returns the current application snapshot.
	List(ctx context.Context) ([]domain.Application, error)
}

// FileHistory tracks files previously opened through the launcher.
type FileHistory interface {
	// List returns history entries, most recently used first.
	List(ctx context.Context) ([]domain.FileHistoryEntry, error)

	// Touch records an open of path, creating the entry if needed and
	// bumping its use count and last-used time.
	Touch(ctx context.Context, path string) error
}

// PluginRegistry lists installed command plugins.
type PluginRegistry interface {
	// List returns the registered plugins.
	List(ctx context.Context) ([]domain.Plugin, error)
}

// FolderCatalog lists well-known system folders.
type FolderCatalog interface {
	// List returns the known folders.
	List(ctx context.Context) ([]domain.SystemFolder, error)
}

// NoteStore persists saved notes.
type NoteStore interface {
	// List returns all notes, most recently updated first.
	List(ctx context.Context) ([]domain.Note, error)

	// Save creates or updates a note.
	Save(ctx context.Context, note domain.Note) error

	// Delete removes a note by ID. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}
