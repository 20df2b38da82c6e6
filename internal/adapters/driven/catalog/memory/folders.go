package memory

import (
	"context"
	"os"
	"path/filepath"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
)

// Ensure FolderCatalog implements the interface.
var _ driven.FolderCatalog = (*FolderCatalog)(nil)

// FolderCatalog serves a fixed set of well-known folders.
type FolderCatalog struct {
	folders []domain.SystemFolder
}

// NewFolderCatalog creates a catalog over the given folders.
func NewFolderCatalog(folders []domain.SystemFolder) *FolderCatalog {
	return &FolderCatalog{folders: folders}
}

// NewSystemFolderCatalog creates a catalog of the user's conventional
// folders. Folders that do not exist on disk are skipped.
func NewSystemFolderCatalog() *FolderCatalog {
	home, err := os.UserHomeDir()
	if err != nil {
		return &FolderCatalog{}
	}

	candidates := []domain.SystemFolder{
		{Name: "Home", Path: home},
		{Name: "Downloads", Path: filepath.Join(home, "Downloads")},
		{Name: "Documents", Path: filepath.Join(home, "Documents")},
		{Name: "Desktop", Path: filepath.Join(home, "Desktop")},
		{Name: "Pictures", Path: filepath.Join(home, "Pictures")},
		{Name: "Music", Path: filepath.Join(home, "Music")},
	}

	var folders []domain.SystemFolder
	for _, f := range candidates {
		if info, err := os.Stat(f.Path); err == nil && info.IsDir() {
			folders = append(folders, f)
		}
	}
	return &FolderCatalog{folders: folders}
}

// List returns the known folders.
func (c *FolderCatalog) List(_ context.Context) ([]domain.SystemFolder, error) {
	out := make([]domain.SystemFolder, len(c.folders))
	copy(out, c.folders)
	return out, nil
}
