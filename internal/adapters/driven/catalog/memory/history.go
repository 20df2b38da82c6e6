package memory

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
)

// Ensure FileHistory implements the interface.
var _ driven.FileHistory = (*FileHistory)(nil)

// FileHistory is an in-memory implementation of driven.FileHistory for
// testing and demo mode.
type FileHistory struct {
	mu      sync.RWMutex
	entries map[string]domain.FileHistoryEntry
}

// NewFileHistory creates an empty history.
func NewFileHistory() *FileHistory {
	return &FileHistory{
		entries: make(map[string]domain.FileHistoryEntry),
	}
}

// List returns history entries, most recently used first.
func (h *FileHistory) List(_ context.Context) ([]domain.FileHistoryEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.FileHistoryEntry, 0, len(h.entries))
	for _, e := range h.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastUsed.After(out[j].LastUsed)
	})
	return out, nil
}

// Touch records an open of path.
func (h *FileHistory) Touch(_ context.Context, path string) error {
	if path == "" {
		return domain.ErrInvalidInput
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	entry, ok := h.entries[path]
	if !ok {
		entry = domain.FileHistoryEntry{
			Path: path,
			Name: filepath.Base(path),
		}
	}
	entry.UseCount++
	entry.LastUsed = time.Now()
	h.entries[path] = entry
	return nil
}
