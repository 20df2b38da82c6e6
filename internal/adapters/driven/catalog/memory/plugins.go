// Package memory provides in-memory catalog implementations: the plugin
// registry, the system-folder catalog, and a file history for tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
)

// Ensure PluginRegistry implements the interface.
var _ driven.PluginRegistry = (*PluginRegistry)(nil)

// PluginRegistry is an in-memory plugin registry. Plugins register at
// startup; the set does not change while the launcher runs.
type PluginRegistry struct {
	mu      sync.RWMutex
	plugins map[string]domain.Plugin
}

// NewPluginRegistry creates an empty registry.
func NewPluginRegistry() *PluginRegistry {
	return &PluginRegistry{
		plugins: make(map[string]domain.Plugin),
	}
}

// Register adds a plugin. A plugin without an ID gets one.
func (r *PluginRegistry) Register(plugin domain.Plugin) error {
	if plugin.Name == "" || plugin.Keyword == "" {
		return domain.ErrInvalidInput
	}
	if plugin.ID == "" {
		plugin.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[plugin.ID] = plugin
	return nil
}

// List returns the registered plugins, ordered by name.
func (r *PluginRegistry) List(_ context.Context) ([]domain.Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Plugin, 0, len(r.plugins))
	for _, p := range r.plugins {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}
