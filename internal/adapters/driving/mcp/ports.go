package mcp

import (
	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driving"
)

// Ports aggregates the interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Launcher runs one-shot searches.
	Launcher driving.LauncherService

	// History backs the recent-files resource. Optional.
	History driven.FileHistory

	// Notes backs the notes resource. Optional.
	Notes driven.NoteStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Launcher == nil {
		return ErrMissingLauncherService
	}
	// History and Notes only back optional resources.
	return nil
}
