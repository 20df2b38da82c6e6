// Package tui provides the interactive launcher bar for lightbar.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driving"
)

// Ports aggregates the interfaces required by the bar.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Launcher drives the unified-search pipeline.
	Launcher driving.LauncherService

	// Activator opens activated results.
	Activator driven.ResultActivator
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Launcher == nil {
		return ErrMissingLauncherService
	}
	if p.Activator == nil {
		return ErrMissingActivator
	}
	return nil
}
