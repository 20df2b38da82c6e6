package tui

import "errors"

// ErrMissingLauncherService is returned when the launcher service is not provided.
var ErrMissingLauncherService = errors.New("tui: launcher service is required")

// ErrMissingActivator is returned when the result activator is not provided.
var ErrMissingActivator = errors.New("tui: result activator is required")
