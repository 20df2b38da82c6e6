// Package mcp provides an MCP (Model Context Protocol) server adapter for
// lightbar. It lets AI assistants run launcher searches and read the
// user's recent files and saved notes.
package mcp

import "errors"

// ErrMissingLauncherService is returned when the launcher service is not provided.
var ErrMissingLauncherService = errors.New("mcp: launcher service is required")
