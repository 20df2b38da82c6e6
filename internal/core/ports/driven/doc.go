// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - IndexService: the session protocol of the external file-index daemon
//   - ConfigStore: application configuration
//
// # Source snapshots
//
// AppCatalog, FileHistory, PluginRegistry, FolderCatalog, and NoteStore
// are synchronous/cached lookups. Any of them can be nil - the launcher
// degrades to the remaining sources.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter package
package driven
