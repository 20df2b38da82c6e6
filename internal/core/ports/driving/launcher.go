package driving

import (
	"context"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// LauncherService is the unified-search pipeline behind the query bar.
//
// OnQueryChanged is the keystroke entry point and never blocks: cheap
// sources run inline, everything else is scheduled. Consumers observe
// results by sampling CurrentResultSet; the set's Generation only ever
// increases.
type LauncherService interface {
	// OnQueryChanged advances the query state to text and triggers the
	// pipeline for the new generation.
	OnQueryChanged(text string)

	// CurrentResultSet returns the latest published combined set.
	// The returned value is an immutable snapshot.
	CurrentResultSet() domain.CombinedResultSet

	// IsSearchPending reports whether an index session for the live
	// query is still in flight.
	IsSearchPending() bool

	// LastError reports the index-branch failure of the live query,
	// or domain.ErrorNone.
	LastError() domain.ErrorKind

	// Search runs the whole pipeline synchronously for one query and
	// returns the combined set. Used by the one-shot CLI and MCP
	// surfaces; does not disturb the interactive query state.
	Search(ctx context.Context, text string) (domain.CombinedResultSet, error)

	// Close releases background workers and closes any open session.
	Close() error
}
