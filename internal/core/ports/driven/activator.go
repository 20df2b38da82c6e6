package driven

import (
	"context"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// ResultActivator performs the side effect a result stands for: launching
// an application, opening a file or URL, running a plugin. The core never
// activates results itself; the UI layer invokes this with an item the
// core produced.
type ResultActivator interface {
	// Activate performs the item's action.
	Activate(ctx context.Context, item domain.ResultItem) error
}
