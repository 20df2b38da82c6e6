package driven

import (
	"context"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// IndexService is the session protocol of the external file-index daemon.
// Sessions are cheap server-side handles; the core opens at most one
// authoritative session per live query and closes superseded ones on a
// best-effort basis.
type IndexService interface {
	// CreateSession opens a remote search session for a non-empty,
	// trimmed query. Failures wrap domain.ErrTimeout or
	// domain.ErrServiceUnavailable.
	CreateSession(ctx context.Context, query string, opts domain.SessionOptions) (domain.IndexSession, error)

	// FetchRange returns one page of hits from an open session.
	// Failures wrap domain.ErrTimeout or domain.ErrSessionInvalid.
	FetchRange(ctx context.Context, sessionID string, offset, limit int) ([]domain.IndexHit, error)

	// CloseSession releases a session. Closing is advisory cleanup:
	// errors are reported but carry no correctness weight.
	CloseSession(ctx context.Context, sessionID string) error

	// Status probes daemon availability, independent of any session.
	Status(ctx context.Context) (domain.ServiceStatus, error)
}
