package services

import (
	"context"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
	"github.com/lightbar-dev/lightbar/internal/logger"
)

// sessionCloser fires advisory close requests for superseded index
// sessions on a background worker pool. A close never blocks the caller
// and its failure carries no correctness weight: the staleness fence
// already guarantees a lingering session's output is discarded.
type sessionCloser struct {
	index   driven.IndexService
	pool    *ants.Pool
	timeout time.Duration
}

func newSessionCloser(index driven.IndexService, pool *ants.Pool, timeout time.Duration) *sessionCloser {
	return &sessionCloser{index: index, pool: pool, timeout: timeout}
}

// close queues a fire-and-forget close for sessionID. Empty IDs are
// ignored. If the pool is saturated or released the request is dropped.
func (c *sessionCloser) close(sessionID string) {
	if sessionID == "" || c.index == nil {
		return
	}

	err := c.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		if err := c.index.CloseSession(ctx, sessionID); err != nil {
			logger.Warn("Close session %s: %v", sessionID, err)
		} else {
			logger.Debug("Closed session %s", sessionID)
		}
	})
	if err != nil {
		logger.Debug("Close request for session %s dropped: %v", sessionID, err)
	}
}
