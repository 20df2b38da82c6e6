package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driving"
	"github.com/lightbar-dev/lightbar/internal/logger"
)

// Ensure Launcher implements the interface.
var _ driving.LauncherService = (*Launcher)(nil)

// Config tunes the launcher pipeline. Zero values fall back to defaults.
type Config struct {
	// Sizing maps query length to the session result ceiling.
	Sizing domain.SizingTable

	// SessionTimeout bounds session creation.
	SessionTimeout time.Duration

	// FetchTimeout bounds the first-page fetch.
	FetchTimeout time.Duration

	// StatusTimeout bounds daemon availability probes.
	StatusTimeout time.Duration

	// CloseTimeout bounds advisory session closes.
	CloseTimeout time.Duration

	// HorizontalLimit bounds the quick-launch row.
	HorizontalLimit int

	// QuickLaneMaxLen is the longest query still routed to the
	// quick-launch row.
	QuickLaneMaxLen int
}

func (c Config) withDefaults() Config {
	if !c.Sizing.IsValid() {
		c.Sizing = domain.DefaultSizingTable()
	}
	if c.SessionTimeout <= 0 {
		c.SessionTimeout = 20 * time.Second
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 20 * time.Second
	}
	if c.StatusTimeout <= 0 {
		c.StatusTimeout = 5 * time.Second
	}
	if c.CloseTimeout <= 0 {
		c.CloseTimeout = 10 * time.Second
	}
	if c.HorizontalLimit <= 0 {
		c.HorizontalLimit = 8
	}
	if c.QuickLaneMaxLen <= 0 {
		c.QuickLaneMaxLen = 12
	}
	return c
}

// Launcher drives the unified-search pipeline: it owns the query
// generation counter and the pending-session slot (single-writer), runs
// the synchronous sources on every keystroke, issues identity-debounced
// index sessions, and publishes combined result sets in generation order.
type Launcher struct {
	index    driven.IndexService
	catalogs Catalogs
	combiner *Combiner
	cfg      Config

	mu        sync.Mutex
	gen       domain.Generation
	query     string // trimmed live query
	base      Sources
	indexHits []domain.ResultItem

	// pendingQuery is the query of the session being created or adopted;
	// pendingSessionID is set once a session is adopted as authoritative.
	pendingQuery     string
	pendingSessionID string

	searching bool
	lastErr   domain.ErrorKind
	published domain.CombinedResultSet
	closed    bool

	closer  *sessionCloser
	workers *ants.Pool

	// dirty coalesces recombination requests: the combine worker always
	// recomputes from the latest snapshot, so bursts collapse to one run.
	dirty chan struct{}
	quit  chan struct{}
	done  chan struct{}

	probeGroup singleflight.Group
	probeLimit *rate.Limiter
}

// NewLauncher creates the launcher service. index may be nil, in which
// case every query degrades to the synchronous sources.
func NewLauncher(index driven.IndexService, catalogs Catalogs, cfg Config) (*Launcher, error) {
	cfg = cfg.withDefaults()

	workers, err := ants.NewPool(4, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	l := &Launcher{
		index:    index,
		catalogs: catalogs,
		combiner: NewCombiner(cfg.HorizontalLimit, cfg.QuickLaneMaxLen),
		cfg:      cfg,
		closer:   newSessionCloser(index, workers, cfg.CloseTimeout),
		workers:  workers,
		dirty:    make(chan struct{}, 1),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		// At most one availability probe per two seconds, regardless of
		// how many index failures arrive in a burst.
		probeLimit: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}

	go l.combineLoop()

	return l, nil
}

// OnQueryChanged is the keystroke entry point. Detectors and in-memory
// filters run inline; recombination and index work are scheduled so the
// caller returns without waiting on either.
func (l *Launcher) OnQueryChanged(text string) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}

	l.gen++
	gen := l.gen
	query := strings.TrimSpace(text)
	l.query = query
	l.lastErr = domain.ErrorNone

	// Hits fetched for the identical committed query stay valid; the
	// debounce below will not reopen a session for it.
	if query != l.pendingQuery {
		l.indexHits = nil
	}

	if query == "" {
		superseded := l.pendingSessionID
		l.pendingSessionID = ""
		l.pendingQuery = ""
		l.searching = false
		l.base = Sources{}
		l.published = domain.CombinedResultSet{Generation: gen}
		l.mu.Unlock()

		l.closer.close(superseded)
		logger.Debug("Query cleared at generation %d", gen)
		return
	}
	l.mu.Unlock()

	base := collectSources(context.Background(), l.catalogs, query)

	l.mu.Lock()
	if l.closed || l.gen != gen {
		// A newer keystroke arrived while filtering; this run is stale.
		l.mu.Unlock()
		return
	}
	l.base = base

	if l.index == nil {
		l.scheduleCombineLocked()
		l.mu.Unlock()
		return
	}

	// Identity debounce: reopen only when the committed query differs
	// from the one the pending session was created for.
	if query == l.pendingQuery {
		l.scheduleCombineLocked()
		l.mu.Unlock()
		return
	}

	// Clear the pending slot before the new creation even begins, so a
	// slow old session can never be mistaken for current.
	superseded := l.pendingSessionID
	l.pendingSessionID = ""
	l.pendingQuery = query
	l.searching = true
	l.scheduleCombineLocked()
	l.mu.Unlock()

	l.closer.close(superseded)
	go l.runIndexBranch(query)
}

// runIndexBranch creates a session for query, fetches its first page, and
// publishes the batch if the query is still live. Both steps carry their
// own timeout; at every completion point the captured query is compared
// against the live one before anything is adopted.
func (l *Launcher) runIndexBranch(query string) {
	opts := l.cfg.Sizing.OptionsFor(utf8.RuneCountInString(query))
	logger.Debug("Index session for %q: maxResults=%d pageSize=%d", query, opts.MaxResults, opts.PageSize)

	ctx, cancel := context.WithTimeout(context.Background(), l.cfg.SessionTimeout)
	session, err := l.index.CreateSession(ctx, query, opts)
	cancel()
	if err != nil {
		l.failIndexBranch(query, fmt.Errorf("create session: %w", err))
		return
	}

	l.mu.Lock()
	if l.closed || l.query != query || l.pendingQuery != query {
		// Superseded while the session was being created: never adopt,
		// just queue the newborn session for closure.
		l.mu.Unlock()
		l.closer.close(session.ID)
		logger.Debug("Discarding superseded session %s for %q", session.ID, query)
		return
	}
	l.pendingSessionID = session.ID
	l.mu.Unlock()

	ctx, cancel = context.WithTimeout(context.Background(), l.cfg.FetchTimeout)
	hits, err := l.index.FetchRange(ctx, session.ID, 0, session.PageSize)
	cancel()
	if err != nil {
		l.mu.Lock()
		if l.pendingSessionID == session.ID {
			l.pendingSessionID = ""
		}
		l.mu.Unlock()
		l.closer.close(session.ID)
		l.failIndexBranch(query, fmt.Errorf("fetch range: %w", err))
		return
	}

	l.mu.Lock()
	if l.closed || l.query != query || l.pendingSessionID != session.ID {
		l.mu.Unlock()
		l.closer.close(session.ID)
		return
	}

	items := make([]domain.ResultItem, len(hits))
	for i, hit := range hits {
		items[i] = hit.ResultItem()
	}
	l.indexHits = items
	l.searching = false
	l.scheduleCombineLocked()
	l.mu.Unlock()

	logger.Debug("Session %s delivered %d hits for %q", session.ID, len(hits), query)
}

// failIndexBranch converts an index failure into "zero results from this
// source" plus a surfaced error kind. Failures of superseded queries are
// discarded silently.
func (l *Launcher) failIndexBranch(query string, err error) {
	kind := domain.ClassifyError(err)

	l.mu.Lock()
	if l.closed || l.query != query {
		l.mu.Unlock()
		return
	}
	l.searching = false
	l.pendingQuery = "" // allow a retry if the same text is recommitted
	l.lastErr = kind
	l.scheduleCombineLocked()
	l.mu.Unlock()

	logger.Warn("Index branch for %q failed: %v", query, err)

	if kind == domain.ErrorServiceUnavailable {
		l.probeAvailability()
	}
}

// probeAvailability re-checks daemon availability on the side, distinct
// from the session protocol, so the UI can show "service unavailable"
// rather than "no matches". Probes are rate limited and concurrent
// callers collapse onto a single in-flight probe.
func (l *Launcher) probeAvailability() {
	if l.index == nil || !l.probeLimit.Allow() {
		return
	}

	err := l.workers.Submit(func() {
		status, _, _ := l.probeGroup.Do("status", func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), l.cfg.StatusTimeout)
			defer cancel()
			s, err := l.index.Status(ctx)
			if err != nil {
				return domain.ServiceStatus{Available: false, Error: err.Error()}, nil
			}
			return s, nil
		})

		// The probe only informs logging. The surfaced kind stays
		// whatever the failed call classified to: a reachable daemon
		// can still have returned the error, and relabelling would
		// guess at a cause the protocol never reported.
		s := status.(domain.ServiceStatus)
		if s.Available {
			logger.Info("Index daemon reachable")
		} else {
			logger.Warn("Index daemon unavailable: %s", s.Error)
		}
	})
	if err != nil {
		logger.Debug("Availability probe dropped: %v", err)
	}
}

// scheduleCombineLocked marks the published set stale. The combine worker
// recomputes from the newest snapshot; stale requests coalesce. Caller
// must hold l.mu.
func (l *Launcher) scheduleCombineLocked() {
	select {
	case l.dirty <- struct{}{}:
	default:
	}
}

// combineLoop is the low-priority execution slot for recombination. It
// snapshots the live generation's inputs, combines off the lock, and
// publishes only if the generation is still current.
func (l *Launcher) combineLoop() {
	defer close(l.done)

	for {
		select {
		case <-l.quit:
			return
		case <-l.dirty:
		}

		l.mu.Lock()
		gen := l.gen
		src := l.base
		src.IndexHits = l.indexHits
		l.mu.Unlock()

		set := l.combiner.Combine(gen, src)

		l.mu.Lock()
		if !l.closed && l.gen == gen {
			l.published = set
			logger.Debug("Published generation %d: %d items", gen, set.Len())
		}
		l.mu.Unlock()
	}
}

// CurrentResultSet returns the latest published combined set.
func (l *Launcher) CurrentResultSet() domain.CombinedResultSet {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.published
}

// Generation returns the live query generation.
func (l *Launcher) Generation() domain.Generation {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

// IsSearchPending reports whether an index session for the live query is
// still in flight.
func (l *Launcher) IsSearchPending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.searching
}

// LastError reports the index-branch failure of the live query.
func (l *Launcher) LastError() domain.ErrorKind {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// Search runs the full pipeline synchronously for one query: sources,
// session, first page, combination. It leaves the interactive query
// state untouched. A non-nil error reports an index-branch failure; the
// returned set still carries every other source's results.
func (l *Launcher) Search(ctx context.Context, text string) (domain.CombinedResultSet, error) {
	query := strings.TrimSpace(text)
	if query == "" {
		return domain.CombinedResultSet{}, nil
	}

	src := collectSources(ctx, l.catalogs, query)

	var indexErr error
	if l.index != nil {
		hits, err := l.fetchOnce(ctx, query)
		if err != nil {
			indexErr = err
		} else {
			src.IndexHits = hits
		}
	}

	set := l.combiner.Combine(0, src)
	return set, indexErr
}

// fetchOnce runs one complete session round-trip for a one-shot search.
func (l *Launcher) fetchOnce(ctx context.Context, query string) ([]domain.ResultItem, error) {
	opts := l.cfg.Sizing.OptionsFor(utf8.RuneCountInString(query))

	sctx, cancel := context.WithTimeout(ctx, l.cfg.SessionTimeout)
	session, err := l.index.CreateSession(sctx, query, opts)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer l.closer.close(session.ID)

	fctx, cancel := context.WithTimeout(ctx, l.cfg.FetchTimeout)
	hits, err := l.index.FetchRange(fctx, session.ID, 0, session.PageSize)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("fetch range: %w", err)
	}

	items := make([]domain.ResultItem, len(hits))
	for i, hit := range hits {
		items[i] = hit.ResultItem()
	}
	return items, nil
}

// ServiceStatus probes the index daemon directly. Used by the status
// command; does not touch the pipeline state.
func (l *Launcher) ServiceStatus(ctx context.Context) domain.ServiceStatus {
	if l.index == nil {
		return domain.ServiceStatus{Available: false, Error: "no index service configured"}
	}

	sctx, cancel := context.WithTimeout(ctx, l.cfg.StatusTimeout)
	defer cancel()

	status, err := l.index.Status(sctx)
	if err != nil {
		return domain.ServiceStatus{Available: false, Error: err.Error()}
	}
	return status
}

// Close shuts the pipeline down: the open session is queued for closure,
// the combine worker stops, and the worker pool drains.
func (l *Launcher) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return errors.New("already closed")
	}
	l.closed = true
	superseded := l.pendingSessionID
	l.pendingSessionID = ""
	l.mu.Unlock()

	l.closer.close(superseded)
	close(l.quit)
	<-l.done

	// Give queued advisory closes a moment, then drop the pool.
	l.workers.Release()
	return nil
}
