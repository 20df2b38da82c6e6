package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// --- Mock implementations ---

type createdSession struct {
	id    string
	query string
	opts  domain.SessionOptions
}

// fakeIndex implements driven.IndexService with injectable failures and
// an optional gate that holds session creation open until released.
type fakeIndex struct {
	mu        sync.Mutex
	nextID    int
	created   []createdSession
	closed    []string
	createErr error
	fetchErr  error
	status    domain.ServiceStatus

	// createGate, when non-nil, blocks CreateSession until the channel
	// is closed. Lets tests interleave keystrokes with slow sessions.
	createGate chan struct{}
}

func (f *fakeIndex) CreateSession(_ context.Context, query string, opts domain.SessionOptions) (domain.IndexSession, error) {
	f.mu.Lock()
	gate := f.createGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return domain.IndexSession{}, f.createErr
	}

	f.nextID++
	id := fmt.Sprintf("sess-%d", f.nextID)
	f.created = append(f.created, createdSession{id: id, query: query, opts: opts})
	return domain.IndexSession{
		ID:         id,
		Query:      query,
		TotalCount: domain.TotalCountUnknown,
		PageSize:   opts.PageSize,
		MaxResults: opts.MaxResults,
		CreatedAt:  time.Now(),
	}, nil
}

// FetchRange returns one hit tagged with the session's query, so tests
// can tell which query a published batch belongs to.
func (f *fakeIndex) FetchRange(_ context.Context, sessionID string, _, _ int) ([]domain.IndexHit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}

	for _, s := range f.created {
		if s.id == sessionID {
			name := "hit-" + s.query
			return []domain.IndexHit{{Path: "/idx/" + name, Name: name}}, nil
		}
	}
	return nil, domain.ErrSessionInvalid
}

func (f *fakeIndex) CloseSession(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = append(f.closed, sessionID)
	return nil
}

func (f *fakeIndex) Status(_ context.Context) (domain.ServiceStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, nil
}

func (f *fakeIndex) createCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

func (f *fakeIndex) lastCreated() createdSession {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.created) == 0 {
		return createdSession{}
	}
	return f.created[len(f.created)-1]
}

func (f *fakeIndex) closedSessions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.closed))
	copy(out, f.closed)
	return out
}

// fakeApps implements driven.AppCatalog.
type fakeApps struct {
	apps []domain.Application
	err  error
}

func (f *fakeApps) List(_ context.Context) ([]domain.Application, error) {
	return f.apps, f.err
}

// fakeHistory implements driven.FileHistory.
type fakeHistory struct {
	entries []domain.FileHistoryEntry
	err     error
}

func (f *fakeHistory) List(_ context.Context) ([]domain.FileHistoryEntry, error) {
	return f.entries, f.err
}

func (f *fakeHistory) Touch(_ context.Context, _ string) error { return nil }

// --- Helpers ---

func newTestLauncher(t *testing.T, index *fakeIndex, cats Catalogs) *Launcher {
	t.Helper()

	var svc *Launcher
	var err error
	if index == nil {
		svc, err = NewLauncher(nil, cats, Config{})
	} else {
		svc, err = NewLauncher(index, cats, Config{})
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func waitForGeneration(t *testing.T, l *Launcher, gen domain.Generation) domain.CombinedResultSet {
	t.Helper()
	require.Eventually(t, func() bool {
		return l.CurrentResultSet().Generation == gen
	}, waitFor, tick, "generation %d never published", gen)
	return l.CurrentResultSet()
}

func verticalPaths(set domain.CombinedResultSet) []string {
	paths := make([]string, 0, len(set.Vertical))
	for _, it := range set.Vertical {
		paths = append(paths, it.Path)
	}
	return paths
}

// --- Tests ---

func TestEmptyQueryPublishesEmptySetWithoutSession(t *testing.T) {
	index := &fakeIndex{}
	l := newTestLauncher(t, index, Catalogs{})

	l.OnQueryChanged("   ")

	set := l.CurrentResultSet()
	assert.True(t, set.IsEmpty())
	assert.Equal(t, domain.Generation(1), set.Generation)
	assert.False(t, l.IsSearchPending())
	assert.Equal(t, domain.ErrorNone, l.LastError())
	assert.Zero(t, index.createCount())
}

func TestSynchronousSourcesPublishWithoutIndex(t *testing.T) {
	apps := &fakeApps{apps: []domain.Application{
		{ID: "term", Name: "Terminal", Path: "/apps/term.desktop"},
	}}
	l := newTestLauncher(t, nil, Catalogs{Apps: apps})

	l.OnQueryChanged("term")

	set := waitForGeneration(t, l, 1)
	require.Len(t, set.Horizontal, 1)
	assert.Equal(t, "Terminal", set.Horizontal[0].DisplayName)
	assert.False(t, l.IsSearchPending())
}

func TestIndexBranchPublishesHits(t *testing.T) {
	index := &fakeIndex{}
	l := newTestLauncher(t, index, Catalogs{})

	l.OnQueryChanged("report")

	require.Eventually(t, func() bool {
		set := l.CurrentResultSet()
		for _, p := range verticalPaths(set) {
			if p == "/idx/hit-report" {
				return true
			}
		}
		return false
	}, waitFor, tick)

	assert.False(t, l.IsSearchPending())
	assert.Equal(t, domain.ErrorNone, l.LastError())
}

func TestAdaptiveSizingGrowsWithQueryLength(t *testing.T) {
	index := &fakeIndex{}
	l := newTestLauncher(t, index, Catalogs{})

	queries := []string{"a", "ab", "abcd", "abcdefgh"}
	prev := 0
	for i, q := range queries {
		l.OnQueryChanged(q)
		require.Eventually(t, func() bool {
			return index.createCount() == i+1
		}, waitFor, tick)

		opts := index.lastCreated().opts
		assert.GreaterOrEqual(t, opts.MaxResults, prev)
		prev = opts.MaxResults
	}

	// Default tiers: 1 char gets the smallest ceiling, 8 chars the largest.
	index.mu.Lock()
	first := index.created[0].opts.MaxResults
	last := index.created[len(index.created)-1].opts.MaxResults
	index.mu.Unlock()
	assert.Less(t, first, last)
}

func TestSupersededSessionIsClosedAndDiscarded(t *testing.T) {
	gate := make(chan struct{})
	index := &fakeIndex{createGate: gate}
	l := newTestLauncher(t, index, Catalogs{})

	l.OnQueryChanged("a")
	l.OnQueryChanged("ab")

	// Both creations are parked on the gate; release them together.
	close(gate)
	index.mu.Lock()
	index.createGate = nil
	index.mu.Unlock()

	// The live query's batch must arrive...
	require.Eventually(t, func() bool {
		for _, p := range verticalPaths(l.CurrentResultSet()) {
			if p == "/idx/hit-ab" {
				return true
			}
		}
		return false
	}, waitFor, tick)

	// ...and the "a" session must be queued for closure, its page never
	// published.
	var aSession string
	index.mu.Lock()
	for _, s := range index.created {
		if s.query == "a" {
			aSession = s.id
		}
	}
	index.mu.Unlock()
	require.NotEmpty(t, aSession, "the a session should still have been created")

	require.Eventually(t, func() bool {
		for _, id := range index.closedSessions() {
			if id == aSession {
				return true
			}
		}
		return false
	}, waitFor, tick, "superseded session never closed")

	assert.NotContains(t, verticalPaths(l.CurrentResultSet()), "/idx/hit-a")
	assert.False(t, l.IsSearchPending())
}

func TestIdentityDebounceCollapsesEqualQueries(t *testing.T) {
	index := &fakeIndex{}
	l := newTestLauncher(t, index, Catalogs{})

	l.OnQueryChanged("report")
	require.Eventually(t, func() bool {
		return index.createCount() == 1
	}, waitFor, tick)

	// Same committed value (whitespace only differs): no new session.
	l.OnQueryChanged("report ")
	l.OnQueryChanged(" report")

	waitForGeneration(t, l, 3)
	assert.Equal(t, 1, index.createCount())
}

func TestServiceUnavailableDegradesToOtherSources(t *testing.T) {
	index := &fakeIndex{createErr: domain.ErrServiceUnavailable}
	history := &fakeHistory{entries: []domain.FileHistoryEntry{
		{Path: "/home/u/report.pdf", Name: "report.pdf", UseCount: 2},
	}}
	l := newTestLauncher(t, index, Catalogs{History: history})

	l.OnQueryChanged("report.pdf")

	require.Eventually(t, func() bool {
		return l.LastError() == domain.ErrorServiceUnavailable && !l.IsSearchPending()
	}, waitFor, tick)

	set := waitForGeneration(t, l, 1)
	require.Len(t, set.Vertical, 1)
	assert.Equal(t, domain.KindFileHistory, set.Vertical[0].Kind)
}

func TestAvailabilityProbeKeepsSurfacedKind(t *testing.T) {
	// The daemon answers status probes but fails session creation, e.g.
	// an internal error. The surfaced kind must stay what the failed
	// call classified to; a reachable daemon is no reason to relabel.
	index := &fakeIndex{
		createErr: domain.ErrServiceUnavailable,
		status:    domain.ServiceStatus{Available: true},
	}
	l := newTestLauncher(t, index, Catalogs{})

	l.OnQueryChanged("report")

	require.Eventually(t, func() bool {
		return l.LastError() == domain.ErrorServiceUnavailable && !l.IsSearchPending()
	}, waitFor, tick)

	assert.Never(t, func() bool {
		return l.LastError() != domain.ErrorServiceUnavailable
	}, 300*time.Millisecond, tick)
}

func TestFetchTimeoutSurfacesTimeoutKind(t *testing.T) {
	index := &fakeIndex{fetchErr: domain.ErrTimeout}
	l := newTestLauncher(t, index, Catalogs{})

	l.OnQueryChanged("report")

	require.Eventually(t, func() bool {
		return l.LastError() == domain.ErrorTimeout && !l.IsSearchPending()
	}, waitFor, tick)

	// The failed session is still closed as advisory cleanup.
	require.Eventually(t, func() bool {
		return len(index.closedSessions()) == 1
	}, waitFor, tick)
}

func TestGenerationsPublishMonotonically(t *testing.T) {
	index := &fakeIndex{}
	l := newTestLauncher(t, index, Catalogs{})

	var seen []domain.Generation
	done := make(chan struct{})
	go func() {
		defer close(done)
		deadline := time.Now().Add(500 * time.Millisecond)
		for time.Now().Before(deadline) {
			seen = append(seen, l.CurrentResultSet().Generation)
			time.Sleep(time.Millisecond)
		}
	}()

	for _, q := range []string{"a", "ab", "abc", "abcd", "abcde"} {
		l.OnQueryChanged(q)
		time.Sleep(10 * time.Millisecond)
	}

	<-done
	for i := 1; i < len(seen); i++ {
		require.GreaterOrEqual(t, seen[i], seen[i-1],
			"generation went backwards: %v", seen)
	}
}

func TestSourceFailureIsIsolated(t *testing.T) {
	apps := &fakeApps{err: assert.AnError}
	history := &fakeHistory{entries: []domain.FileHistoryEntry{
		{Path: "/home/u/notes.txt", Name: "notes.txt"},
	}}
	l := newTestLauncher(t, nil, Catalogs{Apps: apps, History: history})

	l.OnQueryChanged("notes")

	set := waitForGeneration(t, l, 1)
	require.Len(t, set.Vertical, 1)
	assert.Equal(t, domain.KindFileHistory, set.Vertical[0].Kind)
}

func TestClearingQueryClosesPendingSession(t *testing.T) {
	index := &fakeIndex{}
	l := newTestLauncher(t, index, Catalogs{})

	l.OnQueryChanged("report")
	require.Eventually(t, func() bool {
		return index.createCount() == 1
	}, waitFor, tick)

	// Let the session get adopted before clearing.
	require.Eventually(t, func() bool {
		return !l.IsSearchPending()
	}, waitFor, tick)

	l.OnQueryChanged("")

	assert.True(t, l.CurrentResultSet().IsEmpty())
	require.Eventually(t, func() bool {
		return len(index.closedSessions()) == 1
	}, waitFor, tick)
}

func TestSearchOneShot(t *testing.T) {
	index := &fakeIndex{}
	history := &fakeHistory{entries: []domain.FileHistoryEntry{
		{Path: "/home/u/report.pdf", Name: "report.pdf"},
	}}
	l := newTestLauncher(t, index, Catalogs{History: history})

	set, err := l.Search(context.Background(), "report")
	require.NoError(t, err)

	paths := verticalPaths(set)
	assert.Contains(t, paths, "/home/u/report.pdf")
	assert.Contains(t, paths, "/idx/hit-report")

	// One-shot sessions are released after use.
	require.Eventually(t, func() bool {
		return len(index.closedSessions()) == 1
	}, waitFor, tick)
}

func TestSearchOneShotEmptyQuery(t *testing.T) {
	index := &fakeIndex{}
	l := newTestLauncher(t, index, Catalogs{})

	set, err := l.Search(context.Background(), "  ")
	require.NoError(t, err)
	assert.True(t, set.IsEmpty())
	assert.Zero(t, index.createCount())
}

func TestSearchOneShotReportsIndexFailure(t *testing.T) {
	index := &fakeIndex{createErr: domain.ErrServiceUnavailable}
	history := &fakeHistory{entries: []domain.FileHistoryEntry{
		{Path: "/home/u/report.pdf", Name: "report.pdf"},
	}}
	l := newTestLauncher(t, index, Catalogs{History: history})

	set, err := l.Search(context.Background(), "report")
	require.Error(t, err)
	assert.Equal(t, domain.ErrorServiceUnavailable, domain.ClassifyError(err))
	assert.Len(t, set.Vertical, 1)
}

func TestCloseIsIdempotentlyGuarded(t *testing.T) {
	l, err := NewLauncher(&fakeIndex{}, Catalogs{}, Config{})
	require.NoError(t, err)

	require.NoError(t, l.Close())
	require.Error(t, l.Close())
}
