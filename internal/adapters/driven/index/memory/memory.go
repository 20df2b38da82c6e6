// Package memory implements the index-service port over an in-process
// file list. It backs the demo mode and tests; nothing expires, nothing
// ranks beyond name matching.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
)

// Ensure Service implements the interface.
var _ driven.IndexService = (*Service)(nil)

// Service serves sessions over a fixed set of files.
type Service struct {
	mu       sync.Mutex
	files    []domain.IndexHit
	sessions map[string][]domain.IndexHit
}

// NewService creates an in-memory index over files.
func NewService(files []domain.IndexHit) *Service {
	return &Service{
		files:    files,
		sessions: make(map[string][]domain.IndexHit),
	}
}

// CreateSession filters the file set by query and snapshots the matches
// under a fresh session ID.
func (s *Service) CreateSession(_ context.Context, query string, opts domain.SessionOptions) (domain.IndexSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return domain.IndexSession{}, domain.ErrEmptyQuery
	}

	var matches []domain.IndexHit
	for _, f := range s.files {
		if strings.Contains(strings.ToLower(f.Name), needle) {
			matches = append(matches, f)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Modified.After(matches[j].Modified)
	})
	if opts.MaxResults > 0 && len(matches) > opts.MaxResults {
		matches = matches[:opts.MaxResults]
	}

	id := uuid.NewString()
	s.sessions[id] = matches
	return domain.IndexSession{
		ID:         id,
		Query:      query,
		TotalCount: len(matches),
		PageSize:   opts.PageSize,
		MaxResults: opts.MaxResults,
		CreatedAt:  time.Now(),
	}, nil
}

// FetchRange returns the [offset, offset+count) slice of a session's
// snapshot.
func (s *Service) FetchRange(_ context.Context, sessionID string, offset, count int) ([]domain.IndexHit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionInvalid
	}
	if offset < 0 || count < 0 {
		return nil, domain.ErrInvalidInput
	}
	if offset >= len(matches) {
		return nil, nil
	}
	end := offset + count
	if end > len(matches) {
		end = len(matches)
	}

	out := make([]domain.IndexHit, end-offset)
	copy(out, matches[offset:end])
	return out, nil
}

// CloseSession drops a session snapshot. Unknown IDs are ignored.
func (s *Service) CloseSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Status always reports available.
func (s *Service) Status(_ context.Context) (domain.ServiceStatus, error) {
	return domain.ServiceStatus{Available: true}, nil
}

// SessionCount reports how many sessions are currently open.
func (s *Service) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
