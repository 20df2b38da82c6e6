package mcp

import (
	"context"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// mockLauncherService is a mock implementation of driving.LauncherService.
type mockLauncherService struct {
	set domain.CombinedResultSet
	err error
}

func (m *mockLauncherService) OnQueryChanged(_ string) {}

func (m *mockLauncherService) CurrentResultSet() domain.CombinedResultSet {
	return m.set
}

func (m *mockLauncherService) IsSearchPending() bool { return false }

func (m *mockLauncherService) LastError() domain.ErrorKind { return domain.ErrorNone }

func (m *mockLauncherService) Search(_ context.Context, _ string) (domain.CombinedResultSet, error) {
	return m.set, m.err
}

func (m *mockLauncherService) Close() error { return nil }

// mockFileHistory is a mock implementation of driven.FileHistory.
type mockFileHistory struct {
	entries []domain.FileHistoryEntry
	err     error
}

func (m *mockFileHistory) List(_ context.Context) ([]domain.FileHistoryEntry, error) {
	return m.entries, m.err
}

func (m *mockFileHistory) Touch(_ context.Context, _ string) error {
	return m.err
}

// mockNoteStore is a mock implementation of driven.NoteStore.
type mockNoteStore struct {
	notes []domain.Note
	err   error
}

func (m *mockNoteStore) List(_ context.Context) ([]domain.Note, error) {
	return m.notes, m.err
}

func (m *mockNoteStore) Save(_ context.Context, _ domain.Note) error {
	return m.err
}

func (m *mockNoteStore) Delete(_ context.Context, _ string) error {
	return m.err
}
