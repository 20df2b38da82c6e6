package cli

import (
	"bytes"
	"context"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// fakeLauncher serves a canned combined set for one-shot searches.
type fakeLauncher struct {
	set    domain.CombinedResultSet
	status domain.ServiceStatus
	err    error
}

func (f *fakeLauncher) OnQueryChanged(_ string) {}

func (f *fakeLauncher) CurrentResultSet() domain.CombinedResultSet { return f.set }

func (f *fakeLauncher) IsSearchPending() bool { return false }

func (f *fakeLauncher) LastError() domain.ErrorKind { return domain.ErrorNone }

func (f *fakeLauncher) Search(_ context.Context, _ string) (domain.CombinedResultSet, error) {
	return f.set, f.err
}

func (f *fakeLauncher) Close() error { return nil }

func (f *fakeLauncher) ServiceStatus(_ context.Context) domain.ServiceStatus {
	return f.status
}

// fakeIndex answers daemon status probes.
type fakeIndex struct {
	status domain.ServiceStatus
	err    error
}

func (f *fakeIndex) CreateSession(_ context.Context, _ string, _ domain.SessionOptions) (domain.IndexSession, error) {
	return domain.IndexSession{}, f.err
}

func (f *fakeIndex) FetchRange(_ context.Context, _ string, _, _ int) ([]domain.IndexHit, error) {
	return nil, f.err
}

func (f *fakeIndex) CloseSession(_ context.Context, _ string) error { return f.err }

func (f *fakeIndex) Status(_ context.Context) (domain.ServiceStatus, error) {
	return f.status, f.err
}

// fakeNotes is an in-memory note store.
type fakeNotes struct {
	notes   []domain.Note
	saved   []domain.Note
	deleted []string
	err     error
}

func (f *fakeNotes) List(_ context.Context) ([]domain.Note, error) {
	return f.notes, f.err
}

func (f *fakeNotes) Save(_ context.Context, note domain.Note) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, note)
	return nil
}

func (f *fakeNotes) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeHistory serves canned history entries.
type fakeHistory struct {
	entries []domain.FileHistoryEntry
	err     error
}

func (f *fakeHistory) List(_ context.Context) ([]domain.FileHistoryEntry, error) {
	return f.entries, f.err
}

func (f *fakeHistory) Touch(_ context.Context, _ string) error { return f.err }

// fakeConfig is an in-memory config store.
type fakeConfig struct {
	values map[string]any
	path   string
}

func newFakeConfig() *fakeConfig {
	return &fakeConfig{values: map[string]any{}, path: "/tmp/lightbar/config.toml"}
}

func (f *fakeConfig) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeConfig) GetString(key string) string {
	if v, ok := f.values[key].(string); ok {
		return v
	}
	return ""
}

func (f *fakeConfig) GetInt(key string) int {
	if v, ok := f.values[key].(int); ok {
		return v
	}
	return 0
}

func (f *fakeConfig) GetBool(key string) bool {
	if v, ok := f.values[key].(bool); ok {
		return v
	}
	return false
}

func (f *fakeConfig) GetStringSlice(key string) []string {
	if v, ok := f.values[key].([]string); ok {
		return v
	}
	return nil
}

func (f *fakeConfig) Set(key string, value any) error {
	f.values[key] = value
	return nil
}

func (f *fakeConfig) Path() string { return f.path }

// setupTestServices wires fakes into the command tree and returns a
// cleanup restoring the previous wiring.
func setupTestServices() func() {
	previous := services
	SetServices(&Services{
		Launcher:  &fakeLauncher{},
		Activator: nil,
		Index:     &fakeIndex{status: domain.ServiceStatus{Available: true}},
		Notes:     &fakeNotes{},
		History:   &fakeHistory{},
		Config:    newFakeConfig(),
	})
	return func() {
		services = previous
	}
}

// execute runs the root command with args, capturing combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
