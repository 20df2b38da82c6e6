package sqlite

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "lightbar-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func TestNewStoreCreatesDatabase(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "lightbar-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening must not re-run applied migrations.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

// ==================== File History Tests ====================

func TestTouchCreatesEntry(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	history := store.FileHistory()
	require.NoError(t, history.Touch(ctx, "/home/u/docs/report.pdf"))

	entries, err := history.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/home/u/docs/report.pdf", entries[0].Path)
	assert.Equal(t, "report.pdf", entries[0].Name)
	assert.Equal(t, 1, entries[0].UseCount)
	assert.False(t, entries[0].LastUsed.IsZero())
}

func TestTouchBumpsUseCountAndRecency(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	history := store.FileHistory()
	require.NoError(t, history.Touch(ctx, "/home/u/a.txt"))
	require.NoError(t, history.Touch(ctx, "/home/u/b.txt"))

	// Re-open a.txt: it moves back to the front.
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, history.Touch(ctx, "/home/u/a.txt"))

	entries, err := history.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "/home/u/a.txt", entries[0].Path)
	assert.Equal(t, 2, entries[0].UseCount)
	assert.Equal(t, 1, entries[1].UseCount)
}

func TestTouchRejectsEmptyPath(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.FileHistory().Touch(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListEmptyHistory(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	entries, err := store.FileHistory().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// ==================== Note Store Tests ====================

func TestSaveAndListNotes(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	notes := store.NoteStore()
	require.NoError(t, notes.Save(ctx, domain.Note{Title: "groceries", Body: "milk, bread"}))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, notes.Save(ctx, domain.Note{Title: "standup", Body: "demo the bar"}))

	list, err := notes.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Most recently updated first.
	assert.Equal(t, "standup", list[0].Title)
	assert.NotEmpty(t, list[0].ID)
}

func TestSaveNoteUpdatesExisting(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	notes := store.NoteStore()
	note := domain.Note{ID: "n-1", Title: "draft", Body: "v1", UpdatedAt: time.Now().UTC()}
	require.NoError(t, notes.Save(ctx, note))

	note.Body = "v2"
	note.UpdatedAt = time.Now().UTC()
	require.NoError(t, notes.Save(ctx, note))

	list, err := notes.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "v2", list[0].Body)
}

func TestSaveNoteRejectsEmptyTitle(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.NoteStore().Save(context.Background(), domain.Note{Body: "no title"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteNote(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	notes := store.NoteStore()
	require.NoError(t, notes.Save(ctx, domain.Note{ID: "n-1", Title: "temp"}))
	require.NoError(t, notes.Delete(ctx, "n-1"))

	list, err := notes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteMissingNoteReturnsNotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.NoteStore().Delete(context.Background(), "never-existed")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
