package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/bestnotes/internal/database"
	"github.com/jask/bestnotes/internal/notes"
	"github.com/jask/bestnotes/internal/notes/notestest"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))
	return db
}

func TestNoteRepoContract(t *testing.T) {
	notestest.Run(t, func(t *testing.T) notes.Store { return NewNoteRepo(openMemory(t)) })
}

func TestNoteRepoSameInstantKeepsInsertionOrder(t *testing.T) {
	at := time.Date(2025, 9, 23, 12, 0, 0, 0, time.UTC)
	repo := NewNoteRepo(openMemory(t)).WithClock(func() time.Time { return at })
	ctx := context.Background()

	_, err := repo.Add(ctx, "A")
	require.NoError(t, err)
	_, err = repo.Add(ctx, "B")
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "B", list[0].Text)
	require.Equal(t, "A", list[1].Text)
	require.True(t, list[0].CreatedAt.Equal(at))
}

func TestNoteRepoDuplicateID(t *testing.T) {
	repo := NewNoteRepo(openMemory(t))
	repo.newID = func() string { return "fixed" }
	ctx := context.Background()

	_, err := repo.Add(ctx, "one")
	require.NoError(t, err)
	_, err = repo.Add(ctx, "two")
	require.ErrorIs(t, err, notes.ErrDuplicateID)

	n, err := repo.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestNoteRepoPersistsOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")
	ctx := context.Background()

	db, err := database.Open(path)
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	_, err = NewNoteRepo(db).Add(ctx, "kept")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = database.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))

	list, err := NewNoteRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "kept", list[0].Text)
}
