package notes_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/bestnotes/internal/notes"
	"github.com/jask/bestnotes/internal/notes/notestest"
)

func TestMemoryStoreContract(t *testing.T) {
	notestest.Run(t, func(t *testing.T) notes.Store { return notes.NewMemoryStore() })
}

func TestMemoryStoreUsesClockAndIDs(t *testing.T) {
	at := time.Date(2025, 9, 23, 10, 0, 0, 0, time.UTC)
	next := 0
	s := notes.NewMemoryStore(
		notes.WithClock(func() time.Time { return at }),
		notes.WithIDs(func() string { next++; return string(rune('a' + next - 1)) }),
	)

	n, err := s.Add(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, notes.Note{ID: "a", Text: "hello", CreatedAt: at}, n)
}

func TestMemoryStoreRejectsDuplicateID(t *testing.T) {
	s := notes.NewMemoryStore(notes.WithIDs(func() string { return "same" }))
	ctx := context.Background()

	_, err := s.Add(ctx, "one")
	require.NoError(t, err)
	_, err = s.Add(ctx, "two")
	require.ErrorIs(t, err, notes.ErrDuplicateID)

	n, err := s.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestIsValidation(t *testing.T) {
	_, err := notes.Normalize(" ")
	require.True(t, notes.IsValidation(err))
	require.False(t, notes.IsValidation(notes.ErrDuplicateID))
	require.False(t, notes.IsValidation(nil))
}
