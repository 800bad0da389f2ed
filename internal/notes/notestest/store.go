// Package notestest checks notes.Store implementations against the shared
// contract.
package notestest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/bestnotes/internal/notes"
)

// Run exercises a fresh store from newStore in each subtest.
func Run(t *testing.T, newStore func(t *testing.T) notes.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("blank text is rejected", func(t *testing.T) {
		s := newStore(t)
		for _, text := range []string{"", "   ", "\n\t "} {
			_, err := s.Add(ctx, text)
			require.ErrorIs(t, err, notes.ErrEmptyNote, "text %q", text)
			var verr *notes.ValidationError
			require.True(t, errors.As(err, &verr))
		}
		n, err := s.Len(ctx)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("add trims and lists first", func(t *testing.T) {
		s := newStore(t)
		note, err := s.Add(ctx, "  Buy milk\n")
		require.NoError(t, err)
		require.Equal(t, "Buy milk", note.Text)
		require.NotEmpty(t, note.ID)
		require.False(t, note.CreatedAt.IsZero())

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, note.ID, list[0].ID)
		require.Equal(t, "Buy milk", list[0].Text)
	})

	t.Run("newest first", func(t *testing.T) {
		s := newStore(t)
		for _, text := range []string{"A", "B", "C"} {
			_, err := s.Add(ctx, text)
			require.NoError(t, err)
		}
		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"C", "B", "A"}, texts(list))
	})

	t.Run("ids are unique", func(t *testing.T) {
		s := newStore(t)
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			n, err := s.Add(ctx, "note")
			require.NoError(t, err)
			require.False(t, seen[n.ID], "duplicate id %s", n.ID)
			seen[n.ID] = true
		}
		n, err := s.Len(ctx)
		require.NoError(t, err)
		require.Equal(t, 50, n)
	})

	t.Run("list is a snapshot", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Add(ctx, "first")
		require.NoError(t, err)

		list, err := s.List(ctx)
		require.NoError(t, err)
		list[0].Text = "mutated"

		_, err = s.Add(ctx, "second")
		require.NoError(t, err)
		require.Len(t, list, 1)

		again, err := s.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"second", "first"}, texts(again))
	})
}

func texts(list []notes.Note) []string {
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = n.Text
	}
	return out
}
