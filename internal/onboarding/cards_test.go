package onboarding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/bestnotes/internal/flow"
)

func TestLoadBuiltIn(t *testing.T) {
	cards, err := Load()
	require.NoError(t, err)
	require.Len(t, cards, flow.Pages)
	require.Equal(t, Card{
		Title:    "Welcome to The Best Notes App",
		Subtitle: "A simple, friendly space to capture ideas.",
		Emoji:    "✨",
	}, cards[0])
	require.Equal(t, "Build a Streak", cards[flow.LastPage].Title)
	require.NotPanics(t, func() { MustLoad() })
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "cards: [unterminated"},
		{"too few", "cards:\n  - title: one\n"},
		{"missing title", `cards:
  - title: a
  - title: b
  - title: "  "
  - title: d
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}
