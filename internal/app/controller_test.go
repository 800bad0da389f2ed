package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/bestnotes/internal/feedback"
	"github.com/jask/bestnotes/internal/flow"
	"github.com/jask/bestnotes/internal/notes"
	"github.com/jask/bestnotes/internal/onboarding"
)

func newController(t *testing.T) (*Controller, *feedback.Recorder) {
	t.Helper()
	rec := &feedback.Recorder{}
	return New(notes.NewMemoryStore(), rec, onboarding.MustLoad()), rec
}

func dispatch(t *testing.T, c *Controller, kinds ...flow.EventKind) {
	t.Helper()
	for _, k := range kinds {
		require.NoError(t, c.Dispatch(context.Background(), k))
	}
}

func TestLoginScenario(t *testing.T) {
	c, rec := newController(t)
	dispatch(t, c, flow.GoToLogin)
	require.Equal(t, flow.Login, c.State().Screen)

	c.SetEmail("a@b.com")
	c.SetPassword("12345")
	require.False(t, c.CanSubmit())
	dispatch(t, c, flow.SubmitLogin)
	require.Equal(t, flow.Login, c.State().Screen)
	require.True(t, c.State().Failed)
	require.Equal(t, "Please enter a valid email and a password with 6+ characters.", c.Message())

	c.SetPassword("123456")
	require.True(t, c.CanSubmit())
	dispatch(t, c, flow.SubmitLogin)
	require.Equal(t, flow.Home, c.State().Screen)
	require.Empty(t, c.Message())
	require.Empty(t, c.Password(), "password must not outlive the login screen")
	require.Equal(t, "a@b.com", c.Email())

	require.Equal(t, []feedback.Cue{feedback.Tap, feedback.Failure, feedback.Success}, rec.Cues())
}

func TestOnboardingWalkthrough(t *testing.T) {
	c, rec := newController(t)
	_, ok := c.Card()
	require.False(t, ok)

	dispatch(t, c, flow.StartOnboarding)
	card, ok := c.Card()
	require.True(t, ok)
	require.Equal(t, "Welcome to The Best Notes App", card.Title)

	dispatch(t, c, flow.Back)
	require.Equal(t, 0, c.State().Page)

	dispatch(t, c, flow.Next, flow.Next, flow.Next)
	card, _ = c.Card()
	require.Equal(t, "Build a Streak", card.Title)

	dispatch(t, c, flow.Next)
	require.Equal(t, flow.Login, c.State().Screen)

	dispatch(t, c, flow.Back)
	require.Equal(t, flow.State{Screen: flow.Onboarding, Page: flow.LastPage}, c.State())

	require.Equal(t, []feedback.Cue{
		feedback.Tap,
		feedback.Select, feedback.Select, feedback.Select,
		feedback.Success,
	}, rec.Cues())
}

func loggedIn(t *testing.T) (*Controller, *feedback.Recorder) {
	t.Helper()
	c, rec := newController(t)
	dispatch(t, c, flow.GoToLogin)
	c.SetEmail("a@b.com")
	c.SetPassword("123456")
	dispatch(t, c, flow.SubmitLogin)
	require.Equal(t, flow.Home, c.State().Screen)
	rec.Reset()
	return c, rec
}

func TestComposerSaveAndCancel(t *testing.T) {
	c, rec := loggedIn(t)
	ctx := context.Background()

	dispatch(t, c, flow.OpenComposer)
	c.SetDraft("   ")
	dispatch(t, c, flow.SaveComposer)
	require.Equal(t, flow.Composer, c.State().Screen)
	require.Equal(t, "Note can't be empty.", c.Message())
	list, err := c.Notes(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	c.SetDraft("A")
	dispatch(t, c, flow.SaveComposer)
	require.Equal(t, flow.Home, c.State().Screen)
	require.Empty(t, c.Draft())

	dispatch(t, c, flow.OpenComposer)
	c.SetDraft("discard me")
	dispatch(t, c, flow.CancelComposer)
	require.Equal(t, flow.Home, c.State().Screen)
	require.Empty(t, c.Draft())

	dispatch(t, c, flow.OpenComposer)
	c.SetDraft("\n B \n")
	dispatch(t, c, flow.SaveComposer)

	list, err = c.Notes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "B", list[0].Text)
	require.Equal(t, "A", list[1].Text)

	require.Equal(t, []feedback.Cue{feedback.Failure, feedback.Success, feedback.Success}, rec.Cues())
}

func TestIgnoredEventsAreNoops(t *testing.T) {
	c, rec := newController(t)
	dispatch(t, c, flow.SaveComposer, flow.Next, flow.SubmitLogin, flow.OpenComposer)
	require.Equal(t, flow.Initial(), c.State())
	require.Empty(t, rec.Cues())
}

type failingStore struct{ notes.Store }

var errDisk = errors.New("disk full")

func (failingStore) Add(context.Context, string) (notes.Note, error) { return notes.Note{}, errDisk }

func TestStoreFailureIsReturned(t *testing.T) {
	rec := &feedback.Recorder{}
	c := New(failingStore{notes.NewMemoryStore()}, rec, onboarding.MustLoad())
	ctx := context.Background()
	dispatch(t, c, flow.GoToLogin)
	c.SetEmail("a@b")
	c.SetPassword("secret")
	dispatch(t, c, flow.SubmitLogin, flow.OpenComposer)
	rec.Reset()

	c.SetDraft("text")
	err := c.Dispatch(ctx, flow.SaveComposer)
	require.ErrorIs(t, err, errDisk)
	require.Equal(t, flow.Composer, c.State().Screen)
	require.Equal(t, "text", c.Draft())
	require.Empty(t, rec.Cues())
}

func TestNilFeedbackIsNop(t *testing.T) {
	c := New(notes.NewMemoryStore(), nil, onboarding.MustLoad())
	require.NoError(t, c.Dispatch(context.Background(), flow.GoToLogin))
}
