// Package app owns the application state. The Controller is the only holder
// of mutable state; screens read it and send it events.
package app

import (
	"context"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jask/bestnotes/internal/auth"
	"github.com/jask/bestnotes/internal/feedback"
	"github.com/jask/bestnotes/internal/flow"
	"github.com/jask/bestnotes/internal/logger"
	"github.com/jask/bestnotes/internal/notes"
	"github.com/jask/bestnotes/internal/onboarding"
)

// Controller applies flow transitions and their side effects.
type Controller struct {
	state    flow.State
	email    string
	password string
	draft    string
	message  string

	store    notes.Store
	feedback feedback.Feedback
	cards    []onboarding.Card
}

func New(store notes.Store, fb feedback.Feedback, cards []onboarding.Card) *Controller {
	if fb == nil {
		fb = feedback.Nop{}
	}
	return &Controller{
		state:    flow.Initial(),
		store:    store,
		feedback: fb,
		cards:    cards,
	}
}

func (c *Controller) State() flow.State { return c.state }

// Message is the validation message for the current screen, if any.
func (c *Controller) Message() string { return c.message }

func (c *Controller) Email() string    { return c.email }
func (c *Controller) Password() string { return c.password }
func (c *Controller) Draft() string    { return c.draft }

func (c *Controller) SetEmail(v string)    { c.email = v }
func (c *Controller) SetPassword(v string) { c.password = v }
func (c *Controller) SetDraft(v string)    { c.draft = v }

// CanSubmit reports whether the login form currently passes validation.
func (c *Controller) CanSubmit() bool { return auth.IsValid(c.email, c.password) }

// Card returns the onboarding card for the current page. ok is false off the
// onboarding screen.
func (c *Controller) Card() (card onboarding.Card, ok bool) {
	if c.state.Screen != flow.Onboarding || c.state.Page >= len(c.cards) {
		return onboarding.Card{}, false
	}
	return c.cards[c.state.Page], true
}

// Notes lists the store, newest first.
func (c *Controller) Notes(ctx context.Context) ([]notes.Note, error) {
	return c.store.List(ctx)
}

// Dispatch runs the event. Validation failures keep the current screen and
// set Message; only store failures are returned.
func (c *Controller) Dispatch(ctx context.Context, kind flow.EventKind) error {
	log := logger.Log(ctx)
	ev := flow.On(kind)

	if !flow.Allowed(c.state, ev) {
		log.Debug("event ignored",
			zap.Stringer("screen", c.state.Screen),
			zap.Stringer("event", kind))
		return nil
	}

	c.message = ""
	switch kind {
	case flow.SubmitLogin:
		err := auth.Validate(c.email, c.password)
		ev.Valid = err == nil
		if err != nil {
			c.message = err.Error()
			log.Info("login rejected", zap.Error(err))
		}
	case flow.SaveComposer:
		n, err := c.store.Add(ctx, c.draft)
		switch {
		case err == nil:
			ev.Valid = true
			log.Info("note saved", zap.String("note_id", n.ID), zap.Int("chars", utf8.RuneCountInString(n.Text)))
		case notes.IsValidation(err):
			c.message = err.Error()
		default:
			return fmt.Errorf("save note: %w", err)
		}
	}

	from := c.state
	next, cues := flow.Transition(c.state, ev)
	c.state = next
	c.leave(from, next)

	for _, cue := range cues {
		c.feedback.Notify(cue)
	}
	log.Debug("transition",
		zap.Stringer("from", from.Screen),
		zap.Stringer("to", next.Screen),
		zap.Int("page", next.Page))
	return nil
}

// leave clears drafts that must not outlive their screen.
func (c *Controller) leave(from, to flow.State) {
	if from.Screen == flow.Login && to.Screen != flow.Login {
		c.password = ""
	}
	if to.Screen == flow.Home {
		c.draft = ""
	}
	if from.Screen == flow.Home && to.Screen == flow.Composer {
		c.draft = ""
	}
}
