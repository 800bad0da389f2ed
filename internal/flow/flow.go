// Package flow is the navigation state machine. Transition is pure: it maps a
// state and an event to the next state and the feedback cues to emit.
package flow

import "github.com/jask/bestnotes/internal/feedback"

// Pages is the number of onboarding cards.
const Pages = 4

// LastPage is the index of the final onboarding card.
const LastPage = Pages - 1

// Screen identifies what is on display.
type Screen int

const (
	Title Screen = iota
	Onboarding
	Login
	Home
	Composer // modal over Home
)

func (s Screen) String() string {
	switch s {
	case Title:
		return "title"
	case Onboarding:
		return "onboarding"
	case Login:
		return "login"
	case Home:
		return "home"
	case Composer:
		return "composer"
	default:
		return "unknown"
	}
}

// State is the whole navigation state.
type State struct {
	Screen Screen
	// Page is the onboarding card index, 0..LastPage. It is only meaningful
	// on the Onboarding screen.
	Page int
	// Origin is the screen Login was entered from.
	Origin Screen
	// Failed is set by a rejected login or save and cleared by the next
	// transition.
	Failed bool
}

// Initial is the state at launch.
func Initial() State { return State{Screen: Title} }

// EventKind names a user intent.
type EventKind int

const (
	StartOnboarding EventKind = iota + 1
	GoToLogin
	Next
	Back
	SubmitLogin
	OpenComposer
	CancelComposer
	SaveComposer
)

func (k EventKind) String() string {
	switch k {
	case StartOnboarding:
		return "start_onboarding"
	case GoToLogin:
		return "go_to_login"
	case Next:
		return "next"
	case Back:
		return "back"
	case SubmitLogin:
		return "submit_login"
	case OpenComposer:
		return "open_composer"
	case CancelComposer:
		return "cancel_composer"
	case SaveComposer:
		return "save_composer"
	default:
		return "unknown"
	}
}

// Event is a user intent. Valid carries the outcome of validation for
// SubmitLogin and SaveComposer and is ignored otherwise.
type Event struct {
	Kind  EventKind
	Valid bool
}

// On builds an event that needs no validation outcome.
func On(k EventKind) Event { return Event{Kind: k} }

// Submit builds a SubmitLogin event.
func Submit(valid bool) Event { return Event{Kind: SubmitLogin, Valid: valid} }

// Save builds a SaveComposer event.
func Save(valid bool) Event { return Event{Kind: SaveComposer, Valid: valid} }

// Allowed reports whether e changes anything in s.
func Allowed(s State, e Event) bool {
	switch s.Screen {
	case Title:
		return e.Kind == StartOnboarding || e.Kind == GoToLogin
	case Onboarding:
		return e.Kind == Next || (e.Kind == Back && s.Page > 0)
	case Login:
		return e.Kind == SubmitLogin || e.Kind == Back
	case Home:
		return e.Kind == OpenComposer
	case Composer:
		return e.Kind == CancelComposer || e.Kind == SaveComposer
	}
	return false
}

// Transition returns the state after e and the cues to emit. Events not
// Allowed in s return s unchanged and no cues.
func Transition(s State, e Event) (State, []feedback.Cue) {
	if !Allowed(s, e) {
		return s, nil
	}
	switch s.Screen {
	case Title:
		if e.Kind == StartOnboarding {
			return State{Screen: Onboarding}, cues(feedback.Tap)
		}
		return State{Screen: Login, Origin: Title}, cues(feedback.Tap)

	case Onboarding:
		if e.Kind == Back {
			return State{Screen: Onboarding, Page: s.Page - 1}, cues(feedback.Select)
		}
		if s.Page >= LastPage {
			return State{Screen: Login, Origin: Onboarding}, cues(feedback.Success)
		}
		return State{Screen: Onboarding, Page: s.Page + 1}, cues(feedback.Select)

	case Login:
		if e.Kind == Back {
			if s.Origin == Onboarding {
				return State{Screen: Onboarding, Page: LastPage}, nil
			}
			return State{Screen: Title}, nil
		}
		if !e.Valid {
			return State{Screen: Login, Origin: s.Origin, Failed: true}, cues(feedback.Failure)
		}
		return State{Screen: Home}, cues(feedback.Success)

	case Home:
		return State{Screen: Composer}, nil

	case Composer:
		if e.Kind == CancelComposer {
			return State{Screen: Home}, nil
		}
		if !e.Valid {
			return State{Screen: Composer, Failed: true}, cues(feedback.Failure)
		}
		return State{Screen: Home}, cues(feedback.Success)
	}
	return s, nil
}

func cues(c ...feedback.Cue) []feedback.Cue { return c }
