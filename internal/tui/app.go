package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/bestnotes/internal/app"
	"github.com/jask/bestnotes/internal/flow"
	"github.com/jask/bestnotes/internal/logger"
	"github.com/jask/bestnotes/internal/notes"
)

// Options holds presentation settings.
type Options struct {
	DateFormat string
	Location   *time.Location
}

// Model is the bubbletea model. It keeps widget state only; application state
// lives in the controller.
type Model struct {
	ctx  context.Context
	ctrl *app.Controller
	opts Options
	keys keyMap

	email      textinput.Model
	password   textinput.Model
	loginFocus int
	composer   textarea.Model
	search     textinput.Model
	searching  bool

	notes  []notes.Note
	status string
	width  int
	height int
}

const (
	focusEmail = iota
	focusPassword
)

func New(ctx context.Context, ctrl *app.Controller, opts Options) *Model {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.DateFormat == "" {
		opts.DateFormat = "Jan 2, 2006"
	}

	email := textinput.New()
	email.Prompt = "Email    "
	email.Placeholder = "you@example.com"

	password := textinput.New()
	password.Prompt = "Password "
	password.Placeholder = "at least 6 characters"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	composer := textarea.New()
	composer.Placeholder = "Write something..."
	composer.ShowLineNumbers = false
	composer.CharLimit = 0
	composer.SetWidth(60)
	composer.SetHeight(6)

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search notes"

	return &Model{
		ctx:      ctx,
		ctrl:     ctrl,
		opts:     opts,
		keys:     defaultKeys(),
		email:    email,
		password: password,
		composer: composer,
		search:   search,
		width:    80,
		height:   24,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("The Best Notes App")
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if w := msg.Width - 8; w > 20 {
			m.composer.SetWidth(w)
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.ctrl.State().Screen {
		case flow.Title:
			return m.handleTitleKey(msg)
		case flow.Onboarding:
			return m.handleOnboardingKey(msg)
		case flow.Login:
			return m.handleLoginKey(msg)
		case flow.Home:
			return m.handleHomeKey(msg)
		case flow.Composer:
			return m.handleComposerKey(msg)
		}
	}
	return m, nil
}

func (m *Model) handleTitleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Onboarding):
		return m, m.dispatch(flow.StartOnboarding)
	case key.Matches(msg, m.keys.Login):
		return m, m.dispatch(flow.GoToLogin)
	}
	return m, nil
}

func (m *Model) handleOnboardingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m, m.dispatch(flow.Back)
	case key.Matches(msg, m.keys.Next):
		return m, m.dispatch(flow.Next)
	}
	return m, nil
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, m.dispatch(flow.Back)
	case key.Matches(msg, m.keys.SwitchField):
		return m, m.focusLogin(1 - m.loginFocus)
	case key.Matches(msg, m.keys.Submit):
		return m, m.dispatch(flow.SubmitLogin)
	}

	var cmd tea.Cmd
	if m.loginFocus == focusEmail {
		m.email, cmd = m.email.Update(msg)
		m.ctrl.SetEmail(m.email.Value())
	} else {
		m.password, cmd = m.password.Update(msg)
		m.ctrl.SetPassword(m.password.Value())
	}
	return m, cmd
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.Type {
		case tea.KeyEsc:
			m.searching = false
			m.search.Reset()
			m.search.Blur()
			return m, nil
		case tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Cancel):
		m.search.Reset()
		return m, nil
	case key.Matches(msg, m.keys.NewNote):
		return m, m.dispatch(flow.OpenComposer)
	}
	return m, nil
}

func (m *Model) handleComposerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, m.dispatch(flow.CancelComposer)
	case key.Matches(msg, m.keys.Save):
		m.ctrl.SetDraft(m.composer.Value())
		return m, m.dispatch(flow.SaveComposer)
	}
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	m.ctrl.SetDraft(m.composer.Value())
	return m, cmd
}

// dispatch forwards the event and prepares the widgets of the screen it
// lands on.
func (m *Model) dispatch(kind flow.EventKind) tea.Cmd {
	before := m.ctrl.State().Screen
	if err := m.ctrl.Dispatch(m.ctx, kind); err != nil {
		logger.Log(m.ctx).Error("dispatch failed", zap.Stringer("event", kind), zap.Error(err))
		m.status = "error: " + err.Error()
		return nil
	}
	m.status = ""
	after := m.ctrl.State().Screen
	if after == before {
		return nil
	}
	return m.enter(after)
}

func (m *Model) enter(screen flow.Screen) tea.Cmd {
	switch screen {
	case flow.Login:
		m.email.SetValue(m.ctrl.Email())
		m.password.SetValue(m.ctrl.Password())
		return m.focusLogin(focusEmail)
	case flow.Home:
		m.password.Reset()
		m.composer.Reset()
		m.composer.Blur()
		m.refreshNotes()
	case flow.Composer:
		m.composer.Reset()
		return m.composer.Focus()
	}
	return nil
}

func (m *Model) focusLogin(field int) tea.Cmd {
	m.loginFocus = field
	if field == focusEmail {
		m.password.Blur()
		return m.email.Focus()
	}
	m.email.Blur()
	return m.password.Focus()
}

func (m *Model) refreshNotes() {
	list, err := m.ctrl.Notes(m.ctx)
	if err != nil {
		logger.Log(m.ctx).Error("list notes", zap.Error(err))
		m.status = "error: " + err.Error()
		return
	}
	m.notes = list
}

// visibleNotes applies the search query to the cached list.
func (m *Model) visibleNotes() []notes.Note {
	return notes.Filter(m.notes, m.search.Value())
}
