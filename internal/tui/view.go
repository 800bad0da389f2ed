package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/bestnotes/internal/flow"
)

const sprite = `  .-----.
 | o   o |
 |  \_/  |
  '-----'`

func (m *Model) View() string {
	var body string
	switch m.ctrl.State().Screen {
	case flow.Onboarding:
		body = m.renderOnboarding()
	case flow.Login:
		body = m.renderLogin()
	case flow.Home:
		body = m.renderHome()
	case flow.Composer:
		body = m.renderHome() + "\n\n" + m.renderComposer()
	default:
		body = m.renderTitle()
	}
	if m.status != "" {
		body += "\n" + errorStyle.Render(m.status)
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (m *Model) renderTitle() string {
	return strings.Join([]string{
		spriteStyle.Render(sprite),
		"",
		titleStyle.Render("The Best Notes App"),
		subtitleStyle.Render("Capture ideas. Grow streaks. ✨"),
		"",
		buttonStyle.Render("o  Start Onboarding") + "  " + buttonStyle.Render("l  Log In"),
		"",
		helpLine(m.keys.Onboarding, m.keys.Login, m.keys.Quit),
	}, "\n")
}

func (m *Model) renderOnboarding() string {
	page := m.ctrl.State().Page
	card, _ := m.ctrl.Card()

	dots := make([]string, flow.Pages)
	for i := range dots {
		if i == page {
			dots[i] = dotOnStyle.Render("●")
		} else {
			dots[i] = dotOffStyle.Render("○")
		}
	}

	nav := m.keys.Next
	if page == flow.LastPage {
		nav.SetHelp("enter", "get started")
	}
	help := helpLine(nav, m.keys.Quit)
	if page > 0 {
		help = helpLine(m.keys.Back, nav, m.keys.Quit)
	}

	return strings.Join([]string{
		titleStyle.Render("Onboarding"),
		"",
		card.Emoji,
		titleStyle.Render(card.Title),
		subtitleStyle.Render(card.Subtitle),
		"",
		strings.Join(dots, " "),
		"",
		help,
	}, "\n")
}

func (m *Model) renderLogin() string {
	button := disabledButtonStyle.Render("Log In")
	if m.ctrl.CanSubmit() {
		button = buttonStyle.Render("Log In")
	}
	lines := []string{
		titleStyle.Render("Welcome back"),
		"",
		m.email.View(),
		m.password.View(),
		"",
	}
	if m.ctrl.State().Failed {
		lines = append(lines, errorStyle.Render(m.ctrl.Message()), "")
	}
	lines = append(lines, button, "", helpLine(m.keys.Submit, m.keys.SwitchField, m.keys.Cancel))
	return strings.Join(lines, "\n")
}

func (m *Model) renderHome() string {
	lines := []string{titleStyle.Render("Home"), ""}
	if m.searching || m.search.Value() != "" {
		lines = append(lines, m.search.View(), "")
	}

	visible := m.visibleNotes()
	switch {
	case len(m.notes) == 0:
		lines = append(lines, subtitleStyle.Render("No notes yet. Press n for a new note."))
	case len(visible) == 0:
		lines = append(lines, subtitleStyle.Render(fmt.Sprintf("No notes match %q.", m.search.Value())))
	default:
		for _, n := range visible {
			date := n.CreatedAt.In(m.opts.Location).Format(m.opts.DateFormat)
			lines = append(lines, noteStyle.Render("• "+n.Text), "  "+dateStyle.Render(date))
		}
	}

	lines = append(lines, "", helpLine(m.keys.NewNote, m.keys.Search, m.keys.Quit))
	return strings.Join(lines, "\n")
}

func (m *Model) renderComposer() string {
	lines := []string{titleStyle.Render("New Note"), "", m.composer.View()}
	if m.ctrl.State().Failed {
		lines = append(lines, errorStyle.Render(m.ctrl.Message()))
	} else if strings.TrimSpace(m.composer.Value()) != "" {
		lines = append(lines, successStyle.Render("ready to save"))
	}
	cancel := m.keys.Cancel
	cancel.SetHelp("esc", "cancel")
	lines = append(lines, "", helpLine(m.keys.Save, cancel))
	return modalStyle.Render(strings.Join(lines, "\n"))
}
