package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the screens use.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorOverlay1
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMauve).
			Bold(true).
			Padding(0, 2)
	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Background(colorSurface0).
				Padding(0, 2)

	noteStyle = lipgloss.NewStyle().Foreground(colorText)
	dateStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	spriteStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	dotOnStyle  = lipgloss.NewStyle().Foreground(colorTeal)
	dotOffStyle = lipgloss.NewStyle().Foreground(colorSurface1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFocus).
			Padding(1, 2)

	keyStyle      = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
