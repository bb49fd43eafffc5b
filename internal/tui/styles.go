package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("4")
	ColorSecondary = lipgloss.Color("6")
	ColorSuccess   = lipgloss.Color("2")
	ColorWarning   = lipgloss.Color("3")
	ColorDanger    = lipgloss.Color("1")
	ColorMuted     = lipgloss.Color("8")

	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	OkStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	WarnStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
	ErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
	HelpStyle   = lipgloss.NewStyle().Foreground(ColorMuted)

	OutputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)
