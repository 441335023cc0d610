package views

import "github.com/charmbracelet/lipgloss"

// Chat styles
var (
	UserMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

	AssistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))
)

// Input bar
var InputStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(0, 1)

// Status bar styles
var (
	StatusDefaultStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	StatusThinkingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("213"))

	StatusExecutingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	StatusDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)
