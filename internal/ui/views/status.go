package views

import (
	"fmt"
	"strings"

	"github.com/contratai/contratai/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatus renders the status bar
func RenderStatus(s models.State) string {
	var icon string
	var style lipgloss.Style

	switch s.StatusPhase {
	case "executing":
		icon = s.Spinner.View()
		style = StatusExecutingStyle
	case "done":
		icon = "✔"
		style = StatusDoneStyle
	case "thinking":
		icon = s.Spinner.View()
		style = StatusThinkingStyle
		// Animate the dots
		dots := strings.Repeat(".", s.DotCount)
		message := s.StatusMessage
		if message == "" {
			message = "Gerando"
		}
		return style.Render(fmt.Sprintf("%s %s%s", icon, message, dots))
	default:
		style = StatusDefaultStyle
	}

	status := "Pronto"
	if s.StatusMessage != "" {
		status = fmt.Sprintf("%s %s", icon, s.StatusMessage)
	} else if s.StatusPhase != "ready" && s.StatusPhase != "" {
		// If executing but no message, show icon
		status = icon
	}

	leftSide := style.Render(status)

	// Right side: model name
	rightSide := ""
	if s.CurrentModel != "" {
		rightSide = StatusDefaultStyle.
			Foreground(lipgloss.Color("241")).
			Render(s.CurrentModel)
	}

	if rightSide != "" {
		return fmt.Sprintf("%s  %s", leftSide, rightSide)
	}
	return leftSide
}
