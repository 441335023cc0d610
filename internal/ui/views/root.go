// Package views renders the UI state into terminal output.
package views

import (
	"github.com/contratai/contratai/internal/ui/models"
	"github.com/contratai/contratai/internal/ui/services"
	"github.com/charmbracelet/lipgloss"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State, renderer services.MarkdownRenderer) string {
	sections := []string{
		RenderChat(s, renderer),
		RenderInput(s),
		RenderStatus(s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
