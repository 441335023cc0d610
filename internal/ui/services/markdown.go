// Package services provides rendering helpers for the UI.
package services

import "github.com/charmbracelet/glamour"

// MarkdownRenderer renders markdown text to terminal output at a given
// width. The interface exists so views can be tested with a plain renderer.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour's auto style.
type GlamourRenderer struct{}

// NewGlamourRenderer creates the default renderer.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// Render renders the content word-wrapped at the given width. The renderer
// is built per call because the width changes with terminal resizes.
func (r *GlamourRenderer) Render(content string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	return tr.Render(content)
}

// RenderMarkdown renders content through the given renderer.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) (string, error) {
	return renderer.Render(content, width)
}
