// Package models holds the UI state shared between the update loop and the
// view functions.
package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Message is a single chat entry shown in the viewport.
type Message struct {
	Role    string
	Content string
}

// State is the full UI state rendered each frame.
type State struct {
	// Components
	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model

	// Chat history shown on screen
	Messages []Message

	// Terminal dimensions
	Width  int
	Height int

	// CanSubmit is true while the agent is waiting for user input
	CanSubmit bool

	// Status bar
	StatusPhase   string
	StatusMessage string
	DotCount      int
	CurrentModel  string
}
