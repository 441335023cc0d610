// Package ui implements the terminal chat interface with Bubble Tea.
package ui

import (
	"context"

	"github.com/contratai/contratai/internal/ui/services"
	tea "github.com/charmbracelet/bubbletea"
)

// UI implements the UserInterface using Bubble Tea
type UI struct {
	program *tea.Program

	// Orchestrator -> UI channels
	inputReq    chan inputRequest
	inputResp   chan string
	statusChan  chan statusMsg
	messageChan chan string

	// UI -> Orchestrator
	commandChan chan UICommand

	// Ready signal
	readyChan chan struct{}
}

// Internal message types
type inputRequest struct {
	prompt string
}

type statusMsg struct {
	phase   string
	message string
}

// UIChannels holds the channels for UI communication
type UIChannels struct {
	InputReq    chan inputRequest
	InputResp   chan string
	StatusChan  chan statusMsg
	MessageChan chan string
	CommandChan chan UICommand
	ReadyChan   chan struct{} // Signals when UI is ready to accept requests
}

// NewUIChannels creates a new UIChannels struct with default buffers
func NewUIChannels() *UIChannels {
	return &UIChannels{
		InputReq:    make(chan inputRequest),
		InputResp:   make(chan string),
		StatusChan:  make(chan statusMsg, 10),
		MessageChan: make(chan string, 10),
		CommandChan: make(chan UICommand, 10),
		ReadyChan:   make(chan struct{}),
	}
}

// NewUI creates a new Bubble Tea UI
func NewUI(
	channels *UIChannels,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
	modelName string,
) *UI {
	ui := &UI{
		inputReq:    channels.InputReq,
		inputResp:   channels.InputResp,
		statusChan:  channels.StatusChan,
		messageChan: channels.MessageChan,
		commandChan: channels.CommandChan,
		readyChan:   channels.ReadyChan,
	}

	model := newBubbleTeaModel(
		ui.inputReq,
		ui.inputResp,
		ui.statusChan,
		ui.messageChan,
		ui.commandChan,
		ui.readyChan,
		renderer,
		spinnerFactory,
		modelName,
	)

	ui.program = tea.NewProgram(model, tea.WithAltScreen())

	return ui
}

// Start starts the UI program
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}

// ReadInput prompts the user for input
func (u *UI) ReadInput(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case u.inputReq <- inputRequest{prompt: prompt}:
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case response := <-u.inputResp:
			return response, nil
		}
	}
}

// WriteStatus updates the status bar
func (u *UI) WriteStatus(phase string, message string) {
	select {
	case u.statusChan <- statusMsg{phase: phase, message: message}:
	default:
		// Drop if channel is full
	}
}

// WriteMessage sends a message to the UI
func (u *UI) WriteMessage(content string) {
	select {
	case u.messageChan <- content:
	default:
		// Drop if channel is full
	}
}

// Commands returns the command channel
func (u *UI) Commands() <-chan UICommand {
	return u.commandChan
}

// Ready returns a channel that is closed when the UI is ready to accept requests
func (u *UI) Ready() <-chan struct{} {
	return u.readyChan
}
