package ui

import "context"

// UserInterface defines the contract for all user interactions.
// It follows a Read/Write pattern for clarity.
//
// Context Usage:
// All methods accept context.Context for cancellation support.
// If the user cancels (Ctrl+C), the context will be cancelled,
// and implementations should return immediately with context.Canceled error.
type UserInterface interface {
	// ReadInput prompts the user for general text input
	ReadInput(ctx context.Context, prompt string) (string, error)

	// WriteStatus displays ephemeral status updates (e.g., "Consultando...")
	WriteStatus(phase string, message string)

	// WriteMessage displays the agent's actual text responses
	WriteMessage(content string)

	// Commands returns the channel of slash commands issued by the user
	Commands() <-chan UICommand

	// Ready returns a channel closed once the UI accepts requests
	Ready() <-chan struct{}

	// Start runs the UI on the calling goroutine until the user exits
	Start() error
}

// UICommand is a command issued by the user through the UI, outside the
// normal question flow (slash commands).
type UICommand struct {
	Type string
	Args map[string]string
}
