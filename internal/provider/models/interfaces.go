package models

import (
	"context"

	"github.com/contratai/contratai/internal/orchestrator/models"
)

// Provider defines the interface for LLM backends.
type Provider interface {
	// Generate sends a request to the model and returns the response.
	// It may return a partial response AND an error (e.g., truncation).
	// Callers should check if Response is non-nil even if Error is non-nil.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// CountTokens returns the number of tokens in the provided messages.
	CountTokens(ctx context.Context, messages []models.Message) (int, error)

	// SetModel changes the active model at runtime.
	// Returns an error if the model is invalid or unavailable.
	SetModel(model string) error

	// GetModel returns the currently active model name.
	GetModel() string

	// ListModels returns a list of available model names.
	ListModels(ctx context.Context) ([]string, error)

	// GetCapabilities returns what features the provider/model supports.
	GetCapabilities() Capabilities

	// DefineTools registers tool definitions with the provider for native
	// tool calling. Must be called before Generate when tools are wanted.
	DefineTools(ctx context.Context, tools []ToolDefinition) error
}
